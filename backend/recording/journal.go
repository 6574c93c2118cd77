// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Journal is the ordered log of every call made against a Driver, plus the
// set of objects that were created and not yet released.
//
// Journal is safe for concurrent use.
type Journal struct {
	mu     sync.Mutex
	calls  []Call
	live   map[string]struct{}
	nextID map[string]int
}

func newJournal() *Journal {
	return &Journal{
		live:   make(map[string]struct{}),
		nextID: make(map[string]int),
	}
}

// create allocates an object id of the given kind and marks it live.
func (j *Journal) create(kind string) string {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.nextID[kind]++
	id := fmt.Sprintf("%s#%d", kind, j.nextID[kind])
	j.live[id] = struct{}{}
	return id
}

// release marks id dead. It reports false if id was not live.
func (j *Journal) release(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.live[id]; !ok {
		return false
	}
	delete(j.live, id)
	j.calls = append(j.calls, Call{Op: OpRelease, Target: id})
	return true
}

func (j *Journal) isLive(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, ok := j.live[id]
	return ok
}

func (j *Journal) record(c Call) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, c)
}

// Calls returns a copy of the journal.
func (j *Journal) Calls() []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Call, len(j.calls))
	copy(out, j.calls)
	return out
}

// Ops returns the journaled ops in order.
func (j *Journal) Ops() []Op {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Op, len(j.calls))
	for i, c := range j.calls {
		out[i] = c.Op
	}
	return out
}

// Count returns how many times op was journaled.
func (j *Journal) Count(op Op) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, c := range j.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent call with the given op.
func (j *Journal) Last(op Op) (Call, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.calls) - 1; i >= 0; i-- {
		if j.calls[i].Op == op {
			return j.calls[i], true
		}
	}
	return Call{}, false
}

// Index returns the position of the first call matching op and target, or
// -1. An empty target matches any object.
func (j *Journal) Index(op Op, target string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, c := range j.calls {
		if c.Op == op && (target == "" || c.Target == target) {
			return i
		}
	}
	return -1
}

// Live returns the sorted ids of objects created and not yet released.
// The instance is excluded; it lives for the whole process.
func (j *Journal) Live() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, 0, len(j.live))
	for id := range j.live {
		if strings.HasPrefix(id, kindInstance+"#") {
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Reset clears the call log. Live objects are kept.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = j.calls[:0]
}

// String renders the journal one call per line, for test failure output.
func (j *Journal) String() string {
	var b strings.Builder
	for _, c := range j.Calls() {
		b.WriteString(c.Op.String())
		if c.Target != "" {
			b.WriteByte(' ')
			b.WriteString(c.Target)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// drop marks id dead without journaling a release. Submitted command
// buffers and presented images are consumed, not released.
func (j *Journal) drop(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.live[id]; !ok {
		return false
	}
	delete(j.live, id)
	return true
}

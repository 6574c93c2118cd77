// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gogpu/gputypes"
)

// CheckLimits reports every field of required that supported cannot
// satisfy. Max* fields must not exceed the supported value. Min* fields
// are alignments: a non-zero request must not be finer than supported.
// The error wraps ErrLimitsExceeded.
func CheckLimits(required, supported gputypes.Limits) error {
	req := reflect.ValueOf(required)
	sup := reflect.ValueOf(supported)
	var bad []string
	for i := 0; i < req.NumField(); i++ {
		name := req.Type().Field(i).Name
		r, s := req.Field(i).Uint(), sup.Field(i).Uint()
		if strings.HasPrefix(name, "Min") {
			if r != 0 && r < s {
				bad = append(bad, fmt.Sprintf("%s=%d < %d", name, r, s))
			}
			continue
		}
		if r > s {
			bad = append(bad, fmt.Sprintf("%s=%d > %d", name, r, s))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrLimitsExceeded, strings.Join(bad, ", "))
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Entry points of the triangle program.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed shaders/triangle.wgsl
var triangleWGSL string

// TriangleWGSL returns the embedded WGSL source of the triangle program.
func TriangleWGSL() string { return triangleWGSL }

// ErrShaderContract is wrapped by CheckShader when a program parses but
// does not fit the pipeline built around it.
var ErrShaderContract = errors.New("render: shader contract violated")

// CheckShader parses and lowers WGSL source with naga, checks that it fits
// the pipeline Build creates, then validates it. The pipeline needs a
// vs_main vertex entry point without vertex attributes and an fs_main
// fragment entry point, and has no resource bindings.
func CheckShader(src string) error {
	ast, err := naga.Parse(src)
	if err != nil {
		return fmt.Errorf("render: shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return fmt.Errorf("render: shader: %w", err)
	}
	if err := checkContract(module); err != nil {
		return err
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("render: shader: %w", err)
	}
	if len(verrs) > 0 {
		return fmt.Errorf("render: shader: %d validation errors: %w", len(verrs), &verrs[0])
	}
	return nil
}

func checkContract(m *ir.Module) error {
	vs := findEntryPoint(m, VertexEntryPoint, ir.StageVertex)
	if vs == nil {
		return fmt.Errorf("%w: missing vertex entry point %q", ErrShaderContract, VertexEntryPoint)
	}
	if findEntryPoint(m, FragmentEntryPoint, ir.StageFragment) == nil {
		return fmt.Errorf("%w: missing fragment entry point %q", ErrShaderContract, FragmentEntryPoint)
	}
	for _, arg := range vs.Function.Arguments {
		if isLocation(arg.Binding) || hasLocationMember(m, arg.Type) {
			return fmt.Errorf("%w: vertex input %q requires a vertex buffer", ErrShaderContract, arg.Name)
		}
	}
	for _, gv := range m.GlobalVariables {
		if gv.Binding != nil {
			return fmt.Errorf("%w: resource %q at @group(%d) @binding(%d)",
				ErrShaderContract, gv.Name, gv.Binding.Group, gv.Binding.Binding)
		}
	}
	return nil
}

func findEntryPoint(m *ir.Module, name string, stage ir.ShaderStage) *ir.EntryPoint {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Name == name && m.EntryPoints[i].Stage == stage {
			return &m.EntryPoints[i]
		}
	}
	return nil
}

func isLocation(b *ir.Binding) bool {
	if b == nil {
		return false
	}
	switch (*b).(type) {
	case ir.LocationBinding, *ir.LocationBinding:
		return true
	}
	return false
}

// hasLocationMember reports whether t is a struct with a @location member.
func hasLocationMember(m *ir.Module, t ir.TypeHandle) bool {
	if int(t) >= len(m.Types) {
		return false
	}
	st, ok := m.Types[t].Inner.(ir.StructType)
	if !ok {
		return false
	}
	for _, mem := range st.Members {
		if isLocation(mem.Binding) {
			return true
		}
	}
	return false
}

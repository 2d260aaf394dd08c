// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vexprlang/vexpr/expr"
	"github.com/vexprlang/vexpr/kind"
	"github.com/vexprlang/vexpr/parsetree"
)

func build(t *testing.T, src string) expr.ScalarExpr {
	t.Helper()
	n, err := parsetree.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	ks, err := kind.Infer(n)
	if err != nil {
		t.Fatalf("Infer(%q): %v", src, err)
	}
	e, err := expr.Build(n, ks)
	if err != nil {
		t.Fatalf("Build(%q): %v", src, err)
	}
	return e
}

var evalX = []float64{1, 2, 3}

func TestScenarios(t *testing.T) {
	cases := []struct {
		src     string
		apply   float64
		diffStr string
	}{
		{src: "2", apply: 2, diffStr: "0"},
		{src: "2+2", apply: 4},
		{src: "-(+2)", apply: -2},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			e := build(t, c.src)
			got, err := e.Apply(evalX)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got != c.apply {
				t.Errorf("Apply = %v, want %v", got, c.apply)
			}
			if c.diffStr != "" {
				if got := e.Diff(0).String(); got != c.diffStr {
					t.Errorf("Diff(0).String() = %q, want %q", got, c.diffStr)
				}
			}
		})
	}
}

func TestIndexedVectorComponent(t *testing.T) {
	e := build(t, "x_0")
	v, err := e.Apply(evalX)
	if err != nil || v != 1 {
		t.Fatalf("Apply = %v, %v, want 1, nil", v, err)
	}
	d := e.Diff(0)
	if got := d.String(); got != "1" {
		t.Errorf("Diff(0).String() = %q, want %q", got, "1")
	}
	dv, err := d.Apply(evalX)
	if err != nil || dv != 1 {
		t.Fatalf("Diff(0).Apply = %v, %v, want 1, nil", dv, err)
	}
}

func TestScalarTimesVectorComponentDiff(t *testing.T) {
	e := build(t, "2*x_0")
	if got := e.Diff(0).String(); got != "2*1+0*x_0" {
		t.Errorf("Diff(0).String() = %q, want %q", got, "2*1+0*x_0")
	}
	v, err := e.Diff(0).Apply(evalX)
	if err != nil || v != 2 {
		t.Fatalf("Diff(0).Apply = %v, %v, want 2, nil", v, err)
	}
}

func TestProductOfComponentsDiff(t *testing.T) {
	e := build(t, "x_0*x_1")
	if got := e.Diff(0).String(); got != "x_0*0+1*x_1" {
		t.Errorf("Diff(0).String() = %q, want %q", got, "x_0*0+1*x_1")
	}
	v, err := e.Diff(0).Apply(evalX)
	if err != nil || v != 2 {
		t.Fatalf("Diff(0).Apply = %v, %v, want 2, nil", v, err)
	}
}

func TestDotDiff(t *testing.T) {
	e := build(t, "dot(x,x)")
	v, err := e.Apply(evalX)
	if err != nil || v != 14 {
		t.Fatalf("Apply = %v, %v, want 14, nil", v, err)
	}
	wantDiff := "dot(<x_0=1>,x)+dot(x,<x_0=1>)"
	if got := e.Diff(0).String(); got != wantDiff {
		t.Errorf("Diff(0).String() = %q, want %q", got, wantDiff)
	}
	dv, err := e.Diff(0).Apply(evalX)
	if err != nil || dv != 2 {
		t.Fatalf("Diff(0).Apply = %v, %v, want 2, nil", dv, err)
	}
}

func TestExpOfScaledDotDiff(t *testing.T) {
	e := build(t, "exp(-0.5 * dot(x,x))")
	want := "exp(-0.5*dot(x,x))*(-(0.5*(dot(<x_0=1>,x)+dot(x,<x_0=1>))+0*dot(x,x)))"
	if got := e.Diff(0).String(); got != want {
		t.Errorf("Diff(0).String() =\n%q, want\n%q", got, want)
	}
	dv, err := e.Diff(0).Apply(evalX)
	if err != nil {
		t.Fatalf("Diff(0).Apply: %v", err)
	}
	wantVal := math.Exp(-0.5*14) * -1
	if math.Abs(dv-wantVal) > 1e-9 {
		t.Errorf("Diff(0).Apply = %v, want %v", dv, wantVal)
	}
}

func TestDiffIsPure(t *testing.T) {
	e := build(t, "x_0*x_1")
	before := e.String()
	_ = e.Diff(0)
	if got := e.String(); got != before {
		t.Errorf("Diff mutated its receiver: %q != %q", got, before)
	}
	d1, d2 := e.Diff(0).String(), e.Diff(0).String()
	if d1 != d2 {
		t.Errorf("two successive Diff(0) calls produced different trees: %q != %q", d1, d2)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []string{
		"sqrt(2)",
		"rand()",
		"abs(2)",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			n, err := parsetree.Parse(src)
			if err != nil {
				t.Fatalf("Parse(%q): %v", src, err)
			}
			ks, err := kind.Infer(n)
			if err != nil {
				t.Fatalf("Infer(%q): %v", src, err)
			}
			_, err = expr.Build(n, ks)
			var niErr *expr.NotImplementedError
			if !errors.As(err, &niErr) {
				t.Fatalf("Build(%q): want *NotImplementedError, got %v", src, err)
			}
		})
	}
}

func TestBoundsError(t *testing.T) {
	e := build(t, "x_0")
	_, err := e.Apply([]float64{})
	var bErr *expr.BoundsError
	if !errors.As(err, &bErr) {
		t.Fatalf("Apply on empty vector: want *BoundsError, got %v", err)
	}
}

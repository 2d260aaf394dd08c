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

package parsetree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRearrangeSingleChild(t *testing.T) {
	leafNode := tree(Number, "2")
	n := &Node{Symbol: scalarTerm, Children: []*Node{leafNode}}
	got := Rearrange(n)
	if diff := cmp.Diff(leafNode, got, treeCmpOpts...); diff != "" {
		t.Errorf("Rearrange single-child mismatch (-want +got):\n%s", diff)
	}
}

func TestRearrangeLeftAssociative(t *testing.T) {
	// a - b - c, flattened as [a, minus, b, minus, c].
	a, b, c := tree(Number, "1"), tree(Number, "2"), tree(Number, "3")
	minus1 := &Node{Symbol: Minus}
	minus2 := &Node{Symbol: Minus}
	n := &Node{Symbol: scalarExpression, Children: []*Node{a, minus1, b, minus2, c}}

	want := tree(Minus, "",
		tree(Minus, "", a, b),
		c,
	)
	got := Rearrange(n)
	if diff := cmp.Diff(want, got, treeCmpOpts...); diff != "" {
		t.Errorf("Rearrange left-associative mismatch (-want +got):\n%s", diff)
	}
}

func TestRearrangePrefixRequiresNoSiblings(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when a prefix operator has leftover siblings")
		}
	}()
	a, b := tree(Number, "1"), tree(Number, "2")
	prefix := &Node{Symbol: PrefixMinus}
	n := &Node{Symbol: scalarExpression, Children: []*Node{a, prefix, b}}
	Rearrange(n)
}

func TestCollapseFunctionName(t *testing.T) {
	name := &Node{Symbol: UnaryS2SFunctionName, Content: "exp"}
	arg := tree(Number, "2")
	n := &Node{Symbol: functionCall, Children: []*Node{name, arg}}

	want := tree(UnaryS2SFunctionName, "exp", arg)
	got := CollapseFunctionName(n)
	if diff := cmp.Diff(want, got, treeCmpOpts...); diff != "" {
		t.Errorf("CollapseFunctionName mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapseFunctionNameNested(t *testing.T) {
	innerName := &Node{Symbol: UnaryS2SFunctionName, Content: "sqrt"}
	innerArg := tree(Number, "4")
	inner := &Node{Symbol: functionCall, Children: []*Node{innerName, innerArg}}

	outerName := &Node{Symbol: UnaryS2SFunctionName, Content: "exp"}
	outer := &Node{Symbol: functionCall, Children: []*Node{outerName, inner}}

	want := tree(UnaryS2SFunctionName, "exp",
		tree(UnaryS2SFunctionName, "sqrt", innerArg),
	)
	got := CollapseFunctionName(outer)
	if diff := cmp.Diff(want, got, treeCmpOpts...); diff != "" {
		t.Errorf("CollapseFunctionName nested mismatch (-want +got):\n%s", diff)
	}
}

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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// tree builds a Node for use in expected-tree comparisons, ignoring
// position fields.
func tree(sym Symbol, content string, children ...*Node) *Node {
	return &Node{Symbol: sym, Content: content, Children: children}
}

var treeCmpOpts = []cmp.Option{
	cmpopts.IgnoreFields(Node{}, "Begin", "End"),
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *Node
	}{
		{
			name: "number",
			src:  "2",
			want: tree(Number, "2"),
		},
		{
			name: "addition",
			src:  "2+2",
			want: tree(Plus, "",
				tree(Number, "2"),
				tree(Number, "2"),
			),
		},
		{
			name: "prefix chain through brackets",
			src:  "-(+2)",
			want: tree(PrefixMinus, "",
				tree(PrefixPlus, "",
					tree(Number, "2"),
				),
			),
		},
		{
			name: "left associative subtraction",
			src:  "1-2-3",
			want: tree(Minus, "",
				tree(Minus, "",
					tree(Number, "1"),
					tree(Number, "2"),
				),
				tree(Number, "3"),
			),
		},
		{
			name: "precedence",
			src:  "1+2*3",
			want: tree(Plus, "",
				tree(Number, "1"),
				tree(Multiply, "",
					tree(Number, "2"),
					tree(Number, "3"),
				),
			),
		},
		{
			name: "indexed vector component",
			src:  "x_0",
			want: tree(IndexedVectorVariable, "x_0",
				tree(VectorVariable, "x"),
				tree(Index, "0"),
			),
		},
		{
			name: "dot product",
			src:  "dot(x,x)",
			want: tree(BinaryV2SFunctionName, "dot",
				tree(VectorVariable, "x"),
				tree(VectorVariable, "x"),
			),
		},
		{
			name: "exp of scaled dot",
			src:  "exp(-0.5*dot(x,x))",
			want: tree(UnaryS2SFunctionName, "exp",
				tree(PrefixMinus, "",
					tree(Multiply, "",
						tree(Number, "0.5"),
						tree(BinaryV2SFunctionName, "dot",
							tree(VectorVariable, "x"),
							tree(VectorVariable, "x"),
						),
					),
				),
			),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.src)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", c.src, err)
			}
			if diff := cmp.Diff(c.want, got, treeCmpOpts...); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"exp(--2)",
		"x",
		"exp(x)",
		"2+",
		"(2",
		"2 % 3",
		"x_",
		"x_0.5",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src)
			if err == nil {
				t.Fatalf("Parse(%q): expected an error, got nil", src)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q): error %v is not a *ParseError", src, err)
			}
		})
	}
}

func TestParseRoundTripWhitespace(t *testing.T) {
	got, err := Parse("2 + 2")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	want := tree(Plus, "", tree(Number, "2"), tree(Number, "2"))
	if diff := cmp.Diff(want, got, treeCmpOpts...); diff != "" {
		t.Errorf("Parse(\"2 + 2\") mismatch (-want +got):\n%s", diff)
	}
}

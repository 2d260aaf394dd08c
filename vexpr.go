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

package vexpr

import (
	"github.com/vexprlang/vexpr/expr"
	"github.com/vexprlang/vexpr/kind"
	"github.com/vexprlang/vexpr/parsetree"
)

// Parse tokenizes and parses text as a top-level scalar expression,
// returning the rearranged, function-collapsed parse tree. Returns a
// *ParseError on malformed input.
func Parse(text string) (*parsetree.Node, error) {
	return parsetree.Parse(text)
}

// BuildFunction infers the kind of every node in tree and builds the
// typed scalar expression it denotes. Returns a *KindError if operand
// kinds are incompatible, or a *NotImplementedError for a grammar-valid
// but unimplemented function name.
func BuildFunction(tree *parsetree.Node) (expr.ScalarExpr, error) {
	ks, err := kind.Infer(tree)
	if err != nil {
		return nil, err
	}
	return expr.Build(tree, ks)
}

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

// Package parsetree builds, rearranges, and collapses the untyped parse
// tree for a vexpr expression.
//
// Node is a direct specialization of github.com/ianlewis/lexparse's generic
// Node[V]: a tree carrying an arbitrary comparable payload type V and
// parent pointers so a state-machine Parser can walk back up. Ours has
// exactly one payload shape (a grammar Symbol plus a captured source
// slice) and is built by straight recursion rather than a long-lived
// cursor, so the parent pointer and the generic type parameter both drop
// away.
package parsetree

import "github.com/vexprlang/vexpr/token"

// Symbol tags a parse tree node with the grammar production that produced
// it. The tags in the data model (spec.md §3) survive past Rearrange and
// CollapseFunctionName; the remaining tags are transient shapes the parser
// builds and those two passes consume.
type Symbol int

const (
	// Index is a bare digit sequence used as a vector component index.
	Index Symbol = iota
	// Number is a decimal literal.
	Number
	// ScalarVariable is a free (non-reserved) identifier.
	ScalarVariable
	// ScalarConstant is "pi" or "e".
	ScalarConstant
	// VectorVariable is "x" or "y".
	VectorVariable
	// IndexedVectorVariable is "<vector_variable>_<index>".
	IndexedVectorVariable
	// Plus is a binary '+'.
	Plus
	// Minus is a binary '-'.
	Minus
	// Multiply is a binary '*'.
	Multiply
	// Divide is a binary '/'.
	Divide
	// PrefixPlus is a unary leading '+'.
	PrefixPlus
	// PrefixMinus is a unary leading '-'.
	PrefixMinus
	// UnaryS2SFunctionName is a scalar-to-scalar function name (exp, sqrt, abs).
	UnaryS2SFunctionName
	// UnaryV2SFunctionName is a vector-to-scalar function name (norm2, sum).
	UnaryV2SFunctionName
	// UnaryV2VFunctionName is a vector-to-vector function name (abs).
	UnaryV2VFunctionName
	// BinaryV2SFunctionName is a vector,vector-to-scalar function name (dot).
	BinaryV2SFunctionName
	// NullaryA2SFunctionName is an argument-less, scalar-result function name (rand).
	NullaryA2SFunctionName

	// The remaining tags are transient: the parser emits them, and
	// Rearrange/CollapseFunctionName always remove them before kind
	// inference runs.

	// scalarTerm is a flat [factor (op factor)*] list, pre-rearrange.
	scalarTerm
	// vectorTerm is a flat [factor (op factor)*] list, pre-rearrange.
	vectorTerm
	// scalarExpression is a flat [prefix? term (op term)*] list, pre-rearrange.
	scalarExpression
	// vectorExpression is a flat [prefix? term (op term)*] list, pre-rearrange.
	vectorExpression
	// functionCall wraps [name, arg...], pre-collapse.
	functionCall
)

var symbolNames = map[Symbol]string{
	Index:                  "index",
	Number:                 "number",
	ScalarVariable:         "scalar_variable",
	ScalarConstant:         "scalar_constant",
	VectorVariable:         "vector_variable",
	IndexedVectorVariable:  "indexed_vector_variable",
	Plus:                   "plus",
	Minus:                  "minus",
	Multiply:               "multiply",
	Divide:                 "divide",
	PrefixPlus:             "prefix_plus",
	PrefixMinus:            "prefix_minus",
	UnaryS2SFunctionName:   "unary_s2s_function_name",
	UnaryV2SFunctionName:   "unary_v2s_function_name",
	UnaryV2VFunctionName:   "unary_v2v_function_name",
	BinaryV2SFunctionName:  "binary_v2s_function_name",
	NullaryA2SFunctionName: "nullary_a2s_function_name",
	scalarTerm:             "scalar_term",
	vectorTerm:             "vector_term",
	scalarExpression:       "scalar_expression",
	vectorExpression:       "vector_expression",
	functionCall:           "function_call",
}

// String returns the grammar-symbol name, used in error messages and tests.
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown"
}

// Node is an untyped parse tree node: a grammar symbol, an optional
// captured source slice, and an ordered, exclusively-owned list of
// children.
type Node struct {
	Symbol   Symbol
	Content  string
	Children []*Node
	Begin    token.Position
	End      token.Position
}

// leaf builds a childless, content-bearing node at tok's position.
func leaf(sym Symbol, tok token.Token) *Node {
	return &Node{Symbol: sym, Content: tok.Value, Begin: tok.Pos, End: tok.Pos}
}

// op builds a structural (content-less) operator node at tok's position.
// Its children are populated later, by Rearrange.
func op(sym Symbol, tok token.Token) *Node {
	return &Node{Symbol: sym, Begin: tok.Pos, End: tok.Pos}
}

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

// ParseError is returned by Parse when input does not match the grammar.
// A parser error carries the offending token's position, enough for a
// caller to render a caret diagnostic; a scanner error (an invalid
// character or a malformed number) leaves Offset, Line and Column zero and
// states the position in its message.
type ParseError = parsetree.ParseError

// KindError is returned by BuildFunction when two operands disagree on
// kind in a way spec.md §4.5 does not allow.
type KindError = kind.KindError

// NotImplementedError is returned by BuildFunction for a grammar-valid
// function name with no typed node, and by ScalarExpr.Apply for an
// unresolved scalar-constant name.
type NotImplementedError = expr.NotImplementedError

// BoundsError is returned by ScalarExpr.Apply and VectorExpr.Apply for an
// out-of-range index or a vector length mismatch.
type BoundsError = expr.BoundsError

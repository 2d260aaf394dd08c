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

// Package kind annotates a parse tree with the scalar/vectorial data kind
// of every node, per spec.md §4.5. The walk and its error reporting follow
// the shape of amolbrkr-quark-lang's types.Analyzer: a single recursive
// dispatch over node tags that returns the inferred kind and accumulates
// it into a side table rather than mutating the tree in place.
package kind

import (
	"fmt"

	"github.com/vexprlang/vexpr/parsetree"
	"github.com/vexprlang/vexpr/token"
)

// Kind is the inferred data shape of a parse tree node's value.
type Kind int

const (
	// Unknown is the zero value: no kind has been observed yet.
	Unknown Kind = iota
	// Scalar marks a node whose value is a single number.
	Scalar
	// Vectorial marks a node whose value is a fixed-size vector.
	Vectorial
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vectorial:
		return "vectorial"
	default:
		return "unknown"
	}
}

// KindError reports a node whose operands disagree on kind in a way that
// spec.md §4.5 does not allow (e.g. two vector operands to divide).
type KindError struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *KindError) Error() string {
	return fmt.Sprintf("kind error at %d:%d: %s", e.Line, e.Column, e.Message)
}

func newKindError(pos token.Position, format string, args ...interface{}) *KindError {
	return &KindError{
		Message: fmt.Sprintf(format, args...),
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// Kinds maps every node reachable from a tree to its inferred Kind. Infer
// returns one populated by a single walk.
type Kinds map[*parsetree.Node]Kind

// Of returns the kind recorded for n, or Unknown if n was never visited.
func (k Kinds) Of(n *parsetree.Node) Kind {
	return k[n]
}

// update merges observed into n's recorded kind, following
// original_source/src/ASTNode.cpp's updateKind: Unknown promotes freely to
// whatever is observed first; a later observation that disagrees can only
// be a Scalar/Vectorial mix, which always promotes the node to Vectorial.
// Two Vectorial or two Scalar observations agree trivially.
func (k Kinds) update(n *parsetree.Node, observed Kind) Kind {
	cur := k[n]
	switch {
	case cur == Unknown:
		cur = observed
	case observed != cur:
		cur = Vectorial
	}
	k[n] = cur
	return cur
}

// Infer walks n and every descendant, recording each node's Kind, per
// spec.md §4.5. It returns a KindError if two operands of a binary scalar
// operator disagree, or if a vector operand appears where only a scalar
// result is permitted by the node's own symbol.
func Infer(n *parsetree.Node) (Kinds, error) {
	k := make(Kinds)
	root, err := infer(n, k)
	if err != nil {
		return nil, err
	}
	if root != Scalar {
		return nil, newKindError(n.Begin, "top-level expression must be scalar, got %s", root)
	}
	return k, nil
}

func infer(n *parsetree.Node, k Kinds) (Kind, error) {
	switch n.Symbol {
	case parsetree.Number, parsetree.ScalarVariable, parsetree.ScalarConstant, parsetree.Index:
		return k.update(n, Scalar), nil

	case parsetree.VectorVariable:
		return k.update(n, Vectorial), nil

	case parsetree.IndexedVectorVariable:
		for _, c := range n.Children {
			if _, err := infer(c, k); err != nil {
				return Unknown, err
			}
		}
		return k.update(n, Scalar), nil

	case parsetree.PrefixPlus, parsetree.PrefixMinus:
		child, err := infer(n.Children[0], k)
		if err != nil {
			return Unknown, err
		}
		return k.update(n, child), nil

	case parsetree.UnaryS2SFunctionName, parsetree.UnaryV2SFunctionName,
		parsetree.BinaryV2SFunctionName, parsetree.NullaryA2SFunctionName:
		for _, c := range n.Children {
			if _, err := infer(c, k); err != nil {
				return Unknown, err
			}
		}
		return k.update(n, Scalar), nil

	case parsetree.UnaryV2VFunctionName:
		for _, c := range n.Children {
			if _, err := infer(c, k); err != nil {
				return Unknown, err
			}
		}
		return k.update(n, Vectorial), nil

	case parsetree.Plus, parsetree.Minus:
		a, err := infer(n.Children[0], k)
		if err != nil {
			return Unknown, err
		}
		b, err := infer(n.Children[1], k)
		if err != nil {
			return Unknown, err
		}
		if a != b {
			return Unknown, newKindError(n.Begin, "%s requires both operands to be the same kind, got %s and %s", n.Symbol, a, b)
		}
		return k.update(n, a), nil

	case parsetree.Multiply:
		a, err := infer(n.Children[0], k)
		if err != nil {
			return Unknown, err
		}
		b, err := infer(n.Children[1], k)
		if err != nil {
			return Unknown, err
		}
		if a == Vectorial && b == Vectorial {
			return Unknown, newKindError(n.Begin, "cannot multiply two vectors")
		}
		if a == Scalar && b == Scalar {
			return k.update(n, Scalar), nil
		}
		return k.update(n, Vectorial), nil

	case parsetree.Divide:
		a, err := infer(n.Children[0], k)
		if err != nil {
			return Unknown, err
		}
		b, err := infer(n.Children[1], k)
		if err != nil {
			return Unknown, err
		}
		if b == Vectorial {
			return Unknown, newKindError(n.Begin, "cannot divide by a vector")
		}
		return k.update(n, a), nil

	default:
		return Unknown, newKindError(n.Begin, "cannot infer a kind for %s", n.Symbol)
	}
}

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

package expr

import (
	"fmt"
	"strconv"

	"github.com/vexprlang/vexpr/kind"
	"github.com/vexprlang/vexpr/parsetree"
)

// Build walks a kind-annotated parse tree and produces its typed
// expression, dispatching on (symbol, children's kinds) exactly as
// spec.md §4.6 and original_source/src/ASTNode.cpp's make_scalar_function
// describe. n must be the root node returned by parsetree.Parse, whose
// kind is always Scalar.
func Build(n *parsetree.Node, ks kind.Kinds) (ScalarExpr, error) {
	return buildScalar(n, ks)
}

func buildScalar(n *parsetree.Node, ks kind.Kinds) (ScalarExpr, error) {
	switch n.Symbol {
	case parsetree.Number:
		v, err := strconv.ParseFloat(n.Content, 64)
		if err != nil {
			return nil, fmt.Errorf("expr: invalid number literal %q: %w", n.Content, err)
		}
		return &ScalarNumber{Lexeme: n.Content, Value: v}, nil

	case parsetree.ScalarConstant, parsetree.ScalarVariable:
		return &ScalarConstant{Name: n.Content}, nil

	case parsetree.IndexedVectorVariable:
		v, err := buildVector(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(n.Children[1].Content)
		if err != nil {
			return nil, fmt.Errorf("expr: invalid vector index %q: %w", n.Children[1].Content, err)
		}
		return &IndexedVectorComponent{Vector: v, Index: idx}, nil

	case parsetree.PrefixPlus:
		a, err := buildScalar(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		return &ScalarPrefixPlus{Operand: a}, nil

	case parsetree.PrefixMinus:
		a, err := buildScalar(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		return &ScalarPrefixMinus{Operand: a}, nil

	case parsetree.Plus:
		a, b, err := buildScalarPair(n, ks)
		if err != nil {
			return nil, err
		}
		return &ScalarAdd{A: a, B: b}, nil

	case parsetree.Minus:
		a, b, err := buildScalarPair(n, ks)
		if err != nil {
			return nil, err
		}
		return &ScalarSub{A: a, B: b}, nil

	case parsetree.Multiply:
		a, b, err := buildScalarPair(n, ks)
		if err != nil {
			return nil, err
		}
		return &ScalarMul{A: a, B: b}, nil

	case parsetree.Divide:
		a, b, err := buildScalarPair(n, ks)
		if err != nil {
			return nil, err
		}
		return &ScalarDiv{A: a, B: b}, nil

	case parsetree.UnaryS2SFunctionName:
		a, err := buildScalar(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		switch n.Content {
		case "exp":
			return &Exp{Operand: a}, nil
		default:
			return nil, &NotImplementedError{Name: n.Content}
		}

	case parsetree.UnaryV2SFunctionName:
		a, err := buildVector(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		switch n.Content {
		case "norm2":
			return &Norm2{Operand: a}, nil
		default:
			return nil, &NotImplementedError{Name: n.Content}
		}

	case parsetree.BinaryV2SFunctionName:
		a, err := buildVector(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		b, err := buildVector(n.Children[1], ks)
		if err != nil {
			return nil, err
		}
		switch n.Content {
		case "dot":
			return &Dot{A: a, B: b}, nil
		default:
			return nil, &NotImplementedError{Name: n.Content}
		}

	case parsetree.NullaryA2SFunctionName:
		return nil, &NotImplementedError{Name: n.Content}

	default:
		return nil, fmt.Errorf("expr: %s cannot build a scalar expression", n.Symbol)
	}
}

// buildScalarPair builds both children of a binary operator node as
// scalar expressions. It is only reached when kind inference has already
// confirmed both children are Scalar for +/-, or the multiply/divide
// dispatch in Build has already routed the Scalar/Scalar case here.
func buildScalarPair(n *parsetree.Node, ks kind.Kinds) (ScalarExpr, ScalarExpr, error) {
	a, err := buildScalar(n.Children[0], ks)
	if err != nil {
		return nil, nil, err
	}
	b, err := buildScalar(n.Children[1], ks)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func buildVector(n *parsetree.Node, ks kind.Kinds) (VectorExpr, error) {
	switch n.Symbol {
	case parsetree.VectorVariable:
		if n.Content == "x" {
			return &VectorIdentity{Name: "x"}, nil
		}
		return nil, &NotImplementedError{Name: n.Content}

	case parsetree.PrefixPlus:
		a, err := buildVector(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		return &VectorPrefixPlus{Operand: a}, nil

	case parsetree.PrefixMinus:
		a, err := buildVector(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		return &VectorPrefixMinus{Operand: a}, nil

	case parsetree.Plus:
		a, b, err := buildVectorPair(n, ks)
		if err != nil {
			return nil, err
		}
		return &VectorAdd{A: a, B: b}, nil

	case parsetree.Minus:
		a, b, err := buildVectorPair(n, ks)
		if err != nil {
			return nil, err
		}
		return &VectorSub{A: a, B: b}, nil

	case parsetree.Multiply:
		return buildScalarVectorProduct(n, ks)

	case parsetree.Divide:
		v, err := buildVector(n.Children[0], ks)
		if err != nil {
			return nil, err
		}
		s, err := buildScalar(n.Children[1], ks)
		if err != nil {
			return nil, err
		}
		return &VectorScalarDivide{Vector: v, Scalar: s}, nil

	case parsetree.UnaryV2VFunctionName:
		// Both "abs" branches are unimplemented (spec.md §9, quirk 3);
		// still validate the operand so malformed arguments surface
		// their own error first.
		if _, err := buildVector(n.Children[0], ks); err != nil {
			return nil, err
		}
		return nil, &NotImplementedError{Name: n.Content}

	default:
		return nil, fmt.Errorf("expr: %s cannot build a vector expression", n.Symbol)
	}
}

func buildVectorPair(n *parsetree.Node, ks kind.Kinds) (VectorExpr, VectorExpr, error) {
	a, err := buildVector(n.Children[0], ks)
	if err != nil {
		return nil, nil, err
	}
	b, err := buildVector(n.Children[1], ks)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// buildScalarVectorProduct dispatches a multiply node whose operands have
// differing kinds, placing the scalar operand first regardless of source
// order (spec.md §4.6).
func buildScalarVectorProduct(n *parsetree.Node, ks kind.Kinds) (VectorExpr, error) {
	left, right := n.Children[0], n.Children[1]
	scalarNode, vectorNode := left, right
	if ks.Of(left) == kind.Vectorial {
		scalarNode, vectorNode = right, left
	}
	s, err := buildScalar(scalarNode, ks)
	if err != nil {
		return nil, err
	}
	v, err := buildVector(vectorNode, ks)
	if err != nil {
		return nil, err
	}
	return &ScalarVectorProduct{Scalar: s, Vector: v}, nil
}

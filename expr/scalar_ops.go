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

// ScalarPrefixPlus is a unary leading '+'; it evaluates and differentiates
// as a no-op, existing only so the printer can reproduce a source "+1".
type ScalarPrefixPlus struct {
	Operand ScalarExpr
}

func (n *ScalarPrefixPlus) Apply(x []float64) (float64, error) { return n.Operand.Apply(x) }
func (n *ScalarPrefixPlus) Diff(i int) ScalarExpr               { return n.Operand.Diff(i) }
func (n *ScalarPrefixPlus) Clone() ScalarExpr {
	return &ScalarPrefixPlus{Operand: n.Operand.Clone()}
}
func (n *ScalarPrefixPlus) Level() PriorityLevel { return Prefixed }
func (n *ScalarPrefixPlus) String() string {
	return "+" + wrap(n.Operand.String(), n.Operand.Level(), n.Level())
}

// ScalarPrefixMinus is a unary leading '-'.
type ScalarPrefixMinus struct {
	Operand ScalarExpr
}

func (n *ScalarPrefixMinus) Apply(x []float64) (float64, error) {
	v, err := n.Operand.Apply(x)
	return -v, err
}
func (n *ScalarPrefixMinus) Diff(i int) ScalarExpr {
	return &ScalarPrefixMinus{Operand: n.Operand.Diff(i)}
}
func (n *ScalarPrefixMinus) Clone() ScalarExpr {
	return &ScalarPrefixMinus{Operand: n.Operand.Clone()}
}
func (n *ScalarPrefixMinus) Level() PriorityLevel { return Prefixed }
func (n *ScalarPrefixMinus) String() string {
	return "-" + wrap(n.Operand.String(), n.Operand.Level(), n.Level())
}

// ScalarAdd is binary '+'.
type ScalarAdd struct {
	A, B ScalarExpr
}

func (n *ScalarAdd) Apply(x []float64) (float64, error) {
	a, err := n.A.Apply(x)
	if err != nil {
		return 0, err
	}
	b, err := n.B.Apply(x)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}
func (n *ScalarAdd) Diff(i int) ScalarExpr { return &ScalarAdd{A: n.A.Diff(i), B: n.B.Diff(i)} }
func (n *ScalarAdd) Clone() ScalarExpr     { return &ScalarAdd{A: n.A.Clone(), B: n.B.Clone()} }
func (n *ScalarAdd) Level() PriorityLevel  { return Term }
func (n *ScalarAdd) String() string {
	return wrap(n.A.String(), n.A.Level(), n.Level()) + "+" + wrap(n.B.String(), n.B.Level(), n.Level())
}

// ScalarSub is binary '-'.
type ScalarSub struct {
	A, B ScalarExpr
}

func (n *ScalarSub) Apply(x []float64) (float64, error) {
	a, err := n.A.Apply(x)
	if err != nil {
		return 0, err
	}
	b, err := n.B.Apply(x)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}
func (n *ScalarSub) Diff(i int) ScalarExpr { return &ScalarSub{A: n.A.Diff(i), B: n.B.Diff(i)} }
func (n *ScalarSub) Clone() ScalarExpr     { return &ScalarSub{A: n.A.Clone(), B: n.B.Clone()} }
func (n *ScalarSub) Level() PriorityLevel  { return Term }
func (n *ScalarSub) String() string {
	return wrap(n.A.String(), n.A.Level(), n.Level()) + "-" + wrap(n.B.String(), n.B.Level(), n.Level())
}

// ScalarMul is binary '*' over two scalars.
type ScalarMul struct {
	A, B ScalarExpr
}

func (n *ScalarMul) Apply(x []float64) (float64, error) {
	a, err := n.A.Apply(x)
	if err != nil {
		return 0, err
	}
	b, err := n.B.Apply(x)
	if err != nil {
		return 0, err
	}
	return a * b, nil
}

// Diff implements the product rule: d(a*b) = a*db + da*b.
func (n *ScalarMul) Diff(i int) ScalarExpr {
	return &ScalarAdd{
		A: &ScalarMul{A: n.A.Clone(), B: n.B.Diff(i)},
		B: &ScalarMul{A: n.A.Diff(i), B: n.B.Clone()},
	}
}
func (n *ScalarMul) Clone() ScalarExpr    { return &ScalarMul{A: n.A.Clone(), B: n.B.Clone()} }
func (n *ScalarMul) Level() PriorityLevel { return Factor }
func (n *ScalarMul) String() string {
	return wrap(n.A.String(), n.A.Level(), n.Level()) + "*" + wrap(n.B.String(), n.B.Level(), n.Level())
}

// ScalarDiv is binary '/' over two scalars.
type ScalarDiv struct {
	A, B ScalarExpr
}

func (n *ScalarDiv) Apply(x []float64) (float64, error) {
	a, err := n.A.Apply(x)
	if err != nil {
		return 0, err
	}
	b, err := n.B.Apply(x)
	if err != nil {
		return 0, err
	}
	return a / b, nil
}

// Diff implements the quotient rule: d(a/b) = (b*da - db*a) / (b*b).
func (n *ScalarDiv) Diff(i int) ScalarExpr {
	return &ScalarDiv{
		A: &ScalarSub{
			A: &ScalarMul{A: n.B.Clone(), B: n.A.Diff(i)},
			B: &ScalarMul{A: n.B.Diff(i), B: n.A.Clone()},
		},
		B: &ScalarMul{A: n.B.Clone(), B: n.B.Clone()},
	}
}
func (n *ScalarDiv) Clone() ScalarExpr    { return &ScalarDiv{A: n.A.Clone(), B: n.B.Clone()} }
func (n *ScalarDiv) Level() PriorityLevel { return Quotient }
func (n *ScalarDiv) String() string {
	return wrap(n.A.String(), n.A.Level(), n.Level()) + "/" + wrap(n.B.String(), n.B.Level(), n.Level())
}

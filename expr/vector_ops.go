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

import "fmt"

// VectorPrefixPlus is a unary leading '+' over a vector.
type VectorPrefixPlus struct {
	Operand VectorExpr
}

func (n *VectorPrefixPlus) Apply(x []float64) ([]float64, error) { return n.Operand.Apply(x) }
func (n *VectorPrefixPlus) Diff(i int) VectorExpr                 { return n.Operand.Diff(i) }
func (n *VectorPrefixPlus) Clone() VectorExpr {
	return &VectorPrefixPlus{Operand: n.Operand.Clone()}
}
func (n *VectorPrefixPlus) Level() PriorityLevel { return Prefixed }
func (n *VectorPrefixPlus) String() string {
	return "+" + wrap(n.Operand.String(), n.Operand.Level(), n.Level())
}

// VectorPrefixMinus is a unary leading '-' over a vector.
type VectorPrefixMinus struct {
	Operand VectorExpr
}

func (n *VectorPrefixMinus) Apply(x []float64) ([]float64, error) {
	v, err := n.Operand.Apply(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	for i, e := range v {
		out[i] = -e
	}
	return out, nil
}
func (n *VectorPrefixMinus) Diff(i int) VectorExpr {
	return &VectorPrefixMinus{Operand: n.Operand.Diff(i)}
}
func (n *VectorPrefixMinus) Clone() VectorExpr {
	return &VectorPrefixMinus{Operand: n.Operand.Clone()}
}
func (n *VectorPrefixMinus) Level() PriorityLevel { return Prefixed }
func (n *VectorPrefixMinus) String() string {
	return "-" + wrap(n.Operand.String(), n.Operand.Level(), n.Level())
}

func elementwise(a, b []float64, op func(x, y float64) float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, &BoundsError{Message: fmt.Sprintf("vector operands have different lengths: %d and %d", len(a), len(b))}
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// VectorAdd is binary '+' over two vectors.
type VectorAdd struct {
	A, B VectorExpr
}

func (n *VectorAdd) Apply(x []float64) ([]float64, error) {
	a, err := n.A.Apply(x)
	if err != nil {
		return nil, err
	}
	b, err := n.B.Apply(x)
	if err != nil {
		return nil, err
	}
	return elementwise(a, b, func(x, y float64) float64 { return x + y })
}
func (n *VectorAdd) Diff(i int) VectorExpr { return &VectorAdd{A: n.A.Diff(i), B: n.B.Diff(i)} }
func (n *VectorAdd) Clone() VectorExpr     { return &VectorAdd{A: n.A.Clone(), B: n.B.Clone()} }
func (n *VectorAdd) Level() PriorityLevel  { return Term }
func (n *VectorAdd) String() string {
	return wrap(n.A.String(), n.A.Level(), n.Level()) + "+" + wrap(n.B.String(), n.B.Level(), n.Level())
}

// VectorSub is binary '-' over two vectors.
type VectorSub struct {
	A, B VectorExpr
}

func (n *VectorSub) Apply(x []float64) ([]float64, error) {
	a, err := n.A.Apply(x)
	if err != nil {
		return nil, err
	}
	b, err := n.B.Apply(x)
	if err != nil {
		return nil, err
	}
	return elementwise(a, b, func(x, y float64) float64 { return x - y })
}
func (n *VectorSub) Diff(i int) VectorExpr { return &VectorSub{A: n.A.Diff(i), B: n.B.Diff(i)} }
func (n *VectorSub) Clone() VectorExpr     { return &VectorSub{A: n.A.Clone(), B: n.B.Clone()} }
func (n *VectorSub) Level() PriorityLevel  { return Term }
func (n *VectorSub) String() string {
	return wrap(n.A.String(), n.A.Level(), n.Level()) + "-" + wrap(n.B.String(), n.B.Level(), n.Level())
}

// ScalarVectorProduct is binary '*' mixing a scalar and a vector operand.
// The builder always places the scalar operand first regardless of
// source order (spec.md §4.6).
type ScalarVectorProduct struct {
	Scalar ScalarExpr
	Vector VectorExpr
}

func (n *ScalarVectorProduct) Apply(x []float64) ([]float64, error) {
	s, err := n.Scalar.Apply(x)
	if err != nil {
		return nil, err
	}
	v, err := n.Vector.Apply(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	for i, e := range v {
		out[i] = s * e
	}
	return out, nil
}

// Diff implements the product rule: d(s*v) = s*dv + ds*v.
func (n *ScalarVectorProduct) Diff(i int) VectorExpr {
	return &VectorAdd{
		A: &ScalarVectorProduct{Scalar: n.Scalar.Clone(), Vector: n.Vector.Diff(i)},
		B: &ScalarVectorProduct{Scalar: n.Scalar.Diff(i), Vector: n.Vector.Clone()},
	}
}
func (n *ScalarVectorProduct) Clone() VectorExpr {
	return &ScalarVectorProduct{Scalar: n.Scalar.Clone(), Vector: n.Vector.Clone()}
}
func (n *ScalarVectorProduct) Level() PriorityLevel { return Factor }
func (n *ScalarVectorProduct) String() string {
	return wrap(n.Scalar.String(), n.Scalar.Level(), n.Level()) + "*" + wrap(n.Vector.String(), n.Vector.Level(), n.Level())
}

// VectorScalarDivide is binary '/' with a vector dividend and a scalar
// divisor.
type VectorScalarDivide struct {
	Vector VectorExpr
	Scalar ScalarExpr
}

func (n *VectorScalarDivide) Apply(x []float64) ([]float64, error) {
	v, err := n.Vector.Apply(x)
	if err != nil {
		return nil, err
	}
	s, err := n.Scalar.Apply(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	for i, e := range v {
		out[i] = e / s
	}
	return out, nil
}

// Diff implements the quotient rule: d(v/s) = (s*dv - ds*v) / (s*s).
func (n *VectorScalarDivide) Diff(i int) VectorExpr {
	return &VectorScalarDivide{
		Vector: &VectorSub{
			A: &ScalarVectorProduct{Scalar: n.Scalar.Clone(), Vector: n.Vector.Diff(i)},
			B: &ScalarVectorProduct{Scalar: n.Scalar.Diff(i), Vector: n.Vector.Clone()},
		},
		Scalar: &ScalarMul{A: n.Scalar.Clone(), B: n.Scalar.Clone()},
	}
}
func (n *VectorScalarDivide) Clone() VectorExpr {
	return &VectorScalarDivide{Vector: n.Vector.Clone(), Scalar: n.Scalar.Clone()}
}
func (n *VectorScalarDivide) Level() PriorityLevel { return Quotient }
func (n *VectorScalarDivide) String() string {
	return wrap(n.Vector.String(), n.Vector.Level(), n.Level()) + "/" + wrap(n.Scalar.String(), n.Scalar.Level(), n.Level())
}

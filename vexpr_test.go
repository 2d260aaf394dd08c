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

package vexpr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexprlang/vexpr"
	"github.com/vexprlang/vexpr/parsetree"
)

func TestParseAndBuildFunction(t *testing.T) {
	tree, err := vexpr.Parse("2+2*3")
	require.NoError(t, err)

	f, err := vexpr.BuildFunction(tree)
	require.NoError(t, err)

	got, err := f.Apply([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, float64(8), got)
	require.Equal(t, "2+2*3", f.String())
}

func TestRoundTripStrippedWhitespace(t *testing.T) {
	cases := []string{
		"2",
		"2+2",
		"2*x_0",
		"dot(x,x)",
		"exp(-0.5*dot(x,x))",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			tree, err := vexpr.Parse(src)
			require.NoError(t, err)
			f, err := vexpr.BuildFunction(tree)
			require.NoError(t, err)
			require.Equal(t, src, f.String())
		})
	}
}

func TestShouldFailParses(t *testing.T) {
	cases := []string{"exp(--2)", "x", "exp(x)"}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := vexpr.Parse(src)
			require.Error(t, err)
			var perr *vexpr.ParseError
			require.True(t, errors.As(err, &perr))
		})
	}
}

func TestParseErrorOnScalarArgumentToVectorFunction(t *testing.T) {
	tree, err := vexpr.Parse("norm2(2)")
	require.Error(t, err)
	require.Nil(t, tree)
}

func TestKindErrorOnVectorDivisor(t *testing.T) {
	// "2/x" cannot be produced by the grammar itself: a '/' RHS is always
	// a scalar_factor, and a bare vector variable is rejected there. Drive
	// the Divide-by-vector guard in kind.Infer directly on a hand-built
	// tree instead.
	tree := &parsetree.Node{
		Symbol: parsetree.Divide,
		Children: []*parsetree.Node{
			{Symbol: parsetree.Number, Content: "2"},
			{Symbol: parsetree.VectorVariable, Content: "x"},
		},
	}

	_, err := vexpr.BuildFunction(tree)
	require.Error(t, err)
	var kerr *vexpr.KindError
	require.True(t, errors.As(err, &kerr))
}

func TestNotImplementedFunctionName(t *testing.T) {
	tree, err := vexpr.Parse("sqrt(4)")
	require.NoError(t, err)

	_, err = vexpr.BuildFunction(tree)
	require.Error(t, err)
	var nierr *vexpr.NotImplementedError
	require.True(t, errors.As(err, &nierr))
}

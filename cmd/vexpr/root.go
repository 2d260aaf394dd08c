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

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vexprlang/vexpr"
)

var evalFlags = struct {
	x *[]float64
}{}

var rootCmd = &cobra.Command{
	Use:   "vexpr <expression>",
	Short: "Parse a vexpr expression, print its parse tree as Graphviz dot, and optionally evaluate it",
	Long: `vexpr parses a single mixed scalar/vector expression, writes its parse
tree to standard output in Graphviz dot format, and writes the canonical
printed form of the typed expression (and, with -x, its value) to
standard error.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	evalFlags.x = rootCmd.Flags().Float64SliceP("eval", "x", nil, "vector to evaluate the expression against (e.g. -x 1,2,3)")
}

// Execute runs the root command, returning any error it produced.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	text := args[0]

	tree, err := vexpr.Parse(text)
	if err != nil {
		var perr *vexpr.ParseError
		if errors.As(err, &perr) {
			printParseErrorCaret(os.Stderr, text, perr)
		}
		return err
	}

	if err := writeDot(os.Stdout, tree); err != nil {
		return err
	}

	f, err := vexpr.BuildFunction(tree)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, f.String())

	if len(*evalFlags.x) > 0 {
		v, err := f.Apply(*evalFlags.x)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "f(%s) = %v\n", formatVector(*evalFlags.x), v)
	}

	return nil
}

func formatVector(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// printParseErrorCaret renders the offending source line with a caret
// under the failing column, per spec.md §6's CLI contract.
func printParseErrorCaret(w *os.File, text string, perr *vexpr.ParseError) {
	lines := strings.Split(text, "\n")
	lineIdx := perr.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		fmt.Fprintln(w, perr.Error())
		return
	}
	fmt.Fprintln(w, lines[lineIdx])
	col := perr.Column - 1
	if col < 0 {
		col = 0
	}
	fmt.Fprintln(w, strings.Repeat(" ", col)+"^")
	fmt.Fprintln(w, perr.Error())
}

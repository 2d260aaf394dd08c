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
	"fmt"
	"io"
	"strings"

	"github.com/vexprlang/vexpr/parsetree"
)

// writeDot renders tree as a Graphviz dot digraph. None of the retrieved
// example repos import a graphviz client, so this writes the textual dot
// format directly rather than reaching for a library with no home in the
// example pack.
func writeDot(w io.Writer, tree *parsetree.Node) error {
	var b strings.Builder
	b.WriteString("digraph vexpr {\n")
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")
	id := 0
	var visit func(n *parsetree.Node) int
	visit = func(n *parsetree.Node) int {
		my := id
		id++
		label := n.Symbol.String()
		if n.Content != "" {
			label += "\\n" + escapeDotLabel(n.Content)
		}
		fmt.Fprintf(&b, "  n%d [label=\"%s\"];\n", my, label)
		for _, c := range n.Children {
			childID := visit(c)
			fmt.Fprintf(&b, "  n%d -> n%d;\n", my, childID)
		}
		return my
	}
	visit(tree)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeDotLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

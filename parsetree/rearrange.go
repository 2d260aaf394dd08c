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

package parsetree

// Rearrange converts every scalar_term/vector_term/scalar_expression/
// vector_expression node reachable from n into a left-leaning binary
// operator tree, per spec.md §4.3. It walks the whole tree post-order, so
// term/expression nodes nested under brackets or function arguments are
// rearranged before their enclosing node is inspected.
//
// This is a direct translation of original_source/src/grammar.cpp's
// rearrange::transform, which this spec was distilled from: pop the last
// two children (rhs, then op), reattach op as the new parent, and recurse
// into the op's left child until only one child remains.
func Rearrange(n *Node) *Node {
	if n == nil {
		return nil
	}
	for i, c := range n.Children {
		n.Children[i] = Rearrange(c)
	}
	switch n.Symbol {
	case scalarTerm, vectorTerm, scalarExpression, vectorExpression:
		return rearrangeList(n)
	default:
		return n
	}
}

func rearrangeList(n *Node) *Node {
	switch len(n.Children) {
	case 0:
		return n
	case 1:
		return n.Children[0]
	}

	c := n.Children
	rhs := c[len(c)-1]
	opNode := c[len(c)-2]
	n.Children = append([]*Node(nil), c[:len(c)-2]...)
	n.Content = ""

	if opNode.Symbol == PrefixPlus || opNode.Symbol == PrefixMinus {
		if len(n.Children) != 0 {
			panic("parsetree: prefix operator has siblings remaining in " + n.Symbol.String())
		}
		opNode.Children = []*Node{rhs}
		return opNode
	}

	left := rearrangeList(n)
	opNode.Children = []*Node{left, rhs}
	return opNode
}

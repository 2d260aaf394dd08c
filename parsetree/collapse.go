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

// CollapseFunctionName hoists each function-call node's name child to
// become the operator node, with the remaining children becoming its
// arguments, per spec.md §4.4. It walks the whole tree post-order so
// nested function calls (an argument that is itself a call) are
// collapsed before the node that contains them.
func CollapseFunctionName(n *Node) *Node {
	if n == nil {
		return nil
	}
	for i, c := range n.Children {
		n.Children[i] = CollapseFunctionName(c)
	}
	if n.Symbol != functionCall {
		return n
	}
	name := n.Children[0]
	name.Children = n.Children[1:]
	return name
}

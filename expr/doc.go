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

// Package expr defines the typed expression graph: two disjoint closed
// node families, ScalarExpr and VectorExpr, and the Build pass that turns
// a kind-annotated parsetree.Node into one. Every node variant implements
// Apply (numeric evaluation), Diff (symbolic differentiation), Clone
// (deep copy), Level (printer precedence) and String (pretty printing).
//
// Trees built here are never mutated in place: Diff and Clone both
// allocate fresh nodes, so an expression and its derivative never alias.
package expr

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

// Package vexpr parses a small mixed scalar/vector expression language,
// builds a strongly-typed expression tree, evaluates it against a vector
// argument, differentiates it symbolically, and prints it back to a
// canonical minimally-parenthesized form.
//
// Parse turns source text into an untyped parse tree; BuildFunction turns
// that tree into a ScalarExpr, the root of a typed expression graph whose
// nodes implement Apply, Diff, Clone, and String. See the parsetree,
// kind, and expr subpackages for the pipeline stages in between.
package vexpr

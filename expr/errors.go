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

// NotImplementedError is raised by Build for a grammar-recognized name that
// has no typed node (sqrt, abs, sum, rand) and by Apply for a
// scalar-constant name that is neither "pi" nor "e". Both cases mirror
// original_source/src/ASTNode.cpp's NotImplementedException.
type NotImplementedError struct {
	Name string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Name)
}

// BoundsError is raised by Apply when an indexed vector component is out
// of range, or when two vector operands have mismatched lengths.
type BoundsError struct {
	Message string
}

func (e *BoundsError) Error() string {
	return e.Message
}

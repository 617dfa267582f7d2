// Copyright 2022 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analysis

import (
	"fmt"
)

// UnresolvedPredicateError is raised by the merger when a foreign
// predicate is neither locally defined nor known to the schema oracle
// (spec.md §4.3, §7). Fatal to the current inference.
type UnresolvedPredicateError struct {
	PredicateName string
}

// Error implements the error interface.
func (e *UnresolvedPredicateError) Error() string {
	return fmt.Sprintf("unresolved predicate: %s", e.PredicateName)
}

// UnsupportedConstructError is raised by the builder on an AST form not
// covered by spec.md §4.2 (spec.md §7). Fatal; carries the offending
// node for diagnostics.
type UnsupportedConstructError struct {
	Node any
}

// Error implements the error interface.
func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct: %#v", e.Node)
}

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

package types

import "fmt"

// ConflictError is raised by Intersect when two types cannot be unified.
// It is fatal to the inference run that produced it (spec.md §7).
type ConflictError struct {
	Message string
	Bounds  Bounds
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("type conflict at %v: %s", e.Bounds, e.Message)
}

func conflictf(bounds Bounds, format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...), Bounds: bounds}
}

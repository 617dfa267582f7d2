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

package graph

import (
	"fmt"

	"github.com/ksyusha123/logica/types"
)

// Edge is a typing constraint between two handles (spec.md §3.3). Edges
// are immutable once created: only the handles they reference mutate.
type Edge interface {
	fmt.Stringer
	isEdge()
	// Endpoints returns the edge's two incident handles, used by
	// TypesGraph to build its two-level index.
	Endpoints() (Handle, Handle)
	// GetBounds returns the source span the constraint was derived from.
	GetBounds() types.Bounds
}

// Equality asserts a.Type() == b.Type().
type Equality struct {
	Left, Right Handle
	Bounds      types.Bounds
}

func (Equality) isEdge() {}

// Endpoints implements Edge.
func (e Equality) Endpoints() (Handle, Handle) { return e.Left, e.Right }

// GetBounds implements Edge.
func (e Equality) GetBounds() types.Bounds { return e.Bounds }

// String implements fmt.Stringer.
func (e Equality) String() string { return fmt.Sprintf("%s == %s", e.Left, e.Right) }

// EqualityOfElement asserts list.Type() == List(element.Type()).
type EqualityOfElement struct {
	List, Element Handle
	Bounds        types.Bounds
}

func (EqualityOfElement) isEdge() {}

// Endpoints implements Edge.
func (e EqualityOfElement) Endpoints() (Handle, Handle) { return e.List, e.Element }

// GetBounds implements Edge.
func (e EqualityOfElement) GetBounds() types.Bounds { return e.Bounds }

// String implements fmt.Stringer.
func (e EqualityOfElement) String() string { return fmt.Sprintf("%s in %s", e.Element, e.List) }

// FieldBelonging asserts record.Type() is an open record containing
// subscript.FieldName typed as subscript.Type().
type FieldBelonging struct {
	Record, Subscript Handle
	Bounds            types.Bounds
}

func (FieldBelonging) isEdge() {}

// Endpoints implements Edge.
func (e FieldBelonging) Endpoints() (Handle, Handle) { return e.Record, e.Subscript }

// GetBounds implements Edge.
func (e FieldBelonging) GetBounds() types.Bounds { return e.Bounds }

// String implements fmt.Stringer.
func (e FieldBelonging) String() string {
	return fmt.Sprintf("%s belongs to %s", e.Subscript, e.Record)
}

// PredicateArgument is a structural link asserting arg is an argument of
// the invocation yielding result. It carries no typing constraint by
// itself (spec.md §3.3); the fixpoint solver's step for it is a no-op
// (spec.md §4.4, §9 — the edge is recorded for a possible future
// propagation rule, never implemented upstream).
type PredicateArgument struct {
	Result, Arg Handle
	Bounds      types.Bounds
}

func (PredicateArgument) isEdge() {}

// Endpoints implements Edge.
func (e PredicateArgument) Endpoints() (Handle, Handle) { return e.Result, e.Arg }

// GetBounds implements Edge.
func (e PredicateArgument) GetBounds() types.Bounds { return e.Bounds }

// String implements fmt.Stringer.
func (e PredicateArgument) String() string {
	return fmt.Sprintf("%s argument of %s", e.Arg, e.Result)
}

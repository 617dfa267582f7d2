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

// Package graph holds the type-constraint graph: typed expression handles
// (vertices, spec.md §3.2), the edge kinds that tie them together
// (spec.md §3.3), and the TypesGraph that indexes both (spec.md §3.4).
//
// Handles are shared mutable state: several edges may reference the same
// handle pointer, and the fixpoint solver (package analysis) mutates a
// handle's Type in place. This mirrors the teacher's ast.Term family
// (ast.Constant, ast.Variable, ast.Atom), which likewise pairs a
// structural Equals method with reference identity for graph-like
// sharing (see unionfind.UnionFind, which keys a map by ast.BaseTerm
// identity).
package graph

import (
	"fmt"
	"sync/atomic"

	"github.com/ksyusha123/logica/types"
)

var nextID uint64

func freshID() uint64 {
	return atomic.AddUint64(&nextID, 1)
}

// Handle is a typed expression vertex: a variable, a predicate argument
// slot of one invocation, a record-subscript projection, or a literal.
// Every Handle carries a mutable Type, initialized to AnyType{}, and an
// id that is distinct for every constructed handle, so two
// structurally-equal handles remain distinct vertices (spec.md §3.2).
type Handle interface {
	fmt.Stringer
	isHandle()
	// ID returns the handle's arena identity. Two handles with the same
	// ID are the same vertex.
	ID() uint64
	// Type returns the handle's current inferred type.
	Type() types.Type
	// SetType refines the handle's inferred type in place.
	SetType(types.Type)
	// Equals reports structural equality (same kind and same logical
	// identity fields), ignoring ID. Used by tests and by the Equals
	// methods of composite handles; two independently-built handles for "the same"
	// variable are Equals but not ID-identical unless deduplicated by a
	// builder's scratch maps.
	Equals(other Handle) bool
}

// handleBase is embedded (by value) in every concrete handle so each
// handle owns its own addressable Type field; callers always hold a
// pointer to the concrete type (*Variable, *PredicateAddressing, ...), so
// mutations through SetType are visible to every edge referencing the
// same pointer.
type handleBase struct {
	id  uint64
	typ types.Type
}

func newHandleBase() handleBase {
	return handleBase{id: freshID(), typ: types.AnyType{}}
}

func (h *handleBase) ID() uint64          { return h.id }
func (h *handleBase) Type() types.Type    { return h.typ }
func (h *handleBase) SetType(t types.Type) { h.typ = t }

// Variable is a source-level variable inside a rule. Two Variable
// handles created for the same name within one rule must be the same
// pointer; that sharing is the builder's responsibility (spec.md §3.2,
// §9 "Variable scoping").
type Variable struct {
	handleBase
	Name string
}

// NewVariable constructs a fresh Variable handle.
func NewVariable(name string) *Variable {
	return &Variable{handleBase: newHandleBase(), Name: name}
}

func (*Variable) isHandle() {}

// String implements fmt.Stringer.
func (v *Variable) String() string { return v.Name }

// Equals implements Handle.
func (v *Variable) Equals(other Handle) bool {
	o, ok := other.(*Variable)
	return ok && o.Name == v.Name
}

// PredicateAddressing is a handle to one argument slot of one specific
// invocation of a predicate. UsageIndex disambiguates multiple calls to
// the same predicate within one rule (spec.md §3.2, §4.2). FieldName
// "logica_value" denotes the invocation's result.
type PredicateAddressing struct {
	handleBase
	PredicateName string
	FieldName     string
	UsageIndex    int
}

// ResultField is the reserved field name for a predicate invocation's result.
const ResultField = "logica_value"

// NewPredicateAddressing constructs a fresh PredicateAddressing handle.
func NewPredicateAddressing(predicateName, fieldName string, usageIndex int) *PredicateAddressing {
	return &PredicateAddressing{
		handleBase:    newHandleBase(),
		PredicateName: predicateName,
		FieldName:     fieldName,
		UsageIndex:    usageIndex,
	}
}

func (*PredicateAddressing) isHandle() {}

// String implements fmt.Stringer.
func (p *PredicateAddressing) String() string {
	return fmt.Sprintf("%s.%s#%d", p.PredicateName, p.FieldName, p.UsageIndex)
}

// Equals implements Handle.
func (p *PredicateAddressing) Equals(other Handle) bool {
	o, ok := other.(*PredicateAddressing)
	return ok && o.PredicateName == p.PredicateName && o.FieldName == p.FieldName && o.UsageIndex == p.UsageIndex
}

// SubscriptAddressing is the projection record.field.
type SubscriptAddressing struct {
	handleBase
	Record    Handle
	FieldName string
}

// NewSubscriptAddressing constructs a fresh SubscriptAddressing handle.
func NewSubscriptAddressing(record Handle, fieldName string) *SubscriptAddressing {
	return &SubscriptAddressing{handleBase: newHandleBase(), Record: record, FieldName: fieldName}
}

func (*SubscriptAddressing) isHandle() {}

// String implements fmt.Stringer.
func (s *SubscriptAddressing) String() string {
	return fmt.Sprintf("%s.%s", s.Record, s.FieldName)
}

// Equals implements Handle.
func (s *SubscriptAddressing) Equals(other Handle) bool {
	o, ok := other.(*SubscriptAddressing)
	return ok && o.FieldName == s.FieldName && o.Record.Equals(s.Record)
}

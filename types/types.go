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

// Package types implements the algebraic type lattice used by the
// type-inference engine: Any, the atomic types, homogeneous lists and
// open/closed records, together with the lattice's meet (Intersect)
// operation.
package types

import (
	"fmt"
	"sort"
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// Bounds is a pair of byte offsets delimiting the source span a
// constraint was derived from. The builder computes no real offsets
// (ruletree carries no source positions); every edge carries ZeroBounds.
type Bounds struct {
	Start, End int
}

// ZeroBounds is the placeholder bounds value used until the builder is
// wired to a parser that reports real source positions.
var ZeroBounds = Bounds{0, 0}

// Openness distinguishes a record that may still acquire fields (Open)
// from one whose field set is fixed (Closed).
type Openness bool

const (
	// Open records may gain fields during inference.
	Open Openness = true
	// Closed records have a fixed field set.
	Closed Openness = false
)

// Type is an algebraic type in the lattice described by spec.md §3.1.
type Type interface {
	fmt.Stringer
	isType()
	// Equal reports whether t and other denote the same type.
	Equal(other Type) bool
}

// AnyType is the bottom of information: it unifies with anything.
type AnyType struct{}

func (AnyType) isType() {}

// String implements fmt.Stringer.
func (AnyType) String() string { return "Any" }

// Equal implements Type.
func (AnyType) Equal(other Type) bool {
	_, ok := other.(AnyType)
	return ok
}

// NumberType is the atomic numeric type.
type NumberType struct{}

func (NumberType) isType() {}

// String implements fmt.Stringer.
func (NumberType) String() string { return "Number" }

// Equal implements Type.
func (NumberType) Equal(other Type) bool {
	_, ok := other.(NumberType)
	return ok
}

// StringType is the atomic string type.
type StringType struct{}

func (StringType) isType() {}

// String implements fmt.Stringer.
func (StringType) String() string { return "String" }

// Equal implements Type.
func (StringType) Equal(other Type) bool {
	_, ok := other.(StringType)
	return ok
}

// BoolType is the atomic boolean type.
type BoolType struct{}

func (BoolType) isType() {}

// String implements fmt.Stringer.
func (BoolType) String() string { return "Bool" }

// Equal implements Type.
func (BoolType) Equal(other Type) bool {
	_, ok := other.(BoolType)
	return ok
}

// NullType is the atomic null type.
type NullType struct{}

func (NullType) isType() {}

// String implements fmt.Stringer.
func (NullType) String() string { return "Null" }

// Equal implements Type.
func (NullType) Equal(other Type) bool {
	_, ok := other.(NullType)
	return ok
}

// ListType is a homogeneous sequence type. It always carries an element
// type, possibly AnyType{}.
type ListType struct {
	Element Type
}

// NewListType constructs a ListType, defaulting a nil element to AnyType{}.
func NewListType(element Type) ListType {
	if element == nil {
		element = AnyType{}
	}
	return ListType{Element: element}
}

func (ListType) isType() {}

// String implements fmt.Stringer.
func (l ListType) String() string {
	return fmt.Sprintf("List<%s>", l.Element)
}

// Equal implements Type.
func (l ListType) Equal(other Type) bool {
	o, ok := other.(ListType)
	return ok && l.Element.Equal(o.Element)
}

// RecordType is a row-typed record: a mapping from field name to Type,
// either Open (may gain fields) or Closed (fixed field set). Field names
// are unique by construction (Fields is a map).
type RecordType struct {
	Fields   map[string]Type
	Openness Openness
}

// NewRecordType constructs a RecordType, copying fields defensively.
func NewRecordType(fields map[string]Type, openness Openness) RecordType {
	copied := make(map[string]Type, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return RecordType{Fields: copied, Openness: openness}
}

// EmptyOpenRecord returns a fresh Open record with no fields. The solver
// does not call it: its FieldBelonging step intersects the record with a
// one-field Open record instead (package analysis, propagateFieldBelonging).
func EmptyOpenRecord() RecordType {
	return NewRecordType(nil, Open)
}

func (RecordType) isType() {}

// IsOpen reports whether r may still gain fields.
func (r RecordType) IsOpen() bool { return r.Openness == Open }

// FieldNames returns the record's field names, sorted for determinism.
func (r RecordType) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String implements fmt.Stringer.
func (r RecordType) String() string {
	var sb strings.Builder
	if r.Openness == Open {
		sb.WriteString("Open{")
	} else {
		sb.WriteString("Closed{")
	}
	names := r.FieldNames()
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", name, r.Fields[name])
	}
	sb.WriteString("}")
	return sb.String()
}

// Equal implements Type.
func (r RecordType) Equal(other Type) bool {
	o, ok := other.(RecordType)
	if !ok || r.Openness != o.Openness || len(r.Fields) != len(o.Fields) {
		return false
	}
	for name, t := range r.Fields {
		ot, ok := o.Fields[name]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

// fieldSet returns r's field names as a stringset.Set, grounded on the
// teacher's use of bitbucket.org/creachadair/stringset for set-of-strings
// bookkeeping (factstore, packages).
func (r RecordType) fieldSet() stringset.Set {
	return stringset.New(r.FieldNames()...)
}

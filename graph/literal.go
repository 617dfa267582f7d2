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
	"strings"

	"github.com/ksyusha123/logica/types"
)

// Literal handles have fixed initial types, drawn recursively from their
// children for List/Record literals (spec.md §3.2). Literal instances are
// distinct by ID unless the builder deliberately shares them (it never
// does: each literal occurrence in an AST gets its own handle).
type Literal interface {
	Handle
	isLiteral()
}

// StringLiteral is a literal string expression.
type StringLiteral struct{ handleBase }

// NewStringLiteral constructs a fresh StringLiteral handle.
func NewStringLiteral() *StringLiteral {
	h := &StringLiteral{handleBase: newHandleBase()}
	h.typ = types.StringType{}
	return h
}

func (*StringLiteral) isHandle()  {}
func (*StringLiteral) isLiteral() {}

// String implements fmt.Stringer.
func (s *StringLiteral) String() string { return "StringLiteral" }

// Equals implements Handle.
func (s *StringLiteral) Equals(other Handle) bool {
	_, ok := other.(*StringLiteral)
	return ok
}

// NumberLiteral is a literal numeric expression.
type NumberLiteral struct{ handleBase }

// NewNumberLiteral constructs a fresh NumberLiteral handle.
func NewNumberLiteral() *NumberLiteral {
	h := &NumberLiteral{handleBase: newHandleBase()}
	h.typ = types.NumberType{}
	return h
}

func (*NumberLiteral) isHandle()  {}
func (*NumberLiteral) isLiteral() {}

// String implements fmt.Stringer.
func (n *NumberLiteral) String() string { return "NumberLiteral" }

// Equals implements Handle.
func (n *NumberLiteral) Equals(other Handle) bool {
	_, ok := other.(*NumberLiteral)
	return ok
}

// BooleanLiteral is a literal boolean expression.
type BooleanLiteral struct{ handleBase }

// NewBooleanLiteral constructs a fresh BooleanLiteral handle.
func NewBooleanLiteral() *BooleanLiteral {
	h := &BooleanLiteral{handleBase: newHandleBase()}
	h.typ = types.BoolType{}
	return h
}

func (*BooleanLiteral) isHandle()  {}
func (*BooleanLiteral) isLiteral() {}

// String implements fmt.Stringer.
func (b *BooleanLiteral) String() string { return "BooleanLiteral" }

// Equals implements Handle.
func (b *BooleanLiteral) Equals(other Handle) bool {
	_, ok := other.(*BooleanLiteral)
	return ok
}

// NullLiteral is a literal null expression.
type NullLiteral struct{ handleBase }

// NewNullLiteral constructs a fresh NullLiteral handle.
func NewNullLiteral() *NullLiteral {
	h := &NullLiteral{handleBase: newHandleBase()}
	h.typ = types.NullType{}
	return h
}

func (*NullLiteral) isHandle()  {}
func (*NullLiteral) isLiteral() {}

// String implements fmt.Stringer.
func (n *NullLiteral) String() string { return "NullLiteral" }

// Equals implements Handle.
func (n *NullLiteral) Equals(other Handle) bool {
	_, ok := other.(*NullLiteral)
	return ok
}

// ListLiteral is a literal list expression. Its initial type is
// List<Any>: the builder is responsible for connecting an
// EqualityOfElement edge from this handle to every one of Elements, so
// the solver reconciles all of them (not just the first) into a single
// element type, raising a conflict if they disagree (spec.md §3.2:
// element type "drawn recursively from their children", plural).
type ListLiteral struct {
	handleBase
	Elements []Handle
}

// NewListLiteral constructs a fresh ListLiteral handle from its already
// converted element handles, seeded at List<Any>. Callers (package
// analysis's builder) must connect each element to this handle with an
// EqualityOfElement edge for the list's element type to narrow.
func NewListLiteral(elements []Handle) *ListLiteral {
	h := &ListLiteral{handleBase: newHandleBase(), Elements: elements}
	h.typ = types.NewListType(types.AnyType{})
	return h
}

func (*ListLiteral) isHandle()  {}
func (*ListLiteral) isLiteral() {}

// String implements fmt.Stringer.
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// Equals implements Handle.
func (l *ListLiteral) Equals(other Handle) bool {
	o, ok := other.(*ListLiteral)
	if !ok || len(o.Elements) != len(l.Elements) {
		return false
	}
	for i, e := range l.Elements {
		if !e.Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}

// RecordLiteral is a literal record expression {f1: e1, ...}.
type RecordLiteral struct {
	handleBase
	Fields map[string]Handle
}

// NewRecordLiteral constructs a fresh RecordLiteral handle from its
// already converted field handles. The result type is Closed: a literal
// record's field set is exactly what's written.
func NewRecordLiteral(fields map[string]Handle) *RecordLiteral {
	h := &RecordLiteral{handleBase: newHandleBase(), Fields: fields}
	fieldTypes := make(map[string]types.Type, len(fields))
	for name, handle := range fields {
		fieldTypes[name] = handle.Type()
	}
	h.typ = types.NewRecordType(fieldTypes, types.Closed)
	return h
}

func (*RecordLiteral) isHandle()  {}
func (*RecordLiteral) isLiteral() {}

// String implements fmt.Stringer.
func (r *RecordLiteral) String() string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, r.Fields[name])
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// Equals implements Handle.
func (r *RecordLiteral) Equals(other Handle) bool {
	o, ok := other.(*RecordLiteral)
	if !ok || len(o.Fields) != len(r.Fields) {
		return false
	}
	for name, h := range r.Fields {
		oh, ok := o.Fields[name]
		if !ok || !h.Equals(oh) {
			return false
		}
	}
	return true
}

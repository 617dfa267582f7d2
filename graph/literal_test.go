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
	"testing"

	"github.com/ksyusha123/logica/types"
)

func TestLiteralInitialTypes(t *testing.T) {
	tests := []struct {
		name string
		h    Literal
		want types.Type
	}{
		{"string", NewStringLiteral(), types.StringType{}},
		{"number", NewNumberLiteral(), types.NumberType{}},
		{"bool", NewBooleanLiteral(), types.BoolType{}},
		{"null", NewNullLiteral(), types.NullType{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.h.Type().Equal(tc.want) {
				t.Errorf("%s literal Type() = %v, want %v", tc.name, tc.h.Type(), tc.want)
			}
		})
	}
}

func TestListLiteralSeedsElementType(t *testing.T) {
	// NewListLiteral itself always seeds List<Any>, regardless of its
	// elements: narrowing only happens once the builder connects each
	// element with an EqualityOfElement edge and the solver runs (see
	// package analysis's builder_test.go for that reconciliation).
	empty := NewListLiteral(nil)
	if want := types.NewListType(types.AnyType{}); !empty.Type().Equal(want) {
		t.Errorf("empty ListLiteral Type() = %v, want %v", empty.Type(), want)
	}

	withElem := NewListLiteral([]Handle{NewNumberLiteral()})
	if want := types.NewListType(types.AnyType{}); !withElem.Type().Equal(want) {
		t.Errorf("ListLiteral Type() = %v, want %v", withElem.Type(), want)
	}
}

func TestRecordLiteralIsClosed(t *testing.T) {
	r := NewRecordLiteral(map[string]Handle{"a": NewNumberLiteral()})
	rt, ok := r.Type().(types.RecordType)
	if !ok {
		t.Fatalf("RecordLiteral Type() = %T, want types.RecordType", r.Type())
	}
	if rt.IsOpen() {
		t.Error("RecordLiteral should produce a Closed record type")
	}
	if !rt.Fields["a"].Equal(types.NumberType{}) {
		t.Errorf("field a = %v, want Number", rt.Fields["a"])
	}
}

func TestListLiteralEquals(t *testing.T) {
	a := NewListLiteral([]Handle{NewNumberLiteral()})
	b := NewListLiteral([]Handle{NewNumberLiteral()})
	c := NewListLiteral([]Handle{NewStringLiteral()})

	if !a.Equals(b) {
		t.Error("lists of structurally-equal elements should be Equals")
	}
	if a.Equals(c) {
		t.Error("lists of differently-typed elements should not be Equals")
	}
}

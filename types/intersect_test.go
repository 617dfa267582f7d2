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

import (
	"testing"
)

func TestIntersectAtomic(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Type
		want    Type
		wantErr bool
	}{
		{"any meets number", AnyType{}, NumberType{}, NumberType{}, false},
		{"number meets any", NumberType{}, AnyType{}, NumberType{}, false},
		{"number meets number", NumberType{}, NumberType{}, NumberType{}, false},
		{"number meets string conflicts", NumberType{}, StringType{}, nil, true},
		{"bool meets null conflicts", BoolType{}, NullType{}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Intersect(tc.a, tc.b, ZeroBounds)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Intersect(%v, %v) = %v, want error", tc.a, tc.b, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Intersect(%v, %v) unexpected error: %v", tc.a, tc.b, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Intersect(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIntersectLists(t *testing.T) {
	got, err := Intersect(NewListType(AnyType{}), NewListType(NumberType{}), ZeroBounds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewListType(NumberType{})
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := Intersect(NewListType(NumberType{}), NewListType(StringType{}), ZeroBounds); err == nil {
		t.Error("expected conflict intersecting List<Number> and List<String>")
	}
}

func TestIntersectRecordsOpenOpen(t *testing.T) {
	a := NewRecordType(map[string]Type{"x": NumberType{}}, Open)
	b := NewRecordType(map[string]Type{"y": StringType{}}, Open)
	got, err := Intersect(a, b, ZeroBounds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewRecordType(map[string]Type{"x": NumberType{}, "y": StringType{}}, Open)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIntersectRecordsOpenClosed(t *testing.T) {
	open := NewRecordType(map[string]Type{"x": NumberType{}}, Open)
	closed := NewRecordType(map[string]Type{"x": NumberType{}, "y": StringType{}}, Closed)

	got, err := Intersect(open, closed, ZeroBounds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewRecordType(map[string]Type{"x": NumberType{}, "y": StringType{}}, Closed)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIntersectRecordsOpenClosedMissingKeyConflicts(t *testing.T) {
	open := NewRecordType(map[string]Type{"z": NumberType{}}, Open)
	closed := NewRecordType(map[string]Type{"x": NumberType{}}, Closed)
	if _, err := Intersect(open, closed, ZeroBounds); err == nil {
		t.Error("expected conflict: open record requires a field the closed record lacks")
	}
}

func TestIntersectRecordsClosedClosedKeySetMismatch(t *testing.T) {
	a := NewRecordType(map[string]Type{"x": NumberType{}}, Closed)
	b := NewRecordType(map[string]Type{"x": NumberType{}, "y": StringType{}}, Closed)
	if _, err := Intersect(a, b, ZeroBounds); err == nil {
		t.Error("expected conflict: closed records with different key sets")
	}
}

func TestIntersectRecordsFieldTypeConflictPropagates(t *testing.T) {
	a := NewRecordType(map[string]Type{"x": NumberType{}}, Closed)
	b := NewRecordType(map[string]Type{"x": StringType{}}, Closed)
	if _, err := Intersect(a, b, ZeroBounds); err == nil {
		t.Error("expected conflict: shared field x has incompatible types")
	}
}

func TestRank(t *testing.T) {
	ranks := []Type{
		AnyType{},
		NumberType{},
		StringType{},
		BoolType{},
		NullType{},
		NewListType(AnyType{}),
		NewRecordType(nil, Open),
		NewRecordType(nil, Closed),
	}
	for i := 1; i < len(ranks); i++ {
		if Rank(ranks[i-1]) >= Rank(ranks[i]) {
			t.Errorf("Rank(%v) = %d should be less than Rank(%v) = %d",
				ranks[i-1], Rank(ranks[i-1]), ranks[i], Rank(ranks[i]))
		}
	}
}

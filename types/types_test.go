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

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"any equals any", AnyType{}, AnyType{}, true},
		{"number equals number", NumberType{}, NumberType{}, true},
		{"number not string", NumberType{}, StringType{}, false},
		{"list equal elements", NewListType(NumberType{}), NewListType(NumberType{}), true},
		{"list unequal elements", NewListType(NumberType{}), NewListType(StringType{}), false},
		{
			"closed records equal",
			NewRecordType(map[string]Type{"a": NumberType{}}, Closed),
			NewRecordType(map[string]Type{"a": NumberType{}}, Closed),
			true,
		},
		{
			"open vs closed not equal",
			NewRecordType(map[string]Type{"a": NumberType{}}, Open),
			NewRecordType(map[string]Type{"a": NumberType{}}, Closed),
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRecordTypeFieldNames(t *testing.T) {
	r := NewRecordType(map[string]Type{"z": NumberType{}, "a": StringType{}}, Closed)
	got := r.FieldNames()
	want := []string{"a", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FieldNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRecordTypeDefensiveCopy(t *testing.T) {
	fields := map[string]Type{"a": NumberType{}}
	r := NewRecordType(fields, Closed)
	fields["b"] = StringType{}
	if _, ok := r.Fields["b"]; ok {
		t.Error("NewRecordType did not defensively copy its fields map")
	}
}

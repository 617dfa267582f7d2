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

// Rank orders type kinds for deterministic dispatch in Intersect:
// Any < Number < String < Bool < Null < List < OpenRecord < ClosedRecord.
// The table is total over the lattice (spec.md §3.1).
func Rank(t Type) int {
	switch v := t.(type) {
	case AnyType:
		return 0
	case NumberType:
		return 1
	case StringType:
		return 2
	case BoolType:
		return 3
	case NullType:
		return 4
	case ListType:
		return 5
	case RecordType:
		if v.IsOpen() {
			return 6
		}
		return 7
	default:
		return 8
	}
}

// Intersect computes the greatest-lower-bound of a and b in the type
// lattice (spec.md §4.1). It is commutative: implementations normalize by
// rank so that rank(a) <= rank(b), then case-analyze on a.
func Intersect(a, b Type, bounds Bounds) (Type, error) {
	if Rank(a) > Rank(b) {
		a, b = b, a
	}

	switch av := a.(type) {
	case AnyType:
		return b, nil

	case NumberType:
		if _, ok := b.(NumberType); ok {
			return b, nil
		}
		return nil, conflictf(bounds, "cannot match %s and %s", a, b)

	case StringType:
		if _, ok := b.(StringType); ok {
			return b, nil
		}
		return nil, conflictf(bounds, "cannot match %s and %s", a, b)

	case BoolType:
		if _, ok := b.(BoolType); ok {
			return b, nil
		}
		return nil, conflictf(bounds, "cannot match %s and %s", a, b)

	case NullType:
		if _, ok := b.(NullType); ok {
			return b, nil
		}
		return nil, conflictf(bounds, "cannot match %s and %s", a, b)

	case ListType:
		bl, ok := b.(ListType)
		if !ok {
			return nil, conflictf(bounds, "cannot match %s and list", b)
		}
		elem, err := Intersect(av.Element, bl.Element, bounds)
		if err != nil {
			return nil, err
		}
		return NewListType(elem), nil

	case RecordType:
		br, ok := b.(RecordType)
		if !ok {
			return nil, conflictf(bounds, "cannot match %s and %s", a, b)
		}
		return intersectRecords(av, br, bounds)

	default:
		return nil, conflictf(bounds, "cannot match %s and %s", a, b)
	}
}

// intersectRecords implements the three record/record cases of spec.md
// §4.1: Open∩Open, Open∩Closed, Closed∩Closed.
func intersectRecords(a, b RecordType, bounds Bounds) (Type, error) {
	aKeys, bKeys := a.fieldSet(), b.fieldSet()

	if a.IsOpen() {
		if b.IsOpen() {
			return intersectFriendlyRecords(a, b, Open, bounds)
		}
		if !aKeys.IsSubset(bKeys) {
			return nil, conflictf(bounds, "cannot match types of record keys: %v", aKeys.Diff(bKeys).Elements())
		}
		return intersectFriendlyRecords(a, b, Closed, bounds)
	}

	if b.IsOpen() {
		// b is open, a is closed; delegate to the same branch with
		// operands swapped so the open/closed case above applies.
		return intersectRecords(b, a, bounds)
	}

	if !aKeys.Equals(bKeys) {
		return nil, conflictf(bounds, "cannot match types of records keys: %v and %v",
			aKeys.Diff(bKeys).Elements(), bKeys.Diff(aKeys).Elements())
	}
	return intersectFriendlyRecords(a, b, Closed, bounds)
}

// intersectFriendlyRecords merges two records whose field sets have
// already been validated as compatible for the given result openness:
// shared fields are recursively intersected, unshared fields (only
// possible when the result is Open, or when ok has been granted by the
// open<=closed subset check) are carried over from whichever side has
// them.
func intersectFriendlyRecords(a, b RecordType, openness Openness, bounds Bounds) (Type, error) {
	result := make(map[string]Type, len(a.Fields)+len(b.Fields))
	for name, bType := range b.Fields {
		if aType, ok := a.Fields[name]; ok {
			merged, err := Intersect(aType, bType, bounds)
			if err != nil {
				return nil, err
			}
			result[name] = merged
		} else {
			result[name] = bType
		}
	}
	for name, aType := range a.Fields {
		if _, ok := result[name]; !ok {
			result[name] = aType
		}
	}
	return NewRecordType(result, openness), nil
}

// IntersectListElement intersects a list's element type with element,
// per spec.md §4.1's helper of the same name.
func IntersectListElement(list ListType, element Type, bounds Bounds) (Type, error) {
	return Intersect(list.Element, element, bounds)
}

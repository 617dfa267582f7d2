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
	"github.com/ksyusha123/logica/graph"
	"github.com/ksyusha123/logica/types"
)

// Solve runs the fixpoint solver over edges (spec.md §4.4): it repeatedly
// walks every edge, tightening the types of its endpoint handles via the
// lattice meet, until a pass produces no change. It returns a
// *types.ConflictError, carrying the bounds of the edge whose endpoints
// failed to meet, the first time two incompatible types meet, stopping
// the run early.
//
// The solver is a full re-scan, not a worklist: every edge is
// re-examined every pass, same as the teacher's seminaive evaluator
// re-derives every rule each round until saturation
// (engine/seminaivebottomup.go). Graphs here are small enough per program
// that the naive re-scan costs nothing the worklist discipline would
// meaningfully save.
func Solve(edges []graph.Edge) error {
	for {
		changed := false
		for _, e := range edges {
			edgeChanged, err := propagate(e)
			if err != nil {
				return err
			}
			changed = changed || edgeChanged
		}
		if !changed {
			return nil
		}
	}
}

func propagate(e graph.Edge) (bool, error) {
	switch edge := e.(type) {
	case graph.Equality:
		return propagateEquality(edge.Left, edge.Right, edge.Bounds)
	case graph.EqualityOfElement:
		return propagateEqualityOfElement(edge.List, edge.Element, edge.Bounds)
	case graph.FieldBelonging:
		return propagateFieldBelonging(edge.Record, edge.Subscript, edge.Bounds)
	case graph.PredicateArgument:
		// No propagation rule exists for this edge kind (spec.md §4.4,
		// §9): it is structural bookkeeping only, reserved for a future
		// propagation step that was never implemented upstream.
		return false, nil
	default:
		return false, nil
	}
}

// propagateEquality tightens left and right to their lattice meet.
func propagateEquality(left, right graph.Handle, bounds types.Bounds) (bool, error) {
	merged, err := types.Intersect(left.Type(), right.Type(), bounds)
	if err != nil {
		return false, err
	}
	leftChanged := setIfChanged(left, merged)
	rightChanged := setIfChanged(right, merged)
	return leftChanged || rightChanged, nil
}

// propagateEqualityOfElement tightens list to List(meet) and element to
// meet, where meet is the lattice meet of element's type and list's
// current element type (or Any, if list isn't yet known to be a list).
func propagateEqualityOfElement(list, element graph.Handle, bounds types.Bounds) (bool, error) {
	merged, err := types.Intersect(list.Type(), types.NewListType(element.Type()), bounds)
	if err != nil {
		return false, err
	}
	mergedList, ok := merged.(types.ListType)
	if !ok {
		// Intersect only ever returns a ListType here (one operand was
		// always NewListType(...)), but guard rather than panic.
		return false, &types.ConflictError{Message: "expected list type", Bounds: bounds}
	}
	listChanged := setIfChanged(list, mergedList)
	elementChanged := setIfChanged(element, mergedList.Element)
	return listChanged || elementChanged, nil
}

// propagateFieldBelonging tightens record to an open record carrying at
// least subscript's field, and subscript to whatever type that field
// settles on (possibly narrowed further by other FieldBelonging or
// Equality edges sharing the same record handle).
func propagateFieldBelonging(record, subscript graph.Handle, bounds types.Bounds) (bool, error) {
	fieldName := subscriptFieldName(subscript)
	atLeast := types.NewRecordType(map[string]types.Type{fieldName: subscript.Type()}, types.Open)
	merged, err := types.Intersect(record.Type(), atLeast, bounds)
	if err != nil {
		return false, err
	}
	mergedRecord, ok := merged.(types.RecordType)
	if !ok {
		return false, &types.ConflictError{Message: "expected record type", Bounds: bounds}
	}
	recordChanged := setIfChanged(record, mergedRecord)
	fieldType, ok := mergedRecord.Fields[fieldName]
	if !ok {
		return recordChanged, nil
	}
	subscriptChanged := setIfChanged(subscript, fieldType)
	return recordChanged || subscriptChanged, nil
}

// subscriptFieldName recovers the field name a FieldBelonging edge's
// subscript endpoint addresses. The builder only ever connects a
// *graph.SubscriptAddressing here, but fall back to the empty string
// rather than panic if a future edge kind reuses this propagation step.
func subscriptFieldName(h graph.Handle) string {
	if s, ok := h.(*graph.SubscriptAddressing); ok {
		return s.FieldName
	}
	return ""
}

// setIfChanged refines h's type to t, reporting whether this actually
// changed h's previously observed type.
func setIfChanged(h graph.Handle, t types.Type) bool {
	if h.Type().Equal(t) {
		return false
	}
	h.SetType(t)
	return true
}

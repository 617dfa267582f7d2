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
	"github.com/ksyusha123/logica/oracle"
	"github.com/ksyusha123/logica/types"
)

// Merger links caller graphs to callee graphs and consults an external
// schema oracle for predicates undefined in the current program
// (spec.md §4.3). It runs once, after the builder and before the solver.
type Merger struct {
	oracle oracle.SchemaOracle
}

// NewMerger returns a Merger that falls back to oracle for predicates
// not present as a key of the graphs map passed to Merge.
func NewMerger(schemaOracle oracle.SchemaOracle) *Merger {
	return &Merger{oracle: schemaOracle}
}

// Merge walks every graph's vertices and, for every PredicateAddressing
// whose predicate name differs from the owning graph's and whose type is
// still Any, either links it to its locally-defined callee's canonical
// field handle, or resolves it directly against the schema oracle
// (spec.md §4.3). It returns the merged edge pool (every graph's own
// edges plus the cross-graph Equality edges it added).
func (m *Merger) Merge(graphs map[string]*graph.TypesGraph) ([]graph.Edge, error) {
	var allEdges []graph.Edge
	for _, g := range graphs {
		allEdges = append(allEdges, g.Edges()...)
	}

	for ownerName, g := range graphs {
		for _, h := range callSiteHandles(g) {
			pa, ok := h.(*graph.PredicateAddressing)
			if !ok || pa.PredicateName == ownerName {
				continue
			}
			if _, isAny := pa.Type().(types.AnyType); !isAny {
				continue
			}

			if calleeGraph, isLocal := graphs[pa.PredicateName]; isLocal {
				// Locally defined: link to the callee's own canonical field
				// handle rather than consulting the oracle at all, even if
				// the callee happens not to bind this particular field (it
				// then simply stays Any — spec.md is silent on this case,
				// and treating it as an UnresolvedPredicateError would
				// mislabel a locally-defined predicate as unknown).
				if canonical := findCanonicalField(calleeGraph, pa.PredicateName, pa.FieldName); canonical != nil {
					allEdges = append(allEdges, graph.Equality{Left: pa, Right: canonical, Bounds: types.ZeroBounds})
				}
				continue
			}

			if _, err := m.resolveFromOracle(pa); err != nil {
				return nil, err
			}
		}
	}

	return allEdges, nil
}

// resolveFromOracle sets pa's type directly from the schema oracle,
// returning (true, nil) if resolved, (false, nil) if the oracle doesn't
// know pa's field (caller may still treat the predicate as locally
// unresolvable), or a non-nil error if the predicate itself is unknown.
func (m *Merger) resolveFromOracle(pa *graph.PredicateAddressing) (bool, error) {
	cols, ok := m.oracle.Columns(pa.PredicateName)
	if !ok {
		return false, &UnresolvedPredicateError{PredicateName: pa.PredicateName}
	}
	fieldType, ok := cols[pa.FieldName]
	if !ok {
		return false, nil
	}
	pa.SetType(fieldType)
	return true, nil
}

// callSiteHandles returns every distinct Handle appearing as an endpoint
// of some edge in g, used to drive the merger's per-vertex walk (spec.md
// §4.3 "the merger walks each graph's vertices").
func callSiteHandles(g *graph.TypesGraph) []graph.Handle {
	seen := make(map[graph.Handle]bool)
	var out []graph.Handle
	for _, e := range g.Edges() {
		left, right := e.Endpoints()
		for _, h := range []graph.Handle{left, right} {
			if !seen[h] {
				seen[h] = true
				out = append(out, h)
			}
		}
	}
	return out
}

// findCanonicalField searches calleeGraph for the PredicateAddressing
// vertex representing predicateName's own field (matched on PredicateName
// and FieldName, whatever its UsageIndex),
// i.e. the handle a rule defining predicateName created for that field
// in its own head or own call sites (spec.md §4.3: "locate ... the
// canonical field handle for field f by searching edges incident to
// vertices whose textual form matches P.f").
func findCanonicalField(calleeGraph *graph.TypesGraph, predicateName, fieldName string) graph.Handle {
	for _, e := range calleeGraph.Edges() {
		left, right := e.Endpoints()
		for _, h := range []graph.Handle{left, right} {
			if pa, ok := h.(*graph.PredicateAddressing); ok &&
				pa.PredicateName == predicateName && pa.FieldName == fieldName {
				return pa
			}
		}
	}
	return nil
}

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

func TestTypesGraphConnectAndIncident(t *testing.T) {
	g := NewTypesGraph()
	x := NewVariable("x")
	y := NewVariable("y")
	e := Equality{Left: x, Right: y, Bounds: types.ZeroBounds}
	g.Connect(e)

	if got := len(g.Edges()); got != 1 {
		t.Fatalf("len(Edges()) = %d, want 1", got)
	}
	if got := g.Incident(x); len(got) != 1 || got[0] != Edge(e) {
		t.Errorf("Incident(x) = %v, want [%v]", got, e)
	}
	if got := g.Incident(y); len(got) != 1 || got[0] != Edge(e) {
		t.Errorf("Incident(y) = %v, want [%v]", got, e)
	}
}

func TestTypesGraphMerge(t *testing.T) {
	a := NewTypesGraph()
	b := NewTypesGraph()
	x := NewVariable("x")
	y := NewVariable("y")
	z := NewVariable("z")

	a.Connect(Equality{Left: x, Right: y, Bounds: types.ZeroBounds})
	b.Connect(Equality{Left: y, Right: z, Bounds: types.ZeroBounds})

	a.Merge(b)

	if got := len(a.Edges()); got != 2 {
		t.Fatalf("len(Edges()) after merge = %d, want 2", got)
	}
	if got := len(a.Incident(y)); got != 2 {
		t.Errorf("Incident(y) after merge has %d edges, want 2 (one from each side)", got)
	}
}

func TestTypesGraphSelfLoopIndexedOnce(t *testing.T) {
	g := NewTypesGraph()
	x := NewVariable("x")
	g.Connect(Equality{Left: x, Right: x, Bounds: types.ZeroBounds})
	if got := len(g.Incident(x)); got != 1 {
		t.Errorf("Incident(x) on a self-loop = %d edges, want 1", got)
	}
}

func TestToEdgesListIsACopy(t *testing.T) {
	g := NewTypesGraph()
	x, y := NewVariable("x"), NewVariable("y")
	g.Connect(Equality{Left: x, Right: y, Bounds: types.ZeroBounds})

	list := g.ToEdgesList()
	list[0] = nil

	if g.Edges()[0] == nil {
		t.Error("mutating ToEdgesList() result mutated the graph's own edge slice")
	}
}

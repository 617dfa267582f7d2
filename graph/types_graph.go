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
)

// TypesGraph stores a set of edges plus a two-level index: for each
// handle, a mapping from the *other* incident handle to the list of
// edges between them (spec.md §3.4). It is built per rule by the graph
// builder and then unioned by predicate name.
type TypesGraph struct {
	edges []Edge
	index map[Handle]map[Handle][]Edge
}

// NewTypesGraph returns an empty graph.
func NewTypesGraph() *TypesGraph {
	return &TypesGraph{index: make(map[Handle]map[Handle][]Edge)}
}

// Connect adds edge to the graph and updates the index for both of its
// endpoints.
func (g *TypesGraph) Connect(edge Edge) {
	g.edges = append(g.edges, edge)
	left, right := edge.Endpoints()
	g.indexOne(left, right, edge)
	if right != left {
		g.indexOne(right, left, edge)
	}
}

func (g *TypesGraph) indexOne(from, to Handle, edge Edge) {
	byOther, ok := g.index[from]
	if !ok {
		byOther = make(map[Handle][]Edge)
		g.index[from] = byOther
	}
	byOther[to] = append(byOther[to], edge)
}

// Merge unions other into g: the edge set and index entries of other are
// added to g, preserving vertex identity (handles are pointers; the same
// logical handle used by both graphs indexes to the same map entry).
// This realizes the "graphs are ... unioned by predicate name" lifecycle
// rule of spec.md §3.4 (callers union per-predicate graphs built from
// separate rules for that predicate).
func (g *TypesGraph) Merge(other *TypesGraph) {
	if other == nil {
		return
	}
	for _, e := range other.edges {
		g.Connect(e)
	}
}

// Edges returns every edge in the graph, in insertion order.
func (g *TypesGraph) Edges() []Edge {
	return g.edges
}

// ToEdgesList returns the serializable edge-list form
// (edge_kind, left_handle, right_handle, bounds) called for by spec.md
// §6.3. Edge already is that tuple; this method exists to name the
// produced form explicitly and to give downstream debugging tools a
// stable entry point distinct from the live Edges() slice.
func (g *TypesGraph) ToEdgesList() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Incident returns every edge incident to h, each once. The order follows
// map iteration over h's neighbours and is not insertion order.
func (g *TypesGraph) Incident(h Handle) []Edge {
	byOther, ok := g.index[h]
	if !ok {
		return nil
	}
	var out []Edge
	seen := make(map[Edge]bool)
	for _, edges := range byOther {
		for _, e := range edges {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// ToDebugString renders one line per edge, grounded on the teacher's dual
// String()/DisplayString() convention (ast.Constant) and
// unionfind.UnionFind.String() for a readable debug dump of shared
// mutable state.
func (g *TypesGraph) ToDebugString() string {
	var sb strings.Builder
	for _, e := range g.edges {
		fmt.Fprintf(&sb, "%T: %s [%v]\n", e, e, e.GetBounds())
	}
	return sb.String()
}

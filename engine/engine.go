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

// Package engine is the single synchronous entry point wiring the graph
// builder, the inter-graph merger and the fixpoint solver into one
// inference run (spec.md §5). It is grounded on the teacher's
// interpreter/mg entry point for its logging convention (glog at V(1),
// silent at default verbosity) and on engine/seminaivebottomup.go for its
// batch-of-independent-runs helper, InferAll, which aggregates failures
// with go.uber.org/multierr instead of stopping at the first one.
package engine

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/ksyusha123/logica/analysis"
	"github.com/ksyusha123/logica/graph"
	"github.com/ksyusha123/logica/oracle"
	"github.com/ksyusha123/logica/ruletree"
)

// Infer runs type inference over program, resolving foreign predicates
// against schemaOracle, and returns one annotated TypesGraph per locally
// defined predicate name (spec.md §5, §6.3).
//
// Infer is synchronous and single-threaded, matching spec.md §5's
// non-goal of internal parallelism: one inference run never spawns a
// goroutine. Callers wanting to run several independent programs
// concurrently drive their own fan-out calling Infer per program;
// InferAll runs its programs one at a time and only aggregates errors.
func Infer(program ruletree.Program, schemaOracle oracle.SchemaOracle) (map[string]*graph.TypesGraph, error) {
	builder := analysis.NewBuilder()
	graphs, err := builder.Run(program)
	if err != nil {
		return nil, fmt.Errorf("graph construction: %w", err)
	}
	glog.V(1).Infof("graph construction done: %d predicates", len(graphs))

	merger := analysis.NewMerger(schemaOracle)
	edges, err := merger.Merge(graphs)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	glog.V(1).Infof("merge done: %d edges", len(edges))

	if err := analysis.Solve(edges); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	glog.V(1).Infof("solve done: %d predicates resolved", len(graphs))

	return graphs, nil
}

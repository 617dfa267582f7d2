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

package engine

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/ksyusha123/logica/graph"
	"github.com/ksyusha123/logica/oracle"
	"github.com/ksyusha123/logica/ruletree"
)

// Program names one independent program for InferAll, so a failing
// program's error can be attributed back to it in the aggregated error.
type Program struct {
	Name    string
	Program ruletree.Program
}

// InferAll runs Infer independently over each of programs, sharing
// schemaOracle across all of them. Unlike Infer, which aborts on the
// first error (spec.md §7: inference is non-local and fatal within one
// program), InferAll keeps going across programs and joins every
// failure with go.uber.org/multierr, so a caller processing a batch of
// unrelated programs sees every failing one, not just the first
// (spec.md §5 "callers wanting parallelism may invoke the engine on
// independent programs"; see §10.6).
//
// The programs themselves are still inferred one at a time, in order:
// InferAll does not spawn goroutines. A caller wanting concurrent
// execution across programs is free to fan out over Infer itself; the
// value InferAll adds is aggregated error reporting, not parallelism.
func InferAll(programs []Program, schemaOracle oracle.SchemaOracle) (map[string]map[string]*graph.TypesGraph, error) {
	results := make(map[string]map[string]*graph.TypesGraph, len(programs))
	var errs error

	for _, p := range programs {
		graphs, err := Infer(p.Program, schemaOracle)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("program %s: %w", p.Name, err))
			continue
		}
		results[p.Name] = graphs
	}

	if errs != nil {
		return results, errs
	}
	return results, nil
}

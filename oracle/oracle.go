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

// Package oracle defines the schema oracle the merger consults for
// predicates not defined in the current program (spec.md §6.2), plus a
// default in-memory implementation.
//
// spec.md treats the oracle as a pure external collaborator; this
// package's Static implementation exists so the engine is runnable
// end-to-end without a caller-supplied column inspector, grounded on the
// teacher's builtin.Functions/builtin.Predicates registries
// (google/mangle builtin/builtin.go), which likewise hard-code a table of
// known predicate/function symbols rather than loading one from config.
package oracle

import "github.com/ksyusha123/logica/types"

// Columns is the column-name-to-type mapping a schema oracle reports for
// one predicate (spec.md §6.2).
type Columns map[string]types.Type

// SchemaOracle provides column types for predicates not defined in the
// program under inference (spec.md §6.2). Implementations must be
// re-entrant across independent inference runs (spec.md §5); they are
// invoked synchronously, only from the merger, never concurrently within
// one run.
type SchemaOracle interface {
	// Columns returns the field-name-to-type mapping for predicateName,
	// and false if predicateName is unknown to this oracle.
	Columns(predicateName string) (Columns, bool)
}

// Static is an in-memory SchemaOracle backed by a fixed table, built
// once at construction time.
type Static struct {
	columns map[string]Columns
}

// NewStatic returns a Static oracle reporting exactly the given columns.
func NewStatic(columns map[string]Columns) *Static {
	copied := make(map[string]Columns, len(columns))
	for name, cols := range columns {
		copied[name] = cols
	}
	return &Static{columns: copied}
}

// Columns implements SchemaOracle.
func (s *Static) Columns(predicateName string) (Columns, bool) {
	cols, ok := s.columns[predicateName]
	return cols, ok
}

// Merge returns a new Static oracle reporting the union of s and other's
// columns, with other's entries taking precedence on name collision.
// Used to layer a caller-supplied oracle (e.g. a proto-descriptor-backed
// one, see FromMessageDescriptor) on top of StandardLibrary.
func (s *Static) Merge(other *Static) *Static {
	merged := make(map[string]Columns, len(s.columns)+len(other.columns))
	for name, cols := range s.columns {
		merged[name] = cols
	}
	for name, cols := range other.columns {
		merged[name] = cols
	}
	return NewStatic(merged)
}

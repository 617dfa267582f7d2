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

package oracle

import "github.com/ksyusha123/logica/types"

// arithmeticColumns is the column signature shared by the four binary
// numeric operators: two Number arguments, one Number result.
func arithmeticColumns() Columns {
	return Columns{
		"left":             types.NumberType{},
		"right":            types.NumberType{},
		graphResultField(): types.NumberType{},
	}
}

// graphResultField avoids a dependency from package oracle on package
// graph for the single shared string constant "logica_value"; the
// literal is spec.md's own vocabulary (§3.2), not graph-package API.
func graphResultField() string { return "logica_value" }

// StandardLibrary returns a Static oracle pre-populated with the
// arithmetic and string built-ins spec.md's end-to-end scenario 2
// references, grounded on the teacher's builtin.Functions /
// builtin.Predicates registries (google/mangle builtin/builtin.go:
// symbols.Plus, symbols.Minus, symbols.Mult, symbols.Div), rewritten
// here as column *types* rather than runtime evaluators.
func StandardLibrary() *Static {
	return NewStatic(map[string]Columns{
		"+": arithmeticColumns(),
		"-": arithmeticColumns(),
		"*": arithmeticColumns(),
		"/": arithmeticColumns(),
		"++": {
			"left":             types.StringType{},
			"right":            types.StringType{},
			graphResultField(): types.StringType{},
		},
		// Str and Num double as unary type-assertion predicates (used as a
		// bare body conjunct, e.g. "Num(x)" — spec.md §8 scenarios 1 and 6
		// require this to pin col0 to a concrete type, not Any, so that
		// "T(x), Num(x)" resolves x to Number, and "Str(x), Num(x)" on the
		// same variable conflicts) and as conversion functions (used as a
		// call expression, e.g. "p: Str(y)" — spec.md §8 scenario 5).
		"Str": {
			"col0":             types.StringType{},
			graphResultField(): types.StringType{},
		},
		"Num": {
			"col0":             types.NumberType{},
			graphResultField(): types.NumberType{},
		},
	})
}

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

// Package ruletree is a data-only Go representation of the parsed AST the
// type-inference engine consumes (spec.md §6.1). The parser that produces
// this tree is an external collaborator and deliberately out of scope
// (spec.md §1); this package only names the shape the builder (package
// analysis) walks.
package ruletree

// Program is the root of a parsed source unit: a list of rules.
type Program struct {
	Rules []Rule
}

// Rule is "head :- body": a head predicate with a list of field-value
// pairs, and an optional conjunction of body conjuncts.
type Rule struct {
	Head Head
	Body *Body // nil for a fact with no body
}

// Head names the predicate being defined and lists its field bindings.
type Head struct {
	PredicateName string
	Fields        []FieldValue
}

// Body is a conjunction of conjuncts.
type Body struct {
	Conjuncts []Conjunct
}

// FieldValue is one field binding "name: expr" of a head, call or record
// (or a positional binding, with IsPositional set and PositionalN holding
// the column index; Field is then ignored — spec.md §4.2 "if the field
// key is a positional integer, normalize its name to col<k>").
type FieldValue struct {
	Field        string
	IsPositional bool
	PositionalN  int
	Value        Value
}

// Value is a head-field value: either a plain expression, or an
// aggregation wrapper (e.g. "+= 1") around one — aggregation wrappers are
// transparent to the builder (spec.md §4.2).
type Value struct {
	Expression  *Expression
	Aggregation *Expression
}

// Conjunct is a single body clause: unification, inclusion, or predicate
// call.
type Conjunct struct {
	Unification *Unification
	Inclusion   *Inclusion
	Predicate   *PredicateCall
}

// Unification is the body conjunct "l == r".
type Unification struct {
	Left, Right Expression
}

// Inclusion is the body conjunct "e in l".
type Inclusion struct {
	Element Expression
	List    Expression
}

// PredicateCall is a predicate invocation, used both as a body conjunct
// ("P(f: v, ...)") and (via its embedded FieldValues) as a call
// expression's argument list.
type PredicateCall struct {
	PredicateName string
	FieldValues   []FieldValue
}

// Expression is one AST expression node. Exactly one field is set.
type Expression struct {
	Literal     *Literal
	Variable    *VariableRef
	Call        *PredicateCall
	Subscript   *Subscript
	Record      *RecordExpr
	Implication *Implication
}

// VariableRef names a source-level variable occurrence.
type VariableRef struct {
	VarName string
}

// Subscript is the projection "record.field".
type Subscript struct {
	Record    *Expression
	FieldName string
}

// RecordExpr is a record literal "{f1: e1, ...}".
type RecordExpr struct {
	Fields []FieldValue
}

// Implication is an if/then/otherwise expression.
type Implication struct {
	IfThen    []IfThen
	Otherwise Expression
}

// IfThen is one "condition -> consequence" arm of an Implication.
type IfThen struct {
	Condition   Expression
	Consequence Expression
}

// Literal is a literal expression. Exactly one field is set.
type Literal struct {
	TheString  *string
	TheNumber  *float64
	TheBool    *bool
	TheNull    bool
	TheList    []Expression
	TheSymbol  *string // not read by the builder; Subscript carries its field name as FieldName
}

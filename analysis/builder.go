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

// Package analysis implements the builder, merger and fixpoint solver
// (spec.md §4.2-§4.4): together they turn a ruletree.Program into fully
// annotated per-predicate graph.TypesGraph values.
//
// This package is grounded on the teacher's own type/bounds inference
// machinery (analysis/infercontext.go, analysis/boundscheck.go,
// analysis/rulecheck.go in google/mangle): per-clause mutable inference
// state that refines a running type via a meet operation and errors out
// on conflict, and the "fresh name generator" idiom used by
// rewrite.Rewrite for synthetic predicate names, here reused for
// synthetic if-node variable names (see Builder.ifStatementsCounter).
package analysis

import (
	"fmt"

	"github.com/ksyusha123/logica/graph"
	"github.com/ksyusha123/logica/ruletree"
	"github.com/ksyusha123/logica/types"
)

// Builder translates an AST into one graph.TypesGraph per predicate name,
// following the construction rules of spec.md §4.2.
type Builder struct {
	bounds types.Bounds

	predicateUsages map[string]int
	variables       map[string]*graph.Variable
	subscripts      map[subscriptKey]*graph.SubscriptAddressing

	// ifStatementsCounter is global across the whole Run (spec.md §9:
	// "Synthetic variables for implications use a global counter prefixed
	// _IfNode, guaranteed not to clash with source names"), unlike
	// predicateUsages and variables, which reset per rule.
	ifStatementsCounter int
}

type subscriptKey struct {
	record    graph.Handle
	fieldName string
}

// NewBuilder returns a Builder ready for Run.
func NewBuilder() *Builder {
	return &Builder{bounds: types.ZeroBounds}
}

// resetRuleState clears per-rule scratch state: the predicate usage
// counters and the variable/subscript dedup caches (spec.md §9: "the
// usage counter is per-rule, per-predicate-name... reset between rules";
// "Variable scoping: variable names are unique within a rule; a fresh
// rule uses a fresh namespace").
func (b *Builder) resetRuleState() {
	b.predicateUsages = make(map[string]int)
	b.variables = make(map[string]*graph.Variable)
	b.subscripts = make(map[subscriptKey]*graph.SubscriptAddressing)
}

// usage returns the current (not-yet-incremented) usage index for a
// predicate name, 0 for a name not bumped yet in this rule.
func (b *Builder) usage(predicateName string) int {
	return b.predicateUsages[predicateName]
}

// bumpUsage advances the usage counter for predicateName, so the next
// call site (body conjunct or nested call expression) gets a distinct
// index (spec.md §4.2 disambiguation invariant: "each textual call site
// yields a distinct usage_index for the named predicate").
func (b *Builder) bumpUsage(predicateName string) {
	b.predicateUsages[predicateName]++
}

// Run builds and unions per-predicate graphs for every rule in program
// (spec.md §4.2: "Multiple rules for the same predicate union their
// graphs").
func (b *Builder) Run(program ruletree.Program) (map[string]*graph.TypesGraph, error) {
	b.ifStatementsCounter = 0
	graphs := make(map[string]*graph.TypesGraph)

	for _, rule := range program.Rules {
		predicateName := rule.Head.PredicateName
		g, err := b.traverseTree(predicateName, rule)
		if err != nil {
			return nil, fmt.Errorf("building graph for %s: %w", predicateName, err)
		}
		existing, ok := graphs[predicateName]
		if !ok {
			graphs[predicateName] = g
			continue
		}
		existing.Merge(g)
	}

	return graphs, nil
}

// traverseTree builds the graph for a single rule.
func (b *Builder) traverseTree(predicateName string, rule ruletree.Rule) (*graph.TypesGraph, error) {
	b.resetRuleState()
	g := graph.NewTypesGraph()

	for _, field := range rule.Head.Fields {
		if err := b.fillHeadField(g, predicateName, field); err != nil {
			return nil, err
		}
	}

	if rule.Body != nil {
		for _, conjunct := range rule.Body.Conjuncts {
			if err := b.fillConjunct(g, conjunct); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// fieldName normalizes a FieldValue's name: positional keys become
// "col<k>" (spec.md §4.2).
func fieldName(fv ruletree.FieldValue) string {
	if fv.IsPositional {
		return fmt.Sprintf("col%d", fv.PositionalN)
	}
	return fv.Field
}

// fillHeadField handles one head field "name: expr". Aggregation
// wrappers are transparent: only the inner expression is converted
// (spec.md §4.2).
func (b *Builder) fillHeadField(g *graph.TypesGraph, predicateName string, field ruletree.FieldValue) error {
	variable := graph.NewPredicateAddressing(predicateName, fieldName(field), 0)

	var expr *ruletree.Expression
	switch {
	case field.Value.Aggregation != nil:
		expr = field.Value.Aggregation
	case field.Value.Expression != nil:
		expr = field.Value.Expression
	default:
		return &UnsupportedConstructError{Node: field}
	}

	value, err := b.convertExpression(g, expr)
	if err != nil {
		return err
	}
	g.Connect(graph.Equality{Left: variable, Right: value, Bounds: b.bounds})
	return nil
}

// fillConjunct handles one body conjunct: unification, inclusion, or a
// bare predicate call (spec.md §4.2).
func (b *Builder) fillConjunct(g *graph.TypesGraph, conjunct ruletree.Conjunct) error {
	switch {
	case conjunct.Unification != nil:
		u := conjunct.Unification
		left, err := b.convertExpression(g, &u.Left)
		if err != nil {
			return err
		}
		right, err := b.convertExpression(g, &u.Right)
		if err != nil {
			return err
		}
		g.Connect(graph.Equality{Left: left, Right: right, Bounds: b.bounds})
		return nil

	case conjunct.Inclusion != nil:
		inc := conjunct.Inclusion
		list, err := b.convertExpression(g, &inc.List)
		if err != nil {
			return err
		}
		elem, err := b.convertExpression(g, &inc.Element)
		if err != nil {
			return err
		}
		g.Connect(graph.EqualityOfElement{List: list, Element: elem, Bounds: b.bounds})
		return nil

	case conjunct.Predicate != nil:
		return b.fillPredicateFields(g, *conjunct.Predicate, nil)

	default:
		return &UnsupportedConstructError{Node: conjunct}
	}
}

// fillPredicateFields emits one PredicateAddressing per argument of a
// predicate invocation, plus an Equality linking it to the argument's
// converted value. If result is non-nil (the invocation is used as an
// expression, not a bare body conjunct), a PredicateArgument edge links
// each argument back to result (spec.md §4.2, §10.6 "positional field
// normalization... applies uniformly to call arguments too").
func (b *Builder) fillPredicateFields(g *graph.TypesGraph, call ruletree.PredicateCall, result graph.Handle) error {
	usage := b.usage(call.PredicateName)
	// Bump before converting the arguments, so a nested call to the same
	// predicate inside them gets its own index.
	b.bumpUsage(call.PredicateName)
	for _, field := range call.FieldValues {
		expr := field.Value.Expression
		if expr == nil {
			return &UnsupportedConstructError{Node: field}
		}
		value, err := b.convertExpression(g, expr)
		if err != nil {
			return err
		}
		predicateField := graph.NewPredicateAddressing(call.PredicateName, fieldName(field), usage)
		g.Connect(graph.Equality{Left: predicateField, Right: value, Bounds: b.bounds})
		if result != nil {
			g.Connect(graph.PredicateArgument{Result: result, Arg: predicateField, Bounds: b.bounds})
		}
	}
	return nil
}

// convertExpression converts one AST expression node into a handle,
// emitting whatever edges its sub-structure requires (spec.md §4.2).
func (b *Builder) convertExpression(g *graph.TypesGraph, expr *ruletree.Expression) (graph.Handle, error) {
	switch {
	case expr.Literal != nil:
		return b.convertLiteral(g, expr.Literal)

	case expr.Variable != nil:
		return b.variableHandle(expr.Variable.VarName), nil

	case expr.Call != nil:
		call := *expr.Call
		result := graph.NewPredicateAddressing(call.PredicateName, graph.ResultField, b.usage(call.PredicateName))
		if err := b.fillPredicateFields(g, call, result); err != nil {
			return nil, err
		}
		return result, nil

	case expr.Subscript != nil:
		return b.convertSubscript(g, expr.Subscript)

	case expr.Record != nil:
		return b.convertRecord(g, expr.Record)

	case expr.Implication != nil:
		return b.convertImplication(g, expr.Implication)

	default:
		return nil, &UnsupportedConstructError{Node: expr}
	}
}

// variableHandle returns the shared Variable handle for name within the
// current rule, creating it on first reference.
func (b *Builder) variableHandle(name string) *graph.Variable {
	if v, ok := b.variables[name]; ok {
		return v
	}
	v := graph.NewVariable(name)
	b.variables[name] = v
	return v
}

func (b *Builder) convertSubscript(g *graph.TypesGraph, sub *ruletree.Subscript) (graph.Handle, error) {
	record, err := b.convertExpression(g, sub.Record)
	if err != nil {
		return nil, err
	}
	key := subscriptKey{record: record, fieldName: sub.FieldName}
	if existing, ok := b.subscripts[key]; ok {
		return existing, nil
	}
	result := graph.NewSubscriptAddressing(record, sub.FieldName)
	b.subscripts[key] = result
	g.Connect(graph.FieldBelonging{Record: record, Subscript: result, Bounds: b.bounds})
	return result, nil
}

func (b *Builder) convertRecord(g *graph.TypesGraph, rec *ruletree.RecordExpr) (graph.Handle, error) {
	fields := make(map[string]graph.Handle, len(rec.Fields))
	for _, fv := range rec.Fields {
		expr := fv.Value.Expression
		if expr == nil {
			return nil, &UnsupportedConstructError{Node: fv}
		}
		value, err := b.convertExpression(g, expr)
		if err != nil {
			return nil, err
		}
		fields[fieldName(fv)] = value
	}
	return graph.NewRecordLiteral(fields), nil
}

// convertImplication handles if/then/otherwise: a fresh synthetic
// variable is equated with the otherwise branch and with each
// consequence; conditions are converted for their side effects only and
// do not constrain the result (spec.md §4.2).
func (b *Builder) convertImplication(g *graph.TypesGraph, impl *ruletree.Implication) (graph.Handle, error) {
	inner := graph.NewVariable(fmt.Sprintf("_IfNode%d", b.ifStatementsCounter))
	b.ifStatementsCounter++

	otherwise, err := b.convertExpression(g, &impl.Otherwise)
	if err != nil {
		return nil, err
	}
	g.Connect(graph.Equality{Left: inner, Right: otherwise, Bounds: b.bounds})

	for _, ifThen := range impl.IfThen {
		if _, err := b.convertExpression(g, &ifThen.Condition); err != nil {
			return nil, err
		}
		value, err := b.convertExpression(g, &ifThen.Consequence)
		if err != nil {
			return nil, err
		}
		g.Connect(graph.Equality{Left: inner, Right: value, Bounds: b.bounds})
	}

	return inner, nil
}

func (b *Builder) convertLiteral(g *graph.TypesGraph, lit *ruletree.Literal) (graph.Handle, error) {
	switch {
	case lit.TheString != nil:
		return graph.NewStringLiteral(), nil
	case lit.TheNumber != nil:
		return graph.NewNumberLiteral(), nil
	case lit.TheBool != nil:
		return graph.NewBooleanLiteral(), nil
	case lit.TheNull:
		return graph.NewNullLiteral(), nil
	case lit.TheList != nil:
		elements := make([]graph.Handle, len(lit.TheList))
		for i := range lit.TheList {
			elem, err := b.convertExpression(g, &lit.TheList[i])
			if err != nil {
				return nil, err
			}
			elements[i] = elem
		}
		list := graph.NewListLiteral(elements)
		// Connect every element to the list, not just the first, so the
		// solver reconciles them all into one element type (spec.md
		// §3.2) and conflicts on a heterogeneous list like [1, "x"].
		for _, elem := range elements {
			g.Connect(graph.EqualityOfElement{List: list, Element: elem, Bounds: b.bounds})
		}
		return list, nil
	default:
		return nil, &UnsupportedConstructError{Node: lit}
	}
}

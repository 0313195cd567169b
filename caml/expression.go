// caml package compiles boolean filter expressions into CAML, the markup query
// dialect understood by the list query engine.
package caml

import "fmt"

// Operator is the comparison applied by a leaf expression. Its name is used verbatim as the
// CAML tag name.
type Operator int

const (
	Eq Operator = iota
	Contains
	Neq
	Like
)

var operatorNames = [...]string{
	Eq:       "Eq",
	Contains: "Contains",
	Neq:      "Neq",
	Like:     "Like",
}

// Operators lists every supported operator in declaration order
var Operators = []Operator{Eq, Contains, Neq, Like}

func (o Operator) Valid() bool {
	return o >= 0 && int(o) < len(operatorNames)
}

func (o Operator) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorNames[o]
}

// ParseOperator returns the operator whose tag name is exactly name.
func ParseOperator(name string) (Operator, error) {
	for _, o := range Operators {
		if operatorNames[o] == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("invalid operator: %q", name)
}

// Condition joins the children of a chain.
type Condition int

const (
	And Condition = iota
	Or
)

var conditionNames = [...]string{
	And: "And",
	Or:  "Or",
}

// Conditions lists every supported condition in declaration order
var Conditions = []Condition{And, Or}

func (c Condition) Valid() bool {
	return c >= 0 && int(c) < len(conditionNames)
}

func (c Condition) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionNames[c]
}

// ParseCondition returns the condition whose tag name is exactly name.
func ParseCondition(name string) (Condition, error) {
	for _, c := range Conditions {
		if conditionNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid condition: %q", name)
}

// Expression is either a Comparison or a Chain. A nil Expression is a valid
// "no filter" value.
//
// The interface is sealed: only types in this package implement it, so the
// compiler can switch over it exhaustively.
type Expression interface {
	expression()
}

// Comparison is a single field/operator/value predicate.
type Comparison struct {
	Field     string
	ValueType string
	Value     string
	Operator  Operator
	// ExtraAttributes is appended verbatim to the FieldRef element, e.g. `LookupId="TRUE"`.
	ExtraAttributes string
}

// Chain combines leaf comparisons with a single condition. Order of Children is
// significant: it determines how the compiled leaves are paired.
type Chain struct {
	Condition Condition
	Children  []Comparison
}

func (Comparison) expression() {}
func (Chain) expression()      {}

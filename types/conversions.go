package types

import (
	"fmt"

	"github.com/spcommon/caml-data-apis/caml"
	"github.com/spcommon/caml-data-apis/config"
)

// InputError reports request input that cannot be turned into an expression
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

func inputErrorf(format string, a ...interface{}) *InputError {
	return &InputError{msg: fmt.Sprintf(format, a...)}
}

// ToExpression converts the input to a CAML expression. Operator and condition names are
// normalized with the naming convention and operators outside supported are rejected.
func (e *ExpressionInput) ToExpression(naming config.NamingConvention, supported config.Operators) (caml.Expression, error) {
	if e == nil {
		return nil, nil
	}

	switch {
	case e.Comparison != nil && e.Chain != nil:
		return nil, inputErrorf("expression must contain either a comparison or a chain, not both")
	case e.Comparison != nil:
		return e.Comparison.toComparison(naming, supported)
	case e.Chain != nil:
		return e.Chain.toChain(naming, supported)
	default:
		return nil, nil
	}
}

func (c *ComparisonInput) toComparison(naming config.NamingConvention, supported config.Operators) (caml.Comparison, error) {
	op, err := caml.ParseOperator(naming.ToCAMLName(c.Operator))
	if err != nil {
		return caml.Comparison{}, inputErrorf("invalid operator '%s' for field '%s'", c.Operator, c.Field)
	}

	if !supported.Allows(op) {
		return caml.Comparison{}, inputErrorf("operator '%s' is not supported", op)
	}

	comparison := caml.Comparison{
		Field:     c.Field,
		ValueType: c.ValueType,
		Value:     c.Value,
		Operator:  op,
	}

	if c.ExtraAttributes != nil {
		comparison.ExtraAttributes = *c.ExtraAttributes
	}

	return comparison, nil
}

func (c *ChainInput) toChain(naming config.NamingConvention, supported config.Operators) (caml.Chain, error) {
	condition, err := caml.ParseCondition(naming.ToCAMLName(c.Condition))
	if err != nil {
		return caml.Chain{}, inputErrorf("invalid condition '%s'", c.Condition)
	}

	children := make([]caml.Comparison, 0, len(c.Children))
	for i := range c.Children {
		child, err := c.Children[i].toComparison(naming, supported)
		if err != nil {
			return caml.Chain{}, err
		}
		children = append(children, child)
	}

	return caml.Chain{Condition: condition, Children: children}, nil
}

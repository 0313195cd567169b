// types package contains the public API types
// that are shared between both REST and GraphQL
package types

import "net/http"

// ExpressionInput holds exactly one of Comparison or Chain. A nil *ExpressionInput, or one
// with neither set, is the "no filter" expression.
type ExpressionInput struct {
	Comparison *ComparisonInput `json:"comparison,omitempty" mapstructure:"comparison"`
	Chain      *ChainInput      `json:"chain,omitempty" mapstructure:"chain"`
}

type ComparisonInput struct {
	Field     string `json:"field" mapstructure:"field"`
	ValueType string `json:"valueType" mapstructure:"valueType"`
	Value     string `json:"value" mapstructure:"value"`
	Operator  string `json:"operator" mapstructure:"operator" validate:"required"`

	// Raw attributes appended to the FieldRef element
	ExtraAttributes *string `json:"extraAttributes,omitempty" mapstructure:"extraAttributes"`
}

type ChainInput struct {
	Condition string            `json:"condition" mapstructure:"condition" validate:"required"`
	Children  []ComparisonInput `json:"children" mapstructure:"children" validate:"dive"`
}

type WhereResult struct {
	Query string `json:"query"`
}

type OperatorsResult struct {
	Operators  []string `json:"operators"`
	Conditions []string `json:"conditions"`
}

// Route represents a request route to be served
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

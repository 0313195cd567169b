package config

import "github.com/iancoleman/strcase"

// NamingConvention maps the names used by API clients to CAML identifiers and back.
type NamingConvention interface {
	// ToCAMLName converts a client supplied operator or condition name, e.g. "not_eq", "NEQ"
	// or "and", to the CAML tag name ("Neq", "And").
	ToCAMLName(name string) string

	ToGraphQLEnumValue(name string) string
}

type NamingConventionFn func() NamingConvention

// Long form names accepted for the abbreviated CAML operators
var camlAliases = map[string]string{
	"equals":     "eq",
	"equal":      "eq",
	"not_eq":     "neq",
	"not_equals": "neq",
	"not_equal":  "neq",
	"ne":         "neq",
}

type defaultNaming struct {
}

func NewDefaultNaming() NamingConvention {
	return &defaultNaming{}
}

func (n *defaultNaming) ToCAMLName(name string) string {
	snake := strcase.ToSnake(name)
	if alias, ok := camlAliases[snake]; ok {
		snake = alias
	}
	return strcase.ToCamel(snake)
}

func (n *defaultNaming) ToGraphQLEnumValue(name string) string {
	return strcase.ToScreamingSnake(name)
}

package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/mitchellh/mapstructure"
	"github.com/spcommon/caml-data-apis/caml"
	"github.com/spcommon/caml-data-apis/types"
)

func (sg *SchemaGenerator) whereResolver() graphql.FieldResolveFn {
	return sg.expressionResolver(caml.ToQueryString)
}

func (sg *SchemaGenerator) compileResolver() graphql.FieldResolveFn {
	return sg.expressionResolver(caml.Compile)
}

func (sg *SchemaGenerator) expressionResolver(compile func(caml.Expression) (string, error)) graphql.FieldResolveFn {
	return func(params graphql.ResolveParams) (interface{}, error) {
		input, err := decodeExpression(params.Args[expressionArg])
		if err != nil {
			return nil, err
		}

		expr, err := input.ToExpression(sg.naming, sg.supported.Load())
		if err != nil {
			return nil, err
		}

		query, err := compile(expr)
		if err != nil {
			sg.logger.Error("unable to compile expression", "expression", expr, "error", err)
			return nil, fmt.Errorf("unable to compile expression: %w", err)
		}

		return query, nil
	}
}

func (sg *SchemaGenerator) operatorsResolver() graphql.FieldResolveFn {
	return func(params graphql.ResolveParams) (interface{}, error) {
		ops := sg.supported.Load().Operators()
		result := make([]interface{}, 0, len(ops))
		for _, op := range ops {
			result = append(result, op.String())
		}
		return result, nil
	}
}

func decodeExpression(arg interface{}) (*types.ExpressionInput, error) {
	if arg == nil {
		return nil, nil
	}

	var input types.ExpressionInput
	if err := mapstructure.Decode(arg, &input); err != nil {
		return nil, fmt.Errorf("invalid expression argument: %s", err)
	}
	return &input, nil
}

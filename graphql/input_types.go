package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/spcommon/caml-data-apis/caml"
	"github.com/spcommon/caml-data-apis/config"
)

type inputTypes struct {
	operator   *graphql.Enum
	condition  *graphql.Enum
	comparison *graphql.InputObject
	chain      *graphql.InputObject
	expression *graphql.InputObject
}

func buildInputTypes(naming config.NamingConvention) *inputTypes {
	operatorValues := graphql.EnumValueConfigMap{}
	for _, op := range caml.Operators {
		operatorValues[naming.ToGraphQLEnumValue(op.String())] = &graphql.EnumValueConfig{Value: op.String()}
	}

	conditionValues := graphql.EnumValueConfigMap{}
	for _, c := range caml.Conditions {
		conditionValues[naming.ToGraphQLEnumValue(c.String())] = &graphql.EnumValueConfig{Value: c.String()}
	}

	t := &inputTypes{
		operator: graphql.NewEnum(graphql.EnumConfig{
			Name:   "Operator",
			Values: operatorValues,
		}),
		condition: graphql.NewEnum(graphql.EnumConfig{
			Name:   "Condition",
			Values: conditionValues,
		}),
	}

	t.comparison = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ComparisonInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"field":           {Type: graphql.NewNonNull(graphql.String)},
			"valueType":       {Type: graphql.NewNonNull(graphql.String)},
			"value":           {Type: graphql.String},
			"operator":        {Type: graphql.NewNonNull(t.operator)},
			"extraAttributes": {Type: graphql.String},
		},
	})

	t.chain = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ChainInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"condition": {Type: graphql.NewNonNull(t.condition)},
			"children":  {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.comparison)))},
		},
	})

	t.expression = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ExpressionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"comparison": {Type: t.comparison},
			"chain":      {Type: t.chain},
		},
	})

	return t
}

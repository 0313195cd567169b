package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/log"
)

const expressionArg = "expression"

type SchemaGenerator struct {
	naming    config.NamingConvention
	supported *config.SupportedOperators
	logger    log.Logger
}

func NewSchemaGenerator(cfg config.Config) *SchemaGenerator {
	return &SchemaGenerator{
		naming:    cfg.Naming()(),
		supported: cfg.SupportedOperators(),
		logger:    cfg.Logger(),
	}
}

// BuildSchema builds the query schema. The Operator enum always lists every CAML operator,
// operators disabled by configuration are rejected when resolving.
func (sg *SchemaGenerator) BuildSchema() (graphql.Schema, error) {
	inputs := buildInputTypes(sg.naming)

	expressionArgs := graphql.FieldConfigArgument{
		expressionArg: &graphql.ArgumentConfig{
			Type: inputs.expression,
		},
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"where": &graphql.Field{
					Type:        graphql.NewNonNull(graphql.String),
					Description: "Compiles the expression into a CAML Where clause",
					Args:        expressionArgs,
					Resolve:     sg.whereResolver(),
				},
				"compile": &graphql.Field{
					Type:        graphql.NewNonNull(graphql.String),
					Description: "Compiles the expression into a CAML fragment without the Where envelope",
					Args:        expressionArgs,
					Resolve:     sg.compileResolver(),
				},
				"operators": &graphql.Field{
					Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(inputs.operator))),
					Resolve: sg.operatorsResolver(),
				},
			},
		}),
	})
}

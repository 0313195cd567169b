package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/log"
	"github.com/spcommon/caml-data-apis/types"
)

type executeQueryFunc func(body RequestBody, ctx context.Context) *graphql.Result

type RouteGenerator struct {
	logger    log.Logger
	schemaGen *SchemaGenerator
}

type RequestBody struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func NewRouteGenerator(cfg config.Config) *RouteGenerator {
	return &RouteGenerator{
		logger:    cfg.Logger(),
		schemaGen: NewSchemaGenerator(cfg),
	}
}

func (rg *RouteGenerator) Routes(pattern string) ([]types.Route, error) {
	schema, err := rg.schemaGen.BuildSchema()
	if err != nil {
		return nil, fmt.Errorf("unable to build graphql schema: %s", err)
	}

	return routesForSchema(pattern, func(body RequestBody, ctx context.Context) *graphql.Result {
		return rg.executeQuery(body, ctx, schema)
	}), nil
}

func routesForSchema(pattern string, execute executeQueryFunc) []types.Route {
	return []types.Route{
		{
			Method:  http.MethodGet,
			Pattern: pattern,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result := execute(RequestBody{
					Query:         r.URL.Query().Get("query"),
					OperationName: r.URL.Query().Get("operationName"),
				}, r.Context())
				writeResult(w, result)
			}),
		},
		{
			Method:  http.MethodPost,
			Pattern: pattern,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Body == nil {
					http.Error(w, "No request body", 400)
					return
				}

				var body RequestBody
				err := json.NewDecoder(r.Body).Decode(&body)
				if err != nil {
					http.Error(w, "Request body is invalid", 400)
					return
				}

				writeResult(w, execute(body, r.Context()))
			}),
		},
	}
}

func writeResult(w http.ResponseWriter, result *graphql.Result) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(result)
	if err != nil {
		http.Error(w, "response could not be encoded: "+err.Error(), 500)
	}
}

func (rg *RouteGenerator) executeQuery(body RequestBody, ctx context.Context, schema graphql.Schema) *graphql.Result {
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  body.Query,
		OperationName:  body.OperationName,
		VariableValues: body.Variables,
		Context:        ctx,
	})
	if len(result.Errors) > 0 {
		rg.logger.Error("unexpected errors processing graphql query", "errors", result.Errors)
	}
	return result
}

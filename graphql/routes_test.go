package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	getIndex  = 0
	postIndex = 1
)

type responseBody struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func createRoutes(t *testing.T, cfg config.Config) []types.Route {
	t.Helper()
	routes, err := NewRouteGenerator(cfg).Routes("/graphql")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	return routes
}

func executePost(t *testing.T, routes []types.Route, body RequestBody) responseBody {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	routes[postIndex].Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(b)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp responseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestWhereComparison(t *testing.T) {
	routes := createRoutes(t, config.NewConfigMock().Default())

	resp := executePost(t, routes, RequestBody{Query: `query {
  where(expression: {comparison: {field: "Title", valueType: "Text", value: "x", operator: EQ, extraAttributes: "Nullable=\"TRUE\""}})
}`})

	assert.Empty(t, resp.Errors)
	assert.Equal(t,
		`<Where><Eq><FieldRef Name="Title" Nullable="TRUE"/><Value Type="Text"><![CDATA[x]]></Value></Eq></Where>`,
		resp.Data["where"])
}

func TestWhereEmptyStrings(t *testing.T) {
	routes := createRoutes(t, config.NewConfigMock().Default())

	resp := executePost(t, routes, RequestBody{Query: `query {
  where(expression: {comparison: {field: "", valueType: "", value: "", operator: EQ}})
}`})

	assert.Empty(t, resp.Errors)
	assert.Equal(t, `<Where><Eq><FieldRef Name="" /><Value Type=""><![CDATA[]]></Value></Eq></Where>`,
		resp.Data["where"])
}

func TestWhereChainWithVariables(t *testing.T) {
	routes := createRoutes(t, config.NewConfigMock().Default())

	resp := executePost(t, routes, RequestBody{
		Query: `query Where($expr: ExpressionInput) { where(expression: $expr) }`,
		Variables: map[string]interface{}{
			"expr": map[string]interface{}{
				"chain": map[string]interface{}{
					"condition": "AND",
					"children": []interface{}{
						map[string]interface{}{"field": "A", "valueType": "Text", "value": "1", "operator": "EQ"},
						map[string]interface{}{"field": "B", "valueType": "Text", "value": "2", "operator": "NEQ"},
					},
				},
			},
		},
	})

	assert.Empty(t, resp.Errors)
	assert.Equal(t, `<Where><And>`+
		`<Neq><FieldRef Name="B" /><Value Type="Text"><![CDATA[2]]></Value></Neq>`+
		`<Eq><FieldRef Name="A" /><Value Type="Text"><![CDATA[1]]></Value></Eq>`+
		`</And></Where>`, resp.Data["where"])
}

func TestWhereAbsentAndCompile(t *testing.T) {
	routes := createRoutes(t, config.NewConfigMock().Default())

	resp := executePost(t, routes, RequestBody{Query: `{
  where
  compile(expression: {chain: {condition: OR, children: []}})
}`})

	assert.Empty(t, resp.Errors)
	assert.Equal(t, "<Where></Where>", resp.Data["where"])
	assert.Equal(t, "", resp.Data["compile"])
}

func TestOperatorsQueryUsingGet(t *testing.T) {
	cfg := config.NewConfigMock()
	cfg.On("SupportedOperators").Return(config.NewSupportedOperators(config.OpEq | config.OpContains))
	cfg.Default()
	routes := createRoutes(t, cfg)

	w := httptest.NewRecorder()
	target := "/graphql?query=" + url.QueryEscape("{ operators }")
	routes[getIndex].Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp responseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Empty(t, resp.Errors)
	assert.Equal(t, []interface{}{"EQ", "CONTAINS"}, resp.Data["operators"])
}

func TestWhereUnsupportedOperator(t *testing.T) {
	cfg := config.NewConfigMock()
	cfg.On("SupportedOperators").Return(config.NewSupportedOperators(config.OpEq))
	cfg.Default()
	routes := createRoutes(t, cfg)

	resp := executePost(t, routes, RequestBody{Query: `{
  where(expression: {comparison: {field: "Title", valueType: "Text", value: "x", operator: LIKE}})
}`})

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "operator 'Like' is not supported", resp.Errors[0].Message)
}

func TestPostInvalidBody(t *testing.T) {
	routes := createRoutes(t, config.NewConfigMock().Default())

	w := httptest.NewRecorder()
	routes[postIndex].Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

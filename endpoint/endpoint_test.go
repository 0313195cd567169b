package endpoint

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/graphql"
	"github.com/spcommon/caml-data-apis/log"
	"github.com/spcommon/caml-data-apis/types"
	"go.uber.org/zap"
)

const chainBody = `{"expression": {"chain": {"condition": "and", "children": [
	{"field": "Status", "valueType": "Choice", "value": "Open", "operator": "eq"},
	{"field": "Title", "valueType": "Text", "value": "bid", "operator": "contains"}
]}}}`

const chainQuery = `<Where><And>` +
	`<Contains><FieldRef Name="Title" /><Value Type="Text"><![CDATA[bid]]></Value></Contains>` +
	`<Eq><FieldRef Name="Status" /><Value Type="Choice"><![CDATA[Open]]></Value></Eq>` +
	`</And></Where>`

func findRoute(routes []types.Route, method string, pattern string) types.Route {
	for _, route := range routes {
		if route.Method == method && route.Pattern == pattern {
			return route
		}
	}
	Fail("route not found: " + method + " " + pattern)
	return types.Route{}
}

func execute(route types.Route, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	route.Handler.ServeHTTP(w, httptest.NewRequest(route.Method, route.Pattern, bytes.NewBufferString(body)))
	return w
}

var _ = Describe("DataEndpoint", func() {
	var endpoint *DataEndpoint

	BeforeEach(func() {
		endpoint = NewEndpointConfigWithLogger(log.NewZapLogger(zap.NewNop())).NewEndpoint()
	})

	Describe("RoutesREST()", func() {
		It("Should compile a chain into a Where clause", func() {
			routes := endpoint.RoutesREST("/v1")
			Expect(routes).To(HaveLen(3))

			w := execute(findRoute(routes, http.MethodPost, "/v1/where"), chainBody)
			Expect(w.Code).To(Equal(http.StatusOK))

			var result types.WhereResult
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result.Query).To(Equal(chainQuery))
		})

		It("Should return an empty Where clause when there is no expression", func() {
			w := execute(findRoute(endpoint.RoutesREST("/v1"), http.MethodPost, "/v1/where"), `{}`)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"query": "<Where></Where>"}`))
		})
	})

	Describe("RoutesGraphQL()", func() {
		It("Should compile the same expression as the REST endpoint", func() {
			routes, err := endpoint.RoutesGraphQL("/graphql")
			Expect(err).ToNot(HaveOccurred())
			Expect(routes).To(HaveLen(2))

			body, err := json.Marshal(graphql.RequestBody{Query: `{
  where(expression: {chain: {condition: AND, children: [
    {field: "Status", valueType: "Choice", value: "Open", operator: EQ},
    {field: "Title", valueType: "Text", value: "bid", operator: CONTAINS}
  ]}})
}`})
			Expect(err).ToNot(HaveOccurred())

			w := execute(findRoute(routes, http.MethodPost, "/graphql"), string(body))
			Expect(w.Code).To(Equal(http.StatusOK))

			var result struct {
				Data map[string]string `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result.Data).To(HaveKeyWithValue("where", chainQuery))
		})
	})

	Describe("UpdateSupportedOperators()", func() {
		It("Should apply to routes that were already created", func() {
			route := findRoute(endpoint.RoutesREST("/v1"), http.MethodPost, "/v1/where")

			endpoint.UpdateSupportedOperators(config.OpEq)
			w := execute(route, chainBody)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("operator 'Contains' is not supported"))

			endpoint.UpdateSupportedOperators(config.AllOperators)
			Expect(execute(route, chainBody).Code).To(Equal(http.StatusOK))
		})

		It("Should be reflected by the operators route", func() {
			route := findRoute(endpoint.RoutesREST("/v1"), http.MethodGet, "/v1/operators")
			endpoint.UpdateSupportedOperators(config.OpNeq | config.OpLike)

			w := execute(route, "")
			Expect(w.Body.String()).To(MatchJSON(`{"operators": ["Neq", "Like"], "conditions": ["And", "Or"]}`))
		})
	})
})

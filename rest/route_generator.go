package rest

import (
	"github.com/spcommon/caml-data-apis/config"
	restEndpointV1 "github.com/spcommon/caml-data-apis/rest/endpoint/v1"
	"github.com/spcommon/caml-data-apis/types"
)

type RouteGenerator struct {
	config config.Config
}

func NewRouteGenerator(cfg config.Config) *RouteGenerator {
	return &RouteGenerator{
		config: cfg,
	}
}

func (g *RouteGenerator) Routes(prefix string) []types.Route {
	return restEndpointV1.Routes(prefix, g.config)
}

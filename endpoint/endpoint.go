package endpoint

import (
	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/graphql"
	"github.com/spcommon/caml-data-apis/log"
	"github.com/spcommon/caml-data-apis/rest"
	"github.com/spcommon/caml-data-apis/types"
	"go.uber.org/zap"
)

type DataEndpointConfig struct {
	supportedOps *config.SupportedOperators
	naming       config.NamingConventionFn
	logger       log.Logger
}

func (cfg DataEndpointConfig) SupportedOperators() *config.SupportedOperators {
	return cfg.supportedOps
}

func (cfg DataEndpointConfig) Naming() config.NamingConventionFn {
	return cfg.naming
}

func (cfg DataEndpointConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *DataEndpointConfig) WithSupportedOperators(supportedOps config.Operators) *DataEndpointConfig {
	cfg.supportedOps = config.NewSupportedOperators(supportedOps)
	return cfg
}

func (cfg *DataEndpointConfig) WithNaming(naming config.NamingConventionFn) *DataEndpointConfig {
	cfg.naming = naming
	return cfg
}

func (cfg *DataEndpointConfig) NewEndpoint() *DataEndpoint {
	return &DataEndpoint{
		graphQLRouteGen: graphql.NewRouteGenerator(cfg),
		restRouteGen:    rest.NewRouteGenerator(cfg),
		supportedOps:    cfg.supportedOps,
		logger:          cfg.logger,
	}
}

type DataEndpoint struct {
	graphQLRouteGen *graphql.RouteGenerator
	restRouteGen    *rest.RouteGenerator
	supportedOps    *config.SupportedOperators
	logger          log.Logger
}

func NewEndpointConfig() (*DataEndpointConfig, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewEndpointConfigWithLogger(log.NewZapLogger(logger)), nil
}

func NewEndpointConfigWithLogger(logger log.Logger) *DataEndpointConfig {
	return &DataEndpointConfig{
		supportedOps: config.NewSupportedOperators(config.AllOperators),
		naming:       config.NewDefaultNaming,
		logger:       logger,
	}
}

func (e *DataEndpoint) RoutesGraphQL(pattern string) ([]types.Route, error) {
	return e.graphQLRouteGen.Routes(pattern)
}

func (e *DataEndpoint) RoutesREST(pattern string) []types.Route {
	return e.restRouteGen.Routes(pattern)
}

// UpdateSupportedOperators replaces the operators accepted by routes already created
func (e *DataEndpoint) UpdateSupportedOperators(ops config.Operators) {
	e.logger.Info("updating supported operators", "operators", ops.Names())
	e.supportedOps.Store(ops)
}

package endpoint

import (
	"net/http"
	"path"

	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/types"
)

// Routes returns a slice of all the endpoint routes
func Routes(prefix string, cfg config.Config) []types.Route {
	rl := routeList{
		logger:    cfg.Logger(),
		naming:    cfg.Naming()(),
		supported: cfg.SupportedOperators(),
	}

	return []types.Route{
		{
			Method:  http.MethodPost,
			Pattern: path.Join(prefix, "/where"),
			Handler: http.HandlerFunc(rl.Where),
		},
		{
			Method:  http.MethodPost,
			Pattern: path.Join(prefix, "/compile"),
			Handler: http.HandlerFunc(rl.Compile),
		},
		{
			Method:  http.MethodGet,
			Pattern: path.Join(prefix, "/operators"),
			Handler: http.HandlerFunc(rl.GetOperators),
		},
	}
}

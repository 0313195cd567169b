package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	log2 "log"
	"net/http"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/julienschmidt/httprouter"
	"github.com/spcommon/caml-data-apis/config"
	"github.com/spcommon/caml-data-apis/endpoint"
	"github.com/spcommon/caml-data-apis/log"
	"github.com/spcommon/caml-data-apis/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultGraphQLPath = "/graphql"
const defaultRESTPath = "/v1"

// Environment variables prefixed with "CAML_API_" can override settings e.g. "CAML_API_OPERATORS"
const envVarPrefix = "caml_api"

var cfgFile string
var logger log.Logger

var serverCmd = &cobra.Command{
	Use:   os.Args[0] + " [--start-graphql|--start-rest] [OPTIONS]",
	Short: "GraphQL and REST endpoints compiling filter expressions into CAML queries",
	Args: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("start-graphql") && !viper.GetBool("start-rest") {
			return errors.New("at least one endpoint type should be started")
		}

		if _, err := config.Ops(getStringSlice("operators")...); err != nil {
			return err
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		endpoint := createEndpoint()
		watchConfig(endpoint)

		graphqlPort := viper.GetInt("graphql-port")
		restPort := viper.GetInt("rest-port")

		startGraphQL := viper.GetBool("start-graphql")
		startREST := viper.GetBool("start-rest")

		if graphqlPort == restPort {
			if startGraphQL && startREST && viper.GetString("graphql-path") == viper.GetString("rest-path") {
				logger.Fatal("graphql and rest paths can not be the same when using the same port")
			}

			router := createRouter()
			endpointNames := ""
			if startGraphQL {
				addGraphQLRoutes(router, endpoint)
				endpointNames += "GraphQL"
			}
			if startREST {
				addRESTRoutes(router, endpoint)
				if endpointNames != "" {
					endpointNames += "/"
				}
				endpointNames += "REST"
			}
			listenAndServe(router, graphqlPort, endpointNames)
		} else {
			finish := make(chan bool)
			if startGraphQL {
				router := createRouter()
				addGraphQLRoutes(router, endpoint)
				go listenAndServe(router, graphqlPort, "GraphQL")
			}
			if startREST {
				router := createRouter()
				addRESTRoutes(router, endpoint)
				go listenAndServe(router, restPort, "REST")
			}
			<-finish
		}
	},
}

// Execute start GraphQL/REST endpoints
func Execute() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log2.Fatalf("unable to initialize logger: %v", err)
	}

	logger = log.NewZapLogger(zapLogger)

	flags := serverCmd.PersistentFlags()

	// General endpoint flags
	flags.StringVarP(&cfgFile, "config", "c", "", "config file, changes to operators are applied without a restart")
	flags.StringSlice("operators", config.AllOperators.Names(),
		"list of supported comparison operators. options: Eq,Contains,Neq,Like")
	flags.Bool("request-logging", false, "enable request logging")
	flags.String("access-control-allow-origin", "", "Access-Control-Allow-Origin header value")

	// GraphQL specific flags
	flags.Bool("start-graphql", true, "start the GraphQL endpoint")
	flags.String("graphql-path", defaultGraphQLPath, "GraphQL endpoint path")
	flags.Int("graphql-port", 8080, "GraphQL endpoint port")

	// REST specific flags
	flags.Bool("start-rest", true, "start the REST endpoint")
	flags.String("rest-path", defaultRESTPath, "REST endpoint path")
	flags.Int("rest-port", 8080, "REST endpoint port")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			_ = viper.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	cobra.OnInitialize(initialize)

	viper.SetEnvPrefix(envVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := serverCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createEndpoint() *endpoint.DataEndpoint {
	supportedOps := getStringSlice("operators")
	ops, err := config.Ops(supportedOps...)
	if err != nil {
		logger.Fatal("invalid supported operator", "operators", supportedOps, "error", err)
	}

	cfg := endpoint.NewEndpointConfigWithLogger(logger).
		WithSupportedOperators(ops)

	return cfg.NewEndpoint()
}

func watchConfig(endpoint *endpoint.DataEndpoint) {
	if cfgFile == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		supportedOps := getStringSlice("operators")
		ops, err := config.Ops(supportedOps...)
		if err != nil {
			logger.Error("ignoring invalid supported operators from config file",
				"file", e.Name,
				"operators", supportedOps,
				"error", err)
			return
		}
		endpoint.UpdateSupportedOperators(ops)
	})
	viper.WatchConfig()
}

func addGraphQLRoutes(router *httprouter.Router, endpoint *endpoint.DataEndpoint) {
	routes, err := endpoint.RoutesGraphQL(viper.GetString("graphql-path"))
	if err != nil {
		logger.Fatal("unable to generate graphql routes",
			"error", err)
	}

	addRoutes(router, routes)
}

func addRESTRoutes(router *httprouter.Router, endpoint *endpoint.DataEndpoint) {
	addRoutes(router, endpoint.RoutesREST(viper.GetString("rest-path")))
}

func addRoutes(router *httprouter.Router, routes []types.Route) {
	for _, route := range routes {
		router.Handler(route.Method, route.Pattern, route.Handler)
	}
}

func maybeAddRequestLogging(handler http.Handler) http.Handler {
	if viper.GetBool("request-logging") {
		handler = log.NewLoggingHandler(handler, logger)
	}
	return handler
}

func maybeAddCORS(handler http.Handler) http.Handler {
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", value)
			handler.ServeHTTP(w, r)
		})
	}
	return handler
}

func initialize() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Info("using config file",
				"file", viper.ConfigFileUsed())
		}
	}
}

func createRouter() *httprouter.Router {
	router := httprouter.New()
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Access-Control-Request-Method") != "" {
				header := w.Header()
				header.Set("Access-Control-Allow-Method", r.Header.Get("Access-Control-Request-Method"))
				header.Set("Access-Control-Allow-Headers", r.Header.Get("Access-Control-Request-Headers"))
				header.Set("Access-Control-Allow-Origin", value)
			}

			w.WriteHeader(http.StatusNoContent)
		})
	}
	return router
}

func listenAndServe(handler http.Handler, port int, endpointNames string) {
	logger.Info("server listening",
		"port", port,
		"type", endpointNames)
	handler = maybeAddCORS(maybeAddRequestLogging(handler))
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler)
	if err != nil {
		logger.Fatal("unable to start server",
			"port", port,
			"error", err)
	}
}

func getStringSlice(key string) []string {
	value := viper.GetStringSlice(key)
	slice, err := toStringSlice(value)
	if err != nil {
		logger.Fatal("invalid string slice value for setting",
			"error", err,
			"key", key,
			"value", value)
	}
	return slice
}

// toStringSlice splits entries holding comma separated values, as set through environment
// variables, e.g. CAML_API_OPERATORS="Eq,Neq"
func toStringSlice(slice []string) ([]string, error) {
	result := make([]string, 0)
	for _, entry := range slice {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		stringReader := strings.NewReader(entry)
		csvReader := csv.NewReader(stringReader)
		split, err := csvReader.Read()
		if err != nil {
			return nil, err
		}
		for _, part := range split {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result, nil
}

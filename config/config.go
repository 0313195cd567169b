package config

import "github.com/spcommon/caml-data-apis/log"

type Config interface {
	SupportedOperators() *SupportedOperators
	Naming() NamingConventionFn
	Logger() log.Logger
}

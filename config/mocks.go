package config

import (
	"github.com/spcommon/caml-data-apis/log"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ConfigMock struct {
	mock.Mock
}

func NewConfigMock() *ConfigMock {
	return &ConfigMock{}
}

func (o *ConfigMock) Default() *ConfigMock {
	o.On("SupportedOperators").Return(NewSupportedOperators(AllOperators))
	o.On("Naming").Return(NamingConventionFn(NewDefaultNaming))
	o.On("Logger").Return(log.NewZapLogger(zap.NewExample()))
	return o
}

func (o *ConfigMock) SupportedOperators() *SupportedOperators {
	args := o.Called()
	return args.Get(0).(*SupportedOperators)
}

func (o *ConfigMock) Naming() NamingConventionFn {
	args := o.Called()
	return args.Get(0).(NamingConventionFn)
}

func (o *ConfigMock) Logger() log.Logger {
	args := o.Called()
	return args.Get(0).(log.Logger)
}

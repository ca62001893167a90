package bootstrap

import (
	"github.com/kbukum/seqkit/config"
)

// Config is the interface constraint for application configuration types.
// Any struct embedding config.ServiceConfig gets GetServiceConfig through
// promotion and only has to add ApplyDefaults and Validate if it extends them.
//
// Example:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Multiplier int `yaml:"multiplier" mapstructure:"multiplier"`
//	}
//
//	app, err := bootstrap.NewApp[*Config](&cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}

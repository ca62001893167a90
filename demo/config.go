package demo

import (
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

// ServiceName names the demo binary in logs, telemetry and config lookup.
const ServiceName = "seqdemo"

// EnvPrefix is the prefix for environment overrides, e.g. SEQDEMO_MULTIPLIER.
const EnvPrefix = "SEQDEMO"

// SamplesConfig holds the two input lists.
type SamplesConfig struct {
	Evens  []int `yaml:"evens" mapstructure:"evens" validate:"required,min=1"`
	Thirds []int `yaml:"thirds" mapstructure:"thirds" validate:"required,min=1"`
}

// Config is the demo driver configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Samples    SamplesConfig        `yaml:"samples" mapstructure:"samples"`
	Multiplier int                  `yaml:"multiplier" mapstructure:"multiplier" validate:"gte=1,lte=1000"`
	Telemetry  observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Samples.Evens == nil {
		c.Samples.Evens = []int{0, 2, 4, 6, 8}
	}
	if c.Samples.Thirds == nil {
		c.Samples.Thirds = []int{0, 3, 6, 9}
	}
	if c.Multiplier == 0 {
		c.Multiplier = 2
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
	c.Telemetry.ServiceName = c.Name
	c.Telemetry.ServiceVersion = c.Version
	c.Telemetry.Environment = c.Environment
}

// Validate checks struct tags, the embedded service config and the
// telemetry settings.
func (c *Config) Validate() error {
	v := validation.New()
	v.Merge("config", validation.Validate(c))
	v.Merge("config", c.ServiceConfig.Validate())
	v.Check(!c.Telemetry.Enabled || c.Telemetry.Endpoint != "",
		"telemetry.endpoint", "is required when telemetry is enabled")
	return v.Error()
}

// LoadConfig loads, defaults and validates the demo configuration.
func LoadConfig(opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{}
	opts = append([]config.LoaderOption{config.WithEnvPrefix(EnvPrefix)}, opts...)
	if err := config.LoadConfig(ServiceName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.InvalidConfig(ServiceName, err)
	}
	return cfg, nil
}

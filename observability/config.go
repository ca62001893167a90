package observability

// Config configures tracing and metrics.
type Config struct {
	// Enabled turns on OTLP export.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	// Insecure allows plain HTTP to the endpoint.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`

	ServiceName    string `yaml:"-" mapstructure:"-"`
	ServiceVersion string `yaml:"-" mapstructure:"-"`
	Environment    string `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns development defaults with export disabled.
func DefaultConfig(serviceName string) Config {
	return Config{
		Endpoint:    "localhost:4318",
		Insecure:    true,
		SampleRate:  1.0,
		ServiceName: serviceName,
		Environment: "development",
	}
}

// Exporting reports whether OTLP exporters should be attached.
func (c Config) Exporting() bool {
	return c.Enabled && c.Endpoint != ""
}

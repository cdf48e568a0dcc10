package metrics

import "github.com/kilianp07/hostelmeal/core/factory"

// Config defines the metrics sinks and the Prometheus exposition address.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddress serves /metrics when a prometheus sink is configured.
	PrometheusAddress string `json:"prometheus_address"`
}

// SetDefaults applies the default exposition address.
func (c *Config) SetDefaults() {
	if c.PrometheusAddress == "" {
		c.PrometheusAddress = ":9102"
	}
}

// PrometheusEnabled reports whether a prometheus sink is configured.
func (c Config) PrometheusEnabled() bool {
	for _, s := range c.Sinks {
		if s.Type == "prometheus" {
			return true
		}
	}
	return false
}

// Package config loads the server configuration.
package config

import (
	"github.com/effective-security/x/configloader"
)

type Config struct {
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream"`
}

// UpstreamConfig points at the hypotheken API host. An empty base URL
// selects the production host.
type UpstreamConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// Load config from file
func Load(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

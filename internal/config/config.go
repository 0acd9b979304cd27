// Package config loads CLI configuration from an HCL file, with
// environment-variable overrides for the credential.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config holds the Parseline CLI configuration.
type Config struct {
	BaseURL  string `hcl:"base_url,optional"`
	APIToken string `hcl:"api_token,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Load parses the HCL config file at path and applies environment
// overrides. An empty path yields an empty config so the environment can
// supply everything.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
	}

	if v := os.Getenv("PARSELINE_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("PARSELINE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	return &cfg, nil
}

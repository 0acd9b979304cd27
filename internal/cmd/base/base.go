// Package base holds the shared collaborators embedded by every CLI
// command.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/parseline/parseline-go/internal/config"
	"github.com/parseline/parseline-go/pkg/parseline"
)

// Command is embedded by all CLI commands.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	FS  afero.Fs
}

// NewClient loads configuration from configPath (and the environment) and
// builds the API client.
func (c *Command) NewClient(configPath string) (*parseline.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := c.Log
	if cfg.LogLevel != "" {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  logger.Name(),
			Level: hclog.LevelFromString(cfg.LogLevel),
		})
	}

	return parseline.NewClient(parseline.Config{
		APIToken: cfg.APIToken,
		BaseURL:  cfg.BaseURL,
		Logger:   logger,
	})
}

// NewOrgClient builds the API client and resolves the organization
// context from the configured token.
func (c *Command) NewOrgClient(ctx context.Context, configPath string) (*parseline.Client, string, error) {
	client, err := c.NewClient(configPath)
	if err != nil {
		return nil, "", err
	}

	orgID, err := client.Account.ResolveOrganization(ctx)
	if err != nil {
		return nil, "", err
	}

	return client, orgID, nil
}

// OutputJSON prints v as indented JSON to the UI and returns the command
// exit code.
func (c *Command) OutputJSON(v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error rendering output: %v", err))
		return 1
	}
	c.UI.Output(string(out))
	return 0
}

// FlagSet wraps flag.FlagSet so command help can embed flag usage.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps a standard flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the flag usage block for embedding into command help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + buf.String()
}

package versioncmd

import (
	"github.com/parseline/parseline-go/internal/cmd/base"
	"github.com/parseline/parseline-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: parseline version

  This command prints the CLI version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}

package whoami

import (
	"context"
	"flag"
	"fmt"

	"github.com/parseline/parseline-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Show the organization the configured token is scoped to"
}

func (c *Command) Help() string {
	return `Usage: parseline whoami

  This command exchanges the configured API token for its organization ID.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("whoami", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the Parseline config file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	orgID, err := client.Account.ResolveOrganization(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error resolving organization: %v", err))
		return 1
	}

	return c.OutputJSON(map[string]string{"organization_id": orgID})
}

package tags

import (
	"context"
	"flag"
	"fmt"

	"github.com/parseline/parseline-go/internal/cmd/base"
	"github.com/parseline/parseline-go/pkg/parseline"
)

type ListCommand struct {
	*base.Command

	flagConfig string
	flagLimit  int
	flagSkip   int
}

func (c *ListCommand) Synopsis() string {
	return "List tags in the organization"
}

func (c *ListCommand) Help() string {
	return `Usage: parseline tags list

  This command lists the organization's tags.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("list", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the Parseline config file",
	)
	f.IntVar(
		&c.flagLimit, "limit", 0, "Maximum number of tags to return.",
	)
	f.IntVar(
		&c.flagSkip, "skip", 0, "Number of tags to skip.",
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx := context.Background()
	client, orgID, err := c.NewOrgClient(ctx, c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	payload, err := client.Tags.List(ctx, orgID, parseline.ListTagsRequest{
		Limit: c.flagLimit,
		Skip:  c.flagSkip,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing tags: %v", err))
		return 1
	}

	return c.OutputJSON(payload)
}

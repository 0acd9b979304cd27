package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/parseline/parseline-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command

	flagConfig string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a document by ID"
}

func (c *DeleteCommand) Help() string {
	return `Usage: parseline documents delete <document-id>

  This command deletes a single document.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("delete", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the Parseline config file",
	)

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if flags.NArg() != 1 {
		ui.Error("exactly one document ID is required")
		return 1
	}
	documentID := flags.Arg(0)

	ctx := context.Background()
	client, orgID, err := c.NewOrgClient(ctx, c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	payload, err := client.Documents.Delete(ctx, orgID, documentID)
	if err != nil {
		ui.Error(fmt.Sprintf("error deleting document: %v", err))
		return 1
	}

	return c.OutputJSON(payload)
}

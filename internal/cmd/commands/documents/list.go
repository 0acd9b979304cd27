package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/parseline/parseline-go/internal/cmd/base"
	"github.com/parseline/parseline-go/pkg/parseline"
)

type ListCommand struct {
	*base.Command

	flagConfig     string
	flagLimit      int
	flagSkip       int
	flagTagIDs     string
	flagNameSearch string
}

func (c *ListCommand) Synopsis() string {
	return "List documents in the organization"
}

func (c *ListCommand) Help() string {
	return `Usage: parseline documents list

  This command lists the organization's documents.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("list", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the Parseline config file",
	)
	f.IntVar(
		&c.flagLimit, "limit", 0, "Maximum number of documents to return.",
	)
	f.IntVar(
		&c.flagSkip, "skip", 0, "Number of documents to skip.",
	)
	f.StringVar(
		&c.flagTagIDs, "tag-ids", "", "Comma-separated tag IDs to filter by.",
	)
	f.StringVar(
		&c.flagNameSearch, "name-search", "", "Filter documents by name substring.",
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

	payload, err := client.Documents.List(ctx, orgID, parseline.ListDocumentsRequest{
		Limit:      c.flagLimit,
		Skip:       c.flagSkip,
		TagIDs:     c.flagTagIDs,
		NameSearch: c.flagNameSearch,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing documents: %v", err))
		return 1
	}

	return c.OutputJSON(payload)
}

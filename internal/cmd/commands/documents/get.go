package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/parseline/parseline-go/internal/cmd/base"
	"github.com/parseline/parseline-go/pkg/parseline"
)

type GetCommand struct {
	*base.Command

	flagConfig   string
	flagFileType string
}

func (c *GetCommand) Synopsis() string {
	return "Fetch a document by ID"
}

func (c *GetCommand) Help() string {
	return `Usage: parseline documents get <document-id>

  This command fetches a single document.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("get", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the Parseline config file",
	)
	f.StringVar(
		&c.flagFileType, "file-type", "", "Requested file type for the document content.",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
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

	payload, err := client.Documents.Get(ctx, orgID, documentID, parseline.GetDocumentRequest{
		FileType: c.flagFileType,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching document: %v", err))
		return 1
	}

	return c.OutputJSON(payload)
}

package documents

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/parseline/parseline-go/internal/cmd/base"
	"github.com/parseline/parseline-go/pkg/parseline"
)

type UploadCommand struct {
	*base.Command

	flagConfig   string
	flagName     string
	flagTagIDs   string
	flagMetadata string
}

func (c *UploadCommand) Synopsis() string {
	return "Upload a document from a local file"
}

func (c *UploadCommand) Help() string {
	return `Usage: parseline documents upload <file>

  This command uploads a local file as a new document.` +
		c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("upload", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the Parseline config file",
	)
	f.StringVar(
		&c.flagName, "name", "", "Document name. Defaults to the file name.",
	)
	f.StringVar(
		&c.flagTagIDs, "tag-ids", "", "Comma-separated tag IDs to attach.",
	)
	f.StringVar(
		&c.flagMetadata, "metadata", "", "Document metadata as JSON text.",
	)

	return f
}

func (c *UploadCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if flags.NArg() != 1 {
		ui.Error("exactly one file path is required")
		return 1
	}
	path := flags.Arg(0)

	content, err := afero.ReadFile(c.FS, path)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading file: %v", err))
		return 1
	}

	name := c.flagName
	if name == "" {
		name = filepath.Base(path)
	}

	ctx := context.Background()
	client, orgID, err := c.NewOrgClient(ctx, c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	payload, err := client.Documents.Upload(ctx, orgID, parseline.UploadDocumentRequest{
		Name:     name,
		Content:  content,
		TagIDs:   c.flagTagIDs,
		Metadata: c.flagMetadata,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error uploading document: %v", err))
		return 1
	}

	return c.OutputJSON(payload)
}

package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/parseline/parseline-go/internal/cmd/base"
	"github.com/parseline/parseline-go/internal/cmd/commands/documents"
	"github.com/parseline/parseline-go/internal/cmd/commands/tags"
	"github.com/parseline/parseline-go/internal/cmd/commands/versioncmd"
	"github.com/parseline/parseline-go/internal/cmd/commands/whoami"
)

// Commands is the CLI command registry.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}

	Commands = map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
		"whoami": func() (cli.Command, error) {
			return &whoami.Command{Command: baseCommand}, nil
		},
		"documents": func() (cli.Command, error) {
			return &documents.Command{Command: baseCommand}, nil
		},
		"documents list": func() (cli.Command, error) {
			return &documents.ListCommand{Command: baseCommand}, nil
		},
		"documents get": func() (cli.Command, error) {
			return &documents.GetCommand{Command: baseCommand}, nil
		},
		"documents upload": func() (cli.Command, error) {
			return &documents.UploadCommand{Command: baseCommand}, nil
		},
		"documents delete": func() (cli.Command, error) {
			return &documents.DeleteCommand{Command: baseCommand}, nil
		},
		"tags": func() (cli.Command, error) {
			return &tags.Command{Command: baseCommand}, nil
		},
		"tags list": func() (cli.Command, error) {
			return &tags.ListCommand{Command: baseCommand}, nil
		},
	}
}

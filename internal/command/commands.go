package command

import (
	"os"

	"github.com/mitchellh/cli"

	"github.com/sarthakjha889/go-prefix-index/internal/command/complete"
	"github.com/sarthakjha889/go-prefix-index/internal/command/exists"
	"github.com/sarthakjha889/go-prefix-index/internal/command/lookup"
	"github.com/sarthakjha889/go-prefix-index/internal/command/shell"
)

// Commands returns the mapping of all the available prefixdict commands.
func Commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"complete": func() (cli.Command, error) { return complete.New(ui), nil },
		"exists":   func() (cli.Command, error) { return exists.New(ui), nil },
		"lookup":   func() (cli.Command, error) { return lookup.New(ui), nil },
		"shell":    func() (cli.Command, error) { return shell.New(ui, os.Stdin, os.Stdout), nil },
	}
}

package exists

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/sarthakjha889/go-prefix-index/internal/command/flags"
)

func New(ui cli.Ui) *cmd {
	c := &cmd{UI: ui}
	c.init()
	return c
}

type cmd struct {
	UI    cli.Ui
	flags *flag.FlagSet
	dict  *flags.DictFlags
	help  string
}

func (c *cmd) init() {
	c.dict = &flags.DictFlags{}
	c.flags = c.dict.Flags()
	c.help = flags.Usage(help, c.flags)
}

func (c *cmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		return 1
	}

	prefix := ""
	args = c.flags.Args()
	switch len(args) {
	case 0:
	case 1:
		prefix = args[0]
	default:
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 1, got %d)", len(args)))
		return 1
	}

	logger, err := c.dict.Logger()
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error configuring logging: %s", err))
		return 1
	}
	ix, err := c.dict.Open(logger)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error loading dictionary: %s", err))
		return 1
	}

	found := ix.HasPrefix(prefix)
	c.UI.Output(strconv.FormatBool(found))
	if !found {
		return 1
	}
	return 0
}

func (c *cmd) Synopsis() string {
	return synopsis
}

func (c *cmd) Help() string {
	return c.help
}

const synopsis = "Check whether any dictionary word starts with a prefix"
const help = `
Usage: prefixdict exists [options] [PREFIX]

  Prints "true" and exits 0 when at least one word starts with PREFIX,
  otherwise prints "false" and exits 1. The empty prefix always exists.

      $ prefixdict exists -words animals.txt do
`

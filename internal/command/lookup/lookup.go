package lookup

import (
	"flag"
	"fmt"

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

	args = c.flags.Args()
	if len(args) != 1 {
		c.UI.Error(fmt.Sprintf("Expected exactly one KEY argument, got %d", len(args)))
		return 1
	}
	key := args[0]

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

	entry, ok := ix.Lookup(key)
	if !ok {
		c.UI.Error(fmt.Sprintf("Error! No word found for: %s", key))
		return 1
	}
	c.UI.Output(entry.Description)
	return 0
}

func (c *cmd) Synopsis() string {
	return synopsis
}

func (c *cmd) Help() string {
	return c.help
}

const synopsis = "Print the description of a dictionary word"
const help = `
Usage: prefixdict lookup [options] KEY

  Prints the description stored for exactly KEY. Exits 1 when KEY is not a
  word of the dictionary, even if it is the prefix of one.

      $ prefixdict lookup -words animals.txt cat
`

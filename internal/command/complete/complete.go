package complete

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
	limit int
}

func (c *cmd) init() {
	c.dict = &flags.DictFlags{}
	c.flags = c.dict.Flags()
	c.flags.IntVar(&c.limit, "limit", 0,
		"Maximum number of completions to print. Zero prints all of them.")
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

	for i, entry := range ix.Complete(prefix) {
		if c.limit > 0 && i >= c.limit {
			break
		}
		c.UI.Output(entry.Key + "\t" + entry.Description)
	}
	return 0
}

func (c *cmd) Synopsis() string {
	return synopsis
}

func (c *cmd) Help() string {
	return c.help
}

const synopsis = "List dictionary words starting with a prefix"
const help = `
Usage: prefixdict complete [options] [PREFIX]

  Prints every word of the dictionary that starts with PREFIX, one
  "key<TAB>description" line per word, in lexicographic order. Without a
  PREFIX the whole dictionary is printed.

      $ prefixdict complete -words animals.txt ca
`

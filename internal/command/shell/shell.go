package shell

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	trie "github.com/sarthakjha889/go-prefix-index"
	"github.com/sarthakjha889/go-prefix-index/input"
	"github.com/sarthakjha889/go-prefix-index/internal/command/flags"
	"github.com/sarthakjha889/go-prefix-index/internal/wordlist"
)

func New(ui cli.Ui, in io.Reader, out io.Writer) *cmd {
	c := &cmd{UI: ui, in: in, out: out}
	c.init()
	return c
}

type cmd struct {
	UI    cli.Ui
	in    io.Reader
	out   io.Writer
	flags *flag.FlagSet
	dict  *flags.DictFlags
	help  string
}

func (c *cmd) init() {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	c.dict = &flags.DictFlags{}
	c.flags = c.dict.Flags()
	c.help = flags.Usage(help, c.flags)
}

func (c *cmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		return 1
	}
	if len(c.flags.Args()) > 0 {
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 0, got %d)", len(c.flags.Args())))
		return 1
	}
	if c.dict.ReadsStdin() {
		c.UI.Error("Error! The shell reads prefixes from standard input, -words cannot be \"-\"")
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

	if err := c.loop(ix, input.NewReader(c.in, c.out), logger); err != nil {
		c.UI.Error(fmt.Sprintf("Error reading input: %s", err))
		return 1
	}
	return 0
}

// loop answers prefixes until an empty line or the end of input.
func (c *cmd) loop(ix *trie.Index[wordlist.Entry], r *input.Reader, logger hclog.Logger) error {
	for {
		line, err := r.ReadLine("prefix> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		prefix := strings.TrimSpace(line)
		if prefix == "" {
			return nil
		}

		matches := ix.Complete(prefix)
		logger.Trace("completed prefix", "prefix", prefix, "matches", len(matches))
		switch len(matches) {
		case 0:
			fmt.Fprintf(c.out, "\tNo words start with %q.\n", prefix)
			continue
		case 1:
			c.describe(matches[0])
			continue
		}

		for i, entry := range matches {
			fmt.Fprintf(c.out, "\t%d) %s\n", i+1, entry.Key)
		}
		choice, err := input.ReadValidated(r, "Select a word (0 to skip): ",
			input.WithIndent[int](1),
			input.WithValidator(func(n int) bool { return n >= 0 && n <= len(matches) }),
			input.WithErrorMessage[int](fmt.Sprintf("Enter a number between 0 and %d.\n", len(matches))))
		if errors.Is(err, io.ErrUnexpectedEOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if choice > 0 {
			c.describe(matches[choice-1])
		}
	}
}

func (c *cmd) describe(entry *wordlist.Entry) {
	fmt.Fprintf(c.out, "\t%s: %s\n", entry.Key, entry.Description)
}

func (c *cmd) Synopsis() string {
	return synopsis
}

func (c *cmd) Help() string {
	return c.help
}

const synopsis = "Interactively auto-complete dictionary words"
const help = `
Usage: prefixdict shell [options]

  Reads prefixes from standard input and lists the dictionary words starting
  with each one. When several words match, one of them can be selected by
  number to print its description. An empty line or end of input exits.

      $ prefixdict shell -words animals.txt -ignore-case
`

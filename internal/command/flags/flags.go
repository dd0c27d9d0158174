// Package flags holds the flag set shared by every prefixdict command.
package flags

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	trie "github.com/sarthakjha889/go-prefix-index"
	"github.com/sarthakjha889/go-prefix-index/internal/wordlist"
)

// DictFlags selects the word list and how its keys are matched.
type DictFlags struct {
	words      string
	ignoreCase bool
	normalise  bool
	logLevel   string

	// Stdin is read when -words is "-". Defaults to os.Stdin.
	Stdin io.Reader
	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Flags returns a flag set bound to f.
func (f *DictFlags) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&f.words, "words", "",
		"Path to the word list, one \"key<TAB>description\" entry per line. "+
			"Use \"-\" to read it from standard input.")
	fs.BoolVar(&f.ignoreCase, "ignore-case", false,
		"Match keys and prefixes case insensitively.")
	fs.BoolVar(&f.normalise, "normalise", false,
		"Strip accents from keys and prefixes before matching, so \"jurg\" "+
			"finds \"jürgen\".")
	fs.StringVar(&f.logLevel, "log-level", "warn",
		"Log level: trace, debug, info, warn or error.")
	return fs
}

// ReadsStdin reports whether the word list comes from standard input.
func (f *DictFlags) ReadsStdin() bool {
	return f.words == "-"
}

// Logger returns the command logger configured by -log-level.
func (f *DictFlags) Logger() (hclog.Logger, error) {
	level := hclog.LevelFromString(f.logLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", f.logLevel)
	}
	out := f.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "prefixdict",
		Level:  level,
		Output: out,
	}), nil
}

// Open loads the word list and builds an index over it. Malformed lines are
// logged and skipped.
func (f *DictFlags) Open(logger hclog.Logger) (*trie.Index[wordlist.Entry], error) {
	if f.words == "" {
		return nil, errors.New("missing -words")
	}

	var r io.Reader
	if f.ReadsStdin() {
		r = f.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		file, err := os.Open(f.words)
		if err != nil {
			return nil, fmt.Errorf("opening word list: %w", err)
		}
		defer file.Close()
		r = file
	}

	entries, err := wordlist.Parse(r)
	if err != nil {
		logger.Warn("skipped malformed word list lines", "path", f.words, "error", err)
	}

	ix := trie.New[wordlist.Entry]()
	if f.ignoreCase {
		ix.CaseInsensitive()
	}
	if f.normalise {
		ix.WithNormalisation()
	}
	wordlist.Index(ix, entries)
	logger.Debug("loaded word list", "path", f.words, "entries", len(entries), "keys", ix.Len())
	return ix, nil
}

// Usage renders help text followed by the flag defaults.
func Usage(txt string, fs *flag.FlagSet) string {
	var b bytes.Buffer
	b.WriteString(strings.TrimSpace(txt))
	b.WriteString("\n\nCommand Options:\n\n")
	fs.SetOutput(&b)
	fs.PrintDefaults()
	fs.SetOutput(nil)
	return strings.TrimRight(strings.ReplaceAll(b.String(), "\t", "    "), "\n")
}

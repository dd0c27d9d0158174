// Package wordlist parses dictionary files and indexes their entries.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	trie "github.com/sarthakjha889/go-prefix-index"
)

// Entry is one dictionary word.
type Entry struct {
	Key         string
	Description string
}

// Parse reads one entry per line in the form "key<TAB>description". The
// description defaults to the key. Blank lines and lines starting with '#'
// are skipped. Malformed lines are reported together in a *multierror.Error
// alongside every entry that did parse.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		result  *multierror.Error
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, desc, _ := strings.Cut(text, "\t")
		key = strings.TrimSpace(key)
		desc = strings.TrimSpace(desc)
		if key == "" {
			result = multierror.Append(result, fmt.Errorf("line %d: missing key", line))
			continue
		}
		if desc == "" {
			desc = key
		}
		entries = append(entries, Entry{Key: key, Description: desc})
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("reading word list: %w", err))
	}
	return entries, result.ErrorOrNil()
}

// Index inserts pointers into entries, so the slice must outlive ix. Later
// entries win over earlier ones with the same key.
func Index(ix *trie.Index[Entry], entries []Entry) {
	for i := range entries {
		ix.Insert(&entries[i], entries[i].Key)
	}
}

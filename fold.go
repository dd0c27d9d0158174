package trie

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func newTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// fold applies the index's normalisation and case settings to a key. Runs of
// valid UTF-8 are folded, every other byte is copied through.
func (ix *Index[T]) fold(key string) string {
	if !ix.normalised && ix.caseSensitive {
		return key
	}
	if utf8.ValidString(key) {
		return ix.foldValid(key)
	}

	var b strings.Builder
	for len(key) > 0 {
		n := validPrefix(key)
		b.WriteString(ix.foldValid(key[:n]))
		if n < len(key) {
			b.WriteByte(key[n])
			n++
		}
		key = key[n:]
	}
	return b.String()
}

func (ix *Index[T]) foldValid(key string) string {
	if key == "" {
		return key
	}
	if ix.normalised {
		t := ix.transformers.Get().(transform.Transformer)
		if normal, _, err := transform.String(t, key); err == nil {
			key = normal
		}
		ix.transformers.Put(t)
	}
	if !ix.caseSensitive {
		key = strings.ToLower(key)
	}
	return key
}

// validPrefix returns the length of the longest valid UTF-8 prefix of s.
func validPrefix(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}

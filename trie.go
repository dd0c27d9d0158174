package trie

import "sync"

// Index is a prefix tree mapping string keys to values owned by the caller.
//
// The index stores the *T it is given and hands the same pointer back from
// its queries. It never dereferences, copies or frees the value; keeping the
// value alive and unchanged for as long as it is reachable from the index (or
// from a slice returned by it) is the caller's job.
//
// Keys are byte sequences. Children are visited in ascending byte order, so
// every traversal yields values in lexicographic key order.
//
// An Index is not safe for concurrent use. Readers may share an index only
// while no Insert or Clear is running.
type Index[T any] struct {
	root                      *node[T]
	size                      int
	normalised, caseSensitive bool
	// transformers pools normalisation chains; a chain is stateful and
	// cannot be shared by concurrent readers.
	transformers *sync.Pool
}

// New creates an empty index. By default keys are matched byte for byte:
// case sensitive and without normalisation.
func New[T any]() *Index[T] {
	ix := &Index[T]{root: new(node[T])}
	ix.CaseSensitive()
	ix.WithoutNormalisation()
	return ix
}

// WithNormalisation folds every key and prefix to its unaccented form before
// it reaches the tree. For example, Jurg will find Jürgen, Jürg will find Jurgen.
// Only valid UTF-8 is folded; bytes that are not part of a valid encoding
// are kept as they are, so distinct invalid keys stay distinct.
// Options must be set before the first Insert.
func (ix *Index[T]) WithNormalisation() *Index[T] {
	ix.normalised = true
	if ix.transformers == nil {
		ix.transformers = &sync.Pool{New: func() any { return newTransformer() }}
	}
	return ix
}

// WithoutNormalisation sets the Index to use keys exactly as given.
func (ix *Index[T]) WithoutNormalisation() *Index[T] {
	ix.normalised = false
	return ix
}

// CaseSensitive sets the Index to match keys case sensitively.
func (ix *Index[T]) CaseSensitive() *Index[T] {
	ix.caseSensitive = true
	return ix
}

// CaseInsensitive sets the Index to lower-case every key and prefix. As with
// WithNormalisation, invalid UTF-8 bytes are passed through unchanged.
func (ix *Index[T]) CaseInsensitive() *Index[T] {
	ix.caseSensitive = false
	return ix
}

// Insert associates value with key, replacing whatever was stored under key
// before. The empty key is stored at the root. Inserting a nil value leaves
// the path in place but the key no longer resolves.
func (ix *Index[T]) Insert(value *T, key string) {
	key = ix.fold(key)
	n := ix.root
	for i := 0; i < len(key); i++ {
		n = n.childOrCreate(key[i])
	}
	switch {
	case n.value == nil && value != nil:
		ix.size++
	case n.value != nil && value == nil:
		ix.size--
	}
	n.value = value
}

// Lookup returns the value stored for exactly key. It reports false when key
// was never inserted, including when key is only a prefix of inserted keys.
func (ix *Index[T]) Lookup(key string) (*T, bool) {
	n := ix.find(ix.fold(key))
	if n == nil || n.value == nil {
		return nil, false
	}
	return n.value, true
}

// HasPrefix reports whether any inserted key starts with prefix. The empty
// prefix always exists. A path created by inserting a nil value still counts,
// even though no key under it resolves.
func (ix *Index[T]) HasPrefix(prefix string) bool {
	return ix.find(ix.fold(prefix)) != nil
}

// Complete returns the values of all keys starting with prefix, in
// lexicographic key order. The result is empty, never nil, when nothing
// matches.
func (ix *Index[T]) Complete(prefix string) []*T {
	res := []*T{}
	if n := ix.find(ix.fold(prefix)); n != nil {
		n.each(func(v *T) {
			res = append(res, v)
		})
	}
	return res
}

// Keys returns the stored keys starting with prefix, in the same order as
// Complete. With folding enabled these are the folded keys.
func (ix *Index[T]) Keys(prefix string) []string {
	keys := []string{}
	ix.WalkPrefix(prefix, func(key string, _ *T) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk calls fn for every stored value in lexicographic key order.
func (ix *Index[T]) Walk(fn func(value *T)) {
	ix.root.each(fn)
}

// WalkPrefix calls fn with each stored key starting with prefix and its
// value, in lexicographic key order. Returning false from fn stops the walk.
func (ix *Index[T]) WalkPrefix(prefix string, fn func(key string, value *T) bool) {
	prefix = ix.fold(prefix)
	if n := ix.find(prefix); n != nil {
		n.walk([]byte(prefix), fn)
	}
}

// Len returns the number of keys holding a value.
func (ix *Index[T]) Len() int {
	return ix.size
}

// Clear empties the index. Stored values are released to the garbage
// collector only if the caller holds no other reference; the index never
// touches them.
func (ix *Index[T]) Clear() {
	ix.root = new(node[T])
	ix.size = 0
}

func (ix *Index[T]) find(key string) *node[T] {
	n := ix.root
	for i := 0; i < len(key); i++ {
		if n = n.child(key[i]); n == nil {
			return nil
		}
	}
	return n
}

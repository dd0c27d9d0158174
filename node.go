package trie

import "slices"

// node is a node in an Index. labels and children are parallel slices kept
// sorted by label; value is nil unless a key ends here.
type node[T any] struct {
	value    *T
	labels   []byte
	children []*node[T]
}

func (n *node[T]) child(c byte) *node[T] {
	i, ok := slices.BinarySearch(n.labels, c)
	if !ok {
		return nil
	}
	return n.children[i]
}

func (n *node[T]) childOrCreate(c byte) *node[T] {
	i, ok := slices.BinarySearch(n.labels, c)
	if ok {
		return n.children[i]
	}
	child := new(node[T])
	n.labels = slices.Insert(n.labels, i, c)
	n.children = slices.Insert(n.children, i, child)
	return child
}

// each visits the values of this subtree, the node's own value before its
// children.
func (n *node[T]) each(fn func(*T)) {
	if n.value != nil {
		fn(n.value)
	}
	for _, child := range n.children {
		child.each(fn)
	}
}

// walk is each with the key path attached. key is reused between siblings,
// fn receives a copy.
func (n *node[T]) walk(key []byte, fn func(string, *T) bool) bool {
	if n.value != nil && !fn(string(key), n.value) {
		return false
	}
	for i, child := range n.children {
		if !child.walk(append(key, n.labels[i]), fn) {
			return false
		}
	}
	return true
}

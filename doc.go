/*
Package trie provides a prefix tree that indexes caller-owned values by string
key and supports exact lookup, prefix existence checks and auto-completion in
lexicographic order. Optional normalisation and case folding are applied to
keys before they reach the tree.
*/
package trie

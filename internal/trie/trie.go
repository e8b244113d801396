// Package trie implements a character trie where every node aggregates the
// keys of all words inserted through it, so a prefix lookup returns the full
// key set for that prefix in O(len(prefix)) regardless of corpus size.
package trie

import "strings"

// node is stored in the arena and refers to its children by arena index.
type node struct {
	children map[byte]int32
	keys     map[uint32]struct{}
}

func (n *node) addKey(key uint32) {
	if n.keys == nil {
		n.keys = make(map[uint32]struct{})
	}

	n.keys[key] = struct{}{}
}

// Trie owns all of its nodes in a flat arena; the root lives at index 0.
// A node at depth d holds the union of keys of every inserted word sharing
// that d-character prefix. Not safe for concurrent mutation.
type Trie struct {
	nodes []node
}

// New returns an empty trie containing only the root node.
func New() *Trie {
	return &Trie{nodes: make([]node, 1)}
}

// Insert lowercases word and records key on every node along its path,
// root included. The walk is iterative, so arbitrarily long words cannot
// exhaust the stack.
func (t *Trie) Insert(word string, key uint32) {
	lower := strings.ToLower(word)

	cur := int32(0)
	t.nodes[0].addKey(key)

	for i := 0; i < len(lower); i++ {
		c := lower[i]

		next, ok := t.nodes[cur].children[c]
		if !ok {
			t.nodes = append(t.nodes, node{})
			next = int32(len(t.nodes) - 1)

			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[byte]int32)
			}

			t.nodes[cur].children[c] = next
		}

		cur = next
		t.nodes[cur].addKey(key)
	}
}

// SearchPrefix descends one character at a time and returns the aggregate
// key set stored at the node reached, or nil when the path does not exist.
// The returned map is the trie's own storage and must not be mutated.
func (t *Trie) SearchPrefix(prefix string) map[uint32]struct{} {
	lower := strings.ToLower(prefix)

	cur := int32(0)

	for i := 0; i < len(lower); i++ {
		next, ok := t.nodes[cur].children[lower[i]]
		if !ok {
			return nil
		}

		cur = next
	}

	return t.nodes[cur].keys
}

// Contains reports whether key is reachable under prefix.
func (t *Trie) Contains(prefix string, key uint32) bool {
	keys := t.SearchPrefix(prefix)
	if keys == nil {
		return false
	}

	_, ok := keys[key]

	return ok
}

// Len returns the number of nodes in the arena, root included.
func (t *Trie) Len() int {
	return len(t.nodes)
}

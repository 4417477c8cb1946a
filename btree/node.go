package btree

import (
	"slices"
)

// Represents a single node of the B-tree.
//
// Keys are kept in strictly ascending order. Internal nodes hold one more child than keys, with `children[i]` covering the keys between `keys[i-1]` and `keys[i]`. Leaves hold no children.
type Node struct {
	keys     []int64
	children []*Node
	leaf     bool
}

// Allocates an empty node for a tree of the given order, reserving room for one transient overflow key (and child).
func newNode(order int, leaf bool) *Node {
	n := &Node{
		keys: make([]int64, 0, order),
		leaf: leaf,
	}
	if !leaf {
		n.children = make([]*Node, 0, order+1)
	}
	return n
}

// Minimum degree for an order: ceil(m/2)
func minDegree(order int) int {
	return (order + 1) / 2
}

func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Number of keys currently held by this node
func (n *Node) KeyCount() int {
	return len(n.keys)
}

// Returns a copy of the keys held by this node
func (n *Node) Keys() []int64 {
	return slices.Clone(n.keys)
}

// Index of the first key which is not lower than `key`, and whether that key is an exact match.
//
// The returned index is also the index of the child which would contain `key`. The comparison only happens for indexes inside the key range, so an empty node or a key above every key in the node is safe.
func (n *Node) findKey(key int64) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

// Looks for `key` in the sub-tree rooted at this node. Returns the node holding the key and the key's index in that node, or nil if not found.
//
// depth is the depth of this node, and is incremented for each level descended; the depth of the holding node is returned.
func (n *Node) search(key int64, depth int) (*Node, int, int) {
	idx, found := n.findKey(key)
	if found {
		return n, idx, depth
	}
	if n.leaf {
		return nil, -1, depth
	}
	return n.children[idx].search(key, depth+1)
}

// In-order walk of the sub-tree, calling yield for each key in ascending order. Returns false if yield asked to stop.
func (n *Node) walk(yield func(int64) bool) bool {
	for i, k := range n.keys {
		if !n.leaf {
			if !n.children[i].walk(yield) {
				return false
			}
		}
		if !yield(k) {
			return false
		}
	}
	if !n.leaf {
		return n.children[len(n.keys)].walk(yield)
	}
	return true
}

// Counts the nodes of the sub-tree, including this one
func (n *Node) countNodes() int {
	total := 1
	for _, c := range n.children {
		total += c.countNodes()
	}
	return total
}

package btree

import (
	"slices"
)

// Inserts `key` into the sub-tree rooted at this node. Returns false, without modifying anything, if the key is already present.
//
// The node may hold `order` keys (one over the limit) when this returns; the caller is responsible for splitting it right away. Any child which overflows during the recursive descent is split here before returning.
func (n *Node) insertNonFull(key int64, order int) bool {
	idx, found := n.findKey(key)
	if found {
		return false
	}

	if n.leaf {
		n.keys = slices.Insert(n.keys, idx, key)
		return true
	}

	child := n.children[idx]
	if !child.insertNonFull(key, order) {
		return false
	}
	if len(child.keys) > order-1 {
		n.splitChild(idx, child, order)
	}
	return true
}

// Splits an overfull child (holding exactly `order` keys) into two legal nodes, promoting the median key into this node.
//
// With t = ceil(m/2), child keys [0, t-2] stay in place, key t-1 moves up to this node at index `idx`, and keys [t, m-1] move to a new right sibling which is inserted as child `idx+1`. For internal children, child pointers [t, m] move along with the keys.
func (n *Node) splitChild(idx int, child *Node, order int) {
	t := minDegree(order)
	median := child.keys[t-1]

	right := newNode(order, child.leaf)
	right.keys = append(right.keys, child.keys[t:]...)
	if !child.leaf {
		right.children = append(right.children, child.children[t:]...)
		// don't leave the moved pointers reachable through the left node's backing array
		clear(child.children[t:])
		child.children = child.children[:t]
	}
	child.keys = child.keys[:t-1]

	n.keys = slices.Insert(n.keys, idx, median)
	n.children = slices.Insert(n.children, idx+1, right)

	kind := "leaf"
	if !child.leaf {
		kind = "internal"
	}
	nodeSplits.WithLabelValues(kind).Inc()
}

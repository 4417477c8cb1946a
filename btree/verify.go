package btree

import (
	"fmt"
)

// Structural property of the tree checked by `Validate`
type Invariant string

const (
	// non-root nodes hold at least t-1 keys; the root at least one
	InvariantMinKeys Invariant = "min-keys"
	// every node holds at most m-1 keys
	InvariantMaxKeys Invariant = "max-keys"
	// keys within a node are strictly ascending
	InvariantKeyOrder Invariant = "key-order"
	// all leaves are at the same depth
	InvariantLeafDepth Invariant = "leaf-depth"
	// internal nodes have exactly n+1 non-nil children, leaves have none
	InvariantChildren Invariant = "children"
	// keys of child i fall strictly between keys i-1 and i of the parent
	InvariantSubtreeOrder Invariant = "subtree-order"
)

// Outcome of a structural validation of a tree.
//
// For a failed validation, Invariant, Depth and Keys describe the first offending node found (walking depth-first, left to right).
type ValidationResult struct {
	Valid bool
	// human-readable description of the outcome
	Diagnostic string
	// depth of the leaves (root at zero), as observed before any failure; -1 for an empty tree or if no leaf was reached
	LeafDepth int

	Invariant Invariant
	Depth     int
	Keys      []int64
}

// Returns nil for a valid tree, or an error wrapping `ErrInvalidTree`
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidTree, r.Diagnostic)
}

type violation struct {
	invariant Invariant
	depth     int
	keys      []int64
	msg       string
}

func (v *violation) Error() string {
	return fmt.Sprintf("%s violated by node %v at depth %d: %s", v.invariant, v.keys, v.depth, v.msg)
}

type validator struct {
	order     int
	minDegree int
	leafDepth int
}

// optional exclusive key bounds for a sub-tree
type keyRange struct {
	lo, hi       int64
	hasLo, hasHi bool
}

func (r keyRange) contains(k int64) bool {
	if r.hasLo && k <= r.lo {
		return false
	}
	if r.hasHi && k >= r.hi {
		return false
	}
	return true
}

func (r keyRange) String() string {
	lo, hi := "-inf", "+inf"
	if r.hasLo {
		lo = fmt.Sprint(r.lo)
	}
	if r.hasHi {
		hi = fmt.Sprint(r.hi)
	}
	return fmt.Sprintf("(%s, %s)", lo, hi)
}

// Checks every structural invariant of the tree. This never modifies the tree, and the tree can continue to be used after a failed validation.
func (t *Tree) Validate() ValidationResult {
	if t.root == nil {
		return ValidationResult{
			Valid:      true,
			Diagnostic: "empty tree",
			LeafDepth:  -1,
		}
	}

	v := validator{
		order:     t.order,
		minDegree: t.minDegree,
		leafDepth: -1,
	}
	viol := v.verifyStructure(t.root, 0, keyRange{})
	if viol == nil {
		return ValidationResult{
			Valid:      true,
			Diagnostic: fmt.Sprintf("valid tree: %d keys, leaf depth %d", t.count, v.leafDepth),
			LeafDepth:  v.leafDepth,
		}
	}

	validationFailures.WithLabelValues(string(viol.invariant)).Inc()
	t.logger.Debug("tree failed validation", "invariant", viol.invariant, "depth", viol.depth, "err", viol)
	return ValidationResult{
		Diagnostic: viol.Error(),
		LeafDepth:  v.leafDepth,
		Invariant:  viol.invariant,
		Depth:      viol.depth,
		Keys:       viol.keys,
	}
}

// Same as `Validate`, but returns an error wrapping `ErrInvalidTree` on failure
func (t *Tree) Verify() error {
	return t.Validate().Err()
}

func (v *validator) fail(n *Node, depth int, inv Invariant, format string, args ...any) *violation {
	return &violation{
		invariant: inv,
		depth:     depth,
		keys:      n.Keys(),
		msg:       fmt.Sprintf(format, args...),
	}
}

func (v *validator) verifyStructure(n *Node, depth int, bounds keyRange) *violation {
	count := len(n.keys)
	if count > v.order-1 {
		return v.fail(n, depth, InvariantMaxKeys, "holds %d keys, at most %d allowed", count, v.order-1)
	}
	minKeys := v.minDegree - 1
	if depth == 0 {
		minKeys = 1
	}
	if count < minKeys {
		return v.fail(n, depth, InvariantMinKeys, "holds %d keys, at least %d required", count, minKeys)
	}

	for i, k := range n.keys {
		if i > 0 && n.keys[i-1] >= k {
			return v.fail(n, depth, InvariantKeyOrder, "key %d at index %d does not follow %d", k, i, n.keys[i-1])
		}
		if !bounds.contains(k) {
			return v.fail(n, depth, InvariantSubtreeOrder, "key %d outside of parent range %s", k, bounds)
		}
	}

	if n.leaf {
		if len(n.children) != 0 {
			return v.fail(n, depth, InvariantChildren, "leaf has %d children", len(n.children))
		}
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return v.fail(n, depth, InvariantLeafDepth, "leaf at depth %d, expected %d", depth, v.leafDepth)
		}
		return nil
	}

	if len(n.children) != count+1 {
		return v.fail(n, depth, InvariantChildren, "internal node has %d children, expected %d", len(n.children), count+1)
	}
	for i, c := range n.children {
		if c == nil {
			return v.fail(n, depth, InvariantChildren, "missing child %d", i)
		}
		sub := bounds
		if i > 0 {
			sub.lo, sub.hasLo = n.keys[i-1], true
		}
		if i < count {
			sub.hi, sub.hasHi = n.keys[i], true
		}
		if viol := v.verifyStructure(c, depth+1, sub); viol != nil {
			return viol
		}
	}
	return nil
}

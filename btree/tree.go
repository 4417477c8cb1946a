package btree

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// An m-way B-tree of distinct int64 keys.
//
// The zero value is not usable; create trees with `NewTree` or `NewTreeWithConfig`. A Tree is not safe for concurrent use.
type Tree struct {
	root      *Node
	order     int
	minDegree int
	count     int
	logger    *slog.Logger
}

type TreeConfig struct {
	// maximum number of children per node. must be at least 3
	Order int
	// optional; defaults to slog.Default()
	Logger *slog.Logger
}

// Location of a key found in the tree
type Position struct {
	// distance from the root (which is at depth zero)
	Depth int
	// index of the key within its node
	Index int
	// copy of all keys in the node holding the key
	Keys []int64
}

var ErrInvalidOrder = errors.New("B-tree order must be at least 3")

var ErrInvalidTree = errors.New("invalid B-tree structure")

func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		Order: 3,
	}
}

func NewTree(order int) (*Tree, error) {
	cfg := DefaultTreeConfig()
	cfg.Order = order
	return NewTreeWithConfig(cfg)
}

func NewTreeWithConfig(cfg TreeConfig) (*Tree, error) {
	if cfg.Order < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, cfg.Order)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Tree{
		order:     cfg.Order,
		minDegree: minDegree(cfg.Order),
		logger:    logger.With("system", "btree", "order", cfg.Order),
	}, nil
}

// Builds a tree by inserting each key in order. Duplicate keys are skipped.
func NewTreeFromKeys(order int, keys []int64) (*Tree, error) {
	t, err := NewTree(order)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		t.Insert(k)
	}
	return t, nil
}

func (t *Tree) Order() int {
	return t.order
}

func (t *Tree) MinDegree() int {
	return t.minDegree
}

// Number of keys in the tree
func (t *Tree) Len() int {
	return t.count
}

// Number of levels in the tree; zero for an empty tree
func (t *Tree) Height() int {
	h := 0
	for n := t.root; n != nil; n = n.children[0] {
		h++
		// stop at leaves, and at internal nodes which lost their children
		if n.leaf || len(n.children) == 0 {
			break
		}
	}
	return h
}

func (t *Tree) NodeCount() int {
	if t.root == nil {
		return 0
	}
	return t.root.countNodes()
}

// Adds a key to the tree. Returns true if the key was added, or false if it was already present (in which case the tree is not modified).
func (t *Tree) Insert(key int64) bool {
	if t.root == nil {
		t.root = newNode(t.order, true)
		t.root.keys = append(t.root.keys, key)
		t.count++
		inserts.Inc()
		return true
	}

	if !t.root.insertNonFull(key, t.order) {
		duplicateInserts.Inc()
		return false
	}
	t.count++
	inserts.Inc()

	if len(t.root.keys) == t.order {
		// the root has no parent to split it: push a new root above it
		old := t.root
		t.root = newNode(t.order, false)
		t.root.children = append(t.root.children, old)
		t.root.splitChild(0, old, t.order)
		rootSplits.Inc()
		t.logger.Debug("grew tree height", "height", t.Height(), "keys", t.count)
	}
	return true
}

// Reports whether the key is present in the tree
func (t *Tree) Search(key int64) bool {
	_, found := t.Locate(key)
	return found
}

// Finds the node and slot holding `key`.
func (t *Tree) Locate(key int64) (Position, bool) {
	if t.root == nil {
		return Position{}, false
	}
	n, idx, depth := t.root.search(key, 0)
	if n == nil {
		return Position{}, false
	}
	return Position{
		Depth: depth,
		Index: idx,
		Keys:  n.Keys(),
	}, true
}

// Returns a lazy sequence of all keys, in ascending order.
//
// The tree must not be modified while the sequence is being consumed.
func (t *Tree) Traverse() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if t.root == nil {
			return
		}
		t.root.walk(yield)
	}
}

// Returns all keys in ascending order
func (t *Tree) Keys() []int64 {
	out := make([]int64, 0, t.count)
	return slices.AppendSeq(out, t.Traverse())
}

// Returns the keys of every node grouped by depth, breadth-first and left to right.
func (t *Tree) Levels() [][][]int64 {
	if t.root == nil {
		return nil
	}
	var levels [][][]int64
	queue := []*Node{t.root}
	for len(queue) > 0 {
		level := make([][]int64, 0, len(queue))
		var next []*Node
		for _, n := range queue {
			level = append(level, n.Keys())
			for _, c := range n.children {
				if c != nil {
					next = append(next, c)
				}
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}

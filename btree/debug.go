package btree

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Formats node keys as a comma-separated list, eg "5,6"
func FormatKeys(keys []int64) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, ",")
}

// Formats one line of the level dump, eg "Level 1: [ 8 | 10 ]"
func FormatLevel(depth int, nodes [][]int64) string {
	parts := make([]string, len(nodes))
	for i, keys := range nodes {
		parts[i] = FormatKeys(keys)
	}
	return fmt.Sprintf("Level %d: [ %s ]", depth, strings.Join(parts, " | "))
}

// Renders the tree one level per line, with the keys of each node separated by commas and nodes separated by "|". This is intended for humans and tests; the format is not stable.
func (t *Tree) LevelString() string {
	if t.root == nil {
		return "B-Tree is empty."
	}
	var sb strings.Builder
	for depth, nodes := range t.Levels() {
		if depth > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(FormatLevel(depth, nodes))
	}
	return sb.String()
}

// Renders the tree hierarchically, one node per line.
func (t *Tree) Render() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	out := treeprint.NewWithRoot(fmt.Sprintf("[%s]", FormatKeys(t.root.keys)))
	renderChildren(t.root, out)
	return out.String()
}

func renderChildren(n *Node, branch treeprint.Tree) {
	for i, c := range n.children {
		if c == nil {
			branch.AddNode(fmt.Sprintf("(missing child %d)", i))
			continue
		}
		label := fmt.Sprintf("[%s]", FormatKeys(c.keys))
		if c.leaf {
			branch.AddNode(label)
			continue
		}
		renderChildren(c, branch.AddBranch(label))
	}
}

package btree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert := assert.New(t)

	tree, err := NewTree(3)
	require.NoError(t, err)
	assert.Equal("B-Tree is empty.", tree.LevelString())

	tree.Insert(8)
	tree.Insert(9)
	assert.Equal("Level 0: [ 8,9 ]", tree.LevelString())

	tree.Insert(10)
	assert.Equal("Level 0: [ 9 ]\nLevel 1: [ 8 | 10 ]", tree.LevelString())
}

func TestFormatLevel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Level 2: [ 1,2 | 4 | 6,7 ]", FormatLevel(2, [][]int64{{1, 2}, {4}, {6, 7}}))
	assert.Equal("Level 0: [ -5 ]", FormatLevel(0, [][]int64{{-5}}))
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	tree, err := NewTree(3)
	require.NoError(t, err)
	assert.Contains(tree.Render(), "(empty)")

	tree = perfectTree(t)
	out := tree.Render()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(7, len(lines))
	assert.Equal("[4]", lines[0])
	for _, label := range []string{"[1]", "[2]", "[3]", "[5]", "[6]", "[7]"} {
		assert.Contains(out, label)
	}

	tree.root.children[1].children[0] = nil
	assert.Contains(tree.Render(), "(missing child 0)")
}

func TestFormatKeys(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", FormatKeys(nil))
	assert.Equal("7", FormatKeys([]int64{7}))
	assert.Equal("5,6,-1", FormatKeys([]int64{5, 6, -1}))
}

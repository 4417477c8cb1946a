package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bluesky-social/btree/btree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// Runs the CLI with colors disabled, returning captured stdout and stderr
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	app := newApp()
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"btree-tool", "--no-color"}, args...))
	return stdout.String(), stderr.String(), err
}

// Parses JSON log output, returning the records with the given message
func logRecords(t *testing.T, stderr, msg string) []map[string]any {
	t.Helper()
	var out []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

func TestDemoCommand(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runApp(t, "demo")
	assert.NoError(err)

	assert.Equal(len(demoKeys), strings.Count(stdout, "insert key: "))
	assert.Contains(stdout, "insert key: 8\nLevel 0: [ 8 ]\n")
	assert.Contains(stdout, "insert key: 10\nLevel 0: [ 9 ]\nLevel 1: [ 8 | 10 ]\n")
	assert.Contains(stdout, "Level 3: [ 8 | 10 | 15 | 20 | 30 | 50 | 70 | 90 ]")
	assert.Contains(stdout, "traverse: 8,9,10,11,15,17,20,25,30,40,50,60,70,80,90\n")
}

func TestDemoCommandKeys(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runApp(t, "--order", "4", "demo", "5,5", "3")
	assert.NoError(err)
	assert.Contains(stdout, "insert key: 5\n")
	assert.Contains(stdout, "duplicate key: 5 (skipped)\n")
	assert.Contains(stdout, "Level 0: [ 3,5 ]")
	assert.Contains(stdout, "traverse: 3,5\n")

	_, _, err = runApp(t, "demo", "1,x")
	assert.Error(err)
}

func TestInsertCommand(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runApp(t, "insert", "1", "2", "3", "4,5,6,7")
	assert.NoError(err)
	assert.True(strings.HasPrefix(stdout, "[4]\n"), stdout)
	assert.Contains(stdout, "[6]")
	assert.Contains(stdout, "traverse: 1,2,3,4,5,6,7\n")
	assert.Contains(stdout, "keys: 7  nodes: 7  height: 3\n")
	assert.Contains(stdout, "valid tree: 7 keys, leaf depth 2\n")

	_, _, err = runApp(t, "insert")
	assert.Error(err)
}

func TestSearchCommand(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runApp(t, "search", "7", "1,2,3,4,5,6,7")
	assert.NoError(err)
	assert.Equal("7: found at depth 2, index 0 of node [7]\n", stdout)

	stdout, _, err = runApp(t, "search", "4", "1,2,3,4,5,6,7")
	assert.NoError(err)
	assert.Equal("4: found at depth 0, index 0 of node [4]\n", stdout)

	stdout, _, err = runApp(t, "--order", "4", "search", "2", "3,1,2")
	assert.NoError(err)
	assert.Equal("2: found at depth 0, index 1 of node [1,2,3]\n", stdout)

	stdout, _, err = runApp(t, "search", "8", "1,2,3")
	assert.NoError(err)
	assert.Equal("8: not found\n", stdout)

	// searching an empty tree is not an error
	stdout, _, err = runApp(t, "search", "8")
	assert.NoError(err)
	assert.Equal("8: not found\n", stdout)

	_, _, err = runApp(t, "search")
	assert.Error(err)
}

func TestRandomCommand(t *testing.T) {
	assert := assert.New(t)

	stdout, stderr, err := runApp(t, "--log-level", "debug", "--order", "4", "random", "--count", "200", "--seed", "1", "--check-every", "50")
	require.NoError(t, err)
	assert.Contains(stdout, "valid tree: 200 keys")

	validated := logRecords(t, stderr, "validated tree")
	var cadence []float64
	for _, rec := range validated {
		cadence = append(cadence, rec["inserts"].(float64))
	}
	assert.Equal([]float64{50, 100, 150, 200}, cadence)

	inserted := logRecords(t, stderr, "inserted keys")
	require.Len(t, inserted, 1)
	assert.Equal(200.0, inserted[0]["count"])

	searched := logRecords(t, stderr, "checked search")
	require.Len(t, searched, 1)
	assert.Equal(200.0, searched[0]["present"])
	assert.Greater(searched[0]["absent"].(float64), 0.0)

	bounds := logRecords(t, stderr, "height bound")
	require.Len(t, bounds, 1)
	assert.LessOrEqual(bounds[0]["height"].(float64), bounds[0]["bound"].(float64))
	assert.Equal(bounds[0]["height"].(float64)-1, bounds[0]["leaf_depth"])

	metrics := logRecords(t, stderr, "btree metric")
	var names []string
	for _, rec := range metrics {
		names = append(names, rec["metric"].(string))
	}
	assert.Contains(names, "btree_inserts")
}

func TestRandomCommandCheckOnlyAtEnd(t *testing.T) {
	assert := assert.New(t)

	stdout, stderr, err := runApp(t, "--log-level", "debug", "random", "--count", "50", "--seed", "7", "--check-every", "0")
	assert.NoError(err)
	assert.Contains(stdout, "valid tree: 50 keys")
	assert.Empty(logRecords(t, stderr, "validated tree"))

	// dense key range: every key in [0, 49] is inserted
	stdout, _, err = runApp(t, "random", "--count", "50", "--max-key", "49", "--seed", "7")
	assert.NoError(err)
	assert.Contains(stdout, "valid tree: 50 keys")
}

func TestCommandErrors(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{
		{"--order", "2", "demo"},
		{"--order", "2", "insert", "1"},
		{"--order", "2", "search", "1"},
		{"--order", "2", "random", "--count", "5"},
	} {
		_, _, err := runApp(t, args...)
		assert.ErrorIs(err, btree.ErrInvalidOrder, "%v", args)
	}

	_, _, err := runApp(t, "random", "--count", "5", "--max-key", "3")
	assert.ErrorContains(err, "distinct keys")
}

func TestNoColorEnvironment(t *testing.T) {
	assert := assert.New(t)

	// NO_COLOR values are not booleans; they must not break flag parsing
	t.Setenv("NO_COLOR", "yes")
	stdout, _, err := runApp(t, "demo", "1")
	assert.NoError(err)
	assert.Contains(stdout, "traverse: 1\n")

	t.Setenv("BTREE_NO_COLOR", "true")
	_, _, err = runApp(t, "demo", "1")
	assert.NoError(err)
}

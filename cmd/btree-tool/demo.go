package main

import (
	"fmt"
	"io"

	"github.com/bluesky-social/btree/btree"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var levelColors = []*color.Color{
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

func printLevels(w io.Writer, tree *btree.Tree) {
	levels := tree.Levels()
	if len(levels) == 0 {
		fmt.Fprintln(w, tree.LevelString())
		return
	}
	for depth, nodes := range levels {
		levelColors[depth%len(levelColors)].Fprintln(w, btree.FormatLevel(depth, nodes))
	}
}

func runDemo(cctx *cli.Context) error {
	out := cctx.App.Writer
	keys := demoKeys
	if cctx.Args().Len() > 0 {
		parsed, err := parseKeys(cctx.Args().Slice())
		if err != nil {
			return err
		}
		keys = parsed
	}

	tree, err := newTree(cctx)
	if err != nil {
		return err
	}

	for _, k := range keys {
		if !tree.Insert(k) {
			fmt.Fprintf(out, "duplicate key: %d (skipped)\n", k)
			continue
		}
		fmt.Fprintf(out, "insert key: %d\n", k)
		printLevels(out, tree)
		if err := tree.Verify(); err != nil {
			return fmt.Errorf("after inserting %d: %w", k, err)
		}
	}
	fmt.Fprintf(out, "traverse: %s\n", btree.FormatKeys(tree.Keys()))
	return nil
}

func runInsert(cctx *cli.Context) error {
	out := cctx.App.Writer
	keys, err := parseKeys(cctx.Args().Slice())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("need to provide at least one key")
	}

	tree, err := newTree(cctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		tree.Insert(k)
	}

	fmt.Fprintln(out, tree.Render())
	fmt.Fprintf(out, "traverse: %s\n", btree.FormatKeys(tree.Keys()))
	fmt.Fprintf(out, "keys: %d  nodes: %d  height: %d\n", tree.Len(), tree.NodeCount(), tree.Height())
	res := tree.Validate()
	fmt.Fprintln(out, res.Diagnostic)
	return res.Err()
}

func runSearch(cctx *cli.Context) error {
	out := cctx.App.Writer
	args, err := parseKeys(cctx.Args().Slice())
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("need to provide a key to search for")
	}
	target := args[0]

	tree, err := newTree(cctx)
	if err != nil {
		return err
	}
	for _, k := range args[1:] {
		tree.Insert(k)
	}

	pos, found := tree.Locate(target)
	if !found {
		fmt.Fprintf(out, "%d: not found\n", target)
		return nil
	}
	fmt.Fprintf(out, "%d: found at depth %d, index %d of node [%s]\n", target, pos.Depth, pos.Index, btree.FormatKeys(pos.Keys))
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
)

func runRandom(cctx *cli.Context) error {
	logger := slog.Default().With("cmd", "random")

	count := cctx.Int("count")
	maxKey := cctx.Int64("max-key")
	if maxKey <= 0 {
		maxKey = int64(count) * 10
	}
	checkEvery := cctx.Int("check-every")

	faker := gofakeit.New(cctx.Int64("seed"))
	keys, err := randomKeys(faker, count, maxKey)
	if err != nil {
		return err
	}

	tree, err := newTree(cctx)
	if err != nil {
		return err
	}

	start := time.Now()
	height := 0
	for i, k := range keys {
		if !tree.Insert(k) {
			return fmt.Errorf("generated key was already present: %d", k)
		}
		if tree.Height() != height {
			logger.Debug("tree height increased", "height", tree.Height(), "keys", tree.Len())
			height = tree.Height()
		}
		if checkEvery > 0 && (i+1)%checkEvery == 0 {
			if err := tree.Verify(); err != nil {
				return fmt.Errorf("after insert #%d (%d): %w", i+1, k, err)
			}
			logger.Debug("validated tree", "inserts", i+1)
		}
	}
	logger.Info("inserted keys", "count", tree.Len(), "nodes", tree.NodeCount(), "height", tree.Height(), "duration", time.Since(start))

	res := tree.Validate()
	if !res.Valid {
		return res.Err()
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	if !slices.Equal(sorted, tree.Keys()) {
		return fmt.Errorf("traversal does not match inserted keys")
	}

	present := make(map[int64]bool, len(keys))
	for _, k := range keys {
		present[k] = true
		if !tree.Search(k) {
			return fmt.Errorf("inserted key not found: %d", k)
		}
	}
	misses := 0
	for range count {
		k := int64(faker.Number(0, int(maxKey)))
		if present[k] {
			continue
		}
		misses++
		if tree.Search(k) {
			return fmt.Errorf("search found key which was never inserted: %d", k)
		}
	}
	logger.Info("checked search", "present", len(keys), "absent", misses)

	if count > 0 {
		bound := math.Log(float64(count+1)/2)/math.Log(float64(tree.MinDegree())) + 1
		logger.Info("height bound", "height", tree.Height(), "bound", bound, "leaf_depth", res.LeafDepth)
		if float64(tree.Height()) > bound+1e-9 {
			return fmt.Errorf("tree height %d above bound %.2f", tree.Height(), bound)
		}
	}

	if err := logMetrics(logger); err != nil {
		logger.Warn("failed to gather metrics", "err", err)
	}
	fmt.Fprintln(cctx.App.Writer, res.Diagnostic)
	return nil
}

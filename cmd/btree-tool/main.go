package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/btree/btree"
	"github.com/bluesky-social/btree/util/svcutil"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	app.RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "btree-tool",
		Usage:   "development tool for building, printing and checking m-way B-trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"BTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "order",
				Aliases: []string{"m"},
				Usage:   "maximum number of children per node (at least 3)",
				Value:   3,
				EnvVars: []string{"BTREE_ORDER"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output (NO_COLOR is also honored)",
				EnvVars: []string{"BTREE_NO_COLOR"},
			},
		},
		Before: func(cctx *cli.Context) error {
			svcutil.ConfigLogger(cctx, cctx.App.ErrWriter)
			if cctx.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "demo",
			Usage:     "insert keys one at a time, printing and validating the tree after each",
			ArgsUsage: "[<key>...]",
			Action:    runDemo,
		},
		&cli.Command{
			Name:      "insert",
			Usage:     "build a tree from keys and print it",
			ArgsUsage: "<key>...",
			Action:    runInsert,
		},
		&cli.Command{
			Name:      "search",
			Usage:     "build a tree from keys and look for a single key",
			ArgsUsage: "<key> <key>...",
			Action:    runSearch,
		},
		&cli.Command{
			Name:   "random",
			Usage:  "insert shuffled random keys, checking the tree structure as it grows",
			Action: runRandom,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Usage:   "number of distinct keys to insert",
					Value:   1000,
				},
				&cli.Int64Flag{
					Name:  "max-key",
					Usage: "largest key to generate (default: ten times count)",
				},
				&cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed; zero picks one at random",
				},
				&cli.IntFlag{
					Name:  "check-every",
					Usage: "validate the tree after this many inserts (zero only validates at the end)",
					Value: 1,
				},
			},
		},
	}
	return app
}

func newTree(cctx *cli.Context) (*btree.Tree, error) {
	tree, err := btree.NewTreeWithConfig(btree.TreeConfig{
		Order:  cctx.Int("order"),
		Logger: slog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating tree: %w", err)
	}
	return tree, nil
}

package cmd

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oahshtsua/lab/bst/algos/bst"
	"github.com/oahshtsua/lab/bst/internal/render"
)

func init() {
	buildCmd.Flags().IntSlice("delete", nil, "keys to delete after all inserts")
	buildCmd.Flags().Bool("stats", true, "print the query table")
	RootCmd.AddCommand(buildCmd)
}

// go run ./cmd/bst build 5 3 8 1 4 7 9 --delete 5
var buildCmd = &cobra.Command{
	Use:          "build KEY... [--delete KEY]",
	Short:        "Build a tree from keys and print it",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		deletes, err := cmd.Flags().GetIntSlice("delete")
		if err != nil {
			return err
		}

		withStats, err := cmd.Flags().GetBool("stats")
		if err != nil {
			return err
		}

		keys := make([]int, 0, len(args))
		for _, arg := range args {
			key, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Wrapf(err, "invalid key %q", arg)
			}
			keys = append(keys, key)
		}

		root := buildTree(keys, deletes)
		log.WithFields(log.Fields{
			"inserted": len(keys),
			"deleted":  len(deletes),
			"count":    root.Count(),
		}).Debug("tree built")

		return printTree(cmd.OutOrStdout(), root, withStats)
	},
}

func buildTree(inserts, deletes []int) *bst.Node {
	var root *bst.Node
	for _, key := range inserts {
		if root == nil {
			root = bst.New(key)
			continue
		}
		root.Insert(key)
	}

	for _, key := range deletes {
		root = root.Delete(key)
	}
	return root
}

func printTree(w io.Writer, root *bst.Node, withStats bool) error {
	if err := render.Tree(w, root, userConfig.RenderStyle()); err != nil {
		return err
	}

	if withStats {
		render.Stats(w, root, !userConfig.NoColor)
	}
	return nil
}

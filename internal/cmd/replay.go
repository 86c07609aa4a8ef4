package cmd

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oahshtsua/lab/bst/algos/bst"
	"github.com/oahshtsua/lab/bst/internal/journal"
)

func init() {
	replayCmd.Flags().Bool("check", false, "verify the tree invariants after replaying")
	RootCmd.AddCommand(replayCmd)
}

// go run ./cmd/bst replay ops.jsonl
var replayCmd = &cobra.Command{
	Use:          "replay [FILE]",
	Short:        "Rebuild a tree from a journal and print it",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := userConfig.Journal
		if len(args) > 0 {
			filename = args[0]
		}
		if filename == "" {
			return errors.New("journal file is required")
		}

		check, err := cmd.Flags().GetBool("check")
		if err != nil {
			return err
		}

		root, err := replayFile(filename)
		if err != nil {
			return err
		}

		if check {
			if err := bst.Validate(root); err != nil {
				return errors.Wrap(err, "invariant violated")
			}
			log.Info("tree invariants hold")
		}

		return printTree(cmd.OutOrStdout(), root, true)
	},
}

func replayFile(filename string) (*bst.Node, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, errors.Wrapf(err, "cannot open journal %s", filename)
	}

	j, err := journal.NewFileJournal(filename)
	if err != nil {
		return nil, err
	}
	defer j.Close()

	events, errs := j.ReadEvents()
	root, err := journal.Replay(nil, events, errs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to replay %s", filename)
	}
	return root, nil
}

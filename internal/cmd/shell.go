package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oahshtsua/lab/bst/algos/bst"
	"github.com/oahshtsua/lab/bst/internal/journal"
	"github.com/oahshtsua/lab/bst/internal/shell"
)

func init() {
	RootCmd.AddCommand(shellCmd)
}

// go run ./cmd/bst shell --journal ops.jsonl
var shellCmd = &cobra.Command{
	Use:          "shell",
	Short:        "Edit a tree interactively",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.New(cmd.OutOrStdout(), userConfig.RenderStyle(), !userConfig.NoColor)

		if userConfig.Journal != "" {
			log.Infof("Initializing journal %s...", userConfig.Journal)
			j, root, err := openJournal(userConfig.Journal)
			if err != nil {
				return err
			}
			defer func() {
				if err := j.Close(); err != nil {
					log.WithError(err).Error("failed to close journal")
				}
			}()

			log.Infof("restored %d keys from journal", root.Count())
			sh.WithRoot(root).WithJournal(j)
		}

		return sh.Run(os.Stdin)
	},
}

// openJournal restores the tree recorded in filename and starts appending to
// it.
func openJournal(filename string) (*journal.FileJournal, *bst.Node, error) {
	j, err := journal.NewFileJournal(filename)
	if err != nil {
		return nil, nil, err
	}

	events, errs := j.ReadEvents()
	root, err := journal.Replay(nil, events, errs)
	if err != nil {
		j.Close()
		return nil, nil, err
	}

	j.Run()
	go func() {
		for err := range j.Err() {
			log.WithError(err).Error("journal writer stopped")
		}
	}()
	return j, root, nil
}

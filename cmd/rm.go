package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
)

// rmCmd represents the rm command.
var rmCmd = newRmCmd()

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm id...",
		Short: "Delete nodes and everything below them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			var removed int

			err = mutate(func(e domain.Editor) error {
				removed, err = e.Delete(ids...)
				return err
			})
			if err != nil {
				return err
			}

			cmd.Printf("removed %d node(s)\n", removed)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

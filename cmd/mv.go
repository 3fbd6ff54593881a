package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// mvCmd represents the mv command.
var mvCmd = newMvCmd()
var mvToFlag uint64

func newMvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv --to id id...",
		Short: "Move nodes to the end of a group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			return mutate(func(e domain.Editor) error {
				return e.Move(ids, m.ID(mvToFlag))
			})
		},
	}
	cmd.Flags().Uint64Var(&mvToFlag, "to", uint64(m.RootID), "id of the destination group")

	return cmd
}

func init() {
	rootCmd.AddCommand(mvCmd)
}

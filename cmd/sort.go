package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// sortCmd represents the sort command.
var sortCmd = newSortCmd()
var sortRecursiveFlag bool

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [id]",
		Short: "Sort the children of a group",
		Long: `Sort the children of a group, the root by default: groups first, then
by name or endpoint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id := m.RootID

			if len(args) == 1 {
				var err error
				if id, err = parseID(args[0]); err != nil {
					return err
				}
			}

			return mutate(func(e domain.Editor) error {
				return e.Sort(id, sortRecursiveFlag)
			})
		},
	}
	cmd.Flags().BoolVarP(&sortRecursiveFlag, "recursive", "r", false, "also sort every group below")

	return cmd
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

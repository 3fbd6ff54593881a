package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
)

// disableCmd represents the disable command.
var disableCmd = newDisableCmd()
var disableOffFlag bool

func newDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable id",
		Short: "Disable a node, or enable it again with --off",
		Long: `Disable a node. A disabled group disables everything below it without
changing the flags of its descendants.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return mutate(func(e domain.Editor) error {
				return e.SetDisabled(id, !disableOffFlag)
			})
		},
	}
	cmd.Flags().BoolVar(&disableOffFlag, "off", false, "enable the node instead")

	return cmd
}

func init() {
	rootCmd.AddCommand(disableCmd)
}

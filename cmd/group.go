package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// groupCmd represents the group command.
var groupCmd = newGroupCmd()
var groupNameFlag string

// ungroupCmd represents the ungroup command.
var ungroupCmd = newUngroupCmd()

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group id...",
		Short: "Wrap nodes in a new group",
		Long: `Wrap nodes in a new group and print its id. The group is created under
the deepest group that contains all of the nodes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			var gid m.ID

			err = mutate(func(e domain.Editor) error {
				if gid, err = e.Group(ids); err != nil {
					return err
				}

				if groupNameFlag == "" {
					return nil
				}

				return e.Rename(gid, groupNameFlag)
			})
			if err != nil {
				return err
			}

			cmd.Println(gid)

			return nil
		},
	}
	cmd.Flags().StringVar(&groupNameFlag, "name", "", "name of the new group")

	return cmd
}

func newUngroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ungroup id",
		Short: "Replace a group by its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return mutate(func(e domain.Editor) error {
				return e.Ungroup(id)
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(ungroupCmd)
}

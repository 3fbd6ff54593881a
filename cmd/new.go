package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// newCmd represents the new command.
var newCmd = newNewCmd()
var newForceFlag bool

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty test book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := documentPath()

			exists, err := store.Exists(path)
			if err != nil {
				return err
			}

			if exists && !newForceFlag {
				return errors.Newf("%s already exists, use --force to overwrite it", path)
			}

			editor.New()

			if err := editor.Save(path); err != nil {
				return err
			}

			cmd.Printf("created %s\n", path)

			return nil
		},
	}
	cmd.Flags().BoolVar(&newForceFlag, "force", false, "overwrite an existing document")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive editor",
		Long: `Open the interactive editor on the document, creating it when it does not
exist. Press ? in the editor for the key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := documentPath()

			exists, err := store.Exists(path)
			if err != nil {
				return err
			}

			if exists {
				err = editor.Open(path)
			} else {
				logger.Info("creating document", slog.String("path", string(path)))
				editor.New()
				err = editor.Save(path)
			}

			if err != nil {
				return err
			}

			return ui.RunEditor(editor)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}

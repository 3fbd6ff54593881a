package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/controller"
)

// showCmd represents the show command.
var showCmd = newShowCmd()
var showYAMLFlag bool
var showFilterFlag string

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print the document tree",
		Long: `Print the document tree, or the subtree rooted at id.

--filter keeps the tests whose endpoint fuzzy-matches the text, together with
the groups leading to them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := editor.Open(documentPath()); err != nil {
				return err
			}

			editor.Filter(showFilterFlag)

			options := []controller.DisplayOption{controller.WithTableFormat()}
			if showYAMLFlag {
				options = []controller.DisplayOption{controller.WithYAMLFormat()}
			}

			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				options = append(options, controller.WithSubtree(id))
			}

			return ui.DisplayTree(editor.Tree(), options...)
		},
	}
	cmd.Flags().BoolVar(&showYAMLFlag, "yaml", false, "print a YAML outline instead of a table")
	cmd.Flags().StringVar(&showFilterFlag, "filter", "", "only show nodes matching the text")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}

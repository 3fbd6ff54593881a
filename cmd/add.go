package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// addCmd represents the add command.
var addCmd = newAddCmd()
var addParentFlag uint64
var addNameFlag string
var addMethodFlag string
var addEndpointFlag string

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add test|group",
		Short: "Add a test or a group",
		Long: `Add a test or a group as the last child of --parent and print its id.

Tests take --method and --endpoint, groups take --name.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{m.KindTest.String(), m.KindGroup.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			var id m.ID

			err := mutate(func(e domain.Editor) error {
				var err error

				switch args[0] {
				case m.KindTest.String():
					id, err = addTest(e, m.ID(addParentFlag))
				case m.KindGroup.String():
					id, err = addGroup(e, m.ID(addParentFlag))
				default:
					err = errors.Newf("unknown node kind %q, want test or group", args[0])
				}

				return err
			})
			if err != nil {
				return err
			}

			cmd.Println(id)

			return nil
		},
	}
	cmd.Flags().Uint64Var(&addParentFlag, "parent", uint64(m.RootID), "id of the parent group")
	cmd.Flags().StringVar(&addNameFlag, "name", "", "group name")
	cmd.Flags().StringVar(&addMethodFlag, "method", "", "test HTTP method")
	cmd.Flags().StringVar(&addEndpointFlag, "endpoint", "", "test endpoint")

	return cmd
}

func addTest(e domain.Editor, parent m.ID) (m.ID, error) {
	if addNameFlag != "" {
		return 0, errors.New("--name only applies to groups")
	}

	id, err := e.Add(parent, m.KindTest)
	if err != nil {
		return 0, err
	}

	if addMethodFlag != "" {
		method, err := m.ParseMethod(addMethodFlag)
		if err != nil {
			return 0, err
		}

		if err := e.SetMethod(id, method); err != nil {
			return 0, err
		}
	}

	if addEndpointFlag != "" {
		if err := e.SetEndpoint(id, addEndpointFlag); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func addGroup(e domain.Editor, parent m.ID) (m.ID, error) {
	if addMethodFlag != "" || addEndpointFlag != "" {
		return 0, errors.New("--method and --endpoint only apply to tests")
	}

	id, err := e.Add(parent, m.KindGroup)
	if err != nil {
		return 0, err
	}

	if addNameFlag != "" {
		if err := e.Rename(id, addNameFlag); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}

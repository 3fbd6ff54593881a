package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/testbook/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

var errInvalidFiles = errors.New("some files are invalid")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check path...",
		Short: "Validate test book files",
		Long: `Validate test book files without modifying them. Every file is decoded
and its tree links are checked. The command fails if any file is invalid.

Supports Go-style path patterns:
  - ./suites       every .tbk file in suites
  - ./suites/...   every .tbk file below suites
  - login.tbk      a single file`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := make([]m.Path, 0, len(args))
			for _, arg := range args {
				roots = append(roots, m.Path(arg))
			}

			paths, err := finder.Find(roots)
			if err != nil {
				return err
			}

			if len(paths) == 0 {
				return errors.New("no test books found")
			}

			reports, err := checker.CheckFiles(cmd.Context(), paths, settings.GetInt(keyParallel))
			if err != nil {
				return err
			}

			if err := ui.DisplayCheck(reports); err != nil {
				return err
			}

			for _, r := range reports {
				if !r.OK() {
					return errInvalidFiles
				}
			}

			return nil
		},
	}
	cmd.Flags().IntP("parallel", "p", defaultParallel, "number of files checked in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

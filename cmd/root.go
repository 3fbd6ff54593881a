// Package cmd provides the root command and CLI setup for testbook.
package cmd

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/adapter"
	"github.com/mouse-blink/testbook/internal/controller"
	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

var store adapter.DocumentStore
var finder adapter.DocumentFinder
var editor domain.Editor
var checker domain.Checker
var ui controller.UI
var logger *slog.Logger

// logLevel is set from the configuration before any command runs.
var logLevel = new(slog.LevelVar)

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	store = adapter.NewLocalDocumentStore()
	finder = adapter.NewLocalDocumentFinder()
	editor = domain.NewEditor(store, logger)
	checker = domain.NewChecker(store, logger)
}

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testbook",
		Short: "Edit API test books",
		Long: `Testbook edits test books: trees of HTTP API tests organised in groups,
saved as a single binary file.

Every editing command opens the document, applies one change and saves it
back. Use "testbook edit" for the interactive editor with undo/redo and a
clipboard.

The document defaults to the "document" key of $HOME/.testbook.yaml, or
tests.tbk, and can be set with --file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadSettings(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is $HOME/.testbook.yaml)")
	cmd.PersistentFlags().StringP("file", "f", defaultDocument, "test book to operate on")
	cmd.PersistentFlags().String("log-level", defaultLogLevel, "log level: debug, info, warn or error")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// mutate opens the configured document, applies edit and saves the result.
// Nothing is written when edit fails.
func mutate(edit func(domain.Editor) error) error {
	path := documentPath()

	if err := editor.Open(path); err != nil {
		return err
	}

	if err := edit(editor); err != nil {
		return err
	}

	return editor.Save(path)
}

func parseIDs(args []string) ([]m.ID, error) {
	ids := make([]m.ID, 0, len(args))

	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func parseID(arg string) (m.ID, error) {
	id, err := m.ParseID(arg)
	if err != nil {
		return 0, errors.Newf("invalid node id %q", arg)
	}

	return id, nil
}

/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"

	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/typegraph/typegraph/pkg/render"
)

var (
	schemaFilePath string
	outputFormat   render.Format
	verbose        bool
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// buildLogger returns the logger handed to the schema builder. Build
// diagnostics (skipped extensions and the like) are only interesting with
// --verbose.
func buildLogger() abstractlogger.Logger {
	if !verbose {
		return abstractlogger.Noop{}
	}
	logger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		return abstractlogger.Noop{}
	}
	return abstractlogger.NewZapLogger(logger, abstractlogger.DebugLevel)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typegraph",
		Short: "Build and explore linked GraphQL type graphs from SDL files",
		Long: `typegraph compiles a GraphQL schema file into a fully linked type graph:
every named type is constructed exactly once, forward references and cycles are
closed, default values are coerced, and deprecation metadata is extracted.

Commands inspect the built graph rather than the raw syntax tree, so what you
see is what an execution engine would consume: resolved field types, root
operation types, union members, directive definitions.

By default, typegraph tries to read ./schema.graphql in the current directory.
A different schema file can be specified using -s.

Output can be formatted as pretty tables (default in terminals), plain text
(default when piping), or JSON for integration with other tools.`,
		Example: `  # Verify that the schema builds into a closed type graph
  typegraph check

  # List all types in the built schema
  typegraph types

  # Show the resolved fields of a type, including deprecation
  typegraph fields User --deprecated

  # Show the arguments of a field with their coerced default values
  typegraph args Query.search

  # Show the root operation types
  typegraph roots

  # Pipe JSON output to other tools
  typegraph types -f json | jq '.[].name'`,
	}

	// Persistent flags
	cmd.PersistentFlags().StringVarP(&schemaFilePath, "schema", "s", "schema.graphql", "File path of GraphQL schema")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log build diagnostics (skipped extensions, etc.)")

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		return err
	}

	// Add all subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewTypesCmd())
	cmd.AddCommand(NewFieldsCmd())
	cmd.AddCommand(NewArgsCmd())
	cmd.AddCommand(NewValuesCmd())
	cmd.AddCommand(NewRootsCmd())
	cmd.AddCommand(NewDirectivesCmd())

	return cmd
}

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	// Create a fresh command tree so repeated invocations don't share flag state.
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}

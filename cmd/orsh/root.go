package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oriel-cms/orsh/internal/config"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/terminal"
)

// Seams for working-directory and TTY detection, replaced in tests.
var (
	getwd      = config.Cwd
	isTerminal = terminal.IsInteractive
)

// rootOptions holds the persistent flag values shared by every command.
// newRootCmd resets them, so stale values never leak between executions.
type rootOptions struct {
	rootDir string
	uri     string
	verbose bool
	debug   bool
	noLocal bool
}

var rootOpts rootOptions

func newRootCmd() *cobra.Command {
	rootOpts = rootOptions{}
	cmd := &cobra.Command{
		Use:   messages.RootUse,
		Short: messages.RootShort,
		// runMain prints the returned error once; cobra stays quiet so
		// SilentExitError never leaks a message.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&rootOpts.rootDir, "root", "", messages.RootFlagRoot)
	flags.StringVar(&rootOpts.uri, "uri", "", messages.RootFlagURI)
	flags.BoolVarP(&rootOpts.verbose, "verbose", "v", false, messages.RootFlagVerbose)
	flags.BoolVar(&rootOpts.debug, "debug", false, messages.RootFlagDebug)
	// Parsed for help and acceptance; the handoff scan in dispatch acts
	// on it before cobra ever runs.
	flags.BoolVar(&rootOpts.noLocal, "no-local", false, messages.RootFlagNoLocal)

	cmd.AddCommand(
		newStatusCmd(),
		newSiteCmd(),
		newAliasCmd(),
		newCacheCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		},
	}
}

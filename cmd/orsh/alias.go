package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oriel-cms/orsh/internal/alias"
	"github.com/oriel-cms/orsh/internal/fsutil"
	"github.com/oriel-cms/orsh/internal/logging"
	"github.com/oriel-cms/orsh/internal/messages"
)

func newAliasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.AliasUse,
		Short: messages.AliasShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newAliasListCmd(), newAliasSetCmd())
	return cmd
}

func newAliasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.AliasListUse,
		Short: messages.AliasListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rootDir, err := resolveRoot()
			if err != nil {
				return err
			}
			m, _, err := alias.LoadIn(rootDir)
			if err != nil {
				return err
			}
			if len(m) == 0 {
				_, _ = fmt.Fprintln(out, messages.AliasListNone)
				return nil
			}
			for _, key := range m.Keys() {
				dir, _ := m.Dir(key)
				_, _ = fmt.Fprintf(out, messages.AliasListEntryFmt, key, dir)
			}
			return nil
		},
	}
}

func newAliasSetCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   messages.AliasSetUse,
		Short: messages.AliasSetShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			log := logging.New(cmd.ErrOrStderr(), rootOpts.verbose, rootOpts.debug)
			rootDir, err := resolveRoot()
			if err != nil {
				return err
			}

			key, dir := args[0], args[1]
			path := alias.PathIn(rootDir)
			before, err := readFileOrEmpty(path)
			if err != nil {
				return err
			}

			after, changed, err := alias.Set(before, filepath.Base(path), key, dir)
			if err != nil {
				return err
			}
			if !changed {
				_, _ = fmt.Fprint(out, messages.AliasSetNoChange)
				return nil
			}
			if dryRun {
				_, _ = fmt.Fprint(out, alias.Preview(path, before, after))
				return nil
			}

			log.Debug("patching alias map", "path", path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := fsutil.WriteFileAtomic(path, []byte(after), 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.AliasSetDoneFmt, key, dir, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.AliasSetFlagDryRun)
	return cmd
}

// readFileOrEmpty reads path, treating a missing file as empty content.
func readFileOrEmpty(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

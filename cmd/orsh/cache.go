package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oriel-cms/orsh/internal/cache"
	"github.com/oriel-cms/orsh/internal/messages"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.CacheUse,
		Short: messages.CacheShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newCacheDirCmd(), newCacheClearCmd())
	return cmd
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.CacheDirUse,
		Short: messages.CacheDirShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.Root()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.CacheClearUse,
		Short: messages.CacheClearShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.Root()
			if err != nil {
				return err
			}
			if err := cache.Clear(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.CacheClearedFmt, dir)
			return nil
		},
	}
}

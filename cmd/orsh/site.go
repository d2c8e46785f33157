package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/oriel-cms/orsh/internal/cache"
	"github.com/oriel-cms/orsh/internal/logging"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/site"
)

func newSiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.SiteUse,
		Short: messages.SiteShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newSiteListCmd(), newSiteResolveCmd(), newSiteSetCmd())
	return cmd
}

func newSiteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SiteListUse,
		Short: messages.SiteListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rootDir, err := resolveRoot()
			if err != nil {
				return err
			}
			names, err := site.List(rootDir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				_, _ = fmt.Fprintln(out, messages.SiteListNone)
				return nil
			}
			active := activeSiteName()
			for _, name := range names {
				marker := ""
				if name == active {
					marker = messages.SiteListActive
				}
				_, _ = fmt.Fprintf(out, messages.SiteListEntryFmt, name, marker)
			}
			return nil
		},
	}
}

func newSiteResolveCmd() *cobra.Command {
	var bareDirs bool
	cmd := &cobra.Command{
		Use:   messages.SiteResolveUse,
		Short: messages.SiteResolveShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			log := logging.New(cmd.ErrOrStderr(), rootOpts.verbose, rootOpts.debug)
			rootDir, err := resolveRoot()
			if err != nil {
				return err
			}

			path, found, err := site.Find(rootDir, getwd(), nil)
			if err != nil {
				return err
			}
			if found {
				_, _ = fmt.Fprintf(out, messages.SiteResolvePathFmt, path)
			} else {
				_, _ = fmt.Fprint(out, messages.SiteResolveNoPath)
			}

			uri := effectiveURI(args)
			log.Debug("resolving conf dir", "uri", uri)
			conf, err := site.ConfPath(rootDir, uri, !bareDirs)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.SiteResolveConfFmt, conf)
			return nil
		},
	}
	cmd.Flags().BoolVar(&bareDirs, "exists", false, messages.SiteResolveFlagExists)
	return cmd
}

// effectiveURI picks the URI to resolve: the positional argument wins,
// then --uri, then the recorded active site.
func effectiveURI(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if rootOpts.uri != "" {
		return rootOpts.uri
	}
	return activeSiteName()
}

func newSiteSetCmd() *cobra.Command {
	var clearActive bool
	cmd := &cobra.Command{
		Use:   messages.SiteSetUse,
		Short: messages.SiteSetShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			store, err := cache.Root()
			if err != nil {
				return err
			}
			if clearActive {
				if err := site.ClearActive(store); err != nil {
					return err
				}
				_, _ = fmt.Fprint(out, messages.SiteSetClearedMsg)
				return nil
			}

			rootDir, err := resolveRoot()
			if err != nil {
				return err
			}
			names, err := site.List(rootDir)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
				if !slices.Contains(names, name) {
					return fmt.Errorf(messages.SiteSetUnknownFmt, name, name)
				}
			} else {
				if len(names) == 0 {
					return errors.New(messages.SiteSetNoSites)
				}
				if !isTerminal() {
					return errors.New(messages.SiteSetNeedsTTY)
				}
				name, err = pickSite(names)
				if err != nil {
					return err
				}
			}

			if err := site.SetActive(store, name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.SiteSetDoneFmt, name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearActive, "clear", false, messages.SiteSetFlagClear)
	return cmd
}

// activeSiteName returns the recorded active site, or empty when none is
// recorded or the store is unreachable.
func activeSiteName() string {
	store, err := cache.Root()
	if err != nil {
		return ""
	}
	name, ok, err := site.Active(store)
	if err != nil || !ok {
		return ""
	}
	return name
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oriel-cms/orsh/internal/fsutil"
	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/root"
	"github.com/oriel-cms/orsh/internal/templates"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir, err := resolveInitRoot()
			if err != nil {
				return err
			}
			err = templates.Walk(".", func(name string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				return scaffoldFile(cmd, rootDir, name, force)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitDoneFmt, rootDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)

	return cmd
}

// resolveInitRoot locates the codebase init scaffolds into. Discovery
// failures come back with init-specific guidance.
func resolveInitRoot() (string, error) {
	start := rootOpts.rootDir
	if start == "" {
		start = getwd()
	}
	desc, found, err := root.Find(start, nil)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.InitRootRequiredFmt, start)
	}
	return desc.Root, nil
}

// scaffoldFile writes one template into the codebase. Existing files are
// kept unless --force is set or the user confirms the overwrite; without
// a terminal no prompt runs and the file is kept.
func scaffoldFile(cmd *cobra.Command, rootDir string, name string, force bool) error {
	out := cmd.OutOrStdout()
	rel := destFor(name)
	dest := filepath.Join(rootDir, rel)

	if _, err := os.Stat(dest); err == nil {
		if !force {
			keep := true
			if isTerminal() {
				overwrite, err := promptYesNo(cmd.InOrStdin(), out, fmt.Sprintf(messages.InitOverwritePromptFmt, rel), false)
				if err != nil {
					return err
				}
				keep = !overwrite
			}
			if keep {
				_, _ = fmt.Fprintf(out, messages.InitSkippedFmt, rel)
				return nil
			}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	data, err := templates.Read(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InitWroteFmt, rel)
	return nil
}

// destFor maps a template name to its root-relative destination. The
// configuration pair is relocated under .orsh; everything else scaffolds
// where it sits in the template tree.
func destFor(name string) string {
	switch name {
	case "config.toml":
		return filepath.Join(".orsh", "config.toml")
	case "env":
		return filepath.Join(".orsh", ".env")
	}
	return filepath.FromSlash(name)
}

// promptYesNo asks a yes/no question and returns the user's choice or an error.
// defaultYes controls the result when the user provides an empty response.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		if defaultYes {
			if _, err := fmt.Fprintf(out, messages.PromptYesDefaultFmt, prompt); err != nil {
				return false, err
			}
		} else {
			if _, err := fmt.Fprintf(out, messages.PromptNoDefaultFmt, prompt); err != nil {
				return false, err
			}
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			if err == nil {
				return defaultYes, nil
			}
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}

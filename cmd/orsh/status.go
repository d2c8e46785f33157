package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oriel-cms/orsh/internal/config"
	"github.com/oriel-cms/orsh/internal/doctor"
	"github.com/oriel-cms/orsh/internal/logging"
	"github.com/oriel-cms/orsh/internal/messages"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			log := logging.New(cmd.ErrOrStderr(), rootOpts.verbose, rootOpts.debug)

			start := rootOpts.rootDir
			if start == "" {
				start = getwd()
			}
			_, _ = fmt.Fprintf(out, messages.StatusHeaderFmt, start)

			results, rootDir := doctor.CheckRoot(start)

			// Root-bound checks only run against a discovered root; the
			// environment checks below run either way.
			var cfg *config.Config
			if rootDir != "" {
				log.Debug("root discovered", "root", rootDir)
				configResults, loaded := doctor.CheckConfig(rootDir)
				results = append(results, configResults...)
				cfg = loaded
				results = append(results, doctor.CheckSite(rootDir, start)...)
				results = append(results, doctor.CheckHandoff(rootDir)...)
			}
			results = append(results, doctor.CheckOS()...)
			results = append(results, doctor.CheckCache()...)
			results = append(results, doctor.CheckInterpreter(cfg)...)

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.StatusFailureSummary))
				return errors.New(messages.StatusFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.StatusSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var label string
	switch r.Status {
	case doctor.StatusOK:
		label = color.GreenString(messages.StatusOKLabel)
	case doctor.StatusWarn:
		label = color.YellowString(messages.StatusWarnLabel)
	case doctor.StatusFail:
		label = color.RedString(messages.StatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, messages.StatusResultLineFmt, label, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent
// indentation under its result line.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.StatusRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.StatusRecommendationIndent, line)
	}
}

package commands

import (
	"context"
	"os"

	"github.com/racekit/stocopy/cmd/stocopy/opts"
	"github.com/racekit/stocopy/pkg/copier"
	"github.com/racekit/stocopy/pkg/report"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewCopyCmd creates a new copy command
func NewCopyCmd(opts *opts.RootOpts) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy setup files into their car folders",
		Long: `Copy distributes the .sto files in the source directory into the
iRacing setups directory. It will:
1. List the setup files in the source directory
2. Extract the car code from each filename
3. Match the car code against the car folder names
4. Copy each matched file, overwriting any existing copy
5. Print a per-file outcome and an end-of-run summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd.Context(), opts, reportPath, false)
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "write a YAML report of the run to this file")

	return cmd
}

// 🏃 runCopy executes one match-and-copy run and reports its outcomes.
// With dryRun set no copy is performed and no report file is written.
func runCopy(ctx context.Context, o *opts.RootOpts, reportPath string, dryRun bool) error {
	c, err := copier.New(copier.Options{
		Source:    o.Source,
		SetupsDir: o.SetupsDir,
		DryRun:    dryRun,
	})
	if err != nil {
		return errors.Errorf("creating copier: %w", err)
	}

	outcomes, err := c.Run(ctx)
	if err != nil {
		return errors.Errorf("running copy: %w", err)
	}

	for _, outcome := range outcomes {
		o.UserLogger.LogOutcome(outcome)
	}

	summary := report.Summarize(outcomes)
	o.UserLogger.LogSummary(summary)

	if reportPath != "" && !dryRun {
		if err := writeReport(reportPath, outcomes); err != nil {
			return errors.Errorf("writing report: %w", err)
		}
	}

	if summary.CopyFailed > 0 {
		return errors.Errorf("%d setup file(s) failed to copy", summary.CopyFailed)
	}

	return nil
}

// 📝 writeReport writes the YAML run report to path
func writeReport(path string, outcomes []copier.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	return report.WriteYAML(f, outcomes)
}

package commands

import (
	"github.com/racekit/stocopy/cmd/stocopy/opts"
	"github.com/spf13/cobra"
)

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what a copy run would do without copying anything",
		Long: `Preview performs the same matching as copy but without any filesystem
side effects. It will:
1. List the setup files in the source directory
2. Extract the car code from each filename
3. Match the car code against the car folder names
4. Print the outcome each file would have`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd.Context(), opts, "", true)
		},
	}

	return cmd
}

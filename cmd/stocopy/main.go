package main

import (
	"context"
	"os"

	"github.com/racekit/stocopy/cmd/stocopy/commands"
	"github.com/racekit/stocopy/cmd/stocopy/opts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "stocopy",
		Short: "A tool for sorting iRacing setup files into their car folders",
		Long: `stocopy copies the .sto setup files in the current directory into the
matching car folders of the iRacing setups directory, using the car code
embedded in each filename (e.g. VRS_25S1DS_MX5_setup1.sto -> MX5).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are only parsed at this point
			setupLogging()
			ctx := log.Logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)
			return fillRootOpts(ctx, rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	copyCmd := commands.NewCopyCmd(rootOpts)
	rootCmd.AddCommand(
		copyCmd,
		commands.NewPreviewCmd(rootOpts),
	)

	// Zero-argument invocation from a folder of setup files runs copy
	rootCmd.RunE = copyCmd.RunE

	ctx := log.Logger.WithContext(context.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

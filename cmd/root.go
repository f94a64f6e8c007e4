// =============================================================================
// IFSC Enricher - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, it performs the full interactive session: enrich the input
// workbook, search for banks in a region, then offer the lookup history.
//
// COBRA CLI STRUCTURE:
//   rootCmd (ifsc-enricher)
//   ├── enrichCmd  (ifsc-enricher enrich)
//   ├── searchCmd  (ifsc-enricher search <region>)
//   └── versionCmd (ifsc-enricher version)
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ifsc-enricher/internal/session"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to an optional configuration file.
// Without it the fixed defaults are used.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ifsc-enricher",
	Short: "IFSC Enricher - Fill in bank and branch names for IFSC codes",
	Long: `IFSC Enricher reads IFSC codes from column A of sample.xlsx, looks up the
bank and branch for every valid code, and writes them into columns B and C of
output.xlsx. Invalid codes are marked "Invalid IFSC" with a red background.

Afterwards it asks for a region and lists the banks found there, and offers
to print the history of codes resolved during the run.

Example Usage:
  ifsc-enricher                        # Run the full interactive session
  ifsc-enricher enrich                 # Only enrich the workbook
  ifsc-enricher search "tamil nadu"    # Only search for banks in a region`,

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		p, err := a.pipeline(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		controller := session.NewController(
			p,
			a.regionClient(),
			cmd.InOrStdin(),
			cmd.OutOrStdout(),
			cmd.ErrOrStderr(),
			a.logger,
		)
		return controller.Run(cmd.Context())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main(). Interrupts
// cancel the command's context, aborting in-flight lookups.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

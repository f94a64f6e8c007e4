// =============================================================================
// IFSC Enricher - Enrich Command
// =============================================================================
//
// This file defines the 'enrich' command, which runs only the enrichment
// pipeline and skips the interactive prompts.
//
// COMMAND USAGE:
//   ifsc-enricher enrich [flags]
//
// FLAGS:
//   --input                : Input workbook (overrides the config)
//   --output               : Output workbook (overrides the config)
//   --continue-on-error    : Mark failed lookups instead of aborting
//   --no-clear             : Do not clear the screen between progress updates
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	inputFile       string
	outputFile      string
	continueOnError bool
	noClear         bool
)

// =============================================================================
// ENRICH COMMAND DEFINITION
// =============================================================================

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill in bank and branch names without the interactive prompts",
	Long: `The enrich command reads every IFSC code in column A of the input workbook,
writes the bank name into column B and the branch name into column C, and
marks invalid codes with "Invalid IFSC" on a red background. The result is
saved to the output workbook.

A failed lookup aborts the run and nothing is saved, unless
--continue-on-error is given, in which case the row is marked "Lookup Failed".`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		if inputFile != "" {
			a.cfg.InputFile = inputFile
		}
		if outputFile != "" {
			a.cfg.OutputFile = outputFile
		}
		if continueOnError {
			a.cfg.ContinueOnLookupError = true
		}
		if err := a.cfg.Validate(); err != nil {
			return err
		}

		p, err := a.pipeline(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if noClear {
			p.Reporter().ClearScreen = false
		}

		_, err = p.Run(cmd.Context())
		return err
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().StringVar(&inputFile, "input", "", "Input workbook (default from config, sample.xlsx)")
	enrichCmd.Flags().StringVar(&outputFile, "output", "", "Output workbook (default from config, output.xlsx)")
	enrichCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Mark rows whose lookup failed instead of aborting")
	enrichCmd.Flags().BoolVar(&noClear, "no-clear", false, "Do not clear the screen between progress updates")
}

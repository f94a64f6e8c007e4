package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ifsc-enricher/internal/region"
	"github.com/ginjaninja78/ifsc-enricher/internal/session"
)

// searchCmd runs a single region search.
var searchCmd = &cobra.Command{
	Use:   "search <region>",
	Short: "List banks in a region",
	Long: `The search command queries OpenStreetMap Nominatim for banks in the given
region and prints each match with its address.`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		name := session.NormalizeRegion(strings.Join(args, " "))
		if name == "" {
			return errors.New("region must not be blank")
		}

		places, err := a.regionClient().Search(cmd.Context(), name)
		if err != nil {
			return err
		}
		region.Render(cmd.OutOrStdout(), name, places)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

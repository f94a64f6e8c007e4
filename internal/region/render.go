package region

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

const separator = "----------------------"

// FormatAddress renders an address as "road, city, state, country". Missing
// parts are left empty; a nil address reads "Address not available".
func FormatAddress(a *types.Address) string {
	if a == nil {
		return "Address not available"
	}
	return fmt.Sprintf("%s, %s, %s, %s", a.Road, a.City, a.State, a.Country)
}

// Render prints the search results for region.
func Render(w io.Writer, region string, places []types.Place) {
	if len(places) == 0 {
		fmt.Fprintf(w, "No banks found for %s.\n", region)
		return
	}

	fmt.Fprintf(w, "Banks in %s:\n", region)
	for _, p := range places {
		fmt.Fprintf(w, "Name: %s\n", p.DisplayName)
		fmt.Fprintf(w, "Address: %s\n", FormatAddress(p.Address))
		fmt.Fprintln(w, separator)
	}
}

// =============================================================================
// IFSC Enricher - Main Entry Point
// =============================================================================
//
// USAGE:
//   ifsc-enricher                  - Enrich sample.xlsx, then search a region
//                                    and review the lookup history
//   ifsc-enricher enrich           - Only enrich the workbook
//   ifsc-enricher search <region>  - Only list banks in a region
//   ifsc-enricher version          - Display the application version
//
// LAYOUT:
//   - cmd/                  : Cobra command definitions
//   - internal/spreadsheet  : XLSX gateway (excelize)
//   - internal/ifsc         : Code validation and details lookup
//   - internal/pipeline     : Row-by-row enrichment and progress output
//   - internal/region       : Nominatim bank search
//   - internal/session      : Interactive console flow
//   - pkg/utils             : File helpers
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/ifsc-enricher/cmd"
)

func main() {
	cmd.Execute()
}

// =============================================================================
// IFSC Enricher - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ifsc      (produces Details)
//   - pipeline  (records HistoryEntry values)
//   - region    (produces Place values)
//   - session   (renders all of the above)
//
// =============================================================================

package types

// =============================================================================
// CODE RESOLUTION TYPES
// =============================================================================

// Details is the record returned by the IFSC lookup service for a valid code.
// Only Institution and Branch are written back into the spreadsheet; the
// remaining fields are kept for logging and the history view.
type Details struct {
	// Institution is the bank name (the BANK field of the service).
	Institution string `json:"BANK"`

	// Branch is the branch name (the BRANCH field of the service).
	Branch string `json:"BRANCH"`

	Address  string `json:"ADDRESS,omitempty"`
	City     string `json:"CITY,omitempty"`
	District string `json:"DISTRICT,omitempty"`
	State    string `json:"STATE,omitempty"`
	MICR     string `json:"MICR,omitempty"`

	// Code is the canonical IFSC as echoed back by the service.
	Code string `json:"IFSC,omitempty"`
}

// HistoryEntry is one successfully resolved row, in row-processing order.
type HistoryEntry struct {
	// Row is the 1-indexed spreadsheet row the entry was written to.
	Row int

	// Code is the IFSC exactly as it appeared in the input cell.
	Code string

	Institution string
	Branch      string
}

// =============================================================================
// REGION LOOKUP TYPES
// =============================================================================

// Place is a single point of interest returned by the geocoding service.
type Place struct {
	// DisplayName is the full human-readable name of the place.
	DisplayName string `json:"display_name"`

	// Address is the decomposed address. It is nil when the service did not
	// return address details for the place.
	Address *Address `json:"address,omitempty"`
}

// Address holds the address components used for rendering. Missing
// components are empty strings.
type Address struct {
	Road    string `json:"road,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

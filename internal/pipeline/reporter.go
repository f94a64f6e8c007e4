package pipeline

import (
	"fmt"
	"io"
	"strings"
)

const (
	// clearScreen moves the cursor home and clears the terminal.
	clearScreen = "\033[H\033[2J"

	progressBlock = "█"

	// rowsPerBlock is how many processed rows add one block to the bar.
	rowsPerBlock = 20
)

// Reporter prints progress and the final summary to the console.
type Reporter struct {
	w io.Writer

	// ClearScreen clears the terminal before every progress update so the
	// bar redraws in place.
	ClearScreen bool
}

// NewReporter returns a Reporter that clears the screen between updates.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, ClearScreen: true}
}

// Bar returns the progress bar for the given processed count: one block to
// start with and one more for every 20 rows.
func Bar(processed int) string {
	return strings.Repeat(progressBlock, 1+processed/rowsPerBlock)
}

// Row reports that processed of total rows are done.
func (r *Reporter) Row(processed, total int) {
	if r.ClearScreen {
		fmt.Fprint(r.w, clearScreen)
	}
	fmt.Fprintf(r.w, "\n%s \nProcessed %d out of %d\n", Bar(processed), processed, total)
}

// Summary prints the final counts of a completed run.
func (r *Reporter) Summary(res *Result) {
	fmt.Fprintf(r.w, "\nValid: %d\nInvalid: %d\n", res.Valid, res.Invalid)
	if res.LookupFailed > 0 {
		fmt.Fprintf(r.w, "Lookup Failed: %d\n", res.LookupFailed)
	}
	fmt.Fprintln(r.w, "\nDONE...")
}

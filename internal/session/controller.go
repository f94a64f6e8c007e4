// =============================================================================
// IFSC Enricher - Interactive Session
// =============================================================================
//
// The session is a straight sequence of blocking steps:
//
//   1. Run the enrichment pipeline (a failure ends the session here)
//   2. Ask for a region until a non-blank answer arrives, then search it
//   3. Ask whether to show the lookup history, and show it on "yes"
//
// A failed region search is reported and the session carries on to step 3.
//
// =============================================================================

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ginjaninja78/ifsc-enricher/internal/logging"
	"github.com/ginjaninja78/ifsc-enricher/internal/pipeline"
	"github.com/ginjaninja78/ifsc-enricher/internal/region"
	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

const (
	regionPrompt  = "\nEnter the region name (state) to fetch bank details: "
	historyPrompt = "\nWould you like to view the IFSC code lookup history? (yes/no): "
)

// Enricher runs the enrichment pass.
type Enricher interface {
	Run(ctx context.Context) (*pipeline.Result, error)
}

// Searcher finds banks in a region.
type Searcher interface {
	Search(ctx context.Context, region string) ([]types.Place, error)
}

// Controller drives one interactive session.
type Controller struct {
	enricher Enricher
	searcher Searcher
	prompter *Prompter
	out      io.Writer
	errOut   io.Writer
	logger   logging.Logger
}

// NewController creates a Controller reading answers from in. Normal output
// goes to out and error reports to errOut.
func NewController(enricher Enricher, searcher Searcher, in io.Reader, out, errOut io.Writer, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{
		enricher: enricher,
		searcher: searcher,
		prompter: NewPrompter(in, out),
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
}

// Run executes the session. Enrichment and search failures are reported to
// the console and do not make Run fail; it returns an error only when the
// console input itself cannot be read. End of input ends the session.
func (c *Controller) Run(ctx context.Context) error {
	result, err := c.enricher.Run(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error processing the Excel file: %v\n", err)
		return nil
	}

	err = c.lookupRegion(ctx)
	if err == nil {
		err = c.reviewHistory(result.History)
	}
	if errors.Is(err, io.EOF) {
		c.logger.Info("input closed, ending session")
		fmt.Fprintln(c.out)
		return nil
	}
	return err
}

// lookupRegion asks for a region until one is given, then prints the banks
// found there.
func (c *Controller) lookupRegion(ctx context.Context) error {
	var name string
	for {
		answer, err := c.prompter.Ask(regionPrompt)
		if err != nil {
			return err
		}
		if name = NormalizeRegion(answer); name != "" {
			break
		}
		fmt.Fprintln(c.out, "\nNo region provided. Please try again.")
	}

	places, err := c.searcher.Search(ctx, name)
	if err != nil {
		c.logger.Warn("region search for %q failed: %v", name, err)
		fmt.Fprintf(c.errOut, "Error fetching bank details: %v\n", err)
		return nil
	}

	region.Render(c.out, name, places)
	return nil
}

// reviewHistory offers to print the lookup history.
func (c *Controller) reviewHistory(history []types.HistoryEntry) error {
	answer, err := c.prompter.Ask(historyPrompt)
	if err != nil {
		return err
	}

	if !IsYes(answer) {
		fmt.Fprintln(c.out, "\nExiting...")
		return nil
	}

	if len(history) == 0 {
		fmt.Fprintln(c.out, "\nNo lookup history found.")
		return nil
	}

	fmt.Fprintln(c.out, "\nIFSC Code Lookup History:")
	for i, h := range history {
		fmt.Fprintf(c.out, "%d. IFSC: %s, Bank: %s, Branch: %s\n", i+1, h.Code, h.Institution, h.Branch)
	}
	return nil
}

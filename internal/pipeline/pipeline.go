// =============================================================================
// IFSC Enricher - Enrichment Pipeline
// =============================================================================
//
// This module fills in bank and branch names for every IFSC code in the
// input workbook.
//
// ENRICHMENT PIPELINE:
//   1. Open the input workbook
//   2. For every row, read the code in column A
//   3. Validate the code (once per distinct code)
//   4. For valid codes, fetch details (once per distinct code) and write the
//      bank into column B and the branch into column C
//   5. For invalid codes, write "Invalid IFSC" into column B with a red fill
//   6. Report progress after every row
//   7. Save the output workbook and report the final counts
//
// CONCURRENCY:
//   Rows are processed strictly one after another. Each details lookup is
//   awaited before the next row is read, so the caches in RunContext need
//   no locking.
//
// FAILURE SEMANTICS:
//   Any error aborts the pass and the output file is not written. With
//   ContinueOnLookupError a failed details lookup is recorded on its row
//   instead and the pass goes on.
//
// =============================================================================

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ginjaninja78/ifsc-enricher/internal/logging"
	"github.com/ginjaninja78/ifsc-enricher/internal/spreadsheet"
	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

// =============================================================================
// SHEET LAYOUT
// =============================================================================

const (
	CodeColumn   = 1
	BankColumn   = 2
	BranchColumn = 3

	InvalidMessage = "Invalid IFSC"
	InvalidFill    = "FF0000"

	LookupFailedMessage = "Lookup Failed"
	LookupFailedFill    = "FFA500"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Sheet is the spreadsheet the pipeline reads codes from and writes results
// into. Rows and columns are 1-indexed.
type Sheet interface {
	RowCount() int
	CellValue(row, col int) (string, error)
	SetCellValue(row, col int, value interface{}) error
	SetCellFill(row, col int, color string) error
	Save(path string) error
	Close() error
}

// Resolver validates codes and fetches their details.
type Resolver interface {
	Validate(code string) bool
	FetchDetails(ctx context.Context, code string) (types.Details, error)
}

// OpenFunc opens the input workbook.
type OpenFunc func(path string) (Sheet, error)

// OpenWorkbook opens an XLSX file through the spreadsheet gateway.
func OpenWorkbook(path string) (Sheet, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, err
	}
	return wb, nil
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of a completed pass.
type Result struct {
	RunID string

	// Total is the number of rows in the sheet; every one is processed.
	Total int

	Valid        int
	Invalid      int
	LookupFailed int

	// History lists the resolved rows in processing order.
	History []types.HistoryEntry

	// OutputFile is the path the enriched workbook was saved to.
	OutputFile string

	Elapsed time.Duration
}

// Processed returns the number of rows the pass handled.
func (r *Result) Processed() int {
	return r.Valid + r.Invalid + r.LookupFailed
}

// =============================================================================
// PIPELINE STRUCTURE
// =============================================================================

// Options control a Pipeline.
type Options struct {
	InputFile  string
	OutputFile string

	// ContinueOnLookupError marks rows whose lookup failed instead of
	// aborting the pass.
	ContinueOnLookupError bool
}

// Pipeline enriches one workbook.
type Pipeline struct {
	opts     Options
	resolver Resolver
	reporter *Reporter
	logger   logging.Logger

	// open is replaceable so tests can supply an in-memory sheet.
	open OpenFunc
}

// New creates a Pipeline.
func New(opts Options, resolver Resolver, reporter *Reporter, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Pipeline{
		opts:     opts,
		resolver: resolver,
		reporter: reporter,
		logger:   logger,
		open:     OpenWorkbook,
	}
}

// WithOpener replaces the function used to open the input workbook.
func (p *Pipeline) WithOpener(open OpenFunc) *Pipeline {
	p.open = open
	return p
}

// Reporter returns the progress reporter, which may be nil.
func (p *Pipeline) Reporter() *Reporter {
	return p.reporter
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run opens the input workbook, enriches it, and saves the output.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	sheet, err := p.open(p.opts.InputFile)
	if err != nil {
		return nil, err
	}
	defer sheet.Close()

	return p.Process(ctx, sheet)
}

// Process enriches every row of sheet and saves it to the output file.
func (p *Pipeline) Process(ctx context.Context, sheet Sheet) (*Result, error) {
	startTime := time.Now()
	rc := NewRunContext()
	total := sheet.RowCount()

	p.logger.Debug("run %s: enriching %d row(s)", rc.RunID, total)

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := p.processRow(ctx, sheet, rc, i); err != nil {
			p.logger.Error("run %s: aborted at row %d: %v", rc.RunID, i, err)
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		rc.Processed++
		if p.reporter != nil {
			p.reporter.Row(rc.Processed, total)
		}
	}

	// =========================================================================
	// SAVE OUTPUT
	// =========================================================================

	if err := sheet.Save(p.opts.OutputFile); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:        rc.RunID,
		Total:        total,
		Valid:        rc.Valid,
		Invalid:      rc.Invalid,
		LookupFailed: rc.LookupFailed,
		History:      rc.History,
		OutputFile:   p.opts.OutputFile,
		Elapsed:      time.Since(startTime),
	}

	p.logger.Debug("run %s: saved %s (%d valid, %d invalid, %d lookup failures) in %s",
		rc.RunID, result.OutputFile, result.Valid, result.Invalid, result.LookupFailed, result.Elapsed)

	if p.reporter != nil {
		p.reporter.Summary(result)
	}

	return result, nil
}

// processRow takes one row from Unvisited to Enriched or MarkedInvalid.
func (p *Pipeline) processRow(ctx context.Context, sheet Sheet, rc *RunContext, row int) error {
	code, err := sheet.CellValue(row, CodeColumn)
	if err != nil {
		return err
	}

	valid, seen := rc.Validity[code]
	if !seen {
		valid = p.resolver.Validate(code)
		rc.Validity[code] = valid
	}

	if !valid {
		rc.Invalid++
		return markRow(sheet, row, InvalidMessage, InvalidFill)
	}

	details, err := p.details(ctx, rc, code)
	if err != nil {
		var le *types.LookupError
		if !p.opts.ContinueOnLookupError || !errors.As(err, &le) {
			return err
		}
		if le.NotFound() {
			p.logger.Warn("run %s: row %d: %s is not a known branch: %v", rc.RunID, row, code, err)
		} else {
			p.logger.Warn("run %s: row %d: lookup failed: %v", rc.RunID, row, err)
		}
		rc.LookupFailed++
		return markRow(sheet, row, LookupFailedMessage, LookupFailedFill)
	}

	if err := sheet.SetCellValue(row, BankColumn, details.Institution); err != nil {
		return err
	}
	if err := sheet.SetCellValue(row, BranchColumn, details.Branch); err != nil {
		return err
	}

	rc.Valid++
	rc.History = append(rc.History, types.HistoryEntry{
		Row:         row,
		Code:        code,
		Institution: details.Institution,
		Branch:      details.Branch,
	})
	return nil
}

// details returns the cached details for code, fetching them on a miss.
func (p *Pipeline) details(ctx context.Context, rc *RunContext, code string) (types.Details, error) {
	if d, ok := rc.Details[code]; ok {
		p.logger.Debug("run %s: %s served from cache", rc.RunID, code)
		return d, nil
	}

	d, err := p.resolver.FetchDetails(ctx, code)
	if err != nil {
		return types.Details{}, err
	}
	rc.Details[code] = d
	return d, nil
}

func markRow(sheet Sheet, row int, message, fill string) error {
	if err := sheet.SetCellValue(row, BankColumn, message); err != nil {
		return err
	}
	return sheet.SetCellFill(row, BankColumn, fill)
}

// =============================================================================
// IFSC Enricher - Spreadsheet Gateway
// =============================================================================
//
// This module wraps an XLSX workbook for the enrichment pipeline. It exposes
// the first sheet as 1-indexed rows and columns, lets callers read and write
// cell values, set a solid background fill on a cell, and persist the whole
// workbook to a new file.
//
// ROW NUMBERING:
//   Rows and columns are 1-indexed, as in the spreadsheet UI. Row 1 is not
//   treated specially; a header row, if present, is processed like any other.
//
// ERRORS:
//   Every failure is reported as *types.FileError so callers can tell file
//   problems apart from lookup problems with errors.As.
//
// =============================================================================

package spreadsheet

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/ifsc-enricher/internal/types"
	"github.com/ginjaninja78/ifsc-enricher/pkg/utils"
)

// =============================================================================
// WORKBOOK STRUCTURE
// =============================================================================

// Workbook is an open spreadsheet file. It is not safe for concurrent use.
type Workbook struct {
	// path is the file the workbook was opened from.
	path string

	file *excelize.File

	// sheet is the name of the first worksheet, the only one this gateway
	// reads or writes.
	sheet string

	// rowCount is the number of rows up to and including the last row that
	// had any content when the workbook was opened.
	rowCount int

	// fills caches one style ID per fill colour so repeated fills do not
	// create duplicate styles in the saved file.
	fills map[string]int
}

// =============================================================================
// OPEN / SAVE / CLOSE
// =============================================================================

// Open opens the workbook at path and selects its first sheet.
//
// RETURNS:
//   - The open workbook.
//   - A *types.FileError if the file is missing, is not a valid workbook,
//     or has no sheets.
func Open(path string) (*Workbook, error) {
	if !utils.FileExists(path) {
		return nil, &types.FileError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &types.FileError{Op: "open", Path: path, Err: err}
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, &types.FileError{Op: "open", Path: path, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, &types.FileError{Op: "read", Path: path, Err: fmt.Errorf("failed to read rows: %w", err)}
	}

	return &Workbook{
		path:     path,
		file:     f,
		sheet:    sheet,
		rowCount: len(rows),
		fills:    make(map[string]int),
	}, nil
}

// Save writes the whole workbook to path. The destination is only replaced
// once the write has fully succeeded.
func (w *Workbook) Save(path string) error {
	err := utils.WriteReplacing(path, func(tmp string) error {
		return w.file.SaveAs(tmp)
	})
	if err != nil {
		return &types.FileError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Close releases the resources held by the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// =============================================================================
// SHEET ACCESS
// =============================================================================

// RowCount returns the number of rows in the sheet.
func (w *Workbook) RowCount() int {
	return w.rowCount
}

// CellValue returns the formatted value of the cell at (row, col). Empty
// cells read as "".
func (w *Workbook) CellValue(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	v, err := w.file.GetCellValue(w.sheet, name)
	if err != nil {
		return "", &types.FileError{Op: "read", Path: w.path, Err: fmt.Errorf("cell %s: %w", name, err)}
	}
	return v, nil
}

// SetCellValue writes value into the cell at (row, col).
func (w *Workbook) SetCellValue(row, col int, value interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := w.file.SetCellValue(w.sheet, name, value); err != nil {
		return &types.FileError{Op: "write", Path: w.path, Err: fmt.Errorf("cell %s: %w", name, err)}
	}
	return nil
}

// SetCellFill gives the cell at (row, col) a solid background of the given
// RGB hex colour, e.g. "FF0000". The fill is presentational only.
func (w *Workbook) SetCellFill(row, col int, color string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	styleID, ok := w.fills[color]
	if !ok {
		styleID, err = w.file.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1, // solid
				Color:   []string{color},
			},
		})
		if err != nil {
			return &types.FileError{Op: "write", Path: w.path, Err: fmt.Errorf("fill style %s: %w", color, err)}
		}
		w.fills[color] = styleID
	}

	if err := w.file.SetCellStyle(w.sheet, name, name, styleID); err != nil {
		return &types.FileError{Op: "write", Path: w.path, Err: fmt.Errorf("cell %s: %w", name, err)}
	}
	return nil
}

// =============================================================================
// ROW / CELL VIEWS
// =============================================================================

// Row returns a view of row i. Valid indices are 1..RowCount(); any other
// index is a programming error and panics.
func (w *Workbook) Row(i int) Row {
	if i < 1 || i > w.rowCount {
		panic(fmt.Sprintf("spreadsheet: row %d out of range [1, %d]", i, w.rowCount))
	}
	return Row{w: w, index: i}
}

// Row is a single sheet row.
type Row struct {
	w     *Workbook
	index int
}

// Cell returns the cell in column col (1-indexed) of the row.
func (r Row) Cell(col int) Cell {
	return Cell{w: r.w, row: r.index, col: col}
}

// Cell is a single cell within a row.
type Cell struct {
	w   *Workbook
	row int
	col int
}

// Value returns the cell's formatted value.
func (c Cell) Value() (string, error) {
	return c.w.CellValue(c.row, c.col)
}

// SetValue overwrites the cell's value.
func (c Cell) SetValue(v interface{}) error {
	return c.w.SetCellValue(c.row, c.col, v)
}

// SetFill sets a solid background colour on the cell.
func (c Cell) SetFill(color string) error {
	return c.w.SetCellFill(c.row, c.col, color)
}

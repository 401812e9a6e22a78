package export

import (
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/DabicD/Recruitment/internal/render"
)

// SheetName is the worksheet the table is written to
const SheetName = "Table"

// ErrNoTable is returned when the result is a placeholder
var ErrNoTable = stderrors.New("result has no table to export")

// WriteXLSX writes the rendered table as an xlsx workbook: bold header,
// data rows with numeric cells stored as numbers, italic footer kept as text
func WriteXLSX(w io.Writer, res *render.Result) error {
	f, err := build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the rendered table to a file
func SaveXLSX(path string, res *render.Result) error {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return fmt.Errorf("export path %q must end in .xlsx", path)
	}
	f, err := build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func build(res *render.Result) (*excelize.File, error) {
	if res == nil || !res.IsTable() {
		return nil, ErrNoTable
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	footerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("footer style: %w", err)
	}

	// 1. Header
	if err := writeRow(f, 1, res.Columns, false); err != nil {
		f.Close()
		return nil, err
	}
	if err := styleRow(f, 1, len(res.Columns), headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	// 2. Rows
	for i, row := range res.Rows {
		if err := writeRow(f, i+2, row, true); err != nil {
			f.Close()
			return nil, err
		}
	}

	// 3. Footer
	footerRow := len(res.Rows) + 2
	if err := writeRow(f, footerRow, res.Footer, false); err != nil {
		f.Close()
		return nil, err
	}
	if err := styleRow(f, footerRow, len(res.Columns), footerStyle); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, rowNum int, cells []string, numeric bool) error {
	for i, v := range cells {
		addr, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		var value interface{} = v
		if numeric {
			if n, ok := parseCellNumber(v); ok {
				value = n
			}
		}
		if err := f.SetCellValue(SheetName, addr, value); err != nil {
			return fmt.Errorf("set %s: %w", addr, err)
		}
	}
	return nil
}

func styleRow(f *excelize.File, rowNum, width, style int) error {
	if width == 0 {
		return nil
	}
	first, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, rowNum)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, first, last, style)
}

func parseCellNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

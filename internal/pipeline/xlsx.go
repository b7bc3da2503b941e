package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"acsgen/internal"
	"acsgen/internal/util"
)

// EmitXLSX writes the variable listing as a spreadsheet: the CSV columns
// plus the raw label for review.
func EmitXLSX(records []internal.VariableRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"group", "variable", "path", "label"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		group, variable, err := rec.Split()
		if err != nil {
			return err
		}

		r := i + 2
		set := func(col int, value string) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, group)
		set(2, variable)
		set(3, util.ToNamePath(rec.Label))
		set(4, rec.Label)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(outputPath)
}

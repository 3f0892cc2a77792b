package sweep

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sweep"

// WriteXLSX writes the series as a workbook with one row per point.
func (s *Series) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	header := []interface{}{axisName(s.Sweep.Param, s.ParamUnit), axisName(s.Sweep.Quantity, s.Unit), "error"}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, pt := range s.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{pt.X, pt.Y, ""}
		if pt.Err != nil {
			row = []interface{}{pt.X, "", pt.Err.Error()}
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.Write(w)
}

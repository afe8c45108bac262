package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
)

// SummarySheet is the name of the first sheet of a congestion workbook.
const SummarySheet = "Summary"

var sampleHeader = []any{"ID", "Timestep", "Lower", "Upper", "Min", "Max", "Avg", "StdDev"}

// WriteCongestionXLSX writes one sheet per building holding its congestion
// windows, plus a summary sheet with each building's peak window.
func WriteCongestionXLSX(path string, buildings []campus.Building) error {
	if len(buildings) == 0 {
		return errors.New("no buildings to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &[]any{"Building", "Samples", "Peak timestep", "Peak avg", "Peak max"}); err != nil {
		return err
	}

	for i, b := range buildings {
		sheet := BuildingSheet(b.ID)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, "A1", &sampleHeader); err != nil {
			return err
		}
		for j, s := range b.Congestion {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			row := []any{s.ID, s.Timestep, s.Lower, s.Upper, s.Min, s.Max, s.Avg, s.StdDev}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", sheet, j+2, err)
			}
		}

		summary := []any{b.ID, len(b.Congestion), "", 0.0, 0.0}
		if peak, ok := campus.PeakWindow(b.Congestion); ok {
			summary[2], summary[3], summary[4] = peak.Timestep, peak.Avg, peak.Max
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &summary); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// BuildingSheet returns the sheet name used for a building.
func BuildingSheet(id int) string {
	return fmt.Sprintf("Building %d", id)
}

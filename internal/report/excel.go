// Package report exports column calculation results to spreadsheet and PDF
// files for record keeping and submission.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// Data bundles everything a report needs. Diagram is required; the check
// results are optional and omitted from the output when nil.
type Data struct {
	Column  *column.Column
	Diagram *column.InteractionDiagram

	Section   *column.SectionProperties
	Materials *column.MaterialProperties

	// Factored demand, zero when not supplied.
	Pu, Mux, Muy float64

	AdequacyX *column.AdequacyResult
	AdequacyY *column.AdequacyResult
	Detailing *column.DetailingResult
}

// WriteWorkbook writes the inputs, derived properties and both capacity
// tables to an Excel workbook at path.
func WriteWorkbook(path string, data Data) error {
	f := excelize.NewFile()
	defer f.Close()

	const inputs = "Inputs"
	f.SetSheetName("Sheet1", inputs)

	col := data.Column
	rows := [][]any{
		{"Column width, b (mm)", col.Width},
		{"Column height, h (mm)", col.Height},
		{"Clear cover, cc (mm)", col.Cover},
		{"Main bar size, d_main (mm)", col.BarMain},
		{"Tie bar size, d_trans (mm)", col.BarTrans},
		{"Bars along b", col.BarsAlongB},
		{"Bars along h", col.BarsAlongH},
		{"Total main bars", col.TotalBars()},
		{"f'c (MPa)", col.Fc},
		{"fy (MPa)", col.Fy},
	}
	if data.Section != nil {
		rows = append(rows,
			[]any{"Gross area, Ag (mm2)", data.Section.GrossArea},
			[]any{"Total steel area, As (mm2)", data.Section.SteelArea},
			[]any{"Steel ratio", data.Section.Rho},
			[]any{"Clear spacing along b (mm)", data.Section.ClearSpacingB},
			[]any{"Clear spacing along h (mm)", data.Section.ClearSpacingH},
		)
	}
	if data.Materials != nil {
		rows = append(rows,
			[]any{"Ec (MPa)", data.Materials.Ec},
			[]any{"Beta1", data.Materials.Beta1},
			[]any{"Yield strain", data.Materials.YieldStrain},
		)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(inputs, cell, &row); err != nil {
			return err
		}
	}

	sheets := []struct {
		name string
		axis column.Axis
	}{
		{"Major Axis (X)", column.Major},
		{"Minor Axis (Y)", column.Minor},
	}
	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return err
		}
		header := []any{"Point", "phi_Pn (kN)", "phi_Mn (kN-m)"}
		if err := f.SetSheetRow(sheet.name, "A1", &header); err != nil {
			return err
		}
		for i, p := range data.Diagram.Points(sheet.axis) {
			row := []any{p.Point, p.PhiPn, p.PhiMn}
			if err := f.SetSheetRow(sheet.name, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

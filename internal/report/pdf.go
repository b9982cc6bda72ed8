package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// WriteReport writes a one-page calculation report (inputs, derived
// properties, capacity tables and verdicts) as a PDF at path.
func WriteReport(path string, data Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Tied Column Analysis - ACI 318-19")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated by gorcc on %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	col := data.Column

	section(pdf, "Input Data")
	kv(pdf, "Section b x h (mm)", fmt.Sprintf("%.0f x %.0f", col.Width, col.Height))
	kv(pdf, "Clear cover (mm)", fmt.Sprintf("%.0f", col.Cover))
	kv(pdf, "Main bars", fmt.Sprintf("%d - %.0fmm (ties %.0fmm)", col.TotalBars(), col.BarMain, col.BarTrans))
	kv(pdf, "Bars along b / h", fmt.Sprintf("%d / %d", col.BarsAlongB, col.BarsAlongH))
	kv(pdf, "f'c / fy (MPa)", fmt.Sprintf("%.1f / %.1f", col.Fc, col.Fy))
	if data.Pu != 0 || data.Mux != 0 || data.Muy != 0 {
		kv(pdf, "Demand Pu (kN)", fmt.Sprintf("%.2f", data.Pu))
		kv(pdf, "Demand Mux / Muy (kN-m)", fmt.Sprintf("%.2f / %.2f", data.Mux, data.Muy))
	}
	pdf.Ln(4)

	if data.Section != nil {
		section(pdf, "Derived Section Properties")
		kv(pdf, "Gross area Ag (mm2)", fmt.Sprintf("%.0f", data.Section.GrossArea))
		kv(pdf, "Steel area As (mm2)", fmt.Sprintf("%.3f", data.Section.SteelArea))
		kv(pdf, "Steel ratio", fmt.Sprintf("%.4f", data.Section.Rho))
		kv(pdf, "Clear spacing b / h (mm)", fmt.Sprintf("%.2f / %.2f", data.Section.ClearSpacingB, data.Section.ClearSpacingH))
		pdf.Ln(4)
	}

	axes := []struct {
		title string
		axis  column.Axis
	}{
		{"Interaction Diagram - Major Axis (X)", column.Major},
		{"Interaction Diagram - Minor Axis (Y)", column.Minor},
	}
	for _, a := range axes {
		section(pdf, a.title)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(20, 5, "Point", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 5, "phi_Pn (kN)", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 5, "phi_Mn (kN-m)", "1", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, p := range data.Diagram.Points(a.axis) {
			pdf.CellFormat(20, 5, fmt.Sprintf("%d", p.Point), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 5, fmt.Sprintf("%.3f", p.PhiPn), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 5, fmt.Sprintf("%.3f", p.PhiMn), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	if data.AdequacyX != nil || data.AdequacyY != nil || data.Detailing != nil {
		section(pdf, "Verdicts")
		if data.AdequacyX != nil {
			kv(pdf, "Adequacy about X", fmt.Sprintf("%s - %s", data.AdequacyX.Status, data.AdequacyX.Summary))
		}
		if data.AdequacyY != nil {
			kv(pdf, "Adequacy about Y", fmt.Sprintf("%s - %s", data.AdequacyY.Status, data.AdequacyY.Summary))
		}
		if data.Detailing != nil {
			kv(pdf, "Steel ratio within limits", yesNo(data.Detailing.IsRhoAdequate))
			kv(pdf, "Clear spacing adequate", yesNo(data.Detailing.IsSpacingAdequate))
		}
	}

	return pdf.OutputFileAndClose(path)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
}

func kv(pdf *gofpdf.Fpdf, key, value string) {
	pdf.CellFormat(70, 5, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, value, "", 1, "L", false, 0, "")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

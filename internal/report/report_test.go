package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gorcc/internal/column"
)

func testData(t *testing.T) Data {
	t.Helper()

	col := &column.Column{
		Width: 250, Height: 250, Cover: 40,
		BarMain: 16, BarTrans: 10,
		BarsAlongB: 2, BarsAlongH: 2,
		Fc: 21, Fy: 420,
	}
	d, err := col.Diagram()
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}
	props, err := col.SectionProperties()
	if err != nil {
		t.Fatal(err)
	}
	mats, err := col.MaterialProperties()
	if err != nil {
		t.Fatal(err)
	}

	return Data{
		Column:    col,
		Diagram:   d,
		Section:   props,
		Materials: mats,
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.xlsx")

	if err := WriteWorkbook(path, testData(t)); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty")
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.pdf")

	data := testData(t)
	data.Pu, data.Mux = 400, 10
	data.Detailing, _ = data.Column.CheckDetailing()
	data.AdequacyX, _ = data.Diagram.CheckAdequacy(data.Pu, data.Mux, column.Major)

	if err := WriteReport(path, data); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report is empty")
	}
}

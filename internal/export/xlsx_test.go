package export

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	buf, err := Workbook("Attendance",
		[]string{"Employee", "Hours"},
		[][]any{{"John Smith", 8.5}, {"Mike Davis", 0}})
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != "Attendance" {
		t.Fatalf("expected sheet Attendance, got %q", name)
	}
	rows, err := f.GetRows("Attendance")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][0] != "Employee" || rows[1][1] != "8.5" {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestWorkbookWithoutRows(t *testing.T) {
	buf, err := Workbook("Payroll", []string{"Employee"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Payroll")
	if len(rows) != 1 {
		t.Fatalf("expected only the header, got %v", rows)
	}
}

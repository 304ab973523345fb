package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/format"
)

const (
	HistorySheet = "Donation History"
	SummarySheet = "Summary"

	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExcelFileName mirrors FileName with an .xlsx extension.
func ExcelFileName(g donation.DonorGroup, now time.Time) string {
	return strings.TrimSuffix(FileName(g, now), ".pdf") + ".xlsx"
}

// ExportExcel writes the same history and totals as the PDF report into a
// workbook. Amounts are stored as numbers, not formatted text.
func ExportExcel(g donation.DonorGroup, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(HistorySheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, col := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(HistorySheet, cell, col.Header)
	}

	for i, r := range g.Donations {
		row := i + 2
		f.SetCellValue(HistorySheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(HistorySheet, fmt.Sprintf("B%d", row), format.Date(r.Date, format.ShortDate))
		f.SetCellValue(HistorySheet, fmt.Sprintf("C%d", row), format.Or(r.CategoryName()))
		f.SetCellValue(HistorySheet, fmt.Sprintf("D%d", row), format.Or(r.Item, r.CategoryName()))
		f.SetCellValue(HistorySheet, fmt.Sprintf("E%d", row), r.Units())
		f.SetCellValue(HistorySheet, fmt.Sprintf("F%d", row), r.Amount)
		f.SetCellValue(HistorySheet, fmt.Sprintf("G%d", row), format.Or(r.PaymentStatus))
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Name", format.Or(g.UserInfo.Name)},
		{"Email", format.Or(g.UserInfo.Email)},
		{"Donor Type", format.Or(g.UserInfo.Type)},
		{"Report Generated", format.Date(now, format.LongDate)},
		{"Total Donations", g.TotalDonations},
		{"Total Amount", g.TotalAmount},
		{"Paid Amount", g.PaidAmount},
		{"Pending Amount", g.PendingAmount},
	}
	for i, kv := range summary {
		f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", i+1), kv[0])
		f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", i+1), kv[1])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

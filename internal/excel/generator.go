package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rmussard/easyloc-api/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the settlement report as a single-sheet workbook.
func (g *Generator) Generate(report model.SettlementReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Settlement"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Settlement report")
	set("A2", "Generated at")
	set("B2", formatDateTime(report.GeneratedAt))
	set("A3", "Contracts")
	set("B3", len(report.Rows))
	set("A4", "Settled")
	set("B4", countByState(report.Rows, model.SettlementSettled))
	set("A5", "Outstanding")
	set("B5", countByState(report.Rows, model.SettlementOutstanding))

	tableRow := 7
	headers := []string{"Contract", "Price", "Billed", "Payment ratio", "State"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, row := range report.Rows {
		line := tableRow + 1 + i
		set(fmt.Sprintf("A%d", line), row.ContractID)
		set(fmt.Sprintf("B%d", line), formatAmount(row.Price))
		set(fmt.Sprintf("C%d", line), formatAmount(row.BilledAmount))
		set(fmt.Sprintf("D%d", line), formatAmount(row.PaymentRatio))
		set(fmt.Sprintf("E%d", line), row.State)
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "D", 16)
	_ = file.SetColWidth(sheet, "E", "E", 14)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func countByState(rows []model.SettlementRow, state string) int {
	count := 0
	for _, row := range rows {
		if row.State == state {
			count++
		}
	}
	return count
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/rmussard/easyloc-api/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the settlement report as a one-page-per-overflow table.
func (g *Generator) Generate(report model.SettlementReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Settlement report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", formatDateTime(report.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%d contracts, %d settled, %d outstanding",
		len(report.Rows),
		countByState(report.Rows, model.SettlementSettled),
		countByState(report.Rows, model.SettlementOutstanding),
	), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Contract", "Price", "Billed", "Payment ratio", "State"}
	colWidths := []float64{30, 35, 35, 40, 40}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, row := range report.Rows {
		drawTableRow(pdf, g.fontName, []string{
			strconv.FormatInt(row.ContractID, 10),
			formatAmount(row.Price),
			formatAmount(row.BilledAmount),
			formatAmount(row.PaymentRatio),
			row.State,
		}, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "R"
		if i == 0 || i == len(cols)-1 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
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

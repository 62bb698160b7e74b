package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 14.0
	pdfRowH     = 8.0
	pdfTableGap = 15.0
)

// PDFSink renders an A4 report with Helvetica tables.
type PDFSink struct{}

func (PDFSink) Write(r Report, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, 20, pdfMargin)
	pdf.AliasNbPages("{nb}")
	pageW, _ := pdf.GetPageSize()

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(150, 150, 150)
		half := (pageW - 2*pdfMargin) / 2
		pdf.CellFormat(half, 10, r.Footer(), "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 10, r.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, r.Subtitle, "", 1, "C", false, 0, "")

	pdf.SetY(40)
	pdfTable(pdf, r.Profile, pageW-2*pdfMargin)
	pdf.Ln(pdfTableGap)
	pdfTable(pdf, r.Score, pageW-2*pdfMargin)

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func pdfTable(pdf *fpdf.Fpdf, t Table, width float64) {
	col := width / 2
	border := "1"
	if t.Striped {
		border = ""
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(int(t.Fill.R), int(t.Fill.G), int(t.Fill.B))
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(col, pdfRowH, t.Head[0], border, 0, "L", true, 0, "")
	pdf.CellFormat(col, pdfRowH, t.Head[1], border, 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(50, 50, 50)
	for i, row := range t.Rows {
		fill := t.Striped && i%2 == 1
		if fill {
			pdf.SetFillColor(245, 245, 245)
		}
		pdf.CellFormat(col, pdfRowH, row.Label, border, 0, "L", fill, 0, "")
		pdf.CellFormat(col, pdfRowH, row.Value, border, 1, "L", fill, 0, "")
	}
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"productcatalog/internal/domain"
	"productcatalog/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders the current catalog as a price-list PDF. It reuses
// the same compile/validate path as a read call, so an invalid filter or
// page fails before storage exactly like a list would.
type ReportService struct {
	Store     ProductStore
	RequestID string
}

func (s ReportService) PriceList(ctx context.Context, filter domain.FilterSpec, page domain.PageSpec) ([]byte, string, error) {
	pred, err := filter.Compile()
	if err != nil {
		return nil, "", err
	}
	validated, err := page.Validate()
	if err != nil {
		return nil, "", err
	}

	products, err := s.Store.Find(ctx, pred, validated)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "report", "price_list", fmt.Sprintf("rows=%d", len(products)))
	return buildPriceListPDF(products)
}

func buildPriceListPDF(products []domain.Product) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Price List", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PRICE LIST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, p := range products {
		pdf.CellFormat(120, 7, p.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", p.Price), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total products: %d", len(products)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "pdf generation failed", Err: err}
	}

	filename := fmt.Sprintf("PRICELIST_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

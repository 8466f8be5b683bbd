package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"productcatalog/internal/domain"
)

func TestPriceList_GeneratesPDF(t *testing.T) {
	store := newFakeStore()
	svc := ProductService{Store: store}
	for _, name := range []string{"Laptop", "Mouse"} {
		if _, err := svc.Create(context.Background(), domain.ProductInput{Name: name, Price: 10}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	report := ReportService{Store: store}
	pdf, filename, err := report.PriceList(context.Background(), domain.FilterSpec{}, domain.DefaultPage())
	if err != nil {
		t.Fatalf("PriceList returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty pdf")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
	if !strings.HasPrefix(filename, "PRICELIST_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestPriceList_InvalidPageFailsBeforeStore(t *testing.T) {
	store := newFakeStore()
	report := ReportService{Store: store}

	page := domain.DefaultPage()
	page.Limit = 0

	_, _, err := report.PriceList(context.Background(), domain.FilterSpec{}, page)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.findCalls != 0 {
		t.Fatalf("store queried despite invalid page")
	}
}

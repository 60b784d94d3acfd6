package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SSG3800/Retail-POS-System/internal/models"
	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC)
	if got := Filename(now); got != "retail_export_20250301.xlsx" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	productRepo := repo.NewInMemoryProductRepository()
	productRepo.Create(models.Product{Name: "Rice", Price: 10.0, Quantity: 5})
	productRepo.Create(models.Product{Name: "Sugar", Price: 5.0, Quantity: 3})

	saleRepo := repo.NewInMemorySaleRepository(productRepo)
	_, _, err := saleRepo.Create(models.Sale{TotalPrice: 25.0}, []models.SaleItem{
		{ProductID: 1, ProductName: "Rice", Quantity: 2, Price: 10.0},
		{ProductID: 2, ProductName: "Sugar", Quantity: 1, Price: 5.0},
	})
	if err != nil {
		t.Fatalf("seeding sale: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	exporter := NewExporter(productRepo, saleRepo)
	if err := exporter.Snapshot(path); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SheetProducts, SheetSales, SheetSaleItems}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("expected sheet %q at position %d, got %q", name, i, sheets[i])
		}
	}

	rows, err := f.GetRows(SheetProducts)
	if err != nil {
		t.Fatalf("reading products sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 product rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Name" {
		t.Errorf("unexpected products header: %v", rows[0])
	}
	if rows[1][1] != "Rice" {
		t.Errorf("expected first product Rice, got %v", rows[1])
	}

	// Today's sale and its items must be present.
	saleRows, err := f.GetRows(SheetSales)
	if err != nil {
		t.Fatalf("reading sales sheet: %v", err)
	}
	if len(saleRows) != 2 {
		t.Fatalf("expected header plus 1 sale row, got %d", len(saleRows))
	}

	itemRows, err := f.GetRows(SheetSaleItems)
	if err != nil {
		t.Fatalf("reading sale items sheet: %v", err)
	}
	if len(itemRows) != 3 {
		t.Fatalf("expected header plus 2 item rows, got %d", len(itemRows))
	}
	if itemRows[1][3] != "Rice" {
		t.Errorf("expected first item Rice, got %v", itemRows[1])
	}
}

func TestSnapshotSkipsOtherDaysSales(t *testing.T) {
	productRepo := repo.NewInMemoryProductRepository()
	saleRepo := repo.NewInMemorySaleRepository(productRepo)

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	exporter := NewExporter(productRepo, saleRepo)
	if err := exporter.Snapshot(path); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	saleRows, err := f.GetRows(SheetSales)
	if err != nil {
		t.Fatalf("reading sales sheet: %v", err)
	}
	if len(saleRows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(saleRows))
	}
}

// Package export writes the daily spreadsheet snapshot: the full catalog plus
// today's sales and their line items.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

const (
	SheetProducts  = "Products"
	SheetSales     = "Recent Sales"
	SheetSaleItems = "Recent Sale Items"
)

type Exporter struct {
	products repo.ProductRepository
	sales    repo.SaleRepository
}

func NewExporter(products repo.ProductRepository, sales repo.SaleRepository) *Exporter {
	return &Exporter{products: products, sales: sales}
}

// Filename is the default export name for the given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("retail_export_%s.xlsx", now.Format("20060102"))
}

// Snapshot writes the three-sheet workbook to path. Read-only: field order is
// fixed, no invariants beyond what the repositories return.
func (e *Exporter) Snapshot(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetProducts); err != nil {
		return fmt.Errorf("failed to create products sheet: %w", err)
	}
	if err := e.writeProducts(f); err != nil {
		return err
	}

	saleIDs, err := e.writeSales(f)
	if err != nil {
		return err
	}
	if err := e.writeSaleItems(f, saleIDs); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}
	return nil
}

func (e *Exporter) writeProducts(f *excelize.File) error {
	if err := f.SetSheetRow(SheetProducts, "A1", &[]any{"ID", "Name", "Price", "Quantity", "Image Ref"}); err != nil {
		return err
	}

	products, err := e.products.GetAll()
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	for i, p := range products {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetProducts, cell, &[]any{p.ID, p.Name, p.Price, p.Quantity, p.ImageRef}); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSales(f *excelize.File) ([]int, error) {
	if _, err := f.NewSheet(SheetSales); err != nil {
		return nil, fmt.Errorf("failed to create sales sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetSales, "A1", &[]any{"Sale ID", "Total Price", "Date"}); err != nil {
		return nil, err
	}

	sales, err := e.sales.ListByDay(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's sales: %w", err)
	}

	saleIDs := make([]int, 0, len(sales))
	for i, s := range sales {
		saleIDs = append(saleIDs, s.ID)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetSales, cell, &[]any{s.ID, s.TotalPrice, s.SaleDate}); err != nil {
			return nil, err
		}
	}
	return saleIDs, nil
}

func (e *Exporter) writeSaleItems(f *excelize.File, saleIDs []int) error {
	if _, err := f.NewSheet(SheetSaleItems); err != nil {
		return fmt.Errorf("failed to create sale items sheet: %w", err)
	}
	header := []any{"Sale Item ID", "Sale ID", "Product ID", "Product Name", "Quantity", "Price"}
	if err := f.SetSheetRow(SheetSaleItems, "A1", &header); err != nil {
		return err
	}

	items, err := e.sales.ItemsBySaleIDs(saleIDs)
	if err != nil {
		return fmt.Errorf("failed to list today's sale items: %w", err)
	}
	for i, it := range items {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{it.ID, it.SaleID, it.ProductID, it.ProductName, it.Quantity, it.Price}
		if err := f.SetSheetRow(SheetSaleItems, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

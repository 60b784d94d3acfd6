// Package receipt formats a completed sale as a plain-text block suitable for
// a line printer. Pure pass-through: no state, no protocol.
package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/SSG3800/Retail-POS-System/internal/models"
)

const (
	header = "SAMARA TRADE CENTER"
	footer = "Thank you for your purchase!"
	width  = 40
)

// Render produces the receipt text for a sale and its line items.
func Render(sale models.Sale, items []models.SaleItem) string {
	var sb strings.Builder

	rule := strings.Repeat("-", width)
	sb.WriteString(center(header) + "\n")
	sb.WriteString(fmt.Sprintf("Sale #%d  %s\n", sale.ID, sale.SaleDate))
	sb.WriteString(rule + "\n")

	for _, it := range items {
		sb.WriteString(it.ProductName + "\n")
		line := fmt.Sprintf("  %.2f x %d", it.Price, it.Quantity)
		amount := fmt.Sprintf("%.2f", it.Price*float64(it.Quantity))
		sb.WriteString(pad(line, amount) + "\n")
	}

	sb.WriteString(rule + "\n")
	sb.WriteString(pad("TOTAL", fmt.Sprintf("%.2f", sale.TotalPrice)) + "\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(center(footer) + "\n")

	return sb.String()
}

// Print writes the rendered receipt to the spool writer.
func Print(w io.Writer, sale models.Sale, items []models.SaleItem) error {
	_, err := io.WriteString(w, Render(sale, items))
	return err
}

func center(s string) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

func pad(left, right string) string {
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

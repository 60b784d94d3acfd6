package repo

import (
	"time"

	"github.com/SSG3800/Retail-POS-System/internal/models"
)

// SaleRepository defines the interface for the sale ledger.
//
// Create is the checkout commit: it persists the sale row, its line items and
// the matching stock decrements in a single transaction. If any step fails
// (including a decrement that would drive stock negative) nothing persists and
// ErrInvalidQuantityChange or the underlying storage error is returned.
type SaleRepository interface {
	Create(sale models.Sale, items []models.SaleItem) (models.Sale, []models.SaleItem, error)
	GetAll() ([]models.Sale, error)
	GetByID(id int) (models.Sale, error)
	ItemsBySaleID(saleID int) ([]models.SaleItem, error)
	ItemsBySaleIDs(saleIDs []int) ([]models.SaleItem, error)
	ListByDay(day time.Time) ([]models.Sale, error)
	Clear() error
}

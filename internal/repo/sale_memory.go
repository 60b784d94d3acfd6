package repo

import (
	"time"

	"github.com/SSG3800/Retail-POS-System/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
// It decrements stock through the product repository it is given, validating
// every decrement before applying any so a failed checkout leaves both the
// ledger and the catalog untouched.
type InMemorySaleRepository struct {
	products   *InMemoryProductRepository
	sales      []models.Sale
	items      []models.SaleItem
	nextSaleID int
	nextItemID int
}

func NewInMemorySaleRepository(products *InMemoryProductRepository) *InMemorySaleRepository {
	return &InMemorySaleRepository{
		products:   products,
		sales:      []models.Sale{},
		items:      []models.SaleItem{},
		nextSaleID: 1,
		nextItemID: 1,
	}
}

func (r *InMemorySaleRepository) Create(sale models.Sale, items []models.SaleItem) (models.Sale, []models.SaleItem, error) {
	for _, item := range items {
		p, err := r.products.GetByID(item.ProductID)
		if err != nil {
			return models.Sale{}, nil, err
		}
		if p.Quantity-item.Quantity < 0 {
			return models.Sale{}, nil, ErrInvalidQuantityChange
		}
	}

	sale.ID = r.nextSaleID
	r.nextSaleID++
	sale.SaleDate = time.Now().UTC().Format(time.RFC3339)

	created := make([]models.SaleItem, 0, len(items))
	for _, item := range items {
		if _, err := r.products.AdjustQuantity(item.ProductID, -item.Quantity); err != nil {
			return models.Sale{}, nil, err
		}
		item.ID = r.nextItemID
		r.nextItemID++
		item.SaleID = sale.ID
		r.items = append(r.items, item)
		created = append(created, item)
	}

	r.sales = append(r.sales, sale)
	return sale, created, nil
}

// GetAll returns sales newest first.
func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	sales := make([]models.Sale, len(r.sales))
	for i, s := range r.sales {
		sales[len(r.sales)-1-i] = s
	}
	return sales, nil
}

func (r *InMemorySaleRepository) GetByID(id int) (models.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

func (r *InMemorySaleRepository) ItemsBySaleID(saleID int) ([]models.SaleItem, error) {
	var items []models.SaleItem
	for _, it := range r.items {
		if it.SaleID == saleID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *InMemorySaleRepository) ItemsBySaleIDs(saleIDs []int) ([]models.SaleItem, error) {
	wanted := make(map[int]bool, len(saleIDs))
	for _, id := range saleIDs {
		wanted[id] = true
	}

	items := []models.SaleItem{}
	for _, it := range r.items {
		if wanted[it.SaleID] {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *InMemorySaleRepository) ListByDay(day time.Time) ([]models.Sale, error) {
	prefix := day.UTC().Format("2006-01-02")

	sales := []models.Sale{}
	for _, s := range r.sales {
		if len(s.SaleDate) >= len(prefix) && s.SaleDate[:len(prefix)] == prefix {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

func (r *InMemorySaleRepository) Clear() error {
	r.sales = []models.Sale{}
	r.items = []models.SaleItem{}
	return nil
}

package repo

import "github.com/SSG3800/Retail-POS-System/internal/models"

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	AdjustQuantity(productID int, delta int) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
	Clear() error
}

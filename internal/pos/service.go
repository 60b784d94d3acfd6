// Package pos holds the till session: the in-memory cart and the checkout
// operation that turns it into a persisted sale.
package pos

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SSG3800/Retail-POS-System/internal/models"
	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

// ErrInsufficientStock is returned when a cart operation or checkout would
// exceed the available stock of a product.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrEmptyCart is returned when checkout is attempted with no cart entries.
var ErrEmptyCart = errors.New("cart is empty")

// Service owns the single active till session. The design is single-terminal,
// but handlers run on server goroutines, so cart access is serialized.
type Service struct {
	mu        sync.Mutex
	products  repo.ProductRepository
	sales     repo.SaleRepository
	movements repo.MovementRepository
	cart      *Cart
}

func NewService(products repo.ProductRepository, sales repo.SaleRepository, movements repo.MovementRepository) *Service {
	return &Service{
		products:  products,
		sales:     sales,
		movements: movements,
		cart:      NewCart(),
	}
}

// Add puts quantity units of a product into the cart, capturing the current
// price on first add. It fails with ErrInsufficientStock when the requested
// quantity plus what the cart already holds exceeds current stock; the cart is
// unchanged on failure.
func (s *Service) Add(productID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.GetByID(productID)
	if err != nil {
		return err
	}

	inCart := 0
	if item, ok := s.cart.get(productID); ok {
		inCart = item.Quantity
	}
	if quantity+inCart > product.Quantity {
		return fmt.Errorf("%w: only %d more of %q available", ErrInsufficientStock, product.Quantity-inCart, product.Name)
	}

	s.cart.put(CartItem{
		ProductID: productID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})
	return nil
}

// Adjust changes a cart entry's quantity by delta. The entry is removed when
// the resulting quantity drops to zero or below; increases re-check stock.
func (s *Service) Adjust(productID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cart.get(productID)
	if !ok {
		return repo.ErrProductNotFound
	}

	if item.Quantity+delta <= 0 {
		s.cart.remove(productID)
		return nil
	}

	if delta > 0 {
		product, err := s.products.GetByID(productID)
		if err != nil {
			return err
		}
		if item.Quantity+delta > product.Quantity {
			return fmt.Errorf("%w: only %d more of %q available", ErrInsufficientStock, product.Quantity-item.Quantity, product.Name)
		}
	}

	item.Quantity += delta
	return nil
}

// Remove drops a cart entry; removing an absent entry is a no-op.
func (s *Service) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.remove(productID)
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Service) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Checkout converts the cart into a persisted sale: one sale row, one line
// item per entry with captured name/price/quantity, and a stock decrement per
// referenced product, all in one transaction. On any failure nothing persists
// and the cart is kept so the clerk can correct it; stock never goes negative
// even if it was depleted after the items were added. On success the cart is
// cleared and the committed sale is returned.
func (s *Service) Checkout() (models.Sale, []models.SaleItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return models.Sale{}, nil, ErrEmptyCart
	}

	items := make([]models.SaleItem, 0, s.cart.Len())
	for _, entry := range s.cart.Items() {
		items = append(items, models.SaleItem{
			ProductID:   entry.ProductID,
			ProductName: entry.Name,
			Quantity:    entry.Quantity,
			Price:       entry.Price,
		})
	}

	sale := models.Sale{TotalPrice: s.cart.Total()}
	sale, created, err := s.sales.Create(sale, items)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidQuantityChange) {
			return models.Sale{}, nil, ErrInsufficientStock
		}
		return models.Sale{}, nil, err
	}

	for _, item := range created {
		_ = s.movements.Log(item.ProductID, -item.Quantity, "sale")
	}

	s.cart.Clear()
	return sale, created, nil
}

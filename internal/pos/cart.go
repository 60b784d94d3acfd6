package pos

import "math"

// CartItem is one cart entry: a product reference plus the name and price
// captured when the product was first added.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the transient per-session collection of selected products. It is
// never persisted; checkout converts it into a sale and discards it.
type Cart struct {
	entries map[int]*CartItem
	order   []int
}

func NewCart() *Cart {
	return &Cart{entries: map[int]*CartItem{}}
}

func (c *Cart) get(productID int) (*CartItem, bool) {
	item, ok := c.entries[productID]
	return item, ok
}

func (c *Cart) put(item CartItem) {
	if existing, ok := c.entries[item.ProductID]; ok {
		existing.Quantity += item.Quantity
		return
	}
	c.entries[item.ProductID] = &item
	c.order = append(c.order, item.ProductID)
}

func (c *Cart) remove(productID int) {
	if _, ok := c.entries[productID]; !ok {
		return
	}
	delete(c.entries, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Items returns the cart entries in the order they were first added.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.entries[id])
	}
	return items
}

// Total is the sum of price times quantity over all entries, rounded to cents.
// An empty cart totals zero.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.entries {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) Clear() {
	c.entries = map[int]*CartItem{}
	c.order = nil
}

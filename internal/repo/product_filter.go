package repo

type ProductFilter struct {
	Name        string
	InStockOnly bool
	Offset      *int
	Limit       *int
}

package models

// Sale is a completed checkout. Immutable once created except for bulk deletion.
type Sale struct {
	ID         int     `json:"id"`
	TotalPrice float64 `json:"total_price"`
	SaleDate   string  `json:"sale_date"`
}

// SaleItem is one product line within a sale. Name and price are snapshots
// taken at sale time; ProductID may reference a product that no longer exists.
type SaleItem struct {
	ID          int     `json:"id"`
	SaleID      int     `json:"sale_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

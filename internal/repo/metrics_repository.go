package repo

type BestSeller struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

type Metrics struct {
	TotalProducts   int        `json:"total_products"`
	OutOfStockCount int        `json:"out_of_stock_count"`
	TodaySalesCount int        `json:"today_sales_count"`
	TodayRevenue    float64    `json:"today_revenue"`
	BestSellerToday BestSeller `json:"best_seller_today"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}

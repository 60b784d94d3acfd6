package repo

import "time"

type InMemoryMetricsRepository struct {
	products *InMemoryProductRepository
	sales    *InMemorySaleRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(products *InMemoryProductRepository, sales *InMemorySaleRepository) {
	r.products = products
	r.sales = sales
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	var m Metrics

	products, _ := r.products.GetAll()
	m.TotalProducts = len(products)
	for _, p := range products {
		if p.Quantity == 0 {
			m.OutOfStockCount++
		}
	}

	today, _ := r.sales.ListByDay(time.Now().UTC())
	m.TodaySalesCount = len(today)

	ids := make([]int, len(today))
	for i, s := range today {
		m.TodayRevenue += s.TotalPrice
		ids[i] = s.ID
	}

	items, _ := r.sales.ItemsBySaleIDs(ids)
	sold := map[string]int{}
	for _, it := range items {
		sold[it.ProductName] += it.Quantity
		if sold[it.ProductName] > m.BestSellerToday.QuantitySold {
			m.BestSellerToday = BestSeller{Name: it.ProductName, QuantitySold: sold[it.ProductName]}
		}
	}

	return m, nil
}

package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&m.TotalProducts)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE quantity = 0`).Scan(&m.OutOfStockCount)
	_ = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0)
		FROM sales
		WHERE sale_date >= date_trunc('day', now())
	`).Scan(&m.TodaySalesCount, &m.TodayRevenue)

	_ = r.db.QueryRowContext(ctx, `
		SELECT si.product_name, SUM(si.quantity) as sold
		FROM sale_items si
		JOIN sales s ON si.sale_id = s.id
		WHERE s.sale_date >= date_trunc('day', now())
		GROUP BY si.product_name
		ORDER BY sold DESC
		LIMIT 1
	`).Scan(&m.BestSellerToday.Name, &m.BestSellerToday.QuantitySold)

	return m, nil
}

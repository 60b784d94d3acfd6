package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SSG3800/Retail-POS-System/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

// Create commits a checkout: one sale row, one sale_items row per line item
// and a guarded stock decrement per referenced product. The whole write is a
// single transaction; an underflowing decrement aborts it with
// ErrInvalidQuantityChange and no partial state persists.
func (r *PostgresSaleRepository) Create(sale models.Sale, items []models.SaleItem) (models.Sale, []models.SaleItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, nil, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO sales (total_price, sale_date) VALUES ($1, $2) RETURNING id, sale_date`,
		sale.TotalPrice, time.Now().UTC()).Scan(&sale.ID, &sale.SaleDate)
	if err != nil {
		return models.Sale{}, nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	created := make([]models.SaleItem, 0, len(items))
	for _, item := range items {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity = quantity - $1 WHERE id = $2 AND quantity - $1 >= 0`,
			item.Quantity, item.ProductID)
		if err != nil {
			return models.Sale{}, nil, fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}
		rowsAffected, _ := res.RowsAffected()
		if rowsAffected == 0 {
			return models.Sale{}, nil, ErrInvalidQuantityChange
		}

		item.SaleID = sale.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO sale_items (sale_id, product_id, product_name, quantity, price) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			item.SaleID, item.ProductID, item.ProductName, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return models.Sale{}, nil, fmt.Errorf("failed to insert sale item: %w", err)
		}
		created = append(created, item)
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, nil, fmt.Errorf("failed to commit checkout: %w", err)
	}
	return sale, created, nil
}

func (r *PostgresSaleRepository) GetAll() ([]models.Sale, error) {
	query := `SELECT id, total_price, sale_date FROM sales ORDER BY sale_date DESC, id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSales(rows)
}

func (r *PostgresSaleRepository) GetByID(id int) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Sale
	err := r.db.QueryRowContext(ctx, `SELECT id, total_price, sale_date FROM sales WHERE id = $1`, id).
		Scan(&s.ID, &s.TotalPrice, &s.SaleDate)
	if err == sql.ErrNoRows {
		return models.Sale{}, ErrSaleNotFound
	}
	return s, err
}

func (r *PostgresSaleRepository) ItemsBySaleID(saleID int) ([]models.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, product_name, quantity, price FROM sale_items WHERE sale_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSaleItems(rows)
}

func (r *PostgresSaleRepository) ItemsBySaleIDs(saleIDs []int) ([]models.SaleItem, error) {
	if len(saleIDs) == 0 {
		return []models.SaleItem{}, nil
	}

	query := `SELECT id, sale_id, product_id, product_name, quantity, price FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ids := make([]int32, len(saleIDs))
	for i, id := range saleIDs {
		ids[i] = int32(id)
	}

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSaleItems(rows)
}

// ListByDay returns the sales recorded on the given calendar day, oldest first.
func (r *PostgresSaleRepository) ListByDay(day time.Time) ([]models.Sale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).UTC()
	end := start.Add(24 * time.Hour)

	query := `SELECT id, total_price, sale_date FROM sales WHERE sale_date >= $1 AND sale_date < $2 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSales(rows)
}

// Clear deletes sales and their line items together.
func (r *PostgresSaleRepository) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items`); err != nil {
		return fmt.Errorf("failed to delete sale items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sales`); err != nil {
		return fmt.Errorf("failed to delete sales: %w", err)
	}
	return tx.Commit()
}

func scanSales(rows *sql.Rows) ([]models.Sale, error) {
	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.TotalPrice, &s.SaleDate); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func scanSaleItems(rows *sql.Rows) ([]models.SaleItem, error) {
	var items []models.SaleItem
	for rows.Next() {
		var it models.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

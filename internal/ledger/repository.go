package ledger

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dairyledger/dairyledger/internal/civil"
)

// Repository provides PostgreSQL backed persistence for the sales ledger.
// Sales are insert-only; there is no update or delete path.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const saleColumns = `id, product_id, product_name, quantity, unit_price, total_amount, sale_date, created_at`

// Insert records one sale.
func (r *Repository) Insert(ctx context.Context, s Sale) error {
	const query = `
		INSERT INTO sales (id, product_id, product_name, quantity, unit_price, total_amount, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.ProductID, s.ProductName, s.Quantity, s.UnitPrice, s.TotalAmount,
		dateParam(s.SaleDate), s.CreatedAt,
	)
	return err
}

// ListByDate returns all sales attributed to one civil date, newest first.
func (r *Repository) ListByDate(ctx context.Context, date civil.Date) ([]Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_date = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, dateParam(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListByRange returns all sales whose civil date falls in [start, end].
func (r *Repository) ListByRange(ctx context.Context, start, end civil.Date) ([]Sale, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date ASC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, dateParam(start), dateParam(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListAll returns the full transaction history in chronological order.
func (r *Repository) ListAll(ctx context.Context) ([]Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		ORDER BY sale_date ASC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]Sale, error) {
	sales := make([]Sale, 0)
	for rows.Next() {
		var (
			s        Sale
			saleDate pgtype.Date
		)
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.UnitPrice,
			&s.TotalAmount, &saleDate, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		if saleDate.Valid {
			s.SaleDate = civil.FromTime(saleDate.Time)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func dateParam(d civil.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes observed by this repository.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repository provides PostgreSQL backed persistence for the product catalog.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a product. A duplicate name maps to ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, p Product) error {
	const query = `
		INSERT INTO products (id, name, unit_price, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, p.ID, p.Name, p.UnitPrice, p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Get fetches a single product by id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	const query = `
		SELECT id, name, unit_price, created_at
		FROM products
		WHERE id = $1
	`
	var p Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.UnitPrice, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all products ordered by name.
func (r *Repository) List(ctx context.Context) ([]Product, error) {
	const query = `
		SELECT id, name, unit_price, created_at
		FROM products
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Delete removes a product. A foreign key violation from the sales table
// maps to ErrProductInUse; a missing row maps to ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM products WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrProductInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Package catalog manages the product list sales are recorded against.
package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	// ErrProductInUse is surfaced when deleting a product still referenced
	// by at least one sale. The store enforces this; we pass it through.
	ErrProductInUse = errors.New("product is referenced by sales")
)

// Product is a sellable item. Name doubles as the display and sort key and
// is unique across the catalog. Price edits are not supported; a product is
// replaced by deleting and re-adding it once no sales reference it.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"product_name"`
	UnitPrice float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest is the payload accepted when adding a product.
type CreateProductRequest struct {
	Name      string  `json:"product_name" validate:"required,max=200"`
	UnitPrice float64 `json:"price" validate:"gte=0"`
}

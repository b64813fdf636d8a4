package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dairyledger/dairyledger/internal/civil"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidRange = errors.New("start date is after end date")
)

// Sale is one immutable retail transaction. ProductName and UnitPrice are
// captured at the moment of sale and never change if the product is later
// edited; SaleDate is the IST calendar date stamped at creation.
type Sale struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"name"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"price"`
	TotalAmount float64    `json:"total_price"`
	SaleDate    civil.Date `json:"date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Amount recomputes quantity times unit price. Aggregations always use this
// rather than the stored total, so display rounding never compounds.
func (s Sale) Amount() float64 {
	return float64(s.Quantity) * s.UnitPrice
}

// RecordSaleRequest is the payload accepted when registering a sale.
type RecordSaleRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

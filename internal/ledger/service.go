// Package ledger records immutable sale transactions and serves them back
// by civil date ranges for reporting.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dairyledger/dairyledger/internal/catalog"
	"github.com/dairyledger/dairyledger/internal/civil"
)

// Store is the persistence contract the service depends on.
type Store interface {
	Insert(ctx context.Context, s Sale) error
	ListByDate(ctx context.Context, date civil.Date) ([]Sale, error)
	ListByRange(ctx context.Context, start, end civil.Date) ([]Sale, error)
	ListAll(ctx context.Context) ([]Sale, error)
}

// ProductGetter resolves a product at the moment of sale.
type ProductGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// CacheInvalidator is notified after every write so derived report caches
// can drop stale figures.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

// Service implements ledger use cases over a Store.
type Service struct {
	store    Store
	products ProductGetter
	reports  CacheInvalidator
	logger   *slog.Logger
	clock    func() time.Time
}

// NewService constructs a Service. reports may be nil when no cache is wired.
func NewService(store Store, products ProductGetter, reports CacheInvalidator, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		products: products,
		reports:  reports,
		logger:   logger,
		clock:    time.Now,
	}
}

// WithClock overrides the time source; used by tests and the seed tooling.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Record registers one sale. The product's name and price are denormalised
// into the sale at this moment and never change afterwards, and the sale is
// attributed to the current IST calendar date exactly once.
func (s *Service) Record(ctx context.Context, req RecordSaleRequest) (*Sale, error) {
	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	now := s.clock()
	sale := Sale{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		UnitPrice:   product.UnitPrice,
		TotalAmount: float64(req.Quantity) * product.UnitPrice,
		SaleDate:    civil.DateOf(now),
		CreatedAt:   now.UTC(),
	}
	if err := s.store.Insert(ctx, sale); err != nil {
		return nil, err
	}

	if s.reports != nil {
		if err := s.reports.Bump(ctx); err != nil {
			// Stale cache entries expire on their own TTL.
			s.logger.Warn("report cache bump failed", slog.Any("error", err))
		}
	}
	return &sale, nil
}

// ListByDate returns the sales of one civil date.
func (s *Service) ListByDate(ctx context.Context, date civil.Date) ([]Sale, error) {
	return s.store.ListByDate(ctx, date)
}

// ListByRange returns all sales inside an inclusive civil date range.
func (s *Service) ListByRange(ctx context.Context, start, end civil.Date) ([]Sale, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	return s.store.ListByRange(ctx, start, end)
}

// ListByYear returns all sales of one calendar year.
func (s *Service) ListByYear(ctx context.Context, year int) ([]Sale, error) {
	start := civil.Date{Year: year, Month: time.January, Day: 1}
	end := civil.Date{Year: year, Month: time.December, Day: 31}
	return s.store.ListByRange(ctx, start, end)
}

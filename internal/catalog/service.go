package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence contract the service depends on.
type Store interface {
	Create(ctx context.Context, p Product) error
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements catalog use cases over a Store.
type Service struct {
	store Store
	clock func() time.Time
}

// NewService constructs a Service.
func NewService(store Store) *Service {
	return &Service{store: store, clock: time.Now}
}

// Create adds a product to the catalog.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	p := Product{
		ID:        uuid.New(),
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		CreatedAt: s.clock().UTC(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Get fetches a product by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.store.Get(ctx, id)
}

// List returns the catalog ordered by product name.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.store.List(ctx)
}

// Delete removes a product unless sales still reference it, in which case
// the store's ErrProductInUse is passed through unchanged.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	products  map[uuid.UUID]Product
	createErr error
	deleteErr error
}

func newMockStore() *mockStore {
	return &mockStore{products: make(map[uuid.UUID]Product)}
}

func (m *mockStore) Create(ctx context.Context, p Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.products {
		if existing.Name == p.Name {
			return ErrAlreadyExists
		}
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockStore) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *mockStore) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func TestCreateProduct(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	svc.clock = func() time.Time { return time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC) }

	p, err := svc.Create(context.Background(), CreateProductRequest{Name: "Milk", UnitPrice: 30})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Milk", p.Name)
	assert.Equal(t, 30.0, p.UnitPrice)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), p.CreatedAt)

	stored, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, stored.Name)
}

func TestCreateProductDuplicateName(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "Curd", UnitPrice: 40})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateProductRequest{Name: "Curd", UnitPrice: 45})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetMissingProduct(t *testing.T) {
	svc := NewService(newMockStore())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	p, err := svc.Create(context.Background(), CreateProductRequest{Name: "Ghee", UnitPrice: 550})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	_, err = svc.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReferencedProduct(t *testing.T) {
	store := newMockStore()
	store.deleteErr = ErrProductInUse
	svc := NewService(store)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProductInUse)
}

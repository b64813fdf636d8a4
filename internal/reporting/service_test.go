package reporting

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/ledger"
)

type mockStore struct {
	sales      []ledger.Sale
	rangeErr   error
	rangeCalls int
	allCalls   int
	lastStart  civil.Date
	lastEnd    civil.Date
}

func (m *mockStore) ListByRange(ctx context.Context, start, end civil.Date) ([]ledger.Sale, error) {
	m.rangeCalls++
	m.lastStart, m.lastEnd = start, end
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	out := make([]ledger.Sale, 0)
	for _, s := range m.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStore) ListAll(ctx context.Context) ([]ledger.Sale, error) {
	m.allCalls++
	return m.sales, nil
}

// Fixed instant: 19:00 UTC on 2024-03-14 is 00:30 IST on 2024-03-15.
func fixedClock() time.Time {
	return time.Date(2024, 3, 14, 19, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, store SalesStore) (*Service, func()) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewService(store, NewCache(client, time.Minute)).WithClock(fixedClock)
	return svc, func() {
		_ = client.Close()
		mr.Close()
	}
}

func TestServiceSummaryAnchorsOnISTToday(t *testing.T) {
	_, sales := weekFixture()
	store := &mockStore{sales: sales}
	svc, cleanup := newTestService(t, store)
	defer cleanup()

	view, err := svc.Summary(context.Background())
	require.NoError(t, err)

	// Anchor is 2024-03-15 IST even though UTC still reads 03-14.
	assert.Zero(t, view.Today)
	assert.Equal(t, 190.0, view.Week)
	assert.Equal(t, 190.0, view.Month)
	assert.Equal(t, 190.0, view.Year)
	assert.Equal(t, "₹190", view.Display.Week)

	// One range fetch must cover all four windows.
	assert.Equal(t, 1, store.rangeCalls)
	assert.False(t, store.lastStart.After(civil.MustParse("2024-01-01")),
		"span start %s does not cover the year window", store.lastStart)
}

func TestServiceSummaryCachesUntilBump(t *testing.T) {
	_, sales := weekFixture()
	store := &mockStore{sales: sales}
	svc, cleanup := newTestService(t, store)
	defer cleanup()

	ctx := context.Background()
	_, err := svc.Summary(ctx)
	require.NoError(t, err)
	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.rangeCalls)

	// A write bumps the version and forces a reload.
	require.NoError(t, svc.cache.Bump(ctx))
	store.sales = append(store.sales, testSale("Milk", 1, 30, "2024-03-15"))
	view, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.rangeCalls)
	assert.Equal(t, 30.0, view.Today)
}

func TestServiceSummaryWithoutCache(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store, nil).WithClock(fixedClock)

	view, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, view.Today)
	assert.Zero(t, view.Week)
	assert.Zero(t, view.Month)
	assert.Zero(t, view.Year)
}

func TestServiceWeeklyGraph(t *testing.T) {
	_, sales := weekFixture()
	store := &mockStore{sales: sales}
	svc, cleanup := newTestService(t, store)
	defer cleanup()

	view, err := svc.WeeklyGraph(context.Background(), civil.MustParse("2024-03-15"))
	require.NoError(t, err)
	require.Len(t, view.Points, 7)
	assert.Equal(t, 190.0, view.Total)
	assert.Equal(t, "₹190", view.TotalDisplay)

	// The store is asked exactly for the window range.
	assert.Equal(t, civil.MustParse("2024-03-10"), store.lastStart)
	assert.Equal(t, civil.MustParse("2024-03-16"), store.lastEnd)
}

func TestServiceMonthlyGraphZeroFilled(t *testing.T) {
	store := &mockStore{}
	svc, cleanup := newTestService(t, store)
	defer cleanup()

	view, err := svc.MonthlyGraph(context.Background(), 2024, time.February)
	require.NoError(t, err)
	assert.Len(t, view.Points, 29)
}

func TestServiceTopProducts(t *testing.T) {
	_, sales := weekFixture()
	store := &mockStore{sales: sales}
	svc, cleanup := newTestService(t, store)
	defer cleanup()

	ctx := context.Background()
	top, err := svc.TopProducts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Milk", top[0].ProductName)
	assert.Equal(t, 5, top[0].TotalQuantity)

	// Cached on repeat.
	_, err = svc.TopProducts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, store.allCalls)
}

func TestServiceStoreFailurePropagates(t *testing.T) {
	store := &mockStore{rangeErr: context.DeadlineExceeded}
	svc, cleanup := newTestService(t, store)
	defer cleanup()

	_, err := svc.Summary(context.Background())
	require.Error(t, err)
}

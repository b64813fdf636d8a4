package reporting

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, store SalesStore) http.Handler {
	t.Helper()
	svc := NewService(store, nil).WithClock(fixedClock)
	h := NewHandler(slog.Default(), svc)
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func doGet(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWeeklyGraphEndpoint(t *testing.T) {
	_, sales := weekFixture()
	router := newTestRouter(t, &mockStore{sales: sales})

	rec := doGet(t, router, "/sales/graph/weekly?start_date=2024-03-10&end_date=2024-03-16")
	require.Equal(t, http.StatusOK, rec.Code)

	var points []struct {
		Day   string  `json:"day"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 7)
	assert.Equal(t, "Sun", points[0].Day)
	assert.Equal(t, 90.0, points[0].Total)
	assert.Equal(t, "Tue", points[2].Day)
	assert.Equal(t, 60.0, points[2].Total)
	assert.Zero(t, points[6].Total)
}

func TestWeeklyGraphEndpointRejectsBadInput(t *testing.T) {
	router := newTestRouter(t, &mockStore{})

	rec := doGet(t, router, "/sales/graph/weekly?start_date=10-03-2024")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, router, "/sales/graph/weekly?start_date=2024-03-16&end_date=2024-03-10")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthlyGraphEndpoint(t *testing.T) {
	router := newTestRouter(t, &mockStore{})

	rec := doGet(t, router, "/sales/graph/monthly?year=2024&month=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var points []struct {
		Day   int     `json:"day"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 29)
	assert.Equal(t, 1, points[0].Day)
	assert.Equal(t, 29, points[28].Day)

	rec = doGet(t, router, "/sales/graph/monthly?year=2024&month=13")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestYearlyGraphEndpoint(t *testing.T) {
	_, sales := weekFixture()
	router := newTestRouter(t, &mockStore{sales: sales})

	rec := doGet(t, router, "/sales/graph/yearly?year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	var points []struct {
		Month string  `json:"month"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 12)
	assert.Equal(t, "Mar", points[2].Month)
	assert.Equal(t, 190.0, points[2].Total)
}

func TestSummaryEndpoint(t *testing.T) {
	_, sales := weekFixture()
	router := newTestRouter(t, &mockStore{sales: sales})

	rec := doGet(t, router, "/sales/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Today   float64 `json:"today"`
		Week    float64 `json:"week"`
		Month   float64 `json:"month"`
		Year    float64 `json:"year"`
		Display struct {
			Week string `json:"week"`
		} `json:"display"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Zero(t, payload.Today)
	assert.Equal(t, 190.0, payload.Week)
	assert.Equal(t, "₹190", payload.Display.Week)
}

func TestTopProductsEndpoint(t *testing.T) {
	_, sales := weekFixture()
	router := newTestRouter(t, &mockStore{sales: sales})

	rec := doGet(t, router, "/sales/top-products?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var ranking []struct {
		ProductName   string `json:"product_name"`
		TotalQuantity int    `json:"total_sales"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranking))
	require.Len(t, ranking, 1)
	assert.Equal(t, "Milk", ranking[0].ProductName)
	assert.Equal(t, 5, ranking[0].TotalQuantity)

	rec = doGet(t, router, "/sales/top-products?limit=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	_, sales := weekFixture()
	router := newTestRouter(t, &mockStore{sales: sales})

	rec := doGet(t, router, "/sales/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Summary struct {
			Week float64 `json:"week"`
		} `json:"summary"`
		TopProducts []struct {
			ProductName string `json:"product_name"`
		} `json:"top_products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 190.0, payload.Summary.Week)
	require.Len(t, payload.TopProducts, 2)
	assert.Equal(t, "Milk", payload.TopProducts[0].ProductName)
}

func TestGraphEndpointStoreFailure(t *testing.T) {
	router := newTestRouter(t, &mockStore{rangeErr: errors.New("store down")})

	rec := doGet(t, router, "/sales/graph/yearly?year=2024")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

package reporting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/ledger"
)

// SalesStore is the read side of the ledger reports are computed from. A
// list call either returns the full set for the range or fails wholesale;
// the service never retries, that is the transport layer's concern.
type SalesStore interface {
	ListByRange(ctx context.Context, start, end civil.Date) ([]ledger.Sale, error)
	ListAll(ctx context.Context) ([]ledger.Sale, error)
}

// DefaultTopN is the ranking length the dashboard shows.
const DefaultTopN = 5

// Service computes report payloads from the sales store through the
// versioned cache.
type Service struct {
	store SalesStore
	cache *Cache
	clock func() time.Time
}

// NewService wires a SalesStore with a Cache helper. cache may be nil.
func NewService(store SalesStore, cache *Cache) *Service {
	return &Service{store: store, cache: cache, clock: time.Now}
}

// WithClock overrides the time source; used by tests and warmup jobs.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// SummaryView is the summary payload: raw figures for consumers that do
// their own arithmetic plus display strings for direct rendering.
type SummaryView struct {
	Summary
	Display SummaryDisplay `json:"display"`
}

// SummaryDisplay carries the formatted rupee figures.
type SummaryDisplay struct {
	Today string `json:"today"`
	Week  string `json:"week"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// GraphView is one zero-filled series with its window and total.
type GraphView struct {
	Window       Window        `json:"window"`
	Points       []BucketPoint `json:"points"`
	Total        float64       `json:"total"`
	TotalDisplay string        `json:"total_display"`
}

// Summary computes the today/week/month/year totals anchored on the
// current IST date. One range fetch covers all four windows, so the four
// figures always describe the same anchor and the same data.
func (s *Service) Summary(ctx context.Context) (SummaryView, error) {
	anchor := civil.Today(s.clock)
	loader := func(ctx context.Context) (interface{}, error) {
		start, end := summarySpan(anchor)
		sales, err := s.store.ListByRange(ctx, start, end)
		if err != nil {
			return nil, err
		}
		summary := SummaryOf(anchor, sales)
		return SummaryView{
			Summary: summary,
			Display: SummaryDisplay{
				Today: FormatINR(summary.Today),
				Week:  FormatINR(summary.Week),
				Month: FormatINR(summary.Month),
				Year:  FormatINR(summary.Year),
			},
		}, nil
	}

	var view SummaryView
	err := s.cached(ctx, loader, &view, "reports", "summary", anchor.String())
	return view, err
}

// WeeklyGraph buckets the Sun..Sat week containing the anchor date.
func (s *Service) WeeklyGraph(ctx context.Context, anchor civil.Date) (GraphView, error) {
	window, err := Resolve(anchor, KindWeek)
	if err != nil {
		return GraphView{}, err
	}
	return s.graph(ctx, window)
}

// MonthlyGraph buckets one calendar month, one slot per day.
func (s *Service) MonthlyGraph(ctx context.Context, year int, month time.Month) (GraphView, error) {
	window, err := Resolve(civil.Date{Year: year, Month: month, Day: 1}, KindMonth)
	if err != nil {
		return GraphView{}, err
	}
	return s.graph(ctx, window)
}

// YearlyGraph buckets one calendar year, one slot per month.
func (s *Service) YearlyGraph(ctx context.Context, year int) (GraphView, error) {
	window, err := Resolve(civil.Date{Year: year, Month: time.January, Day: 1}, KindYear)
	if err != nil {
		return GraphView{}, err
	}
	return s.graph(ctx, window)
}

func (s *Service) graph(ctx context.Context, window Window) (GraphView, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		sales, err := s.store.ListByRange(ctx, window.Start, window.End)
		if err != nil {
			return nil, err
		}
		points, err := BucketSeries(window, sales)
		if err != nil {
			return nil, err
		}
		total := SeriesTotal(points)
		return GraphView{
			Window:       window,
			Points:       points,
			Total:        total,
			TotalDisplay: FormatINR(total),
		}, nil
	}

	var view GraphView
	err := s.cached(ctx, loader, &view, "reports", "graph", string(window.Kind), window.Start.String())
	return view, err
}

// TopProducts ranks the n best selling products over the full history.
func (s *Service) TopProducts(ctx context.Context, n int) ([]ProductRank, error) {
	if n <= 0 {
		n = DefaultTopN
	}
	loader := func(ctx context.Context) (interface{}, error) {
		sales, err := s.store.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return TopProducts(sales, n), nil
	}

	ranking := make([]ProductRank, 0, n)
	err := s.cached(ctx, loader, &ranking, "reports", "top", strconv.Itoa(n))
	return ranking, err
}

func (s *Service) cached(ctx context.Context, loader func(context.Context) (interface{}, error), dest interface{}, keyParts ...string) error {
	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		return roundTrip(value, dest)
	}
	key, err := s.cache.BuildKey(ctx, keyParts...)
	if err != nil {
		return fmt.Errorf("reporting: build cache key: %w", err)
	}
	return s.cache.FetchJSON(ctx, key, dest, loader)
}

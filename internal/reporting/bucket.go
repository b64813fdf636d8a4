package reporting

import (
	"fmt"
	"strconv"

	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/ledger"
)

// BucketPoint is one slot of a zero-filled graph series.
type BucketPoint struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// BucketSeries folds the sales of a window into its canonical sub-period
// slots: Sun..Sat for a week, day 1..N for a month, Jan..Dec for a year, a
// single slot for a day. Every slot is present even with no sales, so a
// chart never receives a sparse series, and the result is invariant to the
// input order. A sale dated outside the window is a precondition violation.
func BucketSeries(w Window, sales []ledger.Sale) ([]BucketPoint, error) {
	if w.Start.After(w.End) {
		return nil, ErrInvalidRange
	}

	series := emptySeries(w)
	for _, sale := range sales {
		if !w.Contains(sale.SaleDate) {
			return nil, fmt.Errorf("%w: %s not in [%s, %s]", ErrOutOfWindow, sale.SaleDate, w.Start, w.End)
		}
		series[slotIndex(w, sale.SaleDate)].Total += sale.Amount()
	}
	return series, nil
}

// SeriesTotal sums a bucket series; by construction it equals the window
// total of the same sales.
func SeriesTotal(series []BucketPoint) float64 {
	var total float64
	for _, p := range series {
		total += p.Total
	}
	return total
}

func emptySeries(w Window) []BucketPoint {
	switch w.Kind {
	case KindWeek:
		series := make([]BucketPoint, 7)
		for i := range series {
			series[i].Label = weekdayLabels[i]
		}
		return series
	case KindMonth:
		series := make([]BucketPoint, civil.DaysInMonth(w.Start.Year, w.Start.Month))
		for i := range series {
			series[i].Label = strconv.Itoa(i + 1)
		}
		return series
	case KindYear:
		series := make([]BucketPoint, 12)
		for i := range series {
			series[i].Label = monthLabels[i]
		}
		return series
	default:
		return []BucketPoint{{Label: w.Start.String()}}
	}
}

func slotIndex(w Window, d civil.Date) int {
	switch w.Kind {
	case KindWeek:
		return int(d.Weekday())
	case KindMonth:
		return d.Day - 1
	case KindYear:
		return int(d.Month) - 1
	default:
		return 0
	}
}

// Chart axis labels, Sunday first.
var (
	weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthLabels   = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

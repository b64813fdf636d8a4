package reporting

import (
	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/ledger"
)

// SumWindow totals quantity times unit price over the supplied sales whose
// civil date falls inside the window. Sales outside the window are ignored,
// not an error; whether to pre-filter is the caller's choice.
func SumWindow(w Window, sales []ledger.Sale) float64 {
	var total float64
	for _, sale := range sales {
		if w.Contains(sale.SaleDate) {
			total += sale.Amount()
		}
	}
	return total
}

// Summary carries the four dashboard totals. All four are computed from the
// same anchor and the same sales, so they can never disagree about which
// day "today" is.
type Summary struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}

// SummaryOf computes the day, week, month and year totals for one anchor
// in a single pass over the sales.
func SummaryOf(anchor civil.Date, sales []ledger.Sale) Summary {
	windows := summaryWindows(anchor)
	return Summary{
		Today: SumWindow(windows[0], sales),
		Week:  SumWindow(windows[1], sales),
		Month: SumWindow(windows[2], sales),
		Year:  SumWindow(windows[3], sales),
	}
}

// summaryWindows resolves the four windows of the summary view. Resolve
// cannot fail for the fixed kinds used here.
func summaryWindows(anchor civil.Date) [4]Window {
	day, _ := Resolve(anchor, KindDay)
	week, _ := Resolve(anchor, KindWeek)
	month, _ := Resolve(anchor, KindMonth)
	year, _ := Resolve(anchor, KindYear)
	return [4]Window{day, week, month, year}
}

// summarySpan is the smallest range covering all four summary windows. The
// week window can poke outside the calendar year near January 1st and
// December 31st, so the span is not always the year window itself.
func summarySpan(anchor civil.Date) (start, end civil.Date) {
	windows := summaryWindows(anchor)
	start, end = windows[0].Start, windows[0].End
	for _, w := range windows[1:] {
		if w.Start.Before(start) {
			start = w.Start
		}
		if w.End.After(end) {
			end = w.End
		}
	}
	return start, end
}

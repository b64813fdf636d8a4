package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/ledger"
)

func TestSumWindow(t *testing.T) {
	w, sales := weekFixture()
	assert.Equal(t, 190.0, SumWindow(w, sales))
}

func TestSumWindowIgnoresOutOfWindowSales(t *testing.T) {
	w, sales := weekFixture()
	sales = append(sales,
		testSale("Milk", 10, 30, "2024-03-09"), // Saturday before
		testSale("Milk", 10, 30, "2024-03-17"), // Sunday after
	)
	assert.Equal(t, 190.0, SumWindow(w, sales))
}

func TestSumWindowRecomputesFromQuantityAndPrice(t *testing.T) {
	// A drifted stored total must not leak into aggregation.
	w, _ := Resolve(civil.MustParse("2024-03-15"), KindDay)
	sale := testSale("Milk", 3, 30, "2024-03-15")
	sale.TotalAmount = 999
	assert.Equal(t, 90.0, SumWindow(w, []ledger.Sale{sale}))
}

func TestSumWindowEmpty(t *testing.T) {
	w, _ := Resolve(civil.MustParse("2024-03-15"), KindWeek)
	assert.Zero(t, SumWindow(w, nil))
}

func TestSummaryOf(t *testing.T) {
	_, sales := weekFixture()
	// Anchor on the Tuesday sale so "today" is non-zero.
	anchor := civil.MustParse("2024-03-12")
	summary := SummaryOf(anchor, sales)

	assert.Equal(t, 60.0, summary.Today)
	assert.Equal(t, 190.0, summary.Week)
	assert.Equal(t, 190.0, summary.Month)
	assert.Equal(t, 190.0, summary.Year)
}

func TestSummaryTodayMatchesDayWindow(t *testing.T) {
	_, sales := weekFixture()
	anchor := civil.MustParse("2024-03-12")
	day, err := Resolve(anchor, KindDay)
	require.NoError(t, err)
	assert.Equal(t, SumWindow(day, sales), SummaryOf(anchor, sales).Today)
}

func TestSummaryOfEmpty(t *testing.T) {
	summary := SummaryOf(civil.MustParse("2024-03-15"), nil)
	assert.Equal(t, Summary{}, summary)
}

func TestSummarySpanCoversWeekAcrossYearBoundary(t *testing.T) {
	// 2025-01-01 is a Wednesday; its week starts Sunday 2024-12-29, which
	// lies outside the year window.
	start, end := summarySpan(civil.MustParse("2025-01-01"))
	assert.Equal(t, civil.MustParse("2024-12-29"), start)
	assert.Equal(t, civil.MustParse("2025-12-31"), end)

	// Late December: the week spills into the next year.
	start, end = summarySpan(civil.MustParse("2025-12-30"))
	assert.Equal(t, civil.MustParse("2025-01-01"), start)
	assert.Equal(t, civil.MustParse("2026-01-03"), end)
}

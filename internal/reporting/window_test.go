package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dairyledger/dairyledger/internal/civil"
)

func TestResolveDay(t *testing.T) {
	anchor := civil.MustParse("2024-03-15")
	w, err := Resolve(anchor, KindDay)
	require.NoError(t, err)
	assert.Equal(t, anchor, w.Start)
	assert.Equal(t, anchor, w.End)
}

func TestResolveWeekFridayAnchor(t *testing.T) {
	// 2024-03-15 is a Friday; its week runs Sun 03-10 through Sat 03-16.
	w, err := Resolve(civil.MustParse("2024-03-15"), KindWeek)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParse("2024-03-10"), w.Start)
	assert.Equal(t, civil.MustParse("2024-03-16"), w.End)
}

func TestResolveWeekAlwaysSundayToSaturday(t *testing.T) {
	anchor := civil.MustParse("2023-12-20")
	for i := 0; i < 60; i++ {
		w, err := Resolve(anchor, KindWeek)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, w.Start.Weekday(), "anchor %s", anchor)
		assert.Equal(t, time.Saturday, w.End.Weekday(), "anchor %s", anchor)
		assert.Equal(t, w.End, w.Start.AddDays(6), "anchor %s", anchor)
		assert.True(t, w.Contains(anchor), "anchor %s", anchor)
		anchor = anchor.AddDays(1)
	}
}

func TestResolveMonth(t *testing.T) {
	w, err := Resolve(civil.MustParse("2024-02-14"), KindMonth)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParse("2024-02-01"), w.Start)
	assert.Equal(t, civil.MustParse("2024-02-29"), w.End)

	w, err = Resolve(civil.MustParse("2023-02-14"), KindMonth)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParse("2023-02-28"), w.End)
}

func TestResolveYear(t *testing.T) {
	w, err := Resolve(civil.MustParse("2024-07-09"), KindYear)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParse("2024-01-01"), w.Start)
	assert.Equal(t, civil.MustParse("2024-12-31"), w.End)
}

func TestResolveUnknownKind(t *testing.T) {
	_, err := Resolve(civil.MustParse("2024-01-01"), Kind("quarter"))
	assert.Error(t, err)
}

func TestShiftMonthClampsIntoFebruary(t *testing.T) {
	w, err := Resolve(civil.MustParse("2024-01-31"), KindMonth)
	require.NoError(t, err)

	next, err := Shift(w, 1)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParse("2024-02-01"), next.Start)
	assert.Equal(t, civil.MustParse("2024-02-29"), next.End)
}

func TestShiftReversesOnStart(t *testing.T) {
	anchors := []string{"2024-03-15", "2024-01-31", "2024-02-29", "2023-12-31"}
	kinds := []Kind{KindDay, KindWeek, KindMonth, KindYear}
	steps := []int{1, 3, 12, -5}

	for _, raw := range anchors {
		anchor := civil.MustParse(raw)
		for _, kind := range kinds {
			for _, n := range steps {
				original, err := Resolve(anchor, kind)
				require.NoError(t, err)
				forward, err := Shift(original, n)
				require.NoError(t, err)
				back, err := Shift(forward, -n)
				require.NoError(t, err)
				assert.Equal(t, original.Start, back.Start,
					"anchor=%s kind=%s steps=%d", anchor, kind, n)
				assert.Equal(t, original.End, back.End,
					"anchor=%s kind=%s steps=%d", anchor, kind, n)
			}
		}
	}
}

func TestShiftWeekMovesWholeWeeks(t *testing.T) {
	w, err := Resolve(civil.MustParse("2024-03-15"), KindWeek)
	require.NoError(t, err)
	prev, err := Shift(w, -1)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParse("2024-03-03"), prev.Start)
	assert.Equal(t, civil.MustParse("2024-03-09"), prev.End)
}

func TestContains(t *testing.T) {
	w, err := Resolve(civil.MustParse("2024-03-15"), KindWeek)
	require.NoError(t, err)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.AddDays(-1)))
	assert.False(t, w.Contains(w.End.AddDays(1)))
}

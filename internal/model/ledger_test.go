package model

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMinutes(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"zero", 0, 0},
		{"29 seconds rounds down", 29 * time.Second, 0},
		{"30 seconds rounds up", 30 * time.Second, 1},
		{"one hour one minute one second", 3661 * time.Second, 61},
		{"just under half", 90*time.Minute + 29*time.Second, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DurationMinutes(start, start.Add(tt.elapsed)))
		})
	}
}

func TestTimeEntryClose(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	e := &TimeEntry{Start: start}
	require.True(t, e.IsOpen())

	e.Close(start.Add(3661 * time.Second))

	require.False(t, e.IsOpen())
	assert.Equal(t, int64(61), *e.DurationMinutes)
}

func TestElapsedSeconds(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(125), ElapsedSeconds(start, start.Add(125*time.Second+400*time.Millisecond)))
	assert.Zero(t, ElapsedSeconds(start, start.Add(-time.Second)))
}

func TestTotalMinutesSkipsOpenEntries(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entries := []*TimeEntry{
		{Start: now, End: lo.ToPtr(now), DurationMinutes: lo.ToPtr(int64(30))},
		{Start: now, End: lo.ToPtr(now), DurationMinutes: lo.ToPtr(int64(15))},
		{Start: now},
	}

	assert.Equal(t, int64(45), TotalMinutes(entries))

	open, ok := OpenEntry(entries)
	require.True(t, ok)
	assert.Same(t, entries[2], open)
}

func TestOrderTotalUsesSnapshotPrice(t *testing.T) {
	t.Parallel()

	usages := []*PartUsage{
		{Quantity: 2, UnitPriceCents: 4550},
		{Quantity: 1, UnitPriceCents: 25000},
	}

	assert.Equal(t, int64(34100), OrderTotal(usages))
}

func TestLevelOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StockInStock, LevelOf(6))
	assert.Equal(t, StockLow, LevelOf(5))
	assert.Equal(t, StockLow, LevelOf(1))
	assert.Equal(t, StockOut, LevelOf(0))
	assert.Equal(t, StockOut, LevelOf(-3))
}

func TestOrderCloneIsDeep(t *testing.T) {
	t.Parallel()

	o := &Order{ResolutionNotes: lo.ToPtr("fixed")}
	c := o.Clone()
	*c.ResolutionNotes = "changed"

	assert.Equal(t, "fixed", *o.ResolutionNotes)
}

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "OS-2024-1000", GenerateCode(now, 0))
	assert.Equal(t, "OS-2024-9999", GenerateCode(now, 8999))
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/fieldservice/internal/model"
)

func TestServiceStartStopTimer(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	clk := newClock()
	svc := newSvc(d, clk)
	ord := newOrder(model.StatusAssigned)
	seedView(svc, ord, nil, nil)

	var entryID uuid.UUID
	d.orders.
		On("CreateTimeEntry", mock.Anything, mock.MatchedBy(func(e *model.TimeEntry) bool {
			entryID = e.ID
			return e.OrderID == ord.ID && e.IsOpen() && e.Start.Equal(baseTime)
		})).
		Return(nil).
		Once()
	d.orders.
		On("UpdateOrder", mock.Anything, ord.ID, mock.MatchedBy(func(u model.OrderUpdate) bool {
			return *u.Status == model.StatusStarted && u.StartTime.Equal(baseTime)
		})).
		Return(nil).
		Once()
	d.events.
		On("SendStatusChanged", mock.Anything, mock.MatchedBy(func(ev model.StatusChanged) bool {
			return ev.From == model.StatusAssigned && ev.To == model.StatusStarted
		})).
		Return(nil).
		Once()

	ctx := context.Background()

	entry, err := svc.StartTimer(ctx, ord.ID)
	require.NoError(t, err)
	assert.True(t, entry.IsOpen())

	got, err := svc.OrderByID(ctx, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusStarted, got.Status)
	assert.Equal(t, baseTime, *got.StartTime)

	_, err = svc.StartTimer(ctx, ord.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)

	clk.Advance(3661 * time.Second)

	state, err := svc.Timer(ctx, ord.ID)
	require.NoError(t, err)
	assert.True(t, state.Running)
	assert.Equal(t, int64(3661), state.ElapsedSeconds)
	assert.Zero(t, state.TotalMinutes)

	d.orders.
		On("UpdateTimeEntry", mock.Anything, mock.Anything, mock.MatchedBy(func(u model.TimeEntryUpdate) bool {
			return *u.DurationMinutes == 61
		})).
		Return(nil).
		Once()

	closed, err := svc.StopTimer(ctx, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, entryID, closed.ID)
	assert.Equal(t, int64(61), *closed.DurationMinutes)

	total, err := svc.TotalMinutes(ctx, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(61), total)

	_, err = svc.StopTimer(ctx, ord.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)

	got, err = svc.OrderByID(ctx, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusStarted, got.Status, "stopping the timer does not pause the order")
}

func TestServiceStartTimer(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		order  func() *model.Order
		setup  func(d deps, ord *model.Order)
		assert func(t *testing.T, svc *service, ord *model.Order, entry *model.TimeEntry, err error, d deps)
	}

	tests := []testCase{
		{
			name:  "read-only order is rejected",
			order: func() *model.Order { return newOrder(model.StatusCompleted) },
			assert: func(t *testing.T, svc *service, ord *model.Order, entry *model.TimeEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPrecondition)
				assert.Empty(t, current(t, svc, ord.ID).Entries)
			},
		},
		{
			name: "already started order only gets a new entry",
			order: func() *model.Order {
				o := newOrder(model.StatusStarted)
				o.StartTime = lo.ToPtr(baseTime.Add(-time.Hour))
				return o
			},
			setup: func(d deps, ord *model.Order) {
				d.orders.On("CreateTimeEntry", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, svc *service, ord *model.Order, entry *model.TimeEntry, err error, d deps) {
				require.NoError(t, err)
				assert.True(t, entry.IsOpen())

				d.orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendStatusChanged", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "entry write failure leaves nothing behind",
			order: func() *model.Order { return newOrder(model.StatusPaused) },
			setup: func(d deps, ord *model.Order) {
				d.orders.On("CreateTimeEntry", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
			},
			assert: func(t *testing.T, svc *service, ord *model.Order, entry *model.TimeEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrAdapter)

				v := current(t, svc, ord.ID)
				assert.Empty(t, v.Entries)
				assert.Equal(t, model.StatusPaused, v.Order.Status)
			},
		},
		{
			name:  "order write failure removes the stored entry",
			order: func() *model.Order { return newOrder(model.StatusNotStarted) },
			setup: func(d deps, ord *model.Order) {
				d.orders.On("CreateTimeEntry", mock.Anything, mock.Anything).Return(nil).Once()
				d.orders.On("UpdateOrder", mock.Anything, ord.ID, mock.Anything).Return(errors.New("timeout")).Once()
				d.orders.On("DeleteTimeEntry", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, svc *service, ord *model.Order, entry *model.TimeEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrAdapter)
				assert.Nil(t, entry)

				v := current(t, svc, ord.ID)
				assert.Empty(t, v.Entries)
				assert.Equal(t, model.StatusNotStarted, v.Order.Status)
				assert.Nil(t, v.Order.StartTime)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			svc := newSvc(d, newClock())
			ord := tt.order()
			seedView(svc, ord, nil, nil)
			if tt.setup != nil {
				tt.setup(d, ord)
			}

			entry, err := svc.StartTimer(context.Background(), ord.ID)
			tt.assert(t, svc, ord, entry, err, d)
		})
	}
}

func TestServiceAddManualEntry(t *testing.T) {
	t.Parallel()

	t.Run("end before start is rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusStarted)
		seedView(svc, ord, nil, nil)

		day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		_, err := svc.AddManualEntry(context.Background(), model.ManualEntryParams{
			OrderID: ord.ID,
			Start:   day.Add(10 * time.Hour),
			End:     day.Add(9*time.Hour + 30*time.Minute),
		})

		require.Error(t, err)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "end", verr.Field)
		assert.Empty(t, current(t, svc, ord.ID).Entries)
		d.orders.AssertNotCalled(t, "CreateTimeEntry", mock.Anything, mock.Anything)
	})

	t.Run("manual entry coexists with the running timer", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusStarted)
		running := &model.TimeEntry{ID: uuid.New(), OrderID: ord.ID, Start: baseTime.Add(-10 * time.Minute)}
		seedView(svc, ord, []*model.TimeEntry{running}, nil)

		d.orders.
			On("CreateTimeEntry", mock.Anything, mock.MatchedBy(func(e *model.TimeEntry) bool {
				return !e.IsOpen() && *e.DurationMinutes == 45 && e.Description == "travel"
			})).
			Return(nil).
			Once()

		entry, err := svc.AddManualEntry(context.Background(), model.ManualEntryParams{
			OrderID:     ord.ID,
			Start:       baseTime.Add(-3 * time.Hour),
			End:         baseTime.Add(-3*time.Hour + 45*time.Minute),
			Description: "travel",
		})
		require.NoError(t, err)
		assert.False(t, entry.IsOpen())

		v := current(t, svc, ord.ID)
		open, ok := v.OpenEntry()
		require.True(t, ok)
		assert.Equal(t, running.ID, open.ID)
		assert.Equal(t, int64(45), model.TotalMinutes(v.Entries))
	})
}

func TestServiceRemoveEntry(t *testing.T) {
	t.Parallel()

	closedEnd := baseTime.Add(-time.Hour)
	newEntries := func(ordID uuid.UUID) (open, closed *model.TimeEntry) {
		open = &model.TimeEntry{ID: uuid.New(), OrderID: ordID, Start: baseTime.Add(-5 * time.Minute)}
		closed = &model.TimeEntry{
			ID:              uuid.New(),
			OrderID:         ordID,
			Start:           closedEnd.Add(-30 * time.Minute),
			End:             lo.ToPtr(closedEnd),
			DurationMinutes: lo.ToPtr(int64(30)),
		}
		return open, closed
	}

	t.Run("running entry cannot be removed", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusStarted)
		open, closed := newEntries(ord.ID)
		seedView(svc, ord, []*model.TimeEntry{open, closed}, nil)

		err := svc.RemoveEntry(context.Background(), ord.ID, open.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPrecondition)
		assert.Len(t, current(t, svc, ord.ID).Entries, 2)
	})

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusStarted)
		seedView(svc, ord, nil, nil)

		err := svc.RemoveEntry(context.Background(), ord.ID, uuid.New())
		assert.ErrorIs(t, err, model.ErrTimeEntryNotFound)
	})

	t.Run("closed entry on read-only order", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusInvoiced)
		_, closed := newEntries(ord.ID)
		seedView(svc, ord, []*model.TimeEntry{closed}, nil)

		err := svc.RemoveEntry(context.Background(), ord.ID, closed.ID)
		assert.ErrorIs(t, err, model.ErrReadOnly)
	})

	t.Run("closed entry is removed", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusPaused)
		open, closed := newEntries(ord.ID)
		seedView(svc, ord, []*model.TimeEntry{open, closed}, nil)

		d.orders.On("DeleteTimeEntry", mock.Anything, closed.ID).Return(nil).Once()

		require.NoError(t, svc.RemoveEntry(context.Background(), ord.ID, closed.ID))

		v := current(t, svc, ord.ID)
		require.Len(t, v.Entries, 1)
		assert.Equal(t, open.ID, v.Entries[0].ID)
	})

	t.Run("delete failure restores the entry", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		svc := newSvc(d, newClock())
		ord := newOrder(model.StatusPaused)
		_, closed := newEntries(ord.ID)
		seedView(svc, ord, []*model.TimeEntry{closed}, nil)

		d.orders.On("DeleteTimeEntry", mock.Anything, closed.ID).Return(errors.New("offline")).Once()

		err := svc.RemoveEntry(context.Background(), ord.ID, closed.ID)
		assert.ErrorIs(t, err, model.ErrAdapter)
		assert.Len(t, current(t, svc, ord.ID).Entries, 1)
	})
}

func TestServiceStartTimerCompensationAfterDeadline(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := NewOrderService(d.orders, d.catalog, d.events, d.summary, time.Second, 50*time.Millisecond, WithClock(newClock().Now))
	ord := newOrder(model.StatusAssigned)
	seedView(svc, ord, nil, nil)

	var entryID uuid.UUID
	d.orders.
		On("CreateTimeEntry", mock.Anything, mock.MatchedBy(func(e *model.TimeEntry) bool {
			entryID = e.ID
			return true
		})).
		Return(nil).
		Once()
	d.orders.On("UpdateOrder", mock.Anything, ord.ID, mock.Anything).
		Return(func(ctx context.Context, _ uuid.UUID, _ model.OrderUpdate) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		Once()
	d.orders.
		On("DeleteTimeEntry",
			mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }),
			mock.MatchedBy(func(id uuid.UUID) bool { return id == entryID })).
		Return(nil).
		Once()

	_, err := svc.StartTimer(context.Background(), ord.ID)
	require.ErrorIs(t, err, model.ErrAdapter)

	v := current(t, svc, ord.ID)
	assert.Empty(t, v.Entries)
	assert.Equal(t, model.StatusAssigned, v.Order.Status)
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiv1 "github.com/you-humble/fieldservice/internal/api/v1"
	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/transport/http/order/v1/mocks"
	"github.com/you-humble/fieldservice/platform/logger"
)

func init() {
	logger.SetNopLogger()
}

func fakeOrder(status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:          uuid.New(),
		Code:        "OS-2026-4821",
		Status:      status,
		Priority:    model.PriorityMedium,
		Type:        model.OrderTypeMaintenance,
		Description: gofakeit.Sentence(6),
		ClientID:    uuid.New(),
		CreatedAt:   time.Now().UTC(),
	}
}

func serve(svc OrderService, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewOrderHandler(svc).Routes().ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateOrder(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()

	tests := []struct {
		name   string
		body   string
		setup  func(svc *mocks.MockOrderService)
		status int
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "created",
			body: fmt.Sprintf(`{"client_id":%q,"type":"maintenance","priority":"high","description":"No cooling"}`, clientID),
			setup: func(svc *mocks.MockOrderService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateOrderParams) bool {
					return p.ClientID == clientID && p.Type == model.OrderTypeMaintenance && p.Priority == model.PriorityHigh
				})).Return(fakeOrder(model.StatusNotStarted), nil).Once()
			},
			status: http.StatusCreated,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var out apiv1.Order
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
				assert.Equal(t, "NOT_STARTED", out.Status)
				assert.False(t, out.ReadOnly)
			},
		},
		{
			name:   "malformed body",
			body:   `{"client_id":`,
			setup:  func(*mocks.MockOrderService) {},
			status: http.StatusBadRequest,
		},
		{
			name: "validation error carries field",
			body: fmt.Sprintf(`{"client_id":%q,"type":"maintenance","priority":"high"}`, clientID),
			setup: func(svc *mocks.MockOrderService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("op: %w", model.NewValidationError("description", "required"))).Once()
			},
			status: http.StatusBadRequest,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var out apiv1.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
				assert.Equal(t, "description", out.Field)
			},
		},
		{
			name: "storage down",
			body: fmt.Sprintf(`{"client_id":%q,"type":"maintenance","priority":"high","description":"x"}`, clientID),
			setup: func(svc *mocks.MockOrderService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(nil, model.NewAdapterError("CreateOrder", errors.New("dial tcp"))).Once()
			},
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockOrderService(t)
			tt.setup(svc)

			rec := serve(svc, http.MethodPost, "/", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.assert != nil {
				tt.assert(t, rec)
			}
		})
	}
}

func TestHandlerTransition(t *testing.T) {
	t.Parallel()

	ord := fakeOrder(model.StatusCompleted)

	tests := []struct {
		name   string
		target string
		body   string
		setup  func(svc *mocks.MockOrderService)
		status int
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "applied",
			target: "/" + ord.ID.String() + "/transitions",
			body:   `{"status":"INVOICED","confirmed":true}`,
			setup: func(svc *mocks.MockOrderService) {
				invoiced := ord.Clone()
				invoiced.Status = model.StatusInvoiced
				svc.On("Transition", mock.Anything, model.TransitionRequest{
					OrderID: ord.ID, Target: model.StatusInvoiced, Confirmed: true,
				}).Return(&model.TransitionResult{Order: invoiced}, nil).Once()
			},
			status: http.StatusOK,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var out apiv1.TransitionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
				require.NotNil(t, out.Order)
				assert.True(t, out.Order.ReadOnly)
			},
		},
		{
			name:   "needs confirmation",
			target: "/" + ord.ID.String() + "/transitions",
			body:   `{"status":"INVOICED"}`,
			setup: func(svc *mocks.MockOrderService) {
				svc.On("Transition", mock.Anything, mock.Anything).
					Return(&model.TransitionResult{RequiresConfirmation: true, Reason: model.ReasonInvoice}, nil).Once()
			},
			status: http.StatusAccepted,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var out apiv1.TransitionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
				assert.True(t, out.RequiresConfirmation)
				assert.Equal(t, "invoice", out.Reason)
				assert.Nil(t, out.Order)
			},
		},
		{
			name:   "not allowed",
			target: "/" + ord.ID.String() + "/transitions",
			body:   `{"status":"STARTED"}`,
			setup: func(svc *mocks.MockOrderService) {
				svc.On("Transition", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("op: %w", model.ErrPrecondition)).Once()
			},
			status: http.StatusPreconditionFailed,
		},
		{
			name:   "bad order id",
			target: "/42/transitions",
			body:   `{"status":"STARTED"}`,
			setup:  func(*mocks.MockOrderService) {},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockOrderService(t)
			tt.setup(svc)

			rec := serve(svc, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.assert != nil {
				tt.assert(t, rec)
			}
		})
	}
}

func TestHandlerTimer(t *testing.T) {
	t.Parallel()

	ordID := uuid.New()
	start := time.Now().UTC().Add(-90 * time.Second)
	entry := &model.TimeEntry{ID: uuid.New(), OrderID: ordID, Start: start}

	t.Run("start", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("StartTimer", mock.Anything, ordID).Return(entry, nil).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/timer/start", "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("start while running", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("StartTimer", mock.Anything, ordID).Return(nil, model.ErrTimerRunning).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/timer/start", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("stop without timer", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("StopTimer", mock.Anything, ordID).Return(nil, model.ErrNoRunningTimer).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/timer/stop", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("state", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("Timer", mock.Anything, ordID).Return(&model.TimerState{
			Running: true, EntryID: entry.ID, Start: start, ElapsedSeconds: 90, TotalMinutes: 30,
		}, nil).Once()

		rec := serve(svc, http.MethodGet, "/"+ordID.String()+"/timer", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out apiv1.TimerState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.True(t, out.Running)
		assert.Equal(t, int64(90), out.ElapsedSeconds)
		assert.Equal(t, entry.ID, *out.EntryID)
	})

	t.Run("remove entry", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("RemoveEntry", mock.Anything, ordID, entry.ID).Return(nil).Once()

		rec := serve(svc, http.MethodDelete, "/"+ordID.String()+"/time-entries/"+entry.ID.String(), "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestHandlerParts(t *testing.T) {
	t.Parallel()

	ordID := uuid.New()
	usageID := uuid.New()

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("AddUsage", mock.Anything, model.AddUsageParams{OrderID: ordID, CatalogItemID: "p1", Quantity: 2}).
			Return(&model.PartUsage{
				ID: usageID, OrderID: ordID, CatalogPartID: "p1", Name: "Termostato Digital",
				Reference: "TERM-001", Quantity: 2, UnitPriceCents: 4550,
			}, nil).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/parts", `{"catalog_item_id":"p1","quantity":2}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var out apiv1.PartUsage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "91.00", out.Total)
	})

	t.Run("remove with warning", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("RemoveUsage", mock.Anything, ordID, usageID).Return(&model.DataIntegrityWarning{
			Entity: "catalog item", ID: "p9", Message: "no longer exists, stock not restored",
		}, nil).Once()

		rec := serve(svc, http.MethodDelete, "/"+ordID.String()+"/parts/"+usageID.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out apiv1.RemovePartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Contains(t, out.Warning, "p9")
	})

	t.Run("read-only order", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("AddUsage", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("op: %w", model.ErrReadOnly)).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/parts", `{"catalog_item_id":"p1","quantity":1}`)
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})
}

func TestHandlerSuggestNotes(t *testing.T) {
	t.Parallel()

	ordID := uuid.New()

	t.Run("empty body uses stored notes", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("SuggestNotes", mock.Anything, ordID, "").Return("Thermostat replaced.", nil).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/notes-suggestion", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out apiv1.SuggestNotesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "Thermostat replaced.", out.Text)
	})

	t.Run("provider down", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockOrderService(t)
		svc.On("SuggestNotes", mock.Anything, ordID, "draft").Return("", fmt.Errorf("op: %w", model.ErrBadGateway)).Once()

		rec := serve(svc, http.MethodPost, "/"+ordID.String()+"/notes-suggestion", `{"draft_notes":"draft"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestHandlerReport(t *testing.T) {
	t.Parallel()

	ord := fakeOrder(model.StatusCompleted)
	svc := mocks.NewMockOrderService(t)
	svc.On("Report", mock.Anything, ord.ID).Return(&model.Report{
		Order:        ord,
		TotalMinutes: 61,
		PartsCents:   9100,
	}, nil).Once()

	rec := serve(svc, http.MethodGet, "/"+ord.ID.String()+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out apiv1.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(61), out.TotalMinutes)
	assert.Equal(t, "91.00", out.PartsTotal)
}

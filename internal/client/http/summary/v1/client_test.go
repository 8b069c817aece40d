package summaryclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/fieldservice/internal/client/converter"
	"github.com/you-humble/fieldservice/internal/model"
)

func TestClientSuggest(t *testing.T) {
	t.Parallel()

	req := model.SummaryRequest{
		Description:   "Fridge not cooling",
		DraftNotes:    "Repair performed.",
		PartNames:     []string{"2x Termostato Digital"},
		DurationLabel: "1.5 hours",
	}

	t.Run("returns trimmed text", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, suggestPath, r.URL.Path)

			var body converter.SuggestRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "1.5 hours", body.Duration)
			assert.Equal(t, []string{"2x Termostato Digital"}, body.Parts)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"text":"  Thermostat replaced and tested.  "}`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(resty.New().SetBaseURL(srv.URL))

		text, err := c.Suggest(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Thermostat replaced and tested.", text)
	})

	t.Run("upstream error status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		t.Cleanup(srv.Close)

		c := NewClient(resty.New().SetBaseURL(srv.URL))

		_, err := c.Suggest(context.Background(), req)
		assert.ErrorContains(t, err, "429")
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"text":""}`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(resty.New().SetBaseURL(srv.URL))

		_, err := c.Suggest(context.Background(), req)
		assert.Error(t, err)
	})
}

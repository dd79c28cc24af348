package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
)

func TestFetchRateSheet(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("parses a valid sheet", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2024-01-15", r.URL.Path)
			assert.Equal(t, "EUR", r.URL.Query().Get("base"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"base":"EUR","date":"2024-01-15","rates":{"USD":1.0852,"JPY":158.93}}`))
		}))
		defer server.Close()

		client := NewRateFeedClient(server.URL, "EUR", nil, logger.NewJSONLogger(nil, logger.FatalLevel))
		sheet, err := client.FetchRateSheet(context.Background(), date)

		require.NoError(t, err)
		assert.Equal(t, "EUR", sheet.Base)
		assert.Equal(t, date, sheet.Date)
		assert.Equal(t, 1.0852, sheet.Rates["USD"])
		assert.Equal(t, 158.93, sheet.Rates["JPY"])
	})

	t.Run("rejects non-200 responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewRateFeedClient(server.URL, "EUR", nil, logger.NewJSONLogger(nil, logger.FatalLevel))
		_, err := client.FetchRateSheet(context.Background(), date)
		assert.ErrorContains(t, err, "status 404")
	})

	t.Run("rejects empty sheets", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"EUR","date":"2024-01-15","rates":{}}`))
		}))
		defer server.Close()

		client := NewRateFeedClient(server.URL, "EUR", nil, logger.NewJSONLogger(nil, logger.FatalLevel))
		_, err := client.FetchRateSheet(context.Background(), date)
		assert.ErrorContains(t, err, "no rates")
	})

	t.Run("rejects non-positive quotes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"EUR","date":"2024-01-15","rates":{"USD":-1}}`))
		}))
		defer server.Close()

		client := NewRateFeedClient(server.URL, "EUR", nil, logger.NewJSONLogger(nil, logger.FatalLevel))
		_, err := client.FetchRateSheet(context.Background(), date)
		assert.ErrorContains(t, err, "non-positive rate")
	})
}

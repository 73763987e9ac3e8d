package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/exporting"
)

func testPayload() *exporting.SpreadsheetPayload {
	return &exporting.SpreadsheetPayload{
		Title:     "Análise twitter @empresa_x",
		SheetName: "2025-06-30",
		Header:    []string{"Tipo de Dado", "Valor"},
		Rows:      [][]string{{"Total de Posts", "2"}},
	}
}

func TestSheetsIntegrator_Publish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload exporting.SpreadsheetPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Análise twitter @empresa_x", payload.Title)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sheet_url":"https://docs.google.com/spreadsheets/d/abc123"}`))
	}))
	defer server.Close()

	integrator := New(&config.Config{
		Sheets: config.Sheets{WebhookURL: server.URL},
	})

	url, err := integrator.Publish(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123", url)
}

func TestSheetsIntegrator_Publish_SemWebhook(t *testing.T) {
	integrator := New(&config.Config{})

	_, err := integrator.Publish(context.Background(), testPayload())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSheetsIntegrator_Publish_ErroDoWebhook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota excedida", http.StatusTooManyRequests)
	}))
	defer server.Close()

	integrator := New(&config.Config{
		Sheets: config.Sheets{WebhookURL: server.URL},
	})

	_, err := integrator.Publish(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSheetsIntegrator_Publish_SemURLNaResposta(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	integrator := New(&config.Config{
		Sheets: config.Sheets{WebhookURL: server.URL},
	})

	_, err := integrator.Publish(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "não retornou a URL")
}

package sheets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/exporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotConfigured indica que a exportação para planilhas está desabilitada
var ErrNotConfigured = errors.New("webhook de planilhas não configurado")

// Publisher envia resultados de análise para uma planilha via webhook
type Publisher interface {
	// Publish envia o payload e retorna a URL da planilha criada
	Publish(ctx context.Context, payload *exporting.SpreadsheetPayload) (string, error)
}

type SheetsIntegrator struct {
	cfg        *config.Config
	httpClient *http.Client
}

func New(cfg *config.Config) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Publish envia o payload ao webhook configurado e retorna a URL da planilha
func (s *SheetsIntegrator) Publish(ctx context.Context, payload *exporting.SpreadsheetPayload) (string, error) {
	if s.cfg.Sheets.WebhookURL == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar o payload da planilha")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Sheets.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição do webhook")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("sheets: falha ao chamar o webhook")
		return "", errors.Wrap(err, "erro ao chamar o webhook de planilhas")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta do webhook")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("sheets: webhook retornou erro")
		return "", fmt.Errorf("webhook de planilhas retornou status %d", resp.StatusCode)
	}

	var response struct {
		SheetURL string `json:"sheet_url"`
	}
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar a resposta do webhook")
	}

	if response.SheetURL == "" {
		return "", errors.New("webhook de planilhas não retornou a URL da planilha")
	}

	logrus.WithField("sheet_url", response.SheetURL).Info("sheets: planilha publicada")

	return response.SheetURL, nil
}

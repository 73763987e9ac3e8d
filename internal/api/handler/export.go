package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/exporting"
	"github.com/vfg2006/sns-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sns-analyzer-api/pkg/log"
)

// ExportCSV executa a análise e devolve o resultado como arquivo CSV
func ExportCSV(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("export: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Analyze(r.Context(), &req)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		content, err := exporting.ToCSV(result)
		if err != nil {
			if errors.Is(err, exporting.ErrEmptyResult) {
				apiErrors.WriteError(w, apiErrors.ErrEmptyExport, "Nenhum dado disponível para exportação", nil)
				return
			}

			logger.WithError(err).Error("export: failed to build CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar arquivo CSV", nil)
			return
		}

		fileName := exporting.FileName(result)

		logger.WithFields(log.Fields{
			"platform":  result.Platform,
			"username":  result.Username,
			"file_name": fileName,
		}).Info("export: CSV generated")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))

		if _, err := w.Write(content); err != nil {
			logger.WithError(err).Error("export: failed to write CSV response")
		}
	})
}

// ExportSheets executa a análise e publica o resultado na planilha configurada
func ExportSheets(service analyzing.Analyzer, publisher sheets.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("export: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Analyze(r.Context(), &req)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		payload, err := exporting.ToSpreadsheetPayload(result)
		if err != nil {
			if errors.Is(err, exporting.ErrEmptyResult) {
				apiErrors.WriteError(w, apiErrors.ErrEmptyExport, "Nenhum dado disponível para exportação", nil)
				return
			}

			logger.WithError(err).Error("export: failed to build spreadsheet payload")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar dados da planilha", nil)
			return
		}

		sheetURL, err := publisher.Publish(r.Context(), payload)
		if err != nil {
			if errors.Is(err, sheets.ErrNotConfigured) {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Integração com planilhas não configurada", nil)
				return
			}

			logger.WithError(err).Error("export: failed to publish spreadsheet")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao publicar planilha", nil)
			return
		}

		logger.WithFields(log.Fields{
			"platform":  result.Platform,
			"username":  result.Username,
			"sheet_url": sheetURL,
		}).Info("export: spreadsheet published")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"sheet_url": sheetURL,
		}); err != nil {
			logger.WithError(err).Error("export: failed to encode response")
		}
	})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sns-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sns-analyzer-api/pkg/log"
)

// AnalyzeAccount executa uma análise sob demanda para a conta informada
func AnalyzeAccount(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("analysis: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"platform": req.Platform,
			"username": req.Username,
			"period":   req.Period,
		}).Info("analysis: starting account analysis")

		result, err := service.Analyze(r.Context(), &req)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"platform":    result.Platform,
			"username":    result.Username,
			"total_posts": totalPosts(result),
		}).Info("analysis: analysis completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result.ToResponse()); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func totalPosts(result *domain.AnalysisResult) int {
	if result.Stats == nil {
		return 0
	}
	return result.Stats.TotalPosts
}

// writeAnalysisError converte erros do orquestrador em respostas HTTP padronizadas
func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var invalidErr *analyzing.InvalidRequestError
	if errors.As(err, &invalidErr) {
		logger.WithFields(log.Fields{
			"field": invalidErr.Field,
			"error": err.Error(),
		}).Warn("analysis: invalid request")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, invalidErr.Reason, map[string]any{
			"field": invalidErr.Field,
		})
		return
	}

	var timeoutErr *analyzing.FetchTimeoutError
	if errors.As(err, &timeoutErr) {
		logger.WithField("platform", timeoutErr.Platform).Error("analysis: fetch timed out")
		apiErrors.WriteError(w, apiErrors.ErrFetchTimeout, "Tempo limite excedido ao consultar a rede social", map[string]any{
			"platform": timeoutErr.Platform,
		})
		return
	}

	var fetchErr *analyzing.FetchFailedError
	if errors.As(err, &fetchErr) {
		logger.WithFields(log.Fields{
			"platform": fetchErr.Platform,
			"error":    err.Error(),
		}).Error("analysis: fetch failed")

		apiErrors.WriteError(w, apiErrors.ErrFetchFailed, "Falha ao consultar a rede social", map[string]any{
			"platform": fetchErr.Platform,
		})
		return
	}

	logger.WithError(err).Error("analysis: unexpected error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao executar análise", nil)
}

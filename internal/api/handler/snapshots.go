package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sns-analyzer-api/pkg/log"
	"github.com/vfg2006/sns-analyzer-api/pkg/utils"
)

// TrackAccountRequest representa o corpo da requisição para acompanhar uma conta
type TrackAccountRequest struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
}

// GetAccountSnapshots retorna o histórico de análises armazenado para uma conta
func GetAccountSnapshots(snapshotRepo repository.AnalysisSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		username := httprouter.ParamsFromContext(r.Context()).ByName("username")
		if username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome de usuário não fornecido", nil)
			return
		}

		platform := domain.Platform(r.URL.Query().Get("platform"))
		if !platform.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Plataforma não suportada", map[string]any{
				"platform": string(platform),
			})
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithError(err).Warn("snapshots: invalid start_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithError(err).Warn("snapshots: invalid end_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		// Janela padrão de 30 dias quando as datas não são informadas
		if endDate.IsZero() {
			now := time.Now().UTC()
			endDate = &now
		}
		if startDate.IsZero() {
			defaultStart := endDate.AddDate(0, 0, -30)
			startDate = &defaultStart
		}

		logger.WithFields(log.Fields{
			"platform":   platform,
			"username":   username,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("snapshots: fetching stored analyses")

		snapshots, err := snapshotRepo.GetByDateRange(platform, username, *startDate, *endDate)
		if err != nil {
			logger.WithError(err).Error("snapshots: failed to fetch stored analyses")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de análises", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("snapshots: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListTrackedAccounts lista as contas acompanhadas ativas
func ListTrackedAccounts(accountRepo repository.TrackedAccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := accountRepo.ListActive()
		if err != nil {
			logger.WithError(err).Error("accounts: failed to list tracked accounts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar contas acompanhadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// TrackAccount registra uma conta para sincronização diária de análises
func TrackAccount(accountRepo repository.TrackedAccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req TrackAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("accounts: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		platform := domain.Platform(req.Platform)
		if !platform.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Plataforma não suportada", map[string]any{
				"platform": req.Platform,
			})
			return
		}

		if req.Username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome de usuário não fornecido", nil)
			return
		}

		account := &domain.TrackedAccount{
			Platform: platform,
			Username: req.Username,
			Active:   true,
		}

		if err := accountRepo.SaveOrUpdate(account); err != nil {
			logger.WithError(err).Error("accounts: failed to save tracked account")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar conta acompanhada", nil)
			return
		}

		logger.WithFields(log.Fields{
			"platform": account.Platform,
			"username": account.Username,
		}).Info("accounts: account tracked")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(account); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
		}
	})
}

// UntrackAccount desativa o acompanhamento de uma conta
func UntrackAccount(accountRepo repository.TrackedAccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		if err := accountRepo.Deactivate(accountID); err != nil {
			logger.WithError(err).Error("accounts: failed to deactivate tracked account")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao desativar conta acompanhada", nil)
			return
		}

		logger.WithField("account_id", accountID).Info("accounts: account untracked")

		w.WriteHeader(http.StatusNoContent)
	})
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sns-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sns-analyzer-api/pkg/log"
	"github.com/vfg2006/sns-analyzer-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// Login autentica o usuário do dashboard e devolve o token JWT
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			logger.WithError(err).Warn("auth: login recusado")
			writeLoginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LoginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("auth: falha ao enviar resposta")
		}
	}
}

// GetMe retorna o perfil do usuário dono do token
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := requestClaims(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(claims.UserID)
		if err != nil {
			logger.WithError(err).Error("auth: falha ao carregar perfil")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logger.WithError(err).Error("auth: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ChangePassword troca a senha do próprio usuário autenticado
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		targetID, ok := pathUserID(w, r)
		if !ok {
			return
		}

		claims, ok := requestClaims(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		// Cada usuário só altera a própria senha
		if claims.UserID != targetID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.ChangePassword(targetID, req.CurrentPassword, req.NewPassword); err != nil {
			logger.WithError(err).Warn("auth: troca de senha recusada")
			writePasswordError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// GeneratePassword gera uma senha forte nova para o usuário alvo. A checagem
// de que o solicitante é administrador acontece no usecase.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := requestClaims(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		targetID, ok := pathUserID(w, r)
		if !ok {
			return
		}

		password, err := service.GenerateStrongPassword(claims.UserID, targetID)
		if err != nil {
			logger.WithError(err).Warn("auth: geração de senha recusada")
			writePasswordError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(GeneratePasswordResponse{Password: password}); err != nil {
			logger.WithError(err).Error("auth: falha ao enviar resposta")
		}
	}
}

// requestClaims recupera as claims que o middleware de autenticação colocou
// no contexto
func requestClaims(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// pathUserID extrai o ID numérico do usuário da URL, escrevendo a resposta de
// erro quando ausente ou inválido
func pathUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
		return 0, false
	}

	return id, true
}

// writeLoginError converte falhas de login em respostas padronizadas
func writeLoginError(w http.ResponseWriter, err error) {
	// O usecase devolve AuthError já com o código da API
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
	case errors.Is(err, authenticating.ErrUserLocked):
		apiErrors.WriteError(w, apiErrors.ErrUserLocked, "Usuário bloqueado temporariamente", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}

// writePasswordError mapeia os erros das operações de senha para os códigos da
// API. O usecase ainda devolve alguns erros apenas como mensagem.
func writePasswordError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "não encontrado"):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, msg, nil)
	case msg == "senha atual incorreta":
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, msg, nil)
	case strings.Contains(msg, "administradores"):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, msg, nil)
	case strings.Contains(msg, "a senha deve conter"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, msg, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar senha", nil)
	}
}

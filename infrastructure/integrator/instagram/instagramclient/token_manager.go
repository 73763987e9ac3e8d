package instagramclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	instagramdomain "github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
)

// TokenManager gerencia o token de longa duração da Graph API do Instagram
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

// StartAutoRefresh inicia uma goroutine que renova o token periodicamente.
// Tokens de longa duração do Instagram valem 60 dias, mas renovamos semanalmente
// para nunca chegar perto da expiração.
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.Errorf("Erro na renovação inicial do token do Instagram: %v", err)
	}

	refreshInterval := 7 * 24 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do Instagram")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tenta novamente em um intervalo mais curto
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// RefreshToken renova o token de longa duração
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if !tm.cfg.Instagram.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Instagram.TokenExpiresAt) < 1*time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	tokenResponse, err := RefreshLongLivedToken(tm.cfg.Instagram.AccessToken, tm.cfg.Instagram.BaseURL)
	if err != nil {
		errMsg := err.Error()

		if strings.Contains(errMsg, "Error validating access token") ||
			strings.Contains(errMsg, "Session has expired") ||
			strings.Contains(errMsg, "The session has been invalidated") {
			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
			return fmt.Errorf("o token de acesso expirou e não pode ser renovado automaticamente. "+
				"É necessário reautorizar o aplicativo através do processo de autenticação OAuth: %w", err)
		}

		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao renovar token de longa duração: %w", err)
	}

	oldToken := tm.cfg.Instagram.AccessToken
	tm.cfg.Instagram.AccessToken = tokenResponse.AccessToken
	tm.cfg.Instagram.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	if oldToken != tm.cfg.Instagram.AccessToken {
		logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
			tm.cfg.Instagram.TokenExpiresAt.Format(time.RFC3339))
	} else {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na Graph API")
	}

	return nil
}

// EnsureValidToken verifica se o token atual é válido e o renova se estiver
// perto de expirar
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.Instagram.AccessToken == "" {
		return fmt.Errorf("token do Instagram não configurado")
	}

	if !tm.cfg.Instagram.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Instagram.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken()
	}

	return nil
}

// ParseErrorResponse tenta parsear um erro da Graph API
func ParseErrorResponse(body []byte) (*instagramdomain.ErrorResponse, error) {
	var errorResp instagramdomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(body)
}

// handleErrorResponse processa erros nas respostas da API
func (tm *TokenManager) handleErrorResponse(body []byte) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)

	if parseErr == nil && errorResp.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela Graph API. Código: %d, Subcódigo: %d",
			errorResp.Error.Code, errorResp.Error.ErrorSubcode)

		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			if strings.Contains(refreshErr.Error(), "necessário reautorizar") {
				return nil, fmt.Errorf("token expirou permanentemente e requer reautorização manual: %w", refreshErr)
			}
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}

		return nil, errTokenRefreshed
	}

	return nil, fmt.Errorf("erro na resposta da Graph API: %s", string(body))
}

// errTokenRefreshed sinaliza que a chamada deve ser repetida com o novo token
var errTokenRefreshed = fmt.Errorf("token expirado e renovado, por favor tente novamente")

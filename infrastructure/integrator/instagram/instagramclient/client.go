package instagramclient

import (
	"context"
	"net/http"

	instagramdomain "github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// Client encapsula as chamadas à Graph API do Instagram
type Client interface {
	// GetProfile busca a conta autenticada, com contagem de seguidores
	GetProfile(ctx context.Context) (*instagramdomain.Profile, error)

	// GetUserMedia busca as mídias publicadas dentro do período, paginando
	// pelos cursores da API
	GetUserMedia(ctx context.Context, period domain.Period) ([]instagramdomain.Media, error)

	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type InstagramClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &InstagramClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{},
	}
}

// RefreshToken renova o token de longa duração
func (c *InstagramClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *InstagramClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *InstagramClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}

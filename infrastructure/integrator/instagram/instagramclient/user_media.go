package instagramclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	instagramdomain "github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// mediaPerPage é o tamanho de página usado na listagem de mídias
const mediaPerPage = 50

// maxMediaPages limita a paginação para não varrer contas inteiras
const maxMediaPages = 10

func (c *InstagramClient) GetProfile(ctx context.Context) (*instagramdomain.Profile, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,username,followers_count,media_count")
	params.Add("access_token", c.Cfg.Instagram.AccessToken)

	requestURL := fmt.Sprintf("%s/me?%s", c.Cfg.Instagram.BaseURL, params.Encode())

	body, err := c.doRequest(ctx, requestURL)
	if err != nil {
		// Se o token foi renovado no meio do caminho, repete a chamada
		if errors.Is(err, errTokenRefreshed) {
			return c.GetProfile(ctx)
		}
		return nil, err
	}

	var profile instagramdomain.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar o perfil do Instagram")
		return nil, err
	}

	return &profile, nil
}

func (c *InstagramClient) GetUserMedia(ctx context.Context, period domain.Period) ([]instagramdomain.Media, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,caption,media_type,timestamp,like_count,comments_count,permalink")
	params.Add("limit", strconv.Itoa(mediaPerPage))
	params.Add("since", strconv.FormatInt(period.Start.Unix(), 10))
	params.Add("until", strconv.FormatInt(period.End.Unix(), 10))
	params.Add("access_token", c.Cfg.Instagram.AccessToken)

	requestURL := fmt.Sprintf("%s/me/media?%s", c.Cfg.Instagram.BaseURL, params.Encode())

	media := make([]instagramdomain.Media, 0, mediaPerPage)

	for page := 0; page < maxMediaPages && requestURL != ""; page++ {
		body, err := c.doRequest(ctx, requestURL)
		if err != nil {
			if errors.Is(err, errTokenRefreshed) {
				return c.GetUserMedia(ctx, period)
			}
			return nil, err
		}

		var response instagramdomain.MediaPage
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar as mídias do Instagram")
			return nil, err
		}

		media = append(media, response.Data...)

		requestURL = ""
		if response.Paging != nil {
			requestURL = response.Paging.Next
		}
	}

	logrus.WithField("media", len(media)).Debug("instagram: mídias carregadas")

	return media, nil
}

// doRequest executa a chamada e delega o tratamento de erros e de token
// expirado ao gerenciador de tokens
func (c *InstagramClient) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

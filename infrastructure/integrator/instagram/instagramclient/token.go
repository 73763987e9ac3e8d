package instagramclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da Graph API ao renovar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RefreshLongLivedToken renova um token de longa duração do Instagram. O
// token precisa ter ao menos 24 horas de vida e não pode estar expirado.
func RefreshLongLivedToken(token, baseURL string) (*TokenResponse, error) {
	if token == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	endpoint := fmt.Sprintf("%s/refresh_access_token", baseURL)

	params := url.Values{}
	params.Add("grant_type", "ig_refresh_token")
	params.Add("access_token", token)

	requestURL := endpoint + "?" + params.Encode()

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao renovar token de longa duração: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro renovando token de longa duração. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao renovar token de longa duração. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração renovado com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CheckTokenValidity verifica se o token é válido consultando o /me endpoint
func CheckTokenValidity(token, apiURL string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("token não pode ser vazio")
	}

	requestURL := fmt.Sprintf("%s/me?fields=id,username&access_token=%s", apiURL, token)

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Get(requestURL)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logrus.Warnf("Token inválido ou expirado. Status: %d, Corpo: %s", resp.StatusCode, string(body))
		return false, nil
	}

	return true, nil
}

// CalculateTokenExpiration calcula a data de expiração com base no tempo de
// expiração em segundos, antecipada em um dia para renovar antes do prazo
func CalculateTokenExpiration(expiresIn int64) time.Time {
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return time.Now().Add(time.Duration(safeExpiresIn) * time.Second)
}

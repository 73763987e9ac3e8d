package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sns-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sns-analyzer-api/pkg/middleware"
)

// stubAuthenticator cobre apenas os métodos exercitados pelos handlers
type stubAuthenticator struct {
	authenticating.Authenticator
	loginFn            func(email, password string) (string, error)
	changePasswordFn   func(userID int, currentPassword, newPassword string) error
	generatePasswordFn func(requestUserID, targetUserID int) (string, error)
}

func (s *stubAuthenticator) LoginUser(email, password string) (string, error) {
	return s.loginFn(email, password)
}

func (s *stubAuthenticator) ChangePassword(userID int, currentPassword, newPassword string) error {
	return s.changePasswordFn(userID, currentPassword, newPassword)
}

func (s *stubAuthenticator) GenerateStrongPassword(requestUserID, targetUserID int) (string, error) {
	return s.generatePasswordFn(requestUserID, targetUserID)
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func withClaims(r *http.Request, claims *domain.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
	return r.WithContext(ctx)
}

func withPathID(r *http.Request, id string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: id}}
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestLogin_Sucesso(t *testing.T) {
	service := &stubAuthenticator{
		loginFn: func(email, password string) (string, error) {
			assert.Equal(t, "ana@empresa.com", email)
			return "token-jwt", nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/login",
		strings.NewReader(`{"email":"ana@empresa.com","password":"Segredo#1"}`))
	rec := httptest.NewRecorder()

	Login(service)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "token-jwt", resp.Token)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	service := &stubAuthenticator{
		loginFn: func(email, password string) (string, error) {
			return "", authenticating.NewUserAuthError(
				authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, "Senha incorreta")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/login",
		strings.NewReader(`{"email":"ana@empresa.com","password":"errada"}`))
	rec := httptest.NewRecorder()

	Login(service)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
}

func TestLogin_CorpoInvalido(t *testing.T) {
	service := &stubAuthenticator{}

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	Login(service)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
}

func TestChangePassword_OutroUsuario(t *testing.T) {
	service := &stubAuthenticator{
		changePasswordFn: func(userID int, currentPassword, newPassword string) error {
			t.Fatal("o usecase não deveria ser chamado")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/v1/users/7/password",
		strings.NewReader(`{"current_password":"a","new_password":"b"}`))
	req = withPathID(req, "7")
	req = withClaims(req, &domain.Claims{UserID: 3})
	rec := httptest.NewRecorder()

	ChangePassword(service)(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
}

func TestChangePassword_SenhaAtualIncorreta(t *testing.T) {
	service := &stubAuthenticator{
		changePasswordFn: func(userID int, currentPassword, newPassword string) error {
			assert.Equal(t, 7, userID)
			return errors.New("senha atual incorreta")
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/v1/users/7/password",
		strings.NewReader(`{"current_password":"errada","new_password":"Nova#Senha1"}`))
	req = withPathID(req, "7")
	req = withClaims(req, &domain.Claims{UserID: 7})
	rec := httptest.NewRecorder()

	ChangePassword(service)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
}

func TestGeneratePassword_SomenteAdmin(t *testing.T) {
	service := &stubAuthenticator{
		generatePasswordFn: func(requestUserID, targetUserID int) (string, error) {
			return "", errors.New("apenas administradores podem gerar novas senhas")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/users/7/password/generate", nil)
	req = withPathID(req, "7")
	req = withClaims(req, &domain.Claims{UserID: 3, UserRoleID: middleware.RoleClient})
	rec := httptest.NewRecorder()

	GeneratePassword(service)(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
}

func TestGeneratePassword_Sucesso(t *testing.T) {
	service := &stubAuthenticator{
		generatePasswordFn: func(requestUserID, targetUserID int) (string, error) {
			assert.Equal(t, 1, requestUserID)
			assert.Equal(t, 7, targetUserID)
			return "Nova#Senha123", nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/users/7/password/generate", nil)
	req = withPathID(req, "7")
	req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
	rec := httptest.NewRecorder()

	GeneratePassword(service)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GeneratePasswordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Nova#Senha123", resp.Password)
}

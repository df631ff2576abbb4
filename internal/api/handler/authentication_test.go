package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating/mocks"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// withClaims injeta as claims no contexto do request, como faz o AuthMiddleware
func withClaims(r *http.Request, claims *domain.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

// withRouteID injeta o parâmetro :id da rota no contexto do request
func withRouteID(r *http.Request, id string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: id}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestLogin(t *testing.T) {
	t.Run("Token emitido devolve os workspaces das claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser("ana@acme.io", "s3nh4-forte").Return("tok-1", nil)
		service.EXPECT().ValidateToken("tok-1").Return(&domain.Claims{
			UserID:         7,
			UserWorkspaces: []string{"ws-1", "ws-2"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@acme.io","password":"s3nh4-forte"}`))
		rec := httptest.NewRecorder()

		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response LoginResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "tok-1", response.Token)
		assert.Equal(t, []string{"ws-1", "ws-2"}, response.Workspaces)
	})

	t.Run("Credenciais inválidas respondem 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser("ana@acme.io", "errada").Return("", authenticating.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@acme.io","password":"errada"}`))
		rec := httptest.NewRecorder()

		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
	})

	t.Run("Usuário bloqueado responde 403 com o código próprio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser("ana@acme.io", "s3nh4-forte").Return("", authenticating.ErrUserLocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@acme.io","password":"s3nh4-forte"}`))
		rec := httptest.NewRecorder()

		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrUserLocked, decodeAPIError(t, rec).Code)
	})

	t.Run("Corpo inválido responde 400 sem consultar o serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestGetMe(t *testing.T) {
	t.Run("Sem claims no contexto responde 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		rec := httptest.NewRecorder()

		GetMe(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
	})

	t.Run("Perfil e workspaces do token na resposta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().GetUserProfile(7).Return(&domain.User{ID: 7, Name: "Ana", Email: "ana@acme.io"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req = withClaims(req, &domain.Claims{UserID: 7, UserWorkspaces: []string{"ws-1"}})
		rec := httptest.NewRecorder()

		GetMe(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response MeResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Ana", response.User.Name)
		assert.Equal(t, []string{"ws-1"}, response.Workspaces)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Troca de senha de outro usuário responde 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/9/password", strings.NewReader(`{"current_password":"a","new_password":"b"}`))
		req = withClaims(req, &domain.Claims{UserID: 7})
		req = withRouteID(req, "9")
		rec := httptest.NewRecorder()

		ChangePassword(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("Senha atual incorreta responde 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().ChangePassword(7, "errada", "Nova@Senha1").Return(errors.New("senha atual incorreta"))

		req := httptest.NewRequest(http.MethodPut, "/v1/users/7/password", strings.NewReader(`{"current_password":"errada","new_password":"Nova@Senha1"}`))
		req = withClaims(req, &domain.Claims{UserID: 7})
		req = withRouteID(req, "7")
		rec := httptest.NewRecorder()

		ChangePassword(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
	})

	t.Run("Troca válida responde 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().ChangePassword(7, "Atual@Senha1", "Nova@Senha1").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/7/password", strings.NewReader(`{"current_password":"Atual@Senha1","new_password":"Nova@Senha1"}`))
		req = withClaims(req, &domain.Claims{UserID: 7})
		req = withRouteID(req, "7")
		rec := httptest.NewRecorder()

		ChangePassword(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGeneratePassword(t *testing.T) {
	t.Run("Solicitante sem privilégio de administrador responde 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().GenerateStrongPassword(7, 9).Return("", authenticating.ErrNoAdminPrivileges)

		req := httptest.NewRequest(http.MethodPost, "/v1/users/9/generate-password", nil)
		req = withClaims(req, &domain.Claims{UserID: 7})
		req = withRouteID(req, "9")
		rec := httptest.NewRecorder()

		GeneratePassword(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("Senha gerada volta na resposta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().GenerateStrongPassword(1, 9).Return("Xk9@pL2!mQ5w", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users/9/generate-password", nil)
		req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
		req = withRouteID(req, "9")
		rec := httptest.NewRecorder()

		GeneratePassword(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response GeneratePasswordResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Xk9@pL2!mQ5w", response.Password)
	})
}

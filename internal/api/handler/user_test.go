package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating/mocks"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegisterUser(t *testing.T) {
	t.Run("Campos obrigatórios ausentes respondem 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"name":"Ana","email":"ana@acme.io"}`))
		rec := httptest.NewRecorder()

		RegisterUser(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("Email já cadastrado responde com o código de duplicidade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().CreateUser(gomock.Any()).Return(nil, authenticating.ErrUserAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"name":"Ana","email":"ana@acme.io","password":"S3nh4@forte"}`))
		rec := httptest.NewRecorder()

		RegisterUser(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, decodeAPIError(t, rec).Code)
	})

	t.Run("Usuário criado volta sem o hash da senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "S3nh4@forte", user.PasswordHash)
			created := *user
			created.ID = 12
			created.PasswordHash = "$2a$10$hash"
			return &created, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"name":"Ana","lastname":"Lima","email":"ana@acme.io","password":"S3nh4@forte"}`))
		rec := httptest.NewRecorder()

		RegisterUser(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var created domain.User
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
		assert.Equal(t, 12, created.ID)
		assert.Equal(t, "ana@acme.io", created.Email)
		assert.Empty(t, created.PasswordHash)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("Não administrador responde 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		req = withClaims(req, &domain.Claims{UserID: 7, UserRoleID: 2})
		rec := httptest.NewRecorder()

		ListUsers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("Administrador recebe a lista", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().ListUser().Return([]*domain.User{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bia"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
		rec := httptest.NewRecorder()

		ListUsers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var users []*domain.User
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
		assert.Len(t, users, 2)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Alteração do papel de acesso por não administrador responde 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/7", strings.NewReader(`{"role_id":1}`))
		req = withClaims(req, &domain.Claims{UserID: 7, UserRoleID: 2})
		req = withRouteID(req, "7")
		rec := httptest.NewRecorder()

		UpdateUser(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("Usuário não edita o perfil de outro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/9", strings.NewReader(`{"name":"Novo"}`))
		req = withClaims(req, &domain.Claims{UserID: 7, UserRoleID: 2})
		req = withRouteID(req, "9")
		rec := httptest.NewRecorder()

		UpdateUser(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Administrador atualiza outro usuário com o ID da rota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(req *domain.UpdateUserRequest) error {
			assert.Equal(t, 9, req.ID)
			assert.Equal(t, "Novo", *req.Name)
			return nil
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/users/9", strings.NewReader(`{"name":"Novo"}`))
		req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
		req = withRouteID(req, "9")
		rec := httptest.NewRecorder()

		UpdateUser(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

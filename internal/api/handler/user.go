package handler

import (
	"encoding/json"
	"net/http"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RegisterUserRequest é o corpo aceito pelo cadastro de usuários
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// isAdmin indica se as claims pertencem a um administrador
func isAdmin(claims *domain.Claims) bool {
	return claims.UserRoleID == middleware.RoleAdmin
}

// RegisterUser cadastra um novo usuário. A conta nasce inativa e sem vínculo
// com workspaces até um administrador liberá-la.
func RegisterUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterUser")

		var req RegisterUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		created, err := service.CreateUser(&domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
		})
		if err != nil {
			logrus.WithError(err).WithField("email", req.Email).Error("Erro ao cadastrar usuário")
			writeRegisterError(w, err)
			return
		}

		// O hash nunca volta na resposta
		created.PasswordHash = ""
		writeJSON(w, http.StatusCreated, created)
	}
}

// writeRegisterError traduz os erros do cadastro para códigos da API
func writeRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrUserAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário", nil)
	}
}

// GetUser retorna o perfil de um usuário pelo ID da rota
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRoute(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		user, err := service.GetUserProfile(userID)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
				return
			}

			logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar usuário")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ListUsers lista todos os usuários cadastrados. Restrita a administradores.
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok || !isAdmin(claims) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem listar usuários", nil)
			return
		}

		users, err := service.ListUser()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser aplica alterações parciais a um usuário. Cada usuário edita o
// próprio perfil; administradores editam qualquer um e são os únicos que
// mudam o papel de acesso.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		userID, err := userIDFromRoute(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		claims, ok := claimsFromRequest(r)
		if !ok || (claims.UserID != userID && !isAdmin(claims)) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = userID

		if req.RoleID != nil && !isAdmin(claims) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar o papel de acesso", nil)
			return
		}

		if err := service.UpdateUser(&req); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("Erro ao atualizar usuário")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário", nil)
			return
		}

		writeJSON(w, http.StatusOK, nil)
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LoginRequest é o corpo aceito pelo endpoint de login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse devolve o token de sessão e os workspaces que ele autoriza,
// para o cliente montar o seletor de workspace sem uma segunda chamada
type LoginResponse struct {
	Token      string   `json:"token"`
	Workspaces []string `json:"workspaces"`
}

// MeResponse agrega o perfil do usuário autenticado com os workspaces do token
type MeResponse struct {
	User       *domain.User `json:"user"`
	Workspaces []string     `json:"workspaces"`
}

// ChangePasswordRequest é o corpo aceito pela troca da própria senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// GeneratePasswordResponse devolve a senha forte gerada para o usuário alvo
type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// claimsFromRequest extrai as claims do token injetadas pelo AuthMiddleware
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// userIDFromRoute converte o parâmetro :id da rota em um ID numérico de usuário
func userIDFromRoute(r *http.Request) (int, error) {
	return strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
}

// writeJSON serializa a resposta com o content-type e status informados
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

// Login autentica o usuário e devolve o token com os workspaces autorizados
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			writeLoginError(w, err)
			return
		}

		// Os workspaces vinculados viajam nas claims do próprio token
		response := LoginResponse{Token: token}
		if claims, err := service.ValidateToken(token); err == nil {
			response.Workspaces = claims.UserWorkspaces
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// writeLoginError traduz os erros do fluxo de login para códigos da API
func writeLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"user_id": authErr.UserID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserLocked):
		apiErrors.WriteError(w, apiErrors.ErrUserLocked, "Usuário bloqueado temporariamente", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}

// GetMe retorna o perfil do usuário autenticado junto com os workspaces que o
// token dele autoriza
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(claims.UserID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", claims.UserID).Error("Erro ao carregar perfil do usuário")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			User:       user,
			Workspaces: claims.UserWorkspaces,
		})
	}
}

// ChangePassword permite que o usuário autenticado troque a própria senha.
// Reset de senha de terceiros passa pelo endpoint de geração de senha.
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		targetUserID, err := userIDFromRoute(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.ChangePassword(targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			logrus.WithError(err).WithField("user_id", targetUserID).Error("Erro ao alterar senha")
			writePasswordError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, nil)
	}
}

// GeneratePassword gera uma senha forte para o usuário alvo. A checagem de
// administrador acontece no serviço, sobre o usuário solicitante.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GeneratePassword")

		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		targetUserID, err := userIDFromRoute(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		newPassword, err := service.GenerateStrongPassword(claims.UserID, targetUserID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"request_user_id": claims.UserID,
				"target_user_id":  targetUserID,
			}).Error("Erro ao gerar senha para usuário")
			writePasswordError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: newPassword})
	}
}

// writePasswordError traduz os erros dos fluxos de senha para códigos da API
func writePasswordError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, authenticating.ErrNoAdminPrivileges):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, msg, nil)

	case strings.Contains(msg, "não encontrado"):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, msg, nil)

	case msg == "senha atual incorreta":
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, msg, nil)

	case strings.Contains(msg, "a senha deve conter"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, msg, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar senha", nil)
	}
}

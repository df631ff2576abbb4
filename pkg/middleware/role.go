package middleware

import (
	"net/http"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Constantes para identificar os roles
const (
	RoleAdmin  = 1
	RoleMember = 2
	RoleViewer = 3
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles.
// allowedRoles é a lista de IDs de roles com permissão para acessar a rota.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrMember permite acesso para administradores e membros
func AdminOrMember() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleMember})
}

// AllRoles permite acesso para qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleMember, RoleViewer})
}

// WorkspaceAccess garante que o usuário autenticado tem vínculo com o workspace
// presente na rota. Administradores enxergam todos os workspaces.
func WorkspaceAccess(workspaceIDFromRequest func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			workspaceID := workspaceIDFromRequest(r)
			if userClaims.UserRoleID != RoleAdmin && !userClaims.HasWorkspace(workspaceID) {
				logrus.Warningf("Acesso negado ao workspace %s para usuário ID=%d", workspaceID, userClaims.UserID)
				apiErrors.WriteError(w, apiErrors.ErrWorkspaceForbidden, "Você não tem acesso a este workspace", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	Workspaces   []string   `json:"workspaces"` // IDs dos workspaces vinculados
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UpdateUserRequest carrega as alterações parciais de um usuário.
// Campos nil são mantidos como estão.
type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name,omitempty"`
	Lastname *string `json:"lastname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	RoleID   *int    `json:"role_id,omitempty"`
	Deleted  *bool   `json:"deleted,omitempty"`
}

type Claims struct {
	UserID         int
	UserName       string
	UserLastname   string
	UserEmail      string
	UserActive     bool
	UserRoleID     int
	UserWorkspaces []string
	jwt.RegisteredClaims
}

// HasWorkspace verifica se o usuário está vinculado ao workspace informado
func (c *Claims) HasWorkspace(workspaceID string) bool {
	for _, id := range c.UserWorkspaces {
		if id == workspaceID {
			return true
		}
	}
	return false
}

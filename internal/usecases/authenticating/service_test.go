package authenticating

import (
	"testing"

	"github.com/founderhq/founderhq-api/infrastructure/repository/mocks"
	"github.com/founderhq/founderhq-api/internal/config"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: "test_secret"},
	}

	return service, userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Dados obrigatórios ausentes retornam erro", func(t *testing.T) {
		service, _ := newAuthService(t)

		_, err := service.CreateUser(&domain.User{Email: "a@b.com"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Email já cadastrado retorna erro", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@founderhq.io").
			Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "Ana@FounderHQ.io ",
			PasswordHash: "Senha@Forte1",
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Usuário criado inativo com senha com hash e papel padrão", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("ana@founderhq.io").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "ana@founderhq.io", user.Email)
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				assert.NotEqual(t, "Senha@Forte1", user.PasswordHash)
				user.ID = 42
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "Ana@FounderHQ.io",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, user.ID)
	})
}

func TestService_LoginUser(t *testing.T) {
	t.Run("Usuário inexistente retorna erro", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("x@y.com").Return(nil, nil)

		_, err := service.LoginUser("x@y.com", "qualquer")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Usuário desativado retorna erro", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("ana@founderhq.io").Return(&domain.User{
			ID:           1,
			Active:       false,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
		}, nil)

		_, err := service.LoginUser("ana@founderhq.io", "Senha@Forte1")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Senha incorreta retorna erro de credenciais", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("ana@founderhq.io").Return(&domain.User{
			ID:           1,
			Active:       true,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
		}, nil)

		_, err := service.LoginUser("ana@founderhq.io", "errada")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Login com sucesso gera token com os workspaces nas claims", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("ana@founderhq.io").Return(&domain.User{
			ID:           1,
			Name:         "Ana",
			Active:       true,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
		}, nil)
		userRepo.EXPECT().GetUserWorkspaces(1).Return([]string{"ws-1", "ws-2"}, nil)

		token, err := service.LoginUser("ana@founderhq.io", "Senha@Forte1")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, []string{"ws-1", "ws-2"}, claims.UserWorkspaces)
		assert.True(t, claims.HasWorkspace("ws-2"))
		assert.False(t, claims.HasWorkspace("ws-3"))
	})
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newAuthService(t)

	t.Run("Token malformado retorna erro", func(t *testing.T) {
		claims, err := service.ValidateToken("nao-e-um-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newAuthService(t)

	tests := []struct {
		name     string
		password string
		hasError bool
	}{
		{name: "Senha forte passa na validação", password: "Senha@Forte1", hasError: false},
		{name: "Senha curta demais", password: "S@f1", hasError: true},
		{name: "Sem maiúscula", password: "senha@forte1", hasError: true},
		{name: "Sem minúscula", password: "SENHA@FORTE1", hasError: true},
		{name: "Sem número", password: "Senha@Forte", hasError: true},
		{name: "Sem caractere especial", password: "SenhaForte1", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ManageUserWorkspaces(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1}, nil)
	userRepo.EXPECT().GetUserWorkspaces(1).Return([]string{"ws-1", "ws-2"}, nil)

	// ws-2 sai, ws-3 entra, ws-1 permanece intocado
	userRepo.EXPECT().UnlinkUserWorkspace(1, "ws-2").Return(nil)
	userRepo.EXPECT().LinkUserWorkspace(1, "ws-3").Return(nil)

	err := service.ManageUserWorkspaces(1, []string{"ws-1", "ws-3"})
	assert.NoError(t, err)
}

func TestService_GenerateStrongPassword(t *testing.T) {
	t.Run("Solicitante sem papel de administrador é recusado", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: 2}, nil)

		_, err := service.GenerateStrongPassword(2, 3)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Administrador gera senha forte e atualiza o alvo", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		userRepo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3, RoleID: 2}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(1, 3)

		assert.NoError(t, err)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}

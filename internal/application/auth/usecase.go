package auth

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/application/dto"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
	"github.com/jhoicas/pos-gadget-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales del usuario provisionado por defecto.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: login, cambio de contraseña y candado del dashboard.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Username: user.Username},
	}, nil
}

// ChangePassword verifica la contraseña actual y persiste el nuevo hash bcrypt.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(ctx, userID, string(hash))
}

// UnlockDashboard valida el candado secundario del panel de métricas.
// Si el usuario nunca configuró la contraseña del dashboard devuelve ErrInvalidPayload.
func (uc *AuthUseCase) UnlockDashboard(ctx context.Context, userID int64, password string) error {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.DashboardPasswordHash == nil || *user.DashboardPasswordHash == "" {
		return domain.ErrInvalidPayload
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.DashboardPasswordHash), []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// ChangeDashboardPassword establece o reemplaza el candado del dashboard.
func (uc *AuthUseCase) ChangeDashboardPassword(ctx context.Context, userID int64, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdateDashboardPasswordHash(ctx, userID, string(hash))
}

// ProvisionAdmin recrea el usuario admin por defecto (borra el existente si lo hay).
// Lo usan el comando de seed y la ruta de setup.
func (uc *AuthUseCase) ProvisionAdmin(ctx context.Context) (*dto.UserResponse, error) {
	if err := uc.userRepo.DeleteByUsername(ctx, DefaultAdminUsername); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.Create(ctx, &entity.User{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username}, nil
}

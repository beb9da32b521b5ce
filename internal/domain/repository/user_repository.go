package repository

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	UpdateDashboardPasswordHash(ctx context.Context, id int64, hash string) error
	DeleteByUsername(ctx context.Context, username string) error
}

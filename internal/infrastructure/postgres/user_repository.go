package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario; el id lo asigna la secuencia de la tabla.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO users (username, password_hash, dashboard_password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.DashboardPasswordHash,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, storageErr("insert user", err)
	}
	return user, nil
}

// FindByID obtiene un usuario por id.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		SELECT id, username, password_hash, dashboard_password_hash
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.DashboardPasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get user by id", err)
	}
	return &u, nil
}

// FindByUsername obtiene un usuario por username (sensible a mayúsculas).
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		SELECT id, username, password_hash, dashboard_password_hash
		FROM users WHERE username = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.DashboardPasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get user by username", err)
	}
	return &u, nil
}

// UpdatePasswordHash reemplaza el hash de la contraseña de login.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	_, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return storageErr("update password hash", err)
	}
	return nil
}

// UpdateDashboardPasswordHash reemplaza el hash del candado del dashboard.
func (r *UserRepo) UpdateDashboardPasswordHash(ctx context.Context, id int64, hash string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	_, err := r.q.Exec(ctx,
		`UPDATE users SET dashboard_password_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return storageErr("update dashboard password hash", err)
	}
	return nil
}

// DeleteByUsername elimina un usuario por username (usado al reprovisionar el admin).
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	_, err := r.q.Exec(ctx,
		`DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return storageErr("delete user", err)
	}
	return nil
}

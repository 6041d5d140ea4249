package repository

import (
	"context"

	"schnittwerk-api/internal/domain/user"
	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.Querier
}

func NewUserRepository(q db.Querier) *UserRepository {
	return &UserRepository{db: q}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, name, phone, marketing_consent, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		u.Name().Value(), u.Phone(), u.MarketingConsent(), u.IsActive(),
	)
	if err != nil {
		return wrapQueryErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, role, name, marketing_consent, is_active
		FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, role, name, marketing_consent, is_active
		FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, sql string, arg any) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role,
		&snap.Name, &snap.MarketingConsent, &snap.IsActive,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find user", err)
	}
	return &snap, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to update last login", err)
	}
	return nil
}

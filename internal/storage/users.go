package storage

import (
	"context"

	"github.com/google/uuid"

	"buntudelice/internal/domain"
)

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, LOWER($2), $3, $4)
		RETURNING id, created_at
	`, user.Name, user.Email, user.Password, user.Role).
		Scan(&user.ID, &user.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, created_at
		FROM users WHERE email = LOWER($1)
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	return user, err
}

func (r *PostgresRepository) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, created_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	return user, err
}

func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE email = LOWER($1)`, email).Scan(&count)
	return count > 0, err
}

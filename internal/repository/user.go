package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	ExistAll(ctx context.Context, ids []string) (bool, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, email, name, password_hash) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT id, email, name, password_hash FROM users WHERE email = ?`

	return that.findOne(ctx, query, email)
}

func (that *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, email, name, password_hash FROM users WHERE id = ?`

	return that.findOne(ctx, query, id)
}

// ExistAll - reports whether every given id belongs to a registered user.
func (that *userRepository) ExistAll(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf(`SELECT COUNT(DISTINCT id) FROM users WHERE id IN (%s)`, placeholders)

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	var count int
	if err := that.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("can't count users: %w", err)
	}

	return count == len(ids), nil
}

func (that *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User

	err := that.conn.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}

package auth

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore is the storage-access interface the auth service depends on.
// A pgx-backed implementation is used in production; tests substitute fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

type pgxUserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a UserStore backed by the given connection pool.
func NewUserStore(pool *pgxpool.Pool) UserStore {
	return &pgxUserStore{pool: pool}
}

func (s *pgxUserStore) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, username, name, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at, updated_at`
	return s.pool.QueryRow(ctx, query,
		user.ID, user.Username, nullable(user.Name), user.HashedPassword,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (s *pgxUserStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, name, about, password, created_at, updated_at
	          FROM users WHERE username = $1`
	var user User
	var name, about sql.NullString
	err := s.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &name, &about,
		&user.HashedPassword, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Name = name.String
	user.About = about.String
	return &user, nil
}

// nullable maps an empty string to NULL so optional columns stay NULL in
// storage while payloads always present them as "".
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

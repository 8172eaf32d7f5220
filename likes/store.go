package likes

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the storage-access interface for likes.
type Store interface {
	// PostExists reports whether the target post is present.
	PostExists(ctx context.Context, postID string) (bool, error)
	// FindByPostAndUser returns the like a user holds on a post, or
	// pgx.ErrNoRows when there is none.
	FindByPostAndUser(ctx context.Context, postID, userID string) (*Like, error)
	CreateLike(ctx context.Context, like *Like) error
	DeleteLike(ctx context.Context, id string) error
	ListLikesByPost(ctx context.Context, postID string, skip, take int) ([]Like, error)
}

type pgxStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgxStore{pool: pool}
}

func (s *pgxStore) PostExists(ctx context.Context, postID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists)
	return exists, err
}

func (s *pgxStore) FindByPostAndUser(ctx context.Context, postID, userID string) (*Like, error) {
	query := `SELECT id, post_id, user_id, created_at, updated_at
	          FROM likes WHERE post_id = $1 AND user_id = $2`
	var l Like
	err := s.pool.QueryRow(ctx, query, postID, userID).Scan(
		&l.ID, &l.PostID, &l.UserID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *pgxStore) CreateLike(ctx context.Context, like *Like) error {
	query := `INSERT INTO likes (id, post_id, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING created_at, updated_at`
	return s.pool.QueryRow(ctx, query, like.ID, like.PostID, like.UserID).
		Scan(&like.CreatedAt, &like.UpdatedAt)
}

func (s *pgxStore) DeleteLike(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	return err
}

func (s *pgxStore) ListLikesByPost(ctx context.Context, postID string, skip, take int) ([]Like, error) {
	query := `SELECT l.id, l.post_id, l.user_id, l.created_at, l.updated_at, u.id, u.username
	          FROM likes l JOIN users u ON u.id = l.user_id
	          WHERE l.post_id = $1
	          ORDER BY l.created_at DESC
	          OFFSET $2 LIMIT $3`
	rows, err := s.pool.Query(ctx, query, postID, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []Like
	for rows.Next() {
		var l Like
		var a Author
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt, &l.UpdatedAt, &a.ID, &a.Username); err != nil {
			return nil, err
		}
		l.User = &a
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

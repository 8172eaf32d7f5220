package comments

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the storage-access interface for comments.
type Store interface {
	// PostExists reports whether the target post is present.
	PostExists(ctx context.Context, postID string) (bool, error)
	CreateComment(ctx context.Context, comment *Comment) error
	GetCommentByID(ctx context.Context, id string) (*Comment, error)
	UpdateCommentContent(ctx context.Context, id, content string) error
	DeleteComment(ctx context.Context, id string) error
	ListCommentsByPost(ctx context.Context, postID string, skip, take int) ([]Comment, error)
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

func (s *pgxStore) CreateComment(ctx context.Context, comment *Comment) error {
	query := `INSERT INTO comments (id, content, post_id, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at, updated_at`
	return s.pool.QueryRow(ctx, query, comment.ID, comment.Content, comment.PostID, comment.UserID).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (s *pgxStore) GetCommentByID(ctx context.Context, id string) (*Comment, error) {
	query := `SELECT id, content, post_id, user_id, created_at, updated_at
	          FROM comments WHERE id = $1`
	var c Comment
	var postID sql.NullString
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Content, &postID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if postID.Valid {
		c.PostID = &postID.String
	}
	return &c, nil
}

func (s *pgxStore) UpdateCommentContent(ctx context.Context, id, content string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE comments SET content = $2, updated_at = now() WHERE id = $1`, id, content)
	return err
}

func (s *pgxStore) DeleteComment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

func (s *pgxStore) ListCommentsByPost(ctx context.Context, postID string, skip, take int) ([]Comment, error) {
	query := `SELECT c.id, c.content, c.post_id, c.user_id, c.created_at, c.updated_at, u.id, u.username
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.post_id = $1
	          ORDER BY c.created_at DESC
	          OFFSET $2 LIMIT $3`
	rows, err := s.pool.Query(ctx, query, postID, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		var a Author
		var pid sql.NullString
		if err := rows.Scan(&c.ID, &c.Content, &pid, &c.UserID, &c.CreatedAt, &c.UpdatedAt, &a.ID, &a.Username); err != nil {
			return nil, err
		}
		if pid.Valid {
			c.PostID = &pid.String
		}
		c.User = &a
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

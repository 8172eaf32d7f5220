package posts

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the storage-access interface for posts.
type Store interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPostByID(ctx context.Context, id string) (*Post, error)
	DeletePost(ctx context.Context, id string) error
	ListPosts(ctx context.Context, skip, take int) ([]Post, error)
	ListPostsByUser(ctx context.Context, userID string, skip, take int) ([]Post, error)
}

type pgxStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgxStore{pool: pool}
}

func (s *pgxStore) CreatePost(ctx context.Context, post *Post) error {
	query := `INSERT INTO posts (id, title, content, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at, updated_at`
	return s.pool.QueryRow(ctx, query, post.ID, post.Title, post.Content, post.UserID).
		Scan(&post.CreatedAt, &post.UpdatedAt)
}

func (s *pgxStore) GetPostByID(ctx context.Context, id string) (*Post, error) {
	query := `SELECT id, title, content, user_id, created_at, updated_at
	          FROM posts WHERE id = $1`
	var post Post
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.UserID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *pgxStore) DeletePost(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

const listColumns = `p.id, p.title, p.content, p.user_id, p.created_at, p.updated_at, u.id, u.username`

func (s *pgxStore) ListPosts(ctx context.Context, skip, take int) ([]Post, error) {
	query := `SELECT ` + listColumns + `
	          FROM posts p JOIN users u ON u.id = p.user_id
	          ORDER BY p.created_at DESC
	          OFFSET $1 LIMIT $2`
	rows, err := s.pool.Query(ctx, query, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (s *pgxStore) ListPostsByUser(ctx context.Context, userID string, skip, take int) ([]Post, error) {
	query := `SELECT ` + listColumns + `
	          FROM posts p JOIN users u ON u.id = p.user_id
	          WHERE p.user_id = $1
	          ORDER BY p.created_at DESC
	          OFFSET $2 LIMIT $3`
	rows, err := s.pool.Query(ctx, query, userID, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPosts(rows rowScanner) ([]Post, error) {
	var posts []Post
	for rows.Next() {
		var p Post
		var a Author
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt, &a.ID, &a.Username); err != nil {
			return nil, err
		}
		p.Author = &a
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

package users

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/purpleshorts-go/auth"
)

// Store is the storage-access interface for user profile reads.
type Store interface {
	GetUserByID(ctx context.Context, id string) (*auth.User, error)
	CountUsers(ctx context.Context) (int, error)
	ListUsers(ctx context.Context, skip, take int) ([]auth.User, error)
	PostsByUser(ctx context.Context, userID string) ([]UserPost, error)
	// CommentsByUser returns the user's comments with parent post titles.
	// With excludeOrphans set, comments whose post was deleted are left out.
	CommentsByUser(ctx context.Context, userID string, excludeOrphans bool) ([]UserComment, error)
	LikesByUser(ctx context.Context, userID string) ([]UserLike, error)
}

type pgxStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgxStore{pool: pool}
}

func (s *pgxStore) GetUserByID(ctx context.Context, id string) (*auth.User, error) {
	query := `SELECT id, username, name, about, created_at, updated_at
	          FROM users WHERE id = $1`
	var user auth.User
	var name, about sql.NullString
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &name, &about, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Name = name.String
	user.About = about.String
	return &user, nil
}

func (s *pgxStore) CountUsers(ctx context.Context) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total)
	return total, err
}

func (s *pgxStore) ListUsers(ctx context.Context, skip, take int) ([]auth.User, error) {
	query := `SELECT id, username, name, about, created_at, updated_at
	          FROM users ORDER BY name ASC NULLS LAST, id ASC
	          OFFSET $1 LIMIT $2`
	rows, err := s.pool.Query(ctx, query, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var user auth.User
		var name, about sql.NullString
		if err := rows.Scan(&user.ID, &user.Username, &name, &about, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		user.Name = name.String
		user.About = about.String
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *pgxStore) PostsByUser(ctx context.Context, userID string) ([]UserPost, error) {
	query := `SELECT id, title, content, user_id, created_at, updated_at
	          FROM posts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []UserPost
	for rows.Next() {
		var p UserPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *pgxStore) CommentsByUser(ctx context.Context, userID string, excludeOrphans bool) ([]UserComment, error) {
	query := `SELECT c.id, c.content, c.post_id, c.user_id, c.created_at, c.updated_at, p.title
	          FROM comments c LEFT JOIN posts p ON p.id = c.post_id
	          WHERE c.user_id = $1`
	if excludeOrphans {
		query += ` AND c.post_id IS NOT NULL`
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []UserComment
	for rows.Next() {
		var c UserComment
		var postID, title sql.NullString
		if err := rows.Scan(&c.ID, &c.Content, &postID, &c.UserID, &c.CreatedAt, &c.UpdatedAt, &title); err != nil {
			return nil, err
		}
		if postID.Valid {
			c.PostID = &postID.String
		}
		if title.Valid {
			c.Post = &PostRef{Title: title.String}
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *pgxStore) LikesByUser(ctx context.Context, userID string) ([]UserLike, error) {
	query := `SELECT l.id, l.post_id, l.user_id, l.created_at, l.updated_at, p.title
	          FROM likes l JOIN posts p ON p.id = l.post_id
	          WHERE l.user_id = $1 ORDER BY l.created_at DESC`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []UserLike
	for rows.Next() {
		var l UserLike
		var title string
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt, &l.UpdatedAt, &title); err != nil {
			return nil, err
		}
		l.Post = &PostRef{Title: title}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

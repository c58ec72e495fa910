package sqldb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
)

const postColumns = "id, title, content, published, author_id"

// CreatePost inserts an unpublished post and returns the stored row
func (r *SQLRepository) CreatePost(ctx context.Context, title string, content *string, authorID *int64) (*Post, error) {
	query := `INSERT INTO posts (title, content, published, author_id) VALUES (?, ?, ?, ?) RETURNING ` + postColumns
	return ScanPost(r.db.QueryRowContext(ctx, r.rebind(query), title, content, false, authorID))
}

// GetPostByID returns the post, or nil without error when no row matches
func (r *SQLRepository) GetPostByID(ctx context.Context, id int64) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ?`
	post, err := ScanPost(r.db.QueryRowContext(ctx, r.rebind(query), id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return post, err
}

// ListPosts returns every post ordered by id
func (r *SQLRepository) ListPosts(ctx context.Context) ([]*Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAll(rows, ScanPost)
}

// PublishPost marks a post published and returns the stored row
func (r *SQLRepository) PublishPost(ctx context.Context, id int64) (*Post, error) {
	query := `UPDATE posts SET published = ? WHERE id = ? RETURNING ` + postColumns
	post, err := ScanPost(r.db.QueryRowContext(ctx, r.rebind(query), true, id))
	if err != nil {
		return nil, fmt.Errorf("publish post %d: %w", id, err)
	}
	return post, nil
}

// UpdatePost changes the supplied columns and returns the stored row
func (r *SQLRepository) UpdatePost(ctx context.Context, id int64, patch PostPatch) (*Post, error) {
	var (
		sets []string
		args []interface{}
	)
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if len(sets) == 0 {
		post, err := r.GetPostByID(ctx, id)
		if err == nil && post == nil {
			err = fmt.Errorf("post %d: %w", id, sql.ErrNoRows)
		}
		return post, err
	}

	query := "UPDATE posts SET " + strings.Join(sets, ", ") + " WHERE id = ? RETURNING " + postColumns
	args = append(args, id)
	post, err := ScanPost(r.db.QueryRowContext(ctx, r.rebind(query), args...))
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return post, nil
}

// DeletePost removes a post
func (r *SQLRepository) DeletePost(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "posts", id)
}

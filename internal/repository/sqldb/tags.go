package sqldb

import (
	"context"
	"fmt"
)

// ListTags retrieves all tags in creation order
func (r *SQLRepository) ListTags(ctx context.Context) ([]*Tag, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, color FROM tags ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTags, "tags")
}

// CreateTag inserts a tag and sets its ID
func (r *SQLRepository) CreateTag(ctx context.Context, tag *Tag) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO tags (name, color) VALUES (?, ?) RETURNING id`
	id, err := InsertReturningID(ctx, r.db, r.rebind(query), tag.Name, tag.Color)
	if err != nil {
		return err
	}
	tag.ID = id
	return nil
}

// DeleteTag deletes a tag and its task associations
func (r *SQLRepository) DeleteTag(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM tags WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, r.rebind(query), "tag", fmt.Sprintf("%d", id), id)
}

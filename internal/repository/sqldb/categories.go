package sqldb

import (
	"context"
	"fmt"
)

// ListCategories retrieves all categories in creation order
func (r *SQLRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, color FROM categories ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanCategories, "categories")
}

// CreateCategory inserts a category and sets its ID
func (r *SQLRepository) CreateCategory(ctx context.Context, category *Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO categories (name, color) VALUES (?, ?) RETURNING id`
	id, err := InsertReturningID(ctx, r.db, r.rebind(query), category.Name, category.Color)
	if err != nil {
		return err
	}
	category.ID = id
	return nil
}

// DeleteCategory deletes a category. Tasks that referenced it keep existing
// with their category cleared.
func (r *SQLRepository) DeleteCategory(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM categories WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, r.rebind(query), "category", fmt.Sprintf("%d", id), id)
}

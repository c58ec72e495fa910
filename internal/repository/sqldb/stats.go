package sqldb

import (
	"context"
)

// CountStats computes task, completion, category and tag counts in one round trip
func (r *SQLRepository) CountStats(ctx context.Context) (*StatsCounts, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	SELECT
		(SELECT COUNT(*) FROM tasks),
		(SELECT COUNT(*) FROM tasks WHERE completed = ?),
		(SELECT COUNT(*) FROM categories),
		(SELECT COUNT(*) FROM tags)`

	return QuerySingle(ctx, r.db, r.rebind(query), ScanStats, "stats", "all", true)
}

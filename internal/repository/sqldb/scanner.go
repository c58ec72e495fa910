package sqldb

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanAll drains rows through scan
func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	results := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanTask scans a task row joined with its optional category:
// id, title, description, completed, category_id, created_at, c.id, c.name, c.color
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var (
		description sql.NullString
		categoryID  sql.NullInt64
		createdAt   string
		joinedID    sql.NullInt64
		joinedName  sql.NullString
		joinedColor sql.NullString
	)

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Completed,
		&categoryID,
		&createdAt,
		&joinedID,
		&joinedName,
		&joinedColor,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if categoryID.Valid {
		id := categoryID.Int64
		task.CategoryID = &id
	}
	if joinedID.Valid {
		task.Category = &Category{
			ID:    joinedID.Int64,
			Name:  joinedName.String,
			Color: joinedColor.String,
		}
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanAll(rows, ScanTask)
}

// ScanTaskTag scans task_id, tag id, tag name, tag color
func ScanTaskTag(scanner Scanner) (*TaskTag, error) {
	tt := &TaskTag{}
	if err := scanner.Scan(&tt.TaskID, &tt.Tag.ID, &tt.Tag.Name, &tt.Tag.Color); err != nil {
		return nil, err
	}
	tt.TagID = tt.Tag.ID
	return tt, nil
}

// ScanTaskTags scans multiple task_tags rows
func ScanTaskTags(rows Rows) ([]*TaskTag, error) {
	return scanAll(rows, ScanTaskTag)
}

// ScanCategory scans a single category from a database row
func ScanCategory(scanner Scanner) (*Category, error) {
	category := &Category{}
	if err := scanner.Scan(&category.ID, &category.Name, &category.Color); err != nil {
		return nil, err
	}
	return category, nil
}

// ScanCategories scans multiple categories from database rows
func ScanCategories(rows Rows) ([]*Category, error) {
	return scanAll(rows, ScanCategory)
}

// ScanTag scans a single tag from a database row
func ScanTag(scanner Scanner) (*Tag, error) {
	tag := &Tag{}
	if err := scanner.Scan(&tag.ID, &tag.Name, &tag.Color); err != nil {
		return nil, err
	}
	return tag, nil
}

// ScanTags scans multiple tags from database rows
func ScanTags(rows Rows) ([]*Tag, error) {
	return scanAll(rows, ScanTag)
}

// ScanStats scans the four aggregate counts
func ScanStats(scanner Scanner) (*StatsCounts, error) {
	stats := &StatsCounts{}
	err := scanner.Scan(&stats.TotalTasks, &stats.CompletedTasks, &stats.TotalCategories, &stats.TotalTags)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ScanUser scans id, email, name
func ScanUser(scanner Scanner) (*User, error) {
	user := &User{}
	var name sql.NullString
	if err := scanner.Scan(&user.ID, &user.Email, &name); err != nil {
		return nil, err
	}
	if name.Valid {
		user.Name = &name.String
	}
	return user, nil
}

// ScanPost scans id, title, content, published, author_id
func ScanPost(scanner Scanner) (*Post, error) {
	post := &Post{}
	var (
		content  sql.NullString
		authorID sql.NullInt64
	)
	if err := scanner.Scan(&post.ID, &post.Title, &content, &post.Published, &authorID); err != nil {
		return nil, err
	}
	if content.Valid {
		post.Content = &content.String
	}
	if authorID.Valid {
		id := authorID.Int64
		post.AuthorID = &id
	}
	return post, nil
}

package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const selectTaskColumns = `
	SELECT t.id, t.title, t.description, t.completed, t.category_id, t.created_at,
	       c.id, c.name, c.color
	FROM tasks t
	LEFT JOIN categories c ON c.id = t.category_id`

// ListTasks retrieves all tasks, newest first, with category and tags resolved
func (r *SQLRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := selectTaskColumns + `
	ORDER BY t.created_at DESC, t.id DESC`

	tasks, err := QueryMultiple(ctx, r.db, r.rebind(query), ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	tagQuery := `
	SELECT tt.task_id, g.id, g.name, g.color
	FROM task_tags tt
	JOIN tags g ON g.id = tt.tag_id
	ORDER BY tt.task_id, g.id`

	taskTags, err := QueryMultiple(ctx, r.db, r.rebind(tagQuery), ScanTaskTags, "task tags")
	if err != nil {
		return nil, err
	}

	attachTags(tasks, taskTags)
	return tasks, nil
}

// GetTask retrieves a task by ID with category and tags resolved
func (r *SQLRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.getTask(ctx, r.db, id)
}

func (r *SQLRepository) getTask(ctx context.Context, q querier, id int64) (*Task, error) {
	query := selectTaskColumns + `
	WHERE t.id = ?`

	task, err := QuerySingle(ctx, q, r.rebind(query), ScanTask, "task", fmt.Sprintf("%d", id), id)
	if err != nil {
		return nil, err
	}

	tagQuery := `
	SELECT tt.task_id, g.id, g.name, g.color
	FROM task_tags tt
	JOIN tags g ON g.id = tt.tag_id
	WHERE tt.task_id = ?
	ORDER BY g.id`

	taskTags, err := QueryMultiple(ctx, q, r.rebind(tagQuery), ScanTaskTags, "task tags", id)
	if err != nil {
		return nil, err
	}

	attachTags([]*Task{task}, taskTags)
	return task, nil
}

// CreateTask inserts the task and one task_tags row per distinct tag ID in a
// single transaction. ID, CreatedAt and the resolved relations are filled in.
func (r *SQLRepository) CreateTask(ctx context.Context, task *Task, tagIDs []int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	var created *Task
	err := r.withTx(ctx, "create task", func(tx *sql.Tx) error {
		query := `
		INSERT INTO tasks (title, description, completed, category_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

		id, err := InsertReturningID(ctx, tx, r.rebind(query),
			task.Title, nullableText(task.Description), task.Completed, task.CategoryID, FormatTimeForDB(task.CreatedAt))
		if err != nil {
			return err
		}

		if err := r.insertTaskTags(ctx, tx, id, tagIDs); err != nil {
			return err
		}

		created, err = r.getTask(ctx, tx, id)
		return err
	})
	if err != nil {
		return err
	}

	*task = *created
	return nil
}

// UpdateTask applies patch to the task. When patch.TagIDs is set the tag
// associations are deleted and re-created from the supplied list.
func (r *SQLRepository) UpdateTask(ctx context.Context, id int64, patch TaskPatch) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.withTx(ctx, "update task", func(tx *sql.Tx) error {
		var (
			sets []string
			args []interface{}
		)
		if patch.Title != nil {
			sets = append(sets, "title = ?")
			args = append(args, *patch.Title)
		}
		if patch.Description != nil {
			sets = append(sets, "description = ?")
			args = append(args, nullableText(patch.Description))
		}
		if patch.Completed != nil {
			sets = append(sets, "completed = ?")
			args = append(args, *patch.Completed)
		}
		if patch.CategorySet {
			sets = append(sets, "category_id = ?")
			args = append(args, patch.CategoryID)
		}

		idStr := fmt.Sprintf("%d", id)
		if len(sets) > 0 {
			query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
			args = append(args, id)
			if err := ExecuteWithRowsAffected(ctx, tx, r.rebind(query), "task", idStr, args...); err != nil {
				return err
			}
		} else if err := r.taskExists(ctx, tx, id); err != nil {
			return err
		}

		if patch.TagIDs == nil {
			return nil
		}

		if _, err := tx.ExecContext(ctx, r.rebind(`DELETE FROM task_tags WHERE task_id = ?`), id); err != nil {
			return HandleDatabaseError("clear task tags", err)
		}
		return r.insertTaskTags(ctx, tx, id, *patch.TagIDs)
	})
}

// SetTaskCompleted stores the completed flag for a task
func (r *SQLRepository) SetTaskCompleted(ctx context.Context, id int64, completed bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE tasks SET completed = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, r.rebind(query), "task", fmt.Sprintf("%d", id), completed, id)
}

// DeleteTask deletes a task by ID; its task_tags rows go with it
func (r *SQLRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, r.rebind(query), "task", fmt.Sprintf("%d", id), id)
}

func (r *SQLRepository) taskExists(ctx context.Context, q querier, id int64) error {
	var found int64
	err := q.QueryRowContext(ctx, r.rebind(`SELECT id FROM tasks WHERE id = ?`), id).Scan(&found)
	if err != nil {
		if notFound := HandleNoRowsError(err, "task", fmt.Sprintf("%d", id)); notFound != err {
			return notFound
		}
		return HandleDatabaseError("find task", err)
	}
	return nil
}

func (r *SQLRepository) insertTaskTags(ctx context.Context, q querier, taskID int64, tagIDs []int64) error {
	query := r.rebind(`INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)`)
	for _, tagID := range UniqueIDs(tagIDs) {
		if _, err := q.ExecContext(ctx, query, taskID, tagID); err != nil {
			return HandleDatabaseError(fmt.Sprintf("link tag %d", tagID), err)
		}
	}
	return nil
}

// UniqueIDs drops repeated IDs, keeping the first occurrence of each
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func attachTags(tasks []*Task, taskTags []*TaskTag) {
	byTask := make(map[int64][]TaskTag, len(tasks))
	for _, tt := range taskTags {
		byTask[tt.TaskID] = append(byTask[tt.TaskID], *tt)
	}
	for _, task := range tasks {
		task.Tags = byTask[task.ID]
		if task.Tags == nil {
			task.Tags = []TaskTag{}
		}
	}
}

// nullableText maps nil and "" to SQL NULL
func nullableText(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

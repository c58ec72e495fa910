package domain

import (
	"testing"
	"time"

	"taskboard/internal/repository/sqldb"

	"github.com/stretchr/testify/assert"
)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	desc := "details"
	categoryID := int64(3)

	result := mapper.ToDatabase(CreateTaskInput{
		Title:       "Test Task",
		Description: &desc,
		CategoryID:  &categoryID,
		TagIDs:      []int64{1, 2},
	})

	expected := sqldb.Task{
		Title:       "Test Task",
		Description: &desc,
		CategoryID:  &categoryID,
	}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_ToPatch(t *testing.T) {
	mapper := NewTaskMapper()
	title := "New"
	tags := []int64{4}

	tests := []struct {
		name     string
		input    UpdateTaskInput
		expected sqldb.TaskPatch
	}{
		{
			name:     "absent category leaves it alone",
			input:    UpdateTaskInput{Title: &title},
			expected: sqldb.TaskPatch{Title: &title},
		},
		{
			name:     "null category clears it",
			input:    UpdateTaskInput{CategoryID: Null()},
			expected: sqldb.TaskPatch{CategorySet: true},
		},
		{
			name:  "category and tags set",
			input: UpdateTaskInput{CategoryID: SetInt64(9), TagIDs: &tags},
			expected: sqldb.TaskPatch{
				CategorySet: true,
				CategoryID:  SetInt64(9).Value,
				TagIDs:      &tags,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.ToPatch(tt.input))
		})
	}
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	categoryID := int64(2)

	dbTask := sqldb.Task{
		ID:         1,
		Title:      "Test Task",
		CategoryID: &categoryID,
		Category:   &sqldb.Category{ID: 2, Name: "Work", Color: "#3b82f6"},
		Tags: []sqldb.TaskTag{
			{TaskID: 1, TagID: 7, Tag: sqldb.Tag{ID: 7, Name: "urgent", Color: "#ef4444"}},
		},
		CreatedAt: created,
	}

	result := mapper.FromDatabase(dbTask)

	expected := Task{
		ID:         1,
		Title:      "Test Task",
		CategoryID: &categoryID,
		Category:   &Category{ID: 2, Name: "Work", Color: "#3b82f6"},
		Tags: []TaskTag{
			{TaskID: 1, TagID: 7, Tag: Tag{ID: 7, Name: "urgent", Color: "#ef4444"}},
		},
		CreatedAt: created,
	}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()
	dbTasks := []*sqldb.Task{
		{ID: 1, Title: "Task 1"},
		{ID: 2, Title: "Task 2"},
	}

	result := mapper.FromDatabaseSlice(dbTasks)

	assert.Len(t, result, 2)
	assert.Equal(t, "Task 1", result[0].Title)
	assert.Equal(t, "Task 2", result[1].Title)
	assert.NotNil(t, result[0].Tags, "tags encode as [] rather than null")
}

func TestCategoryAndTagMappers(t *testing.T) {
	mapper := NewMapper()

	assert.Equal(t, sqldb.Category{Name: "Work", Color: "#fff"}, mapper.Category.ToDatabase(CreateCategoryInput{Name: "Work", Color: "#fff"}))
	assert.Equal(t, sqldb.Tag{Name: "x", Color: "#000"}, mapper.Tag.ToDatabase(CreateTagInput{Name: "x", Color: "#000"}))

	categories := mapper.Category.FromDatabaseSlice([]*sqldb.Category{{ID: 1, Name: "Work", Color: "#fff"}})
	assert.Equal(t, []Category{{ID: 1, Name: "Work", Color: "#fff"}}, categories)

	tags := mapper.Tag.FromDatabaseSlice([]*sqldb.Tag{{ID: 2, Name: "x", Color: "#000"}})
	assert.Equal(t, []Tag{{ID: 2, Name: "x", Color: "#000"}}, tags)

	assert.Equal(t, Tag{ID: 2, Name: "x", Color: "#000"}, mapper.Tag.FromDatabase(sqldb.Tag{ID: 2, Name: "x", Color: "#000"}))
	assert.Equal(t, Category{ID: 1, Name: "Work"}, mapper.Category.FromDatabase(sqldb.Category{ID: 1, Name: "Work"}))
}

func TestStatsMapper_FromDatabase(t *testing.T) {
	stats := NewStatsMapper().FromDatabase(sqldb.StatsCounts{TotalTasks: 4, CompletedTasks: 1, TotalCategories: 2, TotalTags: 3})
	assert.Equal(t, Stats{TotalTasks: 4, CompletedTasks: 1, ActiveTasks: 3, TotalCategories: 2, TotalTags: 3, CompletionRate: 25}, stats)
}

func TestUserMapper(t *testing.T) {
	mapper := NewUserMapper()
	name := "Ada"
	authorID := int64(1)

	assert.Equal(t, User{ID: 1, Email: "ada@example.com", Name: &name},
		mapper.FromDatabase(sqldb.User{ID: 1, Email: "ada@example.com", Name: &name}))
	assert.Equal(t, Post{ID: 3, Title: "Hello", Published: true, AuthorID: &authorID},
		mapper.PostFromDatabase(sqldb.Post{ID: 3, Title: "Hello", Published: true, AuthorID: &authorID}))
}

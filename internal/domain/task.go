package domain

import (
	"strings"
	"time"
)

// Task represents a task in the domain model as it appears on the wire.
// Description, CategoryID and Category are null when absent.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CategoryID  *int64    `json:"categoryId"`
	Category    *Category `json:"category"`
	Tags        []TaskTag `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskTag links a task to one of its tags
type TaskTag struct {
	TaskID int64 `json:"taskId"`
	TagID  int64 `json:"tagId"`
	Tag    Tag   `json:"tag"`
}

// NewTask creates a new Task with the given title.
func NewTask(title string) Task {
	return Task{
		Title: title,
		Tags:  []TaskTag{},
	}
}

// IsValid checks if the task has a non-blank title.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Title) != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// HasTag reports whether the task carries tagID
func (t Task) HasTag(tagID int64) bool {
	for _, tt := range t.Tags {
		if tt.TagID == tagID {
			return true
		}
	}
	return false
}

// TagIDs returns the IDs of the task's tags in order
func (t Task) TagIDs() []int64 {
	ids := make([]int64, 0, len(t.Tags))
	for _, tt := range t.Tags {
		ids = append(ids, tt.TagID)
	}
	return ids
}

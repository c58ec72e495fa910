// Package board holds the client-side state of the task board: the fetched
// data, the create-form drafts and the active filters.
package board

import (
	"strconv"
	"strings"

	"taskboard/internal/domain"
)

// StatusFilter narrows the task list by completion
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// Next cycles all -> active -> completed -> all
func (s StatusFilter) Next() StatusFilter {
	switch s {
	case StatusAll:
		return StatusActive
	case StatusActive:
		return StatusCompleted
	default:
		return StatusAll
	}
}

// Filter selects which tasks are visible. CategoryID is kept as entered;
// empty means any category.
type Filter struct {
	Search     string
	CategoryID string
	Status     StatusFilter
}

// Matches reports whether task passes every part of the filter
func (f Filter) Matches(task domain.Task) bool {
	if !strings.Contains(strings.ToLower(task.Title), strings.ToLower(f.Search)) {
		return false
	}

	if f.CategoryID != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(f.CategoryID), 10, 64)
		if err != nil || task.CategoryID == nil || *task.CategoryID != id {
			return false
		}
	}

	switch f.Status {
	case StatusActive:
		return !task.Completed
	case StatusCompleted:
		return task.Completed
	default:
		return true
	}
}

// Apply returns the tasks that match f, preserving order
func (f Filter) Apply(tasks []domain.Task) []domain.Task {
	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			visible = append(visible, task)
		}
	}
	return visible
}

// TaskDraft is the create-task form
type TaskDraft struct {
	Title       string
	Description string
	CategoryID  string
	TagIDs      []int64
}

// HasTag reports whether the draft currently selects tagID
func (d TaskDraft) HasTag(tagID int64) bool {
	for _, id := range d.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Input converts the draft into a create request. An empty description is
// sent as null and a category that is empty or not a number as no category.
func (d TaskDraft) Input() domain.CreateTaskInput {
	input := domain.CreateTaskInput{
		Title:  d.Title,
		TagIDs: append([]int64{}, d.TagIDs...),
	}
	if d.Description != "" {
		desc := d.Description
		input.Description = &desc
	}
	if d.CategoryID != "" {
		if id, err := strconv.ParseInt(strings.TrimSpace(d.CategoryID), 10, 64); err == nil {
			input.CategoryID = &id
		}
	}
	return input
}

// LabelDraft is the create form shared by categories and tags
type LabelDraft struct {
	Name  string
	Color string
}

// State is a snapshot of everything the board displays
type State struct {
	Tasks      []domain.Task
	Categories []domain.Category
	Tags       []domain.Tag
	Stats      *domain.Stats
	Loading    bool

	Filter        Filter
	TaskDraft     TaskDraft
	CategoryDraft LabelDraft
	TagDraft      LabelDraft

	ShowCategoryForm bool
	ShowTagForm      bool
}

// Visible returns the tasks passing the current filter
func (s State) Visible() []domain.Task {
	return s.Filter.Apply(s.Tasks)
}

// CategoryName returns the name of the category with id, or "" when unknown
func (s State) CategoryName(id int64) string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (s State) clone() State {
	out := s
	out.Tasks = append([]domain.Task(nil), s.Tasks...)
	out.Categories = append([]domain.Category(nil), s.Categories...)
	out.Tags = append([]domain.Tag(nil), s.Tags...)
	out.TaskDraft.TagIDs = append([]int64(nil), s.TaskDraft.TagIDs...)
	if s.Stats != nil {
		stats := *s.Stats
		out.Stats = &stats
	}
	return out
}

package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"taskboard/internal/domain"
	"taskboard/internal/logging"
)

// Backend is the subset of the API the board talks to. *client.Client
// satisfies it.
type Backend interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetStats(ctx context.Context) (*domain.Stats, error)

	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	ToggleTask(ctx context.Context, id int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	CreateTag(ctx context.Context, input domain.CreateTagInput) (*domain.Tag, error)
}

// Store owns the board state. All methods are safe for concurrent use.
type Store struct {
	backend Backend
	log     *logging.Logger

	categoryColor string
	tagColor      string

	mu    sync.Mutex
	state State
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for fetch and mutation failures
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithDefaultColors sets the colors the label drafts reset to
func WithDefaultColors(category, tag string) Option {
	return func(s *Store) {
		if category != "" {
			s.categoryColor = category
		}
		if tag != "" {
			s.tagColor = tag
		}
	}
}

// NewStore creates a Store in the loading state
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:       backend,
		log:           logging.Default(),
		categoryColor: domain.DefaultCategoryColor,
		tagColor:      domain.DefaultTagColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = State{
		Tasks:         []domain.Task{},
		Categories:    []domain.Category{},
		Tags:          []domain.Tag{},
		Loading:       true,
		Filter:        Filter{Status: StatusAll},
		CategoryDraft: LabelDraft{Color: s.categoryColor},
		TagDraft:      LabelDraft{Color: s.tagColor},
	}
	return s
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Visible returns the tasks that pass the current filter
func (s *Store) Visible() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Visible()
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Refresh fetches tasks, categories, tags and stats concurrently. Each
// successful result is applied even when others fail; the failures are
// logged and returned joined. Loading is cleared once all four finish.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	fetch := func(what string, fn func() error) {
		defer wg.Done()
		if err := fn(); err != nil {
			s.log.Warnf("failed to fetch %s: %v", what, err)
			mu.Lock()
			errs = append(errs, fmt.Errorf("fetch %s: %w", what, err))
			mu.Unlock()
		}
	}

	wg.Add(4)
	go fetch("tasks", func() error {
		tasks, err := s.backend.ListTasks(ctx)
		if err != nil {
			return err
		}
		s.update(func(st *State) { st.Tasks = nonNil(tasks) })
		return nil
	})
	go fetch("categories", func() error {
		categories, err := s.backend.ListCategories(ctx)
		if err != nil {
			return err
		}
		s.update(func(st *State) { st.Categories = nonNil(categories) })
		return nil
	})
	go fetch("tags", func() error {
		tags, err := s.backend.ListTags(ctx)
		if err != nil {
			return err
		}
		s.update(func(st *State) { st.Tags = nonNil(tags) })
		return nil
	})
	go fetch("stats", func() error {
		stats, err := s.backend.GetStats(ctx)
		if err != nil {
			return err
		}
		s.update(func(st *State) { st.Stats = stats })
		return nil
	})
	wg.Wait()

	s.update(func(st *State) { st.Loading = false })
	return errors.Join(errs...)
}

// CreateTask submits the task draft. A blank title sends nothing. The draft
// is reset only when the request succeeds; the board is refreshed either way.
func (s *Store) CreateTask(ctx context.Context) error {
	draft := s.Snapshot().TaskDraft
	if strings.TrimSpace(draft.Title) == "" {
		return nil
	}

	_, err := s.backend.CreateTask(ctx, draft.Input())
	if err != nil {
		s.log.Warnf("failed to create task: %v", err)
	} else {
		s.update(func(st *State) { st.TaskDraft = TaskDraft{} })
	}
	return s.afterMutation(ctx, err)
}

// ToggleTask flips a task's completed flag and refreshes
func (s *Store) ToggleTask(ctx context.Context, id int64) error {
	_, err := s.backend.ToggleTask(ctx, id)
	if err != nil {
		s.log.Warnf("failed to toggle task %d: %v", id, err)
	}
	return s.afterMutation(ctx, err)
}

// DeleteTask removes a task and refreshes
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	err := s.backend.DeleteTask(ctx, id)
	if err != nil {
		s.log.Warnf("failed to delete task %d: %v", id, err)
	}
	return s.afterMutation(ctx, err)
}

// CreateCategory submits the category draft. On success the draft resets to
// the default color and the form closes.
func (s *Store) CreateCategory(ctx context.Context) error {
	draft := s.Snapshot().CategoryDraft
	if strings.TrimSpace(draft.Name) == "" {
		return nil
	}

	_, err := s.backend.CreateCategory(ctx, domain.CreateCategoryInput{Name: draft.Name, Color: draft.Color})
	if err != nil {
		s.log.Warnf("failed to create category: %v", err)
	} else {
		s.update(func(st *State) {
			st.CategoryDraft = LabelDraft{Color: s.categoryColor}
			st.ShowCategoryForm = false
		})
	}
	return s.afterMutation(ctx, err)
}

// CreateTag submits the tag draft. On success the draft resets to the
// default color and the form closes.
func (s *Store) CreateTag(ctx context.Context) error {
	draft := s.Snapshot().TagDraft
	if strings.TrimSpace(draft.Name) == "" {
		return nil
	}

	_, err := s.backend.CreateTag(ctx, domain.CreateTagInput{Name: draft.Name, Color: draft.Color})
	if err != nil {
		s.log.Warnf("failed to create tag: %v", err)
	} else {
		s.update(func(st *State) {
			st.TagDraft = LabelDraft{Color: s.tagColor}
			st.ShowTagForm = false
		})
	}
	return s.afterMutation(ctx, err)
}

func (s *Store) afterMutation(ctx context.Context, err error) error {
	return errors.Join(err, s.Refresh(ctx))
}

// Draft actions

func (s *Store) SetDraftTitle(title string) {
	s.update(func(st *State) { st.TaskDraft.Title = title })
}

func (s *Store) SetDraftDescription(description string) {
	s.update(func(st *State) { st.TaskDraft.Description = description })
}

// SetDraftCategory selects a category by id string; "" clears it
func (s *Store) SetDraftCategory(categoryID string) {
	s.update(func(st *State) { st.TaskDraft.CategoryID = categoryID })
}

// ToggleDraftTag adds tagID to the draft or removes it when already selected
func (s *Store) ToggleDraftTag(tagID int64) {
	s.update(func(st *State) {
		ids := st.TaskDraft.TagIDs
		for i, id := range ids {
			if id == tagID {
				st.TaskDraft.TagIDs = append(ids[:i:i], ids[i+1:]...)
				return
			}
		}
		st.TaskDraft.TagIDs = append(ids, tagID)
	})
}

func (s *Store) ResetDraft() {
	s.update(func(st *State) { st.TaskDraft = TaskDraft{} })
}

func (s *Store) SetCategoryDraft(name, color string) {
	s.update(func(st *State) { st.CategoryDraft = LabelDraft{Name: name, Color: color} })
}

func (s *Store) SetTagDraft(name, color string) {
	s.update(func(st *State) { st.TagDraft = LabelDraft{Name: name, Color: color} })
}

func (s *Store) ToggleCategoryForm() {
	s.update(func(st *State) { st.ShowCategoryForm = !st.ShowCategoryForm })
}

func (s *Store) ToggleTagForm() {
	s.update(func(st *State) { st.ShowTagForm = !st.ShowTagForm })
}

// Filter actions

func (s *Store) SetSearch(query string) {
	s.update(func(st *State) { st.Filter.Search = query })
}

// SetCategoryFilter filters by category id string; "" shows every category
func (s *Store) SetCategoryFilter(categoryID string) {
	s.update(func(st *State) { st.Filter.CategoryID = categoryID })
}

func (s *Store) SetStatusFilter(status StatusFilter) {
	s.update(func(st *State) { st.Filter.Status = status })
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

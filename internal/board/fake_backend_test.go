package board

import (
	"context"
	"errors"
	"sync"

	"taskboard/internal/domain"
)

// fakeBackend keeps board data in memory and records calls
type fakeBackend struct {
	mu sync.Mutex

	tasks      []domain.Task
	categories []domain.Category
	tags       []domain.Tag
	nextID     int64

	failList  map[string]error
	failWrite error

	created  []domain.CreateTaskInput
	calls    []string
	refreshN int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1, failList: map[string]error{}}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) ListTasks(ctx context.Context) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshN++
	if err := f.failList["tasks"]; err != nil {
		return nil, err
	}
	return append([]domain.Task(nil), f.tasks...), nil
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failList["categories"]; err != nil {
		return nil, err
	}
	return append([]domain.Category(nil), f.categories...), nil
}

func (f *fakeBackend) ListTags(ctx context.Context) ([]domain.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failList["tags"]; err != nil {
		return nil, err
	}
	return append([]domain.Tag(nil), f.tags...), nil
}

func (f *fakeBackend) GetStats(ctx context.Context) (*domain.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failList["stats"]; err != nil {
		return nil, err
	}
	var completed int64
	for _, t := range f.tasks {
		if t.Completed {
			completed++
		}
	}
	stats := domain.NewStats(int64(len(f.tasks)), completed, int64(len(f.categories)), int64(len(f.tags)))
	return &stats, nil
}

func (f *fakeBackend) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	f.record("CreateTask")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, input)
	if f.failWrite != nil {
		return nil, f.failWrite
	}
	task := domain.Task{ID: f.nextID, Title: input.Title, Description: input.Description, CategoryID: input.CategoryID, Tags: []domain.TaskTag{}}
	f.nextID++
	f.tasks = append([]domain.Task{task}, f.tasks...)
	return &task, nil
}

func (f *fakeBackend) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	f.record("ToggleTask")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return nil, f.failWrite
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBackend) DeleteTask(ctx context.Context, id int64) error {
	f.record("DeleteTask")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return f.failWrite
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeBackend) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	f.record("CreateCategory")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return nil, f.failWrite
	}
	c := domain.Category{ID: f.nextID, Name: input.Name, Color: input.Color}
	f.nextID++
	f.categories = append(f.categories, c)
	return &c, nil
}

func (f *fakeBackend) CreateTag(ctx context.Context, input domain.CreateTagInput) (*domain.Tag, error) {
	f.record("CreateTag")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return nil, f.failWrite
	}
	t := domain.Tag{ID: f.nextID, Name: input.Name, Color: input.Color}
	f.nextID++
	f.tags = append(f.tags, t)
	return &t, nil
}

func (f *fakeBackend) refreshes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshN
}

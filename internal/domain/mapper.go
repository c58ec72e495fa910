package domain

import (
	"taskboard/internal/repository/sqldb"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a create request into a database Task.
func (m *TaskMapper) ToDatabase(input CreateTaskInput) sqldb.Task {
	return sqldb.Task{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	}
}

// ToPatch converts an update request into a database TaskPatch.
func (m *TaskMapper) ToPatch(input UpdateTaskInput) sqldb.TaskPatch {
	return sqldb.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CategorySet: input.CategoryID.Set,
		CategoryID:  input.CategoryID.Value,
		TagIDs:      input.TagIDs,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqldb.Task) Task {
	task := Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Completed:   dbTask.Completed,
		CategoryID:  dbTask.CategoryID,
		Tags:        make([]TaskTag, len(dbTask.Tags)),
		CreatedAt:   dbTask.CreatedAt,
	}
	if dbTask.Category != nil {
		category := categoryFromDatabase(*dbTask.Category)
		task.Category = &category
	}
	for i, tt := range dbTask.Tags {
		task.Tags[i] = TaskTag{
			TaskID: tt.TaskID,
			TagID:  tt.TagID,
			Tag:    tagFromDatabase(tt.Tag),
		}
	}
	return task
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqldb.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// CategoryMapper handles conversion between domain and database Category models.
type CategoryMapper struct{}

// NewCategoryMapper creates a new CategoryMapper instance.
func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

// ToDatabase converts a create request into a database Category.
func (m *CategoryMapper) ToDatabase(input CreateCategoryInput) sqldb.Category {
	return sqldb.Category{Name: input.Name, Color: input.Color}
}

// FromDatabase converts a database Category to a domain Category.
func (m *CategoryMapper) FromDatabase(dbCategory sqldb.Category) Category {
	return categoryFromDatabase(dbCategory)
}

// FromDatabaseSlice converts a slice of database Categories to domain Categories.
func (m *CategoryMapper) FromDatabaseSlice(dbCategories []*sqldb.Category) []Category {
	categories := make([]Category, len(dbCategories))
	for i, c := range dbCategories {
		categories[i] = categoryFromDatabase(*c)
	}
	return categories
}

// TagMapper handles conversion between domain and database Tag models.
type TagMapper struct{}

// NewTagMapper creates a new TagMapper instance.
func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

// ToDatabase converts a create request into a database Tag.
func (m *TagMapper) ToDatabase(input CreateTagInput) sqldb.Tag {
	return sqldb.Tag{Name: input.Name, Color: input.Color}
}

// FromDatabase converts a database Tag to a domain Tag.
func (m *TagMapper) FromDatabase(dbTag sqldb.Tag) Tag {
	return tagFromDatabase(dbTag)
}

// FromDatabaseSlice converts a slice of database Tags to domain Tags.
func (m *TagMapper) FromDatabaseSlice(dbTags []*sqldb.Tag) []Tag {
	tags := make([]Tag, len(dbTags))
	for i, t := range dbTags {
		tags[i] = tagFromDatabase(*t)
	}
	return tags
}

// StatsMapper derives Stats from raw database counts.
type StatsMapper struct{}

// NewStatsMapper creates a new StatsMapper instance.
func NewStatsMapper() *StatsMapper {
	return &StatsMapper{}
}

// FromDatabase converts database counts to domain Stats.
func (m *StatsMapper) FromDatabase(counts sqldb.StatsCounts) Stats {
	return NewStats(counts.TotalTasks, counts.CompletedTasks, counts.TotalCategories, counts.TotalTags)
}

// UserMapper converts database users and posts for display.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqldb.User) User {
	return User{ID: dbUser.ID, Email: dbUser.Email, Name: dbUser.Name}
}

// PostFromDatabase converts a database Post to a domain Post.
func (m *UserMapper) PostFromDatabase(dbPost sqldb.Post) Post {
	return Post{
		ID:        dbPost.ID,
		Title:     dbPost.Title,
		Content:   dbPost.Content,
		Published: dbPost.Published,
		AuthorID:  dbPost.AuthorID,
	}
}

func categoryFromDatabase(c sqldb.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Color: c.Color}
}

func tagFromDatabase(t sqldb.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name, Color: t.Color}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	Category *CategoryMapper
	Tag      *TagMapper
	Stats    *StatsMapper
	User     *UserMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     NewTaskMapper(),
		Category: NewCategoryMapper(),
		Tag:      NewTagMapper(),
		Stats:    NewStatsMapper(),
		User:     NewUserMapper(),
	}
}

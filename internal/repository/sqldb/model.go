package sqldb

import "time"

// Category groups tasks under a colored label
type Category struct {
	ID    int64
	Name  string
	Color string
}

// Tag is a colored label attached to tasks through task_tags
type Tag struct {
	ID    int64
	Name  string
	Color string
}

// TaskTag is one task_tags row with its tag resolved
type TaskTag struct {
	TaskID int64
	TagID  int64
	Tag    Tag
}

// Task represents a tasks row with its category and tags resolved
type Task struct {
	ID          int64
	Title       string
	Description *string // NULL when absent
	Completed   bool
	CategoryID  *int64
	Category    *Category
	Tags        []TaskTag
	CreatedAt   time.Time
}

// TaskPatch lists the columns an update should touch. Nil fields are left alone.
type TaskPatch struct {
	Title       *string
	Description *string // an empty string stores NULL
	Completed   *bool

	// CategorySet marks CategoryID as supplied; a nil CategoryID then clears it
	CategorySet bool
	CategoryID  *int64

	// TagIDs replaces the whole association set when non-nil
	TagIDs *[]int64
}

// StatsCounts holds the raw aggregate counts behind the stats endpoint
type StatsCounts struct {
	TotalTasks      int64
	CompletedTasks  int64
	TotalCategories int64
	TotalTags       int64
}

// User is a demo account record
type User struct {
	ID    int64
	Email string
	Name  *string
}

// UserPatch lists the user columns an update should touch
type UserPatch struct {
	Email *string
	Name  *string
}

// Post is a demo article record optionally written by a User
type Post struct {
	ID        int64
	Title     string
	Content   *string
	Published bool
	AuthorID  *int64
}

// PostPatch lists the post columns an update should touch
type PostPatch struct {
	Title   *string
	Content *string
}

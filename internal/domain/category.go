package domain

// Default colors applied when a category or tag is created without one
const (
	DefaultCategoryColor = "#3b82f6"
	DefaultTagColor      = "#10b981"
)

// Category groups tasks
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Tag labels tasks; a task may carry many
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

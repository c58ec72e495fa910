package domain

import "math"

// Stats summarizes the board
type Stats struct {
	TotalTasks      int64 `json:"totalTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
	ActiveTasks     int64 `json:"activeTasks"`
	TotalCategories int64 `json:"totalCategories"`
	TotalTags       int64 `json:"totalTags"`
	CompletionRate  int   `json:"completionRate"`
}

// NewStats derives active count and completion rate from raw counts.
// The rate is a rounded percentage, 0 when there are no tasks.
func NewStats(total, completed, categories, tags int64) Stats {
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) * 100 / float64(total)))
	}
	return Stats{
		TotalTasks:      total,
		CompletedTasks:  completed,
		ActiveTasks:     total - completed,
		TotalCategories: categories,
		TotalTags:       tags,
		CompletionRate:  rate,
	}
}

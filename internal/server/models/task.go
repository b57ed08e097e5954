package models

import "time"

// DefaultCategory is assigned when a task is created without a category.
const DefaultCategory = "general"

// KnownCategories is the label set offered by clients. The server accepts
// other labels too; see TaskService.Create.
var KnownCategories = []string{"general", "work", "personal", "shopping", "health", "other"}

// Task belongs to exactly one user. UserID is fixed at creation and is
// never reassignable.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Done        bool      `json:"isDone"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskPatch is a partial update. Nil fields keep their stored value.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Done        *bool
}

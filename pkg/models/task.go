package models

// Task is a single item on the task list. IDs are unique within the
// current in-memory list and carry no meaning across runs.
type Task struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Done        bool   `yaml:"done" json:"done"`
}

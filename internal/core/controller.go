package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valter-silva-au/taskpad/pkg/models"
)

// ErrEmptyTitle is returned when a task is submitted with a title that is
// blank after trimming whitespace. Front-ends show it to the user as an alert.
var ErrEmptyTitle = errors.New("task title must not be empty")

// maxLoggedTitleRunes caps the title recorded with task.added events.
const maxLoggedTitleRunes = 200

// DeletePromptKey is the catalog key for the delete confirmation question.
const DeletePromptKey = "confirm.delete"

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts an ordinary function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// TaskForm is the draft held by the two form inputs.
type TaskForm struct {
	Title       string
	Description string
}

// Controller holds the task list and the form draft and applies the three
// user operations: add, toggle and delete.
type Controller struct {
	store  TaskStore
	form   TaskForm
	events EventLogger
	prompt string
}

// NewController creates a Controller over store. events may be nil.
// deletePrompt is the question passed to the Confirmer on delete.
func NewController(store TaskStore, events EventLogger, deletePrompt string) *Controller {
	if deletePrompt == "" {
		deletePrompt = "Delete this task?"
	}
	return &Controller{
		store:  store,
		events: events,
		prompt: deletePrompt,
	}
}

// Tasks returns the current tasks in display order.
func (c *Controller) Tasks() []models.Task {
	return c.store.All()
}

// Store returns the underlying task store.
func (c *Controller) Store() TaskStore {
	return c.store
}

// Form returns a copy of the current draft.
func (c *Controller) Form() TaskForm {
	return c.form
}

// SetTitle replaces the draft title.
func (c *Controller) SetTitle(title string) {
	c.form.Title = title
}

// SetDescription replaces the draft description.
func (c *Controller) SetDescription(description string) {
	c.form.Description = description
}

// AddTask submits the draft. A blank title returns ErrEmptyTitle and keeps
// the draft as typed; on success the draft is cleared.
func (c *Controller) AddTask() (models.Task, error) {
	task, err := c.store.Add(c.form.Title, c.form.Description)
	if err != nil {
		if errors.Is(err, ErrEmptyTitle) {
			c.logEvent("task.rejected", map[string]any{"reason": "empty_title"})
		}
		return models.Task{}, err
	}

	c.form = TaskForm{}
	c.logEvent("task.added", map[string]any{
		"task_id": task.ID,
		"title":   loggedTitle(task.Title),
	})
	return task, nil
}

// ToggleDone flips the done flag of the task with the given id. It reports
// false, and changes nothing, when no such task exists.
func (c *Controller) ToggleDone(id int) bool {
	task, err := c.store.Toggle(id)
	if err != nil {
		return false
	}
	c.logEvent("task.toggled", map[string]any{
		"task_id": task.ID,
		"done":    task.Done,
	})
	return true
}

// DeleteTask asks confirm whether to delete the task with the given id and
// removes it if the answer is yes. It reports whether a task was removed.
// A nil confirm is treated as a refusal.
func (c *Controller) DeleteTask(id int, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm(c.prompt) {
		c.logEvent("task.delete_declined", map[string]any{"task_id": id})
		return false, nil
	}

	if _, err := c.store.Remove(id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("deleting task %d: %w", id, err)
	}

	c.logEvent("task.deleted", map[string]any{"task_id": id})
	return true, nil
}

// Seed adds the given tasks through the normal id rule. Seeds with a blank
// title are skipped.
func (c *Controller) Seed(seeds []models.SeedTask) error {
	for _, s := range seeds {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		task, err := c.store.Add(s.Title, s.Description)
		if err != nil {
			return fmt.Errorf("seeding task %q: %w", s.Title, err)
		}
		if s.Done {
			if _, err := c.store.Toggle(task.ID); err != nil {
				return fmt.Errorf("seeding task %q: %w", s.Title, err)
			}
		}
	}
	return nil
}

func loggedTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxLoggedTitleRunes {
		return title
	}
	return string(runes[:maxLoggedTitleRunes]) + "…"
}

func (c *Controller) logEvent(eventType string, data map[string]any) {
	if c.events == nil {
		return
	}
	// Event log failures never block a user action.
	_ = c.events.LogEvent(eventType, data)
}

package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/valter-silva-au/taskpad/pkg/models"
)

// ErrTaskNotFound is returned when no task in the list has the requested id.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore is the in-memory task collection behind the controller.
// Tasks are kept in insertion order, which is also display order.
type TaskStore interface {
	All() []models.Task
	Get(id int) (models.Task, error)
	Len() int
	NextID() int
	Add(title, description string) (models.Task, error)
	Toggle(id int) (models.Task, error)
	Remove(id int) (models.Task, error)
}

type memoryTaskStore struct {
	mu    sync.Mutex
	tasks []models.Task
}

// NewTaskStore creates an empty in-memory TaskStore.
func NewTaskStore() TaskStore {
	return &memoryTaskStore{}
}

// All returns a copy of the tasks in display order.
func (s *memoryTaskStore) All() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *memoryTaskStore) Get(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	return s.tasks[i], nil
}

func (s *memoryTaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// NextID returns the id the next added task will receive: one more than the
// largest id present, or 1 for an empty list.
func (s *memoryTaskStore) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID()
}

func (s *memoryTaskStore) nextID() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Add appends a task with the trimmed title and description. A title that is
// blank after trimming is rejected with ErrEmptyTitle.
func (s *memoryTaskStore) Add(title, description string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.nextID(),
		Title:       title,
		Description: strings.TrimSpace(description),
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Toggle flips the done flag of the task with the given id and returns the
// updated task.
func (s *memoryTaskStore) Toggle(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("toggling task %d: %w", id, ErrTaskNotFound)
	}
	s.tasks[i].Done = !s.tasks[i].Done
	return s.tasks[i], nil
}

// Remove deletes the task with the given id and returns it.
func (s *memoryTaskStore) Remove(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("removing task %d: %w", id, ErrTaskNotFound)
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return removed, nil
}

func (s *memoryTaskStore) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

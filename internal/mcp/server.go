// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the task list as tools, so an assistant can read and edit it over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valter-silva-au/taskpad/internal/core"
	"github.com/valter-silva-au/taskpad/internal/observability"
	"github.com/valter-silva-au/taskpad/pkg/models"
)

// Server wraps the task controller and exposes it as MCP tools.
type Server struct {
	server      *gomcp.Server
	ctrl        *core.Controller
	metricsCalc observability.MetricsCalculator

	// mu serialises handlers; add_task goes through the controller's
	// draft, which is not safe for concurrent use.
	mu sync.Mutex
}

// NewServer creates a new MCP server over ctrl. metricsCalc may be nil if
// observability is disabled.
func NewServer(ctrl *core.Controller, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		ctrl:        ctrl,
		metricsCalc: metricsCalc,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "taskpad", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type listTasksInput struct{}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
	Done  int          `json:"done"`
}

type taskIDInput struct {
	ID int `json:"id" jsonschema:"the numeric task id shown by list_tasks"`
}

type addTaskInput struct {
	Title       string `json:"title" jsonschema:"task title; must not be blank"`
	Description string `json:"description,omitempty" jsonschema:"optional task details"`
}

type deleteTaskInput struct {
	ID      int  `json:"id" jsonschema:"the numeric task id to delete"`
	Confirm bool `json:"confirm,omitempty" jsonschema:"must be true to delete; anything else declines"`
}

type deleteTaskOutput struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	TasksAdded      int    `json:"tasks_added"`
	TasksCompleted  int    `json:"tasks_completed"`
	TasksReopened   int    `json:"tasks_reopened"`
	TasksDeleted    int    `json:"tasks_deleted"`
	TasksRejected   int    `json:"tasks_rejected"`
	DeletesDeclined int    `json:"deletes_declined"`
	Sessions        int    `json:"sessions"`
	EventCount      int    `json:"event_count"`
	OldestEvent     string `json:"oldest_event,omitempty"`
	NewestEvent     string `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks in display order with their id, title, description and done flag.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get a single task by its numeric id.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a task. The title is trimmed and must not be blank. Returns the new task with its assigned id.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "toggle_task",
		Description: "Flip a task between done and not done. Returns the updated task.",
	}, s.handleToggleTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task. Nothing is removed unless confirm is true.",
	}, s.handleDeleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get activity counts from the event log: tasks added, completed, reopened, deleted, rejected and sessions.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.ctrl.Tasks()
	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
		if t.Done {
			out.Done++
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, taskOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.ctrl.Store().Get(input.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %d: %s", input.ID, err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Tool calls carry their own form values; restore the interactive draft after.
	draft := s.ctrl.Form()
	defer func() {
		s.ctrl.SetTitle(draft.Title)
		s.ctrl.SetDescription(draft.Description)
	}()

	s.ctrl.SetTitle(input.Title)
	s.ctrl.SetDescription(input.Description)
	task, err := s.ctrl.AddTask()
	if err != nil {
		if errors.Is(err, core.ErrEmptyTitle) {
			return errorResult("title is required and must not be blank"), taskOutput{}, nil
		}
		return errorResult(fmt.Sprintf("adding task: %s", err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleToggleTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, taskOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.ToggleDone(input.ID) {
		return errorResult(fmt.Sprintf("task %d not found", input.ID)), taskOutput{}, nil
	}
	task, err := s.ctrl.Store().Get(input.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %d: %s", input.ID, err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleDeleteTask(_ context.Context, _ *gomcp.CallToolRequest, input deleteTaskInput) (*gomcp.CallToolResult, deleteTaskOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.ctrl.DeleteTask(input.ID, core.ConfirmFunc(func(string) bool {
		return input.Confirm
	}))
	if err != nil {
		return errorResult(fmt.Sprintf("deleting task %d: %s", input.ID, err)), deleteTaskOutput{}, nil
	}

	switch {
	case removed:
		return nil, deleteTaskOutput{Deleted: true, Message: fmt.Sprintf("task %d deleted", input.ID)}, nil
	case !input.Confirm:
		return nil, deleteTaskOutput{Message: fmt.Sprintf("delete of task %d not confirmed; nothing changed", input.ID)}, nil
	default:
		return errorResult(fmt.Sprintf("task %d not found", input.ID)), deleteTaskOutput{}, nil
	}
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (observability may be disabled)"), metricsOutput{}, nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := ParseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), metricsOutput{}, nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), metricsOutput{}, nil
	}

	out := metricsOutput{
		TasksAdded:      metrics.TasksAdded,
		TasksCompleted:  metrics.TasksCompleted,
		TasksReopened:   metrics.TasksReopened,
		TasksDeleted:    metrics.TasksDeleted,
		TasksRejected:   metrics.TasksRejected,
		DeletesDeclined: metrics.DeletesDeclined,
		Sessions:        metrics.Sessions,
		EventCount:      metrics.EventCount,
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// ParseSince parses a human-friendly duration string like "7d", "30d", or "24h"
// into the corresponding time in the past.
func ParseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if num < 0 {
		return time.Time{}, fmt.Errorf("invalid duration %q: must not be negative", s)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}

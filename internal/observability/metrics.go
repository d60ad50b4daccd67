package observability

import (
	"fmt"
	"time"
)

// Metrics holds counts derived from the event log.
type Metrics struct {
	TasksAdded      int        `json:"tasks_added"`
	TasksCompleted  int        `json:"tasks_completed"`
	TasksReopened   int        `json:"tasks_reopened"`
	TasksDeleted    int        `json:"tasks_deleted"`
	TasksRejected   int        `json:"tasks_rejected"`
	DeletesDeclined int        `json:"deletes_declined"`
	Sessions        int        `json:"sessions"`
	EventCount      int        `json:"event_count"`
	OldestEvent     *time.Time `json:"oldest_event,omitempty"`
	NewestEvent     *time.Time `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator that reads from eventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{EventCount: len(events)}
	sessions := make(map[string]struct{})

	for _, event := range events {
		t := event.Time
		if m.OldestEvent == nil || t.Before(*m.OldestEvent) {
			m.OldestEvent = &t
		}
		if m.NewestEvent == nil || t.After(*m.NewestEvent) {
			m.NewestEvent = &t
		}
		if event.Session != "" {
			sessions[event.Session] = struct{}{}
		}

		switch event.Type {
		case "task.added":
			m.TasksAdded++
		case "task.toggled":
			if done, ok := event.Data["done"].(bool); ok && done {
				m.TasksCompleted++
			} else {
				m.TasksReopened++
			}
		case "task.deleted":
			m.TasksDeleted++
		case "task.rejected":
			m.TasksRejected++
		case "task.delete_declined":
			m.DeletesDeclined++
		}
	}
	m.Sessions = len(sessions)

	return m, nil
}

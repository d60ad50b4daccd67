package observability

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func openTestLog(t *testing.T) (EventLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log, path
}

func TestEventLog_WriteAndRead(t *testing.T) {
	log, _ := openTestLog(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	events := []Event{
		{
			Time:    now,
			Level:   LevelInfo,
			Type:    "task.added",
			Session: "s1",
			Message: "task added",
			Data:    map[string]any{"task_id": 4, "title": "อ่านหนังสือ"},
		},
		{
			Time:    now.Add(time.Second),
			Level:   LevelWarn,
			Type:    "task.rejected",
			Session: "s1",
			Message: "task rejected",
			Data:    map[string]any{"reason": "empty_title"},
		},
	}

	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("writing event: %v", err)
		}
	}

	result, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 events, got %d", len(result))
	}

	if result[0].Type != "task.added" {
		t.Errorf("expected type task.added, got %s", result[0].Type)
	}
	if result[0].Data["title"] != "อ่านหนังสือ" {
		t.Errorf("title did not round-trip: %v", result[0].Data["title"])
	}
	// JSON numbers decode as float64.
	if result[0].Data["task_id"] != float64(4) {
		t.Errorf("task_id = %v, want 4", result[0].Data["task_id"])
	}
	if result[1].Level != LevelWarn {
		t.Errorf("expected level WARN, got %s", result[1].Level)
	}
	if !result[0].Time.Equal(now) {
		t.Errorf("time = %v, want %v", result[0].Time, now)
	}
}

func TestEventLog_DefaultLevel(t *testing.T) {
	log, _ := openTestLog(t)

	if err := log.Write(Event{Time: time.Now().UTC(), Type: "task.added"}); err != nil {
		t.Fatal(err)
	}
	result, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 1 || result[0].Level != LevelInfo {
		t.Errorf("expected one INFO event, got %+v", result)
	}
}

func TestEventLog_Filters(t *testing.T) {
	log, _ := openTestLog(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Time: base, Level: LevelInfo, Type: "task.added", Session: "a"},
		{Time: base.Add(time.Hour), Level: LevelInfo, Type: "task.toggled", Session: "a"},
		{Time: base.Add(2 * time.Hour), Level: LevelWarn, Type: "task.rejected", Session: "b"},
		{Time: base.Add(3 * time.Hour), Level: LevelInfo, Type: "task.added", Session: "b"},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatal(err)
		}
	}

	since := base.Add(30 * time.Minute)
	until := base.Add(150 * time.Minute)

	tests := []struct {
		name   string
		filter EventFilter
		want   int
	}{
		{"all", EventFilter{}, 4},
		{"by type", EventFilter{Type: "task.added"}, 2},
		{"by level", EventFilter{Level: LevelWarn}, 1},
		{"by session", EventFilter{Session: "a"}, 2},
		{"since", EventFilter{Since: &since}, 3},
		{"window", EventFilter{Since: &since, Until: &until}, 2},
		{"type and session", EventFilter{Type: "task.added", Session: "b"}, 1},
		{"no match", EventFilter{Type: "task.deleted"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := log.Read(tt.filter)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Read() returned %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestEventLog_SkipsMalformedLines(t *testing.T) {
	log, path := openTestLog(t)

	if err := log.Write(Event{Time: time.Now().UTC(), Type: "task.added"}); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString("not json\n\n")
	_ = f.Close()
	if err := log.Write(Event{Time: time.Now().UTC(), Type: "task.deleted"}); err != nil {
		t.Fatal(err)
	}

	got, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 valid events, got %d", len(got))
	}
}

func TestEventLog_ReadsLinesLongerThanScannerLimit(t *testing.T) {
	log, _ := openTestLog(t)

	long := strings.Repeat("x", 200*1024)
	if err := log.Write(Event{Time: time.Now().UTC(), Type: "task.added", Data: map[string]any{"title": long}}); err != nil {
		t.Fatal(err)
	}
	if err := log.Write(Event{Time: time.Now().UTC(), Type: "task.toggled"}); err != nil {
		t.Fatal(err)
	}

	got, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if title, _ := got[0].Data["title"].(string); len(title) != len(long) {
		t.Errorf("title length = %d, want %d", len(title), len(long))
	}
	if got[1].Type != "task.toggled" {
		t.Errorf("second event type = %s, want task.toggled", got[1].Type)
	}
}

func TestEventLog_ReadsFinalLineWithoutNewline(t *testing.T) {
	log, path := openTestLog(t)

	if err := log.Write(Event{Time: time.Now().UTC(), Type: "task.added"}); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString(`{"time":"2026-01-02T03:04:05Z","level":"INFO","type":"task.deleted","msg":"x"}`)
	_ = f.Close()

	got, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got) != 2 || got[1].Type != "task.deleted" {
		t.Errorf("expected trailing task.deleted event, got %+v", got)
	}
}

func TestEventLog_EmptyLog(t *testing.T) {
	log, _ := openTestLog(t)

	result, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading empty log: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected 0 events from empty log, got %d", len(result))
	}
}

func TestNewJSONLEventLog_BadPath(t *testing.T) {
	_, err := NewJSONLEventLog(filepath.Join(t.TempDir(), "missing", "dir", "events.jsonl"))
	if err == nil {
		t.Fatal("expected error opening log in a missing directory")
	}
}

func TestEventLog_ConcurrentWrites(t *testing.T) {
	log, _ := openTestLog(t)

	const goroutines = 10
	const eventsPerGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < eventsPerGoroutine; i++ {
				event := Event{
					Time:    time.Now().UTC(),
					Type:    "task.added",
					Message: "concurrent event",
					Data:    map[string]any{"goroutine": id, "index": i},
				}
				if err := log.Write(event); err != nil {
					t.Errorf("concurrent write error: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()

	result, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading events after concurrent writes: %v", err)
	}

	expected := goroutines * eventsPerGoroutine
	if len(result) != expected {
		t.Errorf("expected %d events, got %d", expected, len(result))
	}
}

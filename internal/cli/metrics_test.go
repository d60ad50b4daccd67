package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/taskpad/internal/observability"
)

// --- parseSinceDuration unit tests ---

func TestParseSinceDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{"empty defaults to 7d", "", false, ""},
		{"whitespace defaults to 7d", "  ", false, ""},
		{"valid 7d", "7d", false, ""},
		{"valid 30d", "30d", false, ""},
		{"valid 24h", "24h", false, ""},
		{"invalid suffix", "abc", true, "unsupported duration format"},
		{"invalid day number", "xd", true, "invalid day duration"},
		{"invalid hour number", "yh", true, "invalid hour duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSinceDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseSinceDuration_EmptyIsSevenDays(t *testing.T) {
	got, err := parseSinceDuration("")
	if err != nil {
		t.Fatal(err)
	}
	age := time.Since(got)
	if age < 7*24*time.Hour-time.Minute || age > 7*24*time.Hour+time.Minute {
		t.Errorf("default window is %v, want 7 days", age)
	}
}

// --- metricsCmd tests ---

type metricsMock struct {
	calcFn func(since time.Time) (*observability.Metrics, error)
}

func (m *metricsMock) Calculate(since time.Time) (*observability.Metrics, error) {
	return m.calcFn(since)
}

// withMetrics swaps the package-level metrics state for one test.
func withMetrics(t *testing.T, calc observability.MetricsCalculator, since string, asJSON bool) *bytes.Buffer {
	t.Helper()
	orig, origSince, origJSON := MetricsCalc, metricsSince, metricsJSON
	t.Cleanup(func() {
		MetricsCalc = orig
		metricsSince = origSince
		metricsJSON = origJSON
		metricsCmd.SetOut(nil)
	})

	MetricsCalc = calc
	metricsSince = since
	metricsJSON = asJSON

	var out bytes.Buffer
	metricsCmd.SetOut(&out)
	return &out
}

func TestMetricsCmd_NilCalculator(t *testing.T) {
	withMetrics(t, nil, "7d", false)

	err := metricsCmd.RunE(metricsCmd, []string{})
	if err == nil {
		t.Fatal("expected error when MetricsCalc is nil")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMetricsCmd_InvalidSinceFormat(t *testing.T) {
	calc := &metricsMock{
		calcFn: func(since time.Time) (*observability.Metrics, error) {
			return &observability.Metrics{}, nil
		},
	}

	tests := []struct {
		name   string
		since  string
		errMsg string
	}{
		{"invalid suffix", "abc", "unsupported duration format"},
		{"invalid day number", "xd", "invalid day duration"},
		{"invalid hour number", "yh", "invalid hour duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMetrics(t, calc, tt.since, false)
			err := metricsCmd.RunE(metricsCmd, []string{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestMetricsCmd_Success_TableFormat(t *testing.T) {
	newest := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	out := withMetrics(t, &metricsMock{
		calcFn: func(since time.Time) (*observability.Metrics, error) {
			return &observability.Metrics{
				TasksAdded:      5,
				TasksCompleted:  3,
				TasksRejected:   2,
				DeletesDeclined: 1,
				Sessions:        4,
				EventCount:      42,
				NewestEvent:     &newest,
			}, nil
		},
	}, "7d", false)

	if err := metricsCmd.RunE(metricsCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Events recorded:", "42", "Tasks added:", "Blank titles rejected:", "2026-03-02T10:00:00Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Oldest event:") {
		t.Error("oldest event should be omitted when unknown")
	}
}

func TestMetricsCmd_Success_JSONFormat(t *testing.T) {
	out := withMetrics(t, &metricsMock{
		calcFn: func(since time.Time) (*observability.Metrics, error) {
			return &observability.Metrics{
				TasksAdded: 2,
				EventCount: 10,
			}, nil
		},
	}, "30d", true)

	if err := metricsCmd.RunE(metricsCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m observability.Metrics
	if err := json.Unmarshal(out.Bytes(), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if m.TasksAdded != 2 || m.EventCount != 10 {
		t.Errorf("unexpected metrics: %+v", m)
	}
}

func TestMetricsCmd_CalculateError(t *testing.T) {
	withMetrics(t, &metricsMock{
		calcFn: func(since time.Time) (*observability.Metrics, error) {
			return nil, fmt.Errorf("event log corrupted")
		},
	}, "7d", false)

	err := metricsCmd.RunE(metricsCmd, []string{})
	if err == nil {
		t.Fatal("expected error from Calculate")
	}
	if !strings.Contains(err.Error(), "calculating metrics") {
		t.Errorf("unexpected error: %v", err)
	}
}

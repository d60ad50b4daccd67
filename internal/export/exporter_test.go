package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/valter-silva-au/taskpad/pkg/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Read a book", Description: "chapter, one", Done: false},
		{ID: 2, Title: "Write code", Description: "", Done: true},
	}
}

func TestExport_JSON(t *testing.T) {
	out, err := NewExporter("").Export(sampleTasks(), "JSON")
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	var got []models.Task
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 2 || got[1].Title != "Write code" || !got[1].Done {
		t.Errorf("unexpected JSON content: %+v", got)
	}
}

func TestExport_JSONEmptyList(t *testing.T) {
	out, err := NewExporter("").Export(nil, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(out)) != "[]" {
		t.Errorf("expected empty JSON array, got %q", out)
	}
}

func TestExport_CSV(t *testing.T) {
	out, err := NewExporter("").Export(sampleTasks(), FormatCSV)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "id,title,description,done" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "chapter, one" {
		t.Errorf("description with comma not preserved: %q", records[1][2])
	}
	if records[2][3] != "true" {
		t.Errorf("done column = %q, want true", records[2][3])
	}
}

func TestExport_YAML(t *testing.T) {
	for _, format := range []string{"yaml", "yml"} {
		out, err := NewExporter("").Export(sampleTasks(), format)
		if err != nil {
			t.Fatalf("Export(%s) error: %v", format, err)
		}
		var got []models.Task
		if err := yaml.Unmarshal(out, &got); err != nil {
			t.Fatalf("output is not valid YAML: %v", err)
		}
		if len(got) != 2 || got[0].ID != 1 {
			t.Errorf("unexpected YAML content: %+v", got)
		}
	}
}

func TestExport_PDF(t *testing.T) {
	tasks := append(sampleTasks(), models.Task{ID: 3, Title: "อ่านหนังสือ"})
	out, err := NewExporter("My tasks").Export(tasks, FormatPDF)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := NewExporter("").Export(sampleTasks(), "docx")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "docx") {
		t.Errorf("error should name the format, got %v", err)
	}
}

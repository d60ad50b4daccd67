// Package export renders a snapshot of the task list for use outside the
// program. Exports are write-only: nothing reads them back into the list.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/valter-silva-au/taskpad/pkg/models"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
	FormatPDF  = "pdf"
)

// Formats lists the accepted format names in display order.
var Formats = []string{FormatJSON, FormatCSV, FormatYAML, FormatPDF}

// Exporter turns a list of tasks into bytes in one of the supported formats.
type Exporter struct {
	// Title heads the PDF report.
	Title string
}

// NewExporter returns an Exporter whose PDF output is headed by title.
func NewExporter(title string) *Exporter {
	if title == "" {
		title = "Tasks"
	}
	return &Exporter{Title: title}
}

// Export encodes tasks in the given format. The format name is case-insensitive.
func (e *Exporter) Export(tasks []models.Task, format string) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return json.MarshalIndent(tasks, "", "  ")
	case FormatCSV:
		return e.csv(tasks)
	case FormatYAML, "yml":
		out, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("marshalling tasks to yaml: %w", err)
		}
		return out, nil
	case FormatPDF:
		return e.pdf(tasks)
	default:
		return nil, fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func (e *Exporter) csv(tasks []models.Task) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "title", "description", "done"})
	for _, t := range tasks {
		_ = w.Write([]string{strconv.Itoa(t.ID), t.Title, t.Description, strconv.FormatBool(t.Done)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return b.Bytes(), nil
}

// pdf uses the core Helvetica font, which only covers cp1252. Characters
// outside it (Thai included) are replaced by the translator.
func (e *Exporter) pdf(tasks []models.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(e.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(40, 10, tr(e.Title))
	pdf.Ln(12)

	for _, t := range tasks {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s #%d %s", mark, t.ID, t.Title)), "0", "L", false)
		if t.Description != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(t.Description), "0", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Package report builds the learner progress report and renders it as a
// PDF or PNG document.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/state"
)

const (
	Title      = "Adaptive Learning Progress Report"
	NoQuizData = "No quiz data available."

	// DateLayout renders the export date as month/day/year.
	DateLayout = "1/2/2006"
)

// RGB is a table header fill color.
type RGB struct{ R, G, B uint8 }

var (
	ProfileHeaderFill = RGB{79, 70, 229}   // #4F46E5
	ScoreHeaderFill   = RGB{16, 185, 129}  // #10B981
	NoDataHeaderFill  = RGB{107, 114, 128} // #6B7280
)

// Row is a label/value pair.
type Row struct {
	Label string
	Value string
}

// Table is a two column table with a colored header. Striped tables
// shade alternate rows; the others draw a grid.
type Table struct {
	Head    [2]string
	Rows    []Row
	Fill    RGB
	Striped bool
}

// Report is the rendered-independent content of a progress report.
type Report struct {
	Title       string
	Subtitle    string
	Profile     Table
	Score       Table
	GeneratedAt time.Time
}

// Footer returns the export line shown at the bottom of every page.
func (r Report) Footer() string {
	return "Exported on: " + r.GeneratedAt.Format(DateLayout)
}

// Build assembles the report for profile. score may be nil when no quiz
// has been completed this session.
func Build(profile catalog.Profile, score *state.Score, now time.Time) Report {
	r := Report{
		Title:    Title,
		Subtitle: "Report for: " + profile.Name,
		Profile: Table{
			Head: [2]string{"Profile Attribute", "Value"},
			Rows: []Row{
				{"Name", profile.Name},
				{"Learning Goal", string(profile.Goal)},
				{"Learning Style", string(profile.LearningStyle)},
			},
			Fill:    ProfileHeaderFill,
			Striped: true,
		},
		GeneratedAt: now,
	}

	r.Score = Table{Head: [2]string{"Quiz Performance Metric", "Score"}}
	if score == nil {
		r.Score.Rows = []Row{{NoQuizData, "N/A"}}
		r.Score.Fill = NoDataHeaderFill
		return r
	}
	r.Score.Rows = []Row{
		{"Correct Answers", strconv.Itoa(score.Correct)},
		{"Total Questions", strconv.Itoa(score.Total)},
		{"Percentage", fmt.Sprintf("%d%%", score.Percentage())},
	}
	r.Score.Fill = ScoreHeaderFill
	return r
}

// Sink renders a report to w.
type Sink interface {
	Write(r Report, w io.Writer) error
}

// SinkFor picks a sink by file extension. No extension means PDF.
func SinkFor(path string) (Sink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", "":
		return PDFSink{}, nil
	case ".png":
		return PNGSink{}, nil
	}
	return nil, fmt.Errorf("unsupported report format %q", filepath.Ext(path))
}

// FileName is the default report file name for a learner.
func FileName(name string) string {
	return "progress_report_" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name) + ".pdf"
}

// Export writes r as a PDF named after the learner into dir and returns
// the file path.
func Export(dir string, r Report, name string) (string, error) {
	path := filepath.Join(dir, FileName(name))
	if err := WriteFile(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile renders r into path using the sink for its extension.
func WriteFile(path string, r Report) error {
	sink, err := SinkFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := sink.Write(r, f); err != nil {
		f.Close()
		return fmt.Errorf("rendering report: %w", err)
	}
	return f.Close()
}

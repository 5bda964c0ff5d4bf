package harness

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// StepResult is the outcome of one stage.
type StepResult struct {
	Stage      Stage
	Duration   time.Duration
	StatusCode int
	Err        error
}

// Passed reports whether the stage met its expectation.
func (s StepResult) Passed() bool {
	return s.Err == nil
}

// CaseResult collects the stages of one lifecycle case.
type CaseResult struct {
	Index      int
	EmployeeID string
	Steps      []StepResult
	Cleanup    models.CleanupOutcome
	CleanupErr error
}

// Passed reports whether every stage passed. Cleanup does not count: a
// failed cleanup is a leak, not a failed case.
func (c CaseResult) Passed() bool {
	for _, s := range c.Steps {
		if !s.Passed() {
			return false
		}
	}
	return len(c.Steps) > 0
}

// Report is the result of one suite run.
type Report struct {
	RunID      string
	StartedAt  time.Time
	Duration   time.Duration
	Login      StepResult
	AuthChecks []StepResult
	Cases      []CaseResult
}

// Passed reports whether login, every auth check and every case passed.
func (r *Report) Passed() bool {
	if !r.Login.Passed() {
		return false
	}
	for _, s := range r.AuthChecks {
		if !s.Passed() {
			return false
		}
	}
	for _, c := range r.Cases {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// Leaks returns the cases whose cleanup failed.
func (r *Report) Leaks() []CaseResult {
	var leaks []CaseResult
	for _, c := range r.Cases {
		if c.Cleanup == models.CleanupFailed {
			leaks = append(leaks, c)
		}
	}
	return leaks
}

// Render writes the report as a table followed by a one-line summary.
func (r *Report) Render(w io.Writer) error {
	rows := [][]string{stepRow("-", r.Login)}
	for _, s := range r.AuthChecks {
		rows = append(rows, stepRow("-", s))
	}
	for _, c := range r.Cases {
		caseLabel := strconv.Itoa(c.Index)
		for _, s := range c.Steps {
			rows = append(rows, stepRow(caseLabel, s))
		}
		if c.Cleanup != "" {
			rows = append(rows, []string{caseLabel, string(StageCleanup), string(c.Cleanup), "", "", errText(c.CleanupErr)})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CASE", "STAGE", "RESULT", "CODE", "DURATION", "ERROR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][2] == "FAIL":
				return failStyle
			default:
				return cellStyle
			}
		})

	verdict := "PASSED"
	if !r.Passed() {
		verdict = "FAILED"
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s: %d case(s), %d leak(s), %s\n",
		titleStyle.Render("run "+r.RunID),
		t.String(),
		verdict, len(r.Cases), len(r.Leaks()), r.Duration.Round(time.Millisecond))
	return err
}

func stepRow(caseLabel string, s StepResult) []string {
	result := "ok"
	if !s.Passed() {
		result = "FAIL"
	}
	code := ""
	if s.StatusCode != 0 {
		code = strconv.Itoa(s.StatusCode)
	}
	return []string{caseLabel, string(s.Stage), result, code, s.Duration.Round(time.Millisecond).String(), errText(s.Err)}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(err.Error(), "\n", " ")
}

package validation

import "fmt"

// Level names the stage that produced a finding.
type Level string

const (
	LevelInput    Level = "input"
	LevelGeometry Level = "geometry"
	LevelRouting  Level = "routing"
	LevelAnalytic Level = "analytical"
)

// Severity orders findings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is one finding. Path points into the input, e.g. "doors[2]" or
// "merged[0]".
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Path         string   `json:"path"`
	BuildingID   int      `json:"building_id,omitempty"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
}

// Report collects findings from loading, the geometry pipeline and
// analytics. Valid is false once any error is added.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport returns a valid report with no findings.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError records an error and marks the report invalid.
func (r *Report) AddError(result Result) {
	r.add(SeverityError, result)
}

// AddWarning records a recovered problem.
func (r *Report) AddWarning(result Result) {
	r.add(SeverityWarning, result)
}

// AddInfo records a note, such as a door the engine moved.
func (r *Report) AddInfo(result Result) {
	r.add(SeverityInfo, result)
}

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.updateSummary()
}

// Merge folds other into r. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.updateSummary()
}

func (r *Report) all() [][]Result {
	return [][]Result{r.Errors, r.Warnings, r.Info}
}

// Count returns the number of findings at the given level.
func (r *Report) Count(level Level) int {
	n := 0
	for _, group := range r.all() {
		for _, res := range group {
			if res.Level == level {
				n++
			}
		}
	}
	return n
}

// ForBuilding returns a report holding only the findings about one
// building.
func (r *Report) ForBuilding(id int) *Report {
	out := NewReport()
	for _, group := range r.all() {
		for _, res := range group {
			if res.BuildingID == id {
				out.add(res.Severity, res)
			}
		}
	}
	return out
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}

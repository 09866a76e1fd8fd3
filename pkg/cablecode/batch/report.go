package batch

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/table"
)

// Run identifies one batch conversion
type Run struct {
	ID       ulid.ULID
	Column   string
	Started  time.Time
	Finished time.Time
}

// Duration of the run
func (r Run) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Report is the outcome of a batch run. Table is the augmented copy;
// Results[i] belongs to row i.
type Report struct {
	Run          Run
	Table        *table.Table
	Descriptions []string
	Results      []cable.Result
}

// Stats summarises a run
type Stats struct {
	Total      int
	Converted  int
	Failed     int
	ByCategory map[cable.Category]int
}

// SuccessRate is Converted/Total in percent, 0 for an empty run
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Converted) * 100 / float64(s.Total)
}

// Failure is one row that could not be converted
type Failure struct {
	Row         int
	Description string
	Reason      string
}

// Stats counts results by outcome and by category. Only converted rows
// are counted per category.
func (r *Report) Stats() Stats {
	s := Stats{Total: len(r.Results), ByCategory: make(map[cable.Category]int)}
	for _, res := range r.Results {
		if res.OK() {
			s.Converted++
			s.ByCategory[res.Category]++
		} else {
			s.Failed++
		}
	}
	return s
}

// Failures lists failed rows in row order
func (r *Report) Failures() []Failure {
	var out []Failure
	for i, res := range r.Results {
		if res.OK() {
			continue
		}
		out = append(out, Failure{
			Row:         i,
			Description: r.Descriptions[i],
			Reason:      internalerr.Reason(res.Err),
		})
	}
	return out
}

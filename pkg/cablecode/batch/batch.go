// Package batch applies a converter to the description column of a table
// and appends the output column, one result per row, in row order.
package batch

import (
	"context"
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/table"
)

// Converter turns one description into a typed result. *cablecode.Engine
// satisfies it.
type Converter interface {
	Convert(description string) cable.Result
}

// Processor runs a Converter over tables
type Processor struct {
	conv   Converter
	log    logrus.FieldLogger
	column string
	output string
}

// Option customises a Processor
type Option func(*Processor)

// WithLogger sets the logger used for run start/finish and per-row failures
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Processor) {
		if log != nil {
			p.log = log
		}
	}
}

// WithOutputColumn overrides the label of the appended column
func WithOutputColumn(name string) Option {
	return func(p *Processor) {
		if name != "" {
			p.output = name
		}
	}
}

// New creates a Processor. Without WithLogger it logs nothing.
func New(conv Converter, opts ...Option) *Processor {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	p := &Processor{
		conv:   conv,
		log:    quiet,
		column: cable.DescriptionColumn,
		output: cable.OutputColumn,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process converts every row sequentially. The input table is not
// modified; the returned report carries a copy with the output column
// appended. An empty column name selects the default description column.
func (p *Processor) Process(t *table.Table, column string) (*Report, error) {
	run, descs, err := p.begin(t, column)
	if err != nil {
		return nil, err
	}

	results := make([]cable.Result, len(descs))
	for i, d := range descs {
		results[i] = p.conv.Convert(d)
	}
	return p.finish(run, t, descs, results)
}

// ProcessParallel converts rows with at most workers goroutines. Each row
// result lands in its own slot, so output order equals input order. When
// ctx is cancelled no further rows are scheduled and ctx.Err() is
// returned without a report.
func (p *Processor) ProcessParallel(ctx context.Context, t *table.Table, column string, workers int) (*Report, error) {
	run, descs, err := p.begin(t, column)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]cable.Result, len(descs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range descs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.conv.Convert(descs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.finish(run, t, descs, results)
}

func (p *Processor) begin(t *table.Table, column string) (Run, []string, error) {
	if column == "" {
		column = p.column
	}
	descs, err := t.Column(column)
	if err != nil {
		return Run{}, nil, err
	}

	run := Run{ID: newRunID(), Started: time.Now(), Column: column}
	p.log.WithFields(logrus.Fields{
		"run_id": run.ID.String(),
		"rows":   len(descs),
		"column": column,
	}).Info("conversion started")
	return run, descs, nil
}

func (p *Processor) finish(run Run, t *table.Table, descs []string, results []cable.Result) (*Report, error) {
	out := t.Clone()
	values := make([]string, len(results))
	for i, r := range results {
		values[i] = r.String()
	}
	if err := out.SetColumn(p.output, values); err != nil {
		return nil, err
	}

	run.Finished = time.Now()
	rep := &Report{
		Run:          run,
		Table:        out,
		Descriptions: descs,
		Results:      results,
	}
	stats := rep.Stats()

	for _, f := range rep.Failures() {
		p.log.WithFields(logrus.Fields{
			"run_id": run.ID.String(),
			"row":    f.Row,
			"reason": f.Reason,
		}).Debug("row not converted")
	}
	p.log.WithFields(logrus.Fields{
		"run_id":    run.ID.String(),
		"rows":      stats.Total,
		"converted": stats.Converted,
		"failed":    stats.Failed,
		"duration":  run.Duration(),
	}).Info("conversion finished")

	return rep, nil
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newRunID() ulid.ULID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy)
}

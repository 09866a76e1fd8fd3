package cablecode

import (
	"fmt"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/classify"
	"github.com/cognicore/cablecode/pkg/cablecode/config"
	"github.com/cognicore/cablecode/pkg/cablecode/encode"
	"github.com/cognicore/cablecode/pkg/cablecode/formation"
	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
)

// Engine is the conversion facade: description -> formation -> category ->
// encoder bound to that category -> code.
type Engine struct {
	tables     *rules.Tables
	classifier *classify.Classifier
	encoders   map[cable.Category]encode.Encoder
}

// Options configures an Engine instance
type Options struct {
	// Tables are the rule tables; nil selects the embedded defaults.
	Tables *rules.Tables
}

// New creates an Engine with the given rule tables
func New(opts Options) (*Engine, error) {
	t := opts.Tables
	if t == nil {
		var err error
		if t, err = config.Default(); err != nil {
			return nil, err
		}
	} else if err := t.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		tables:     t,
		classifier: classify.New(t),
		encoders: map[cable.Category]encode.Encoder{
			cable.VFD:             encode.NewVFD(t),
			cable.Instrumentation: encode.NewInstrumentation(t),
			cable.Energy:          encode.NewEnergyControl(t, cable.Energy),
			cable.Control:         encode.NewEnergyControl(t, cable.Control),
			cable.Unknown:         encode.Unknown{},
		},
	}, nil
}

// Tables returns the engine's rule tables. Callers must not modify them.
func (e *Engine) Tables() *rules.Tables {
	return e.tables
}

// Extract finds the formation token of a description
func (e *Engine) Extract(description string) (string, bool) {
	return formation.Extract(description)
}

// Classify assigns a category to a description and its formation
func (e *Engine) Classify(description, f string) classify.Decision {
	return e.classifier.Decide(description, f)
}

// Convert runs the full pipeline on one description. It never panics:
// every failure, including a panic inside an encoder, comes back as a
// failed Result.
func (e *Engine) Convert(description string) (res cable.Result) {
	f, ok := formation.Extract(description)
	if !ok {
		return cable.Failed(cable.Unknown, "", internalerr.NewFailure(
			internalerr.ErrFormationNotFound,
			encode.ReasonFormationNotFound,
		))
	}

	cat := e.classifier.Classify(description, f)
	enc, ok := e.encoders[cat]
	if !ok {
		enc = encode.Unknown{}
	}

	defer func() {
		if r := recover(); r != nil {
			res = encode.Fault(enc, cat, f, fmt.Sprint(r))
		}
	}()

	return enc.Encode(description, f)
}

// Code converts a description and flattens the result to the spreadsheet
// convention (code or failure sentinel).
func (e *Engine) Code(description string) string {
	return e.Convert(description).String()
}

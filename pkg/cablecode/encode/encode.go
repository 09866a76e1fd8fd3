// Package encode assembles vendor codes from a description and its
// formation. There is one encoder per cable category; each returns a
// cable.Result and never panics on malformed input it can detect.
package encode

import (
	"errors"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/formation"
	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
)

// Failure reasons shown to spreadsheet users.
const (
	ReasonFormationNotFound      = "Formação não encontrada"
	ReasonInvalidVFD             = "Formação VFD inválida"
	ReasonNonStandardVFD         = "Formação VFD não padrão"
	ReasonInvalidInstrumentation = "Formação de instrumentação inválida"
	ReasonInvalidConductor       = "Formação inválida"
	ReasonUnknownCategory        = "Tipo de cabo desconhecido"
	faultPrefix                  = "Erro "
)

// Encoder turns a classified description into a vendor code.
type Encoder interface {
	// Name is the label used in fault reasons ("Erro <name>: ...").
	Name() string
	Encode(description, formation string) cable.Result
}

// Fault builds the failure for an unexpected error inside an encoder.
func Fault(e Encoder, cat cable.Category, f string, cause string) cable.Result {
	return cable.Failed(cat, f, internalerr.NewFailure(
		internalerr.ErrEncodingFault,
		faultPrefix+e.Name()+": "+cause,
	))
}

// shapeFailure maps a formation parse error to the right failure kind.
func shapeFailure(e Encoder, cat cable.Category, f string, err error, reason string) cable.Result {
	if errors.Is(err, formation.ErrNoMatch) {
		return cable.Failed(cat, f, internalerr.NewFailure(internalerr.ErrInvalidFormation, reason))
	}
	return Fault(e, cat, f, err.Error())
}

// Unknown is bound to cable.Unknown; it always fails.
type Unknown struct{}

func (Unknown) Name() string { return "desconhecido" }

func (Unknown) Encode(_, f string) cable.Result {
	return cable.Failed(cable.Unknown, f, internalerr.NewFailure(internalerr.ErrUnknownCategory, ReasonUnknownCategory))
}

// withSpace appends a separator to non-empty optional fields.
func withSpace(s string) string {
	if s == "" {
		return ""
	}
	return s + " "
}

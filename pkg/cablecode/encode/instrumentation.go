package encode

import (
	"fmt"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/formation"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

// Instrumentation encodes pair/triad/quad instrumentation cables.
type Instrumentation struct {
	rules    rules.InstrumentationRules
	elements rules.ElementTable
	sections rules.SectionTable
}

// NewInstrumentation creates an instrumentation encoder
func NewInstrumentation(t *rules.Tables) *Instrumentation {
	return &Instrumentation{
		rules:    t.Instrumentation,
		elements: t.Elements,
		sections: t.InstrumentationSections,
	}
}

func (e *Instrumentation) Name() string { return "instrumentação" }

// Encode builds "<element><section> <shield> <insulation>-<cover> <count> FR <color>".
// Element and section are joined without a separator.
func (e *Instrumentation) Encode(description, f string) cable.Result {
	g, err := formation.ParseGroup(f)
	if err != nil {
		return shapeFailure(e, cable.Instrumentation, f, err, ReasonInvalidInstrumentation)
	}

	upper := textnorm.Upper(description)

	element := e.elements.Code(g.Element, e.rules.DefaultElement)
	section := e.sections.Code(g.Section)

	shield := e.rules.MultiShield
	if g.Count == 1 {
		shield = e.rules.SingleShield
	}

	code := fmt.Sprintf("%s%s %s %s-%s %02d FR %s",
		element,
		section,
		shield,
		e.rules.Insulation,
		e.rules.Cover.Resolve(upper),
		g.Count,
		e.rules.Colors.Resolve(upper),
	)
	return cable.Success(cable.Instrumentation, f, code)
}

package encode

import (
	"fmt"
	"strings"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/formation"
	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

// EnergyControl encodes plain conductor cables. The same grammar serves
// energy and control cables; only the type tag differs.
type EnergyControl struct {
	category cable.Category
	tables   *rules.Tables
}

// NewEnergyControl creates the encoder for cable.Energy or cable.Control
func NewEnergyControl(t *rules.Tables, cat cable.Category) *EnergyControl {
	return &EnergyControl{category: cat, tables: t}
}

func (e *EnergyControl) Name() string { return "energia/controle" }

// Encode builds "<section> <tag> <insulation>/<cover> <count> <class> <armor>FR <color>"
// followed by the optional tinned, CIL and conductor colour suffixes.
func (e *EnergyControl) Encode(description, f string) cable.Result {
	if e.category != cable.Energy && e.category != cable.Control {
		return cable.Failed(e.category, f, internalerr.NewFailure(internalerr.ErrUnknownCategory, ReasonUnknownCategory))
	}

	c, err := formation.ParseConductor(f)
	if err != nil {
		return shapeFailure(e, e.category, f, err, ReasonInvalidConductor)
	}

	r := e.tables.EnergyControl
	upper := textnorm.Upper(description)

	tag := r.EnergyTag
	if e.category == cable.Control {
		tag = r.ControlTag.Resolve(upper)
	}

	code := fmt.Sprintf("%s %s %s/%s %02d %s %sFR %s",
		e.tables.EnergySections.Code(c.Section),
		tag,
		r.Insulation.Resolve(upper),
		r.Cover.Resolve(upper),
		c.Count,
		r.Class.Resolve(upper),
		withSpace(r.Armor.Resolve(upper)),
		r.Colors.Resolve(upper),
	)

	if tin := r.Tinned.Resolve(upper); tin != "" {
		code += " " + tin
	}
	if HasExplicitCIL(e.tables, description) {
		code += " CIL"
	}
	if colors := ConductorColors(e.tables.ConductorColors, description, c.Count); colors != "" {
		code += " " + colors
	}

	return cable.Success(e.category, f, strings.TrimSpace(code))
}

// EncodeEnergyOrControl is a one-shot form of EnergyControl.Encode.
func EncodeEnergyOrControl(t *rules.Tables, description, f string, cat cable.Category) cable.Result {
	return NewEnergyControl(t, cat).Encode(description, f)
}

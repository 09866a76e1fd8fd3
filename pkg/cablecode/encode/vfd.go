package encode

import (
	"strconv"
	"strings"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/formation"
	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

const (
	vfdPrefix     = "VFD"
	vfdConcentric = "CONCENTRICO"
	vfdSymmetric  = "SIMETRICO"
)

// VFD encodes variable frequency drive feeder cables.
type VFD struct {
	rules rules.VFDRules
}

// NewVFD creates a VFD encoder
func NewVFD(t *rules.Tables) *VFD {
	return &VFD{rules: t.VFD}
}

func (e *VFD) Name() string { return "VFD" }

// Encode builds codes such as "VFD CONCENTRICO HEPR 3X4MM2 + 4MM2 SHF1 PT".
// Only 3+1 (concentric) and 3+3 (symmetric) pairings are standard.
func (e *VFD) Encode(description, f string) cable.Result {
	c, err := formation.ParseCompound(f)
	if err != nil {
		return shapeFailure(e, cable.VFD, f, err, ReasonInvalidVFD)
	}

	var subtype string
	switch {
	case c.Feeders == 3 && c.Grounds == 1:
		subtype = vfdConcentric
	case c.Feeders == 3 && c.Grounds == 3:
		subtype = vfdSymmetric
	default:
		return cable.Failed(cable.VFD, f, internalerr.NewFailure(internalerr.ErrNonStandardFormation, ReasonNonStandardVFD))
	}

	upper := textnorm.Upper(description)

	var b strings.Builder
	b.WriteString(vfdPrefix + " " + subtype + " ")
	b.WriteString(withSpace(e.rules.Insulation.Resolve(upper)))
	b.WriteString(strconv.Itoa(c.Feeders) + "X" + formation.DecimalComma(c.FeederSection) + "MM2 + ")
	if subtype == vfdSymmetric {
		b.WriteString(strconv.Itoa(c.Grounds) + "X")
	}
	b.WriteString(formation.DecimalComma(c.GroundSection) + "MM2 ")
	b.WriteString(withSpace(e.rules.Sheath.Resolve(upper)))
	b.WriteString(e.rules.Colors.Resolve(upper))

	return cable.Success(cable.VFD, f, strings.TrimSpace(b.String()))
}

// Package rules holds the immutable rule tables that drive classification
// and code assembly. Tables are built once (see package config) and shared
// read-only by every encoder; nothing in this package mutates a table after
// construction.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

// Tables is the complete rule set of one engine.
type Tables struct {
	EnergySections          SectionTable
	InstrumentationSections SectionTable
	Elements                ElementTable

	Keywords Keywords

	// ControlThreshold is the conductor count above which a plain
	// conductor formation is classified as control wiring.
	ControlThreshold int

	CIL             *regexp.Regexp
	ConductorColors ConductorColors

	VFD             VFDRules
	Instrumentation InstrumentationRules
	EnergyControl   EnergyControlRules
}

// Keywords are the per-category trigger words, upper-cased.
type Keywords struct {
	VFD             []string
	Instrumentation []string
	Control         []string
	Energy          []string
}

// VFDRules are the attribute priority lists of the VFD encoder.
type VFDRules struct {
	Insulation Attribute
	Sheath     Attribute
	Colors     Attribute
}

// InstrumentationRules are the attributes of the instrumentation encoder.
type InstrumentationRules struct {
	Insulation     string
	DefaultElement string
	SingleShield   string
	MultiShield    string
	Cover          Attribute
	Colors         Attribute
}

// EnergyControlRules are the attributes of the energy/control encoder.
type EnergyControlRules struct {
	EnergyTag  string
	ControlTag Attribute
	Insulation Attribute
	Cover      Attribute
	Class      Attribute
	Armor      Attribute
	Colors     Attribute
	Tinned     Attribute
}

// Validate checks that every table an encoder depends on is usable.
func (t *Tables) Validate() error {
	var errs []string

	if t.ControlThreshold < 0 {
		errs = append(errs, "control threshold must be non-negative")
	}
	if t.CIL == nil {
		errs = append(errs, "cil pattern is required")
	}
	if t.ConductorColors.Trigger == "" {
		errs = append(errs, "conductor colour trigger is required")
	}
	if t.Instrumentation.Insulation == "" {
		errs = append(errs, "instrumentation insulation is required")
	}
	if t.Instrumentation.SingleShield == "" || t.Instrumentation.MultiShield == "" {
		errs = append(errs, "instrumentation shield labels are required")
	}
	if t.EnergyControl.EnergyTag == "" || t.EnergyControl.ControlTag.Default == "" {
		errs = append(errs, "energy/control type tags are required")
	}
	for name, attr := range map[string]Attribute{
		"instrumentation.cover":     t.Instrumentation.Cover,
		"instrumentation.colors":    t.Instrumentation.Colors,
		"energy_control.insulation": t.EnergyControl.Insulation,
		"energy_control.cover":      t.EnergyControl.Cover,
		"energy_control.class":      t.EnergyControl.Class,
		"energy_control.colors":     t.EnergyControl.Colors,
		"vfd.colors":                t.VFD.Colors,
	} {
		if attr.Default == "" {
			errs = append(errs, name+" needs a default")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// NormalizeTerms upper-cases vocabulary the same way descriptions are.
func NormalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			out = append(out, textnorm.Upper(term))
		}
	}
	return out
}

// ContainsAny reports whether upper contains any of the terms.
func ContainsAny(upper string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(upper, term) {
			return true
		}
	}
	return false
}

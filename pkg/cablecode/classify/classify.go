// Package classify assigns a cable category to a description.
//
// Vocabulary signals are trusted first only for VFD and instrumentation,
// whose names are unambiguous. Energy versus control is decided by
// conductor count, and keyword lists for those two are a fallback for
// formations that carry no conductor count.
package classify

import (
	"regexp"
	"strconv"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

var (
	groupCountRe     = regexp.MustCompile(`(?i)\d+[PTQ]x`)
	conductorCountRe = regexp.MustCompile(`(?i)(\d+)Cx`)
)

// Signal names the rule that produced a decision.
type Signal string

const (
	SignalVFDKeyword             Signal = "vfd-keyword"
	SignalGroupFormation         Signal = "group-formation"
	SignalInstrumentationKeyword Signal = "instrumentation-keyword"
	SignalConductorCount         Signal = "conductor-count"
	SignalControlKeyword         Signal = "control-keyword"
	SignalEnergyKeyword          Signal = "energy-keyword"
	SignalNone                   Signal = "none"
)

// Decision is a category together with the signal that chose it.
type Decision struct {
	Category cable.Category
	Signal   Signal
}

// Classifier holds the keyword lists and the control threshold.
type Classifier struct {
	keywords  rules.Keywords
	threshold int
}

// New creates a classifier over the given rule tables
func New(t *rules.Tables) *Classifier {
	return &Classifier{
		keywords:  t.Keywords,
		threshold: t.ControlThreshold,
	}
}

// Classify returns the category of a description and its formation.
func (c *Classifier) Classify(description, formation string) cable.Category {
	return c.Decide(description, formation).Category
}

// Decide runs the ordered classification rules; the first hit wins.
func (c *Classifier) Decide(description, formation string) Decision {
	upper := textnorm.Upper(description)

	if rules.ContainsAny(upper, c.keywords.VFD) {
		return Decision{cable.VFD, SignalVFDKeyword}
	}

	if groupCountRe.MatchString(formation) {
		return Decision{cable.Instrumentation, SignalGroupFormation}
	}
	if rules.ContainsAny(upper, c.keywords.Instrumentation) {
		return Decision{cable.Instrumentation, SignalInstrumentationKeyword}
	}

	if m := conductorCountRe.FindStringSubmatch(formation); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if n > c.threshold {
				return Decision{cable.Control, SignalConductorCount}
			}
			return Decision{cable.Energy, SignalConductorCount}
		}
	}

	if rules.ContainsAny(upper, c.keywords.Control) {
		return Decision{cable.Control, SignalControlKeyword}
	}
	if rules.ContainsAny(upper, c.keywords.Energy) {
		return Decision{cable.Energy, SignalEnergyKeyword}
	}

	return Decision{cable.Unknown, SignalNone}
}

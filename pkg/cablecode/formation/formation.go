// Package formation finds the construction token ("formation") of a cable
// description and parses the structural shapes the encoders need.
//
// Extraction tries an ordered list of patterns and keeps the first one that
// matches. The compound feeder+ground form comes first because it is a
// syntactic superset of the simple conductor form: trying the simple form
// first would keep only the feeder half of a VFD formation.
package formation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const section = `\d+[,.]?\d*`

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+Cx\s*` + section + `mm2\s*\+\s*\d+Cx\s*` + section + `mm2)`),
	regexp.MustCompile(`(?i)(\d+Px\s*` + section + `mm2)`),
	regexp.MustCompile(`(?i)(\d+Tx\s*` + section + `mm2)`),
	regexp.MustCompile(`(?i)(\d+Qx\s*` + section + `mm2)`),
	regexp.MustCompile(`(?i)(\d+Cx\s*` + section + `mm2)`),
	regexp.MustCompile(`(?i)(\d+x\s*\d+x\s*` + section + `mm2)`),
}

// Extract returns the first formation found in description. The result is
// always a contiguous substring of description.
func Extract(description string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(description); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// ErrNoMatch reports that a formation lacks the shape a parser requires.
var ErrNoMatch = errors.New("formation shape does not match")

var (
	compoundRe  = regexp.MustCompile(`(?i)(\d+)Cx\s*(` + section + `)mm2\s*\+\s*(\d+)Cx\s*(` + section + `)mm2`)
	groupRe     = regexp.MustCompile(`(?i)(\d+)([PTQ])x\s*(` + section + `)mm2`)
	conductorRe = regexp.MustCompile(`(?i)(\d+)Cx\s*(` + section + `)mm2`)
)

// Compound is a feeder+ground pairing such as 3Cx4mm2+1Cx4mm2.
type Compound struct {
	Feeders       int
	FeederSection string
	Grounds       int
	GroundSection string
}

// Group is an instrumentation formation such as 12Px2.5mm2.
type Group struct {
	Count   int
	Element string // P, T or Q
	Section string
}

// Conductor is a plain conductor formation such as 4Cx2.5mm2.
type Conductor struct {
	Count   int
	Section string
}

// ParseCompound parses a feeder+ground formation.
func ParseCompound(f string) (Compound, error) {
	m := compoundRe.FindStringSubmatch(f)
	if m == nil {
		return Compound{}, ErrNoMatch
	}
	feeders, err := strconv.Atoi(m[1])
	if err != nil {
		return Compound{}, err
	}
	grounds, err := strconv.Atoi(m[3])
	if err != nil {
		return Compound{}, err
	}
	return Compound{
		Feeders:       feeders,
		FeederSection: NormalizeSection(m[2]),
		Grounds:       grounds,
		GroundSection: NormalizeSection(m[4]),
	}, nil
}

// ParseGroup parses a pair/triad/quad formation.
func ParseGroup(f string) (Group, error) {
	m := groupRe.FindStringSubmatch(f)
	if m == nil {
		return Group{}, ErrNoMatch
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Group{}, err
	}
	return Group{
		Count:   n,
		Element: strings.ToUpper(m[2]),
		Section: NormalizeSection(m[3]),
	}, nil
}

// ParseConductor parses a plain conductor formation.
func ParseConductor(f string) (Conductor, error) {
	m := conductorRe.FindStringSubmatch(f)
	if m == nil {
		return Conductor{}, ErrNoMatch
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Conductor{}, err
	}
	return Conductor{Count: n, Section: NormalizeSection(m[2])}, nil
}

// NormalizeSection turns a decimal comma into a dot ("2,5" -> "2.5").
func NormalizeSection(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// DecimalComma renders a section the vendor way ("2.5" -> "2,5").
func DecimalComma(s string) string {
	return strings.ReplaceAll(s, ".", ",")
}

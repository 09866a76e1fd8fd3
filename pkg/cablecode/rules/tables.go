package rules

import (
	"regexp"
	"strings"
)

var separators = strings.NewReplacer(".", "", ",", "")

// SectionTable maps a dot-decimal cross-section ("2.5") to a vendor code.
type SectionTable map[string]string

// NewSectionTable copies m, normalising decimal commas in the keys.
func NewSectionTable(m map[string]string) SectionTable {
	t := make(SectionTable, len(m))
	for k, v := range m {
		t[strings.ReplaceAll(strings.TrimSpace(k), ",", ".")] = v
	}
	return t
}

// Code looks up a section. Unmapped sections fall back to the digits of
// the section with separators stripped.
func (t SectionTable) Code(section string) string {
	if code, ok := t[section]; ok {
		return code
	}
	return separators.Replace(section)
}

// ElementTable maps an instrumentation group letter (P, T, Q) to a code.
type ElementTable map[string]string

// NewElementTable copies m with upper-cased letters.
func NewElementTable(m map[string]string) ElementTable {
	t := make(ElementTable, len(m))
	for k, v := range m {
		t[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return t
}

// Code returns the element code, or def when the letter is unmapped.
func (t ElementTable) Code(letter, def string) string {
	if code, ok := t[strings.ToUpper(letter)]; ok {
		return code
	}
	return def
}

// ColorRule is the conductor colour configuration of one conductor count.
// Five-conductor cables are matched on GreenYellow, every other count on
// Pattern.
type ColorRule struct {
	Pattern     *regexp.Regexp
	GreenYellow *regexp.Regexp
	Code        string
}

// ConductorColors configures the per-conductor colour suffix.
type ConductorColors struct {
	Trigger string
	ByCount map[int]ColorRule
}

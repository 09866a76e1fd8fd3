// Package cable holds the value types shared by every stage of the
// conversion: the cable category and the two-variant conversion result.
package cable

import (
	"strings"

	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
)

const (
	// NotIdentified prefixes every failure sentinel string.
	NotIdentified = "Não consegui identificar a codificação"

	// OutputColumn is the column the batch processor adds to a table.
	OutputColumn = "Referência YOFC"

	// DescriptionColumn is the conventional name of the input column.
	DescriptionColumn = "Descrição"
)

// Category is the closed set of cable families a description can fall in.
type Category int

const (
	Unknown Category = iota
	VFD
	Instrumentation
	Control
	Energy
)

// Categories lists every category, Unknown last.
var Categories = []Category{VFD, Instrumentation, Control, Energy, Unknown}

var categoryNames = map[Category]string{
	Unknown:         "UNKNOWN",
	VFD:             "VFD",
	Instrumentation: "INSTRUMENTATION",
	Control:         "CONTROL",
	Energy:          "ENERGY",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Unknown]
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return Unknown, false
}

// Result is the outcome of converting one description. Exactly one of
// Code and Err is meaningful: Err is nil on success.
type Result struct {
	Category  Category
	Formation string
	Code      string
	Err       error
}

// Success builds a successful result.
func Success(cat Category, formation, code string) Result {
	return Result{Category: cat, Formation: formation, Code: code}
}

// Failed builds a failed result.
func Failed(cat Category, formation string, err error) Result {
	return Result{Category: cat, Formation: formation, Err: err}
}

// OK reports whether the conversion produced a code.
func (r Result) OK() bool {
	return r.Err == nil
}

// String flattens the result to the spreadsheet convention: the code on
// success, the failure sentinel otherwise.
func (r Result) String() string {
	if r.Err == nil {
		return r.Code
	}
	return Sentinel(internalerr.Reason(r.Err))
}

// Sentinel formats a failure reason the way spreadsheet consumers expect.
func Sentinel(reason string) string {
	return NotIdentified + " (" + reason + ")"
}

// IsFailure reports whether a flattened value is a failure sentinel.
func IsFailure(value string) bool {
	return strings.Contains(value, NotIdentified)
}

package rules

import "strings"

// Choice is one candidate of an ordered attribute priority list. It
// matches when at least one Any term is present (if Any is set) and every
// All term is present (if All is set).
type Choice struct {
	Code string   `yaml:"code"`
	Any  []string `yaml:"any,omitempty"`
	All  []string `yaml:"all,omitempty"`
}

// Matches tests the choice against an upper-cased description.
func (c Choice) Matches(upper string) bool {
	if len(c.Any) == 0 && len(c.All) == 0 {
		return false
	}
	if len(c.Any) > 0 && !ContainsAny(upper, c.Any) {
		return false
	}
	for _, term := range c.All {
		if !strings.Contains(upper, term) {
			return false
		}
	}
	return true
}

// Attribute resolves a code by first-match over its choices.
type Attribute struct {
	Default string   `yaml:"default"`
	Choices []Choice `yaml:"choices"`
}

// NewAttribute normalises the vocabulary of every choice.
func NewAttribute(def string, choices []Choice) Attribute {
	normalized := make([]Choice, len(choices))
	for i, c := range choices {
		normalized[i] = Choice{
			Code: c.Code,
			Any:  NormalizeTerms(c.Any),
			All:  NormalizeTerms(c.All),
		}
	}
	return Attribute{Default: def, Choices: normalized}
}

// Resolve returns the code of the first matching choice, or the default.
func (a Attribute) Resolve(upper string) string {
	for _, c := range a.Choices {
		if c.Matches(upper) {
			return c.Code
		}
	}
	return a.Default
}

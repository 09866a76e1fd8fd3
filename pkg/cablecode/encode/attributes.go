package encode

import (
	"strings"

	"github.com/cognicore/cablecode/pkg/cablecode/rules"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

// HasExplicitCIL reports whether the description names a cylindrical
// finish. A bare "CIL" elsewhere in the text does not count.
func HasExplicitCIL(t *rules.Tables, description string) bool {
	if t.CIL == nil {
		return false
	}
	return t.CIL.MatchString(textnorm.Upper(description))
}

// ConductorColors returns the per-conductor colour fragment, or "" when the
// trigger phrase is absent, the count is not configured, or the colour
// sequence does not match.
func ConductorColors(cc rules.ConductorColors, description string, count int) string {
	upper := textnorm.Upper(description)
	if cc.Trigger == "" || !strings.Contains(upper, cc.Trigger) {
		return ""
	}

	rule, ok := cc.ByCount[count]
	if !ok {
		return ""
	}

	re := rule.Pattern
	if count == 5 {
		re = rule.GreenYellow
	}
	if re != nil && re.MatchString(upper) {
		return rule.Code
	}
	return ""
}

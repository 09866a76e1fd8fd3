package config

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

//go:embed defaults/*.yaml
var defaults embed.FS

const (
	defaultConversionFile = "defaults/conversion_rules.yaml"
	defaultPatternsFile   = "defaults/special_patterns.yaml"

	defaultControlThreshold = 5
)

// Loader loads both rule documents and builds the rule tables.
// An empty path selects the embedded default document.
type Loader struct {
	ConversionPath string
	PatternsPath   string
}

// Documents reads the raw rule documents
func (l *Loader) Documents() (*ConversionRules, *SpecialPatterns, error) {
	var (
		cr  *ConversionRules
		sp  *SpecialPatterns
		err error
	)

	if l.ConversionPath != "" {
		cr, err = LoadConversionRules(l.ConversionPath)
	} else {
		cr, err = defaultConversionRules()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load conversion rules: %w", err)
	}

	if l.PatternsPath != "" {
		sp, err = LoadSpecialPatterns(l.PatternsPath)
	} else {
		sp, err = defaultSpecialPatterns()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load special patterns: %w", err)
	}

	return cr, sp, nil
}

// Load reads both documents and returns validated rule tables
func (l *Loader) Load() (*rules.Tables, error) {
	cr, sp, err := l.Documents()
	if err != nil {
		return nil, err
	}
	return Build(cr, sp)
}

// Default returns the rule tables built from the embedded documents
func Default() (*rules.Tables, error) {
	return (&Loader{}).Load()
}

// MustDefault is Default for package-level initialisation and tests
func MustDefault() *rules.Tables {
	t, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded rule tables: %v", err))
	}
	return t
}

func defaultConversionRules() (*ConversionRules, error) {
	data, err := defaults.ReadFile(defaultConversionFile)
	if err != nil {
		return nil, err
	}
	return ParseConversionRules(data)
}

func defaultSpecialPatterns() (*SpecialPatterns, error) {
	data, err := defaults.ReadFile(defaultPatternsFile)
	if err != nil {
		return nil, err
	}
	return ParseSpecialPatterns(data)
}

// Build turns parsed documents into rule tables. Every regular expression
// is compiled here so that a broken pattern fails construction instead of
// a row.
func Build(cr *ConversionRules, sp *SpecialPatterns) (*rules.Tables, error) {
	if cr == nil || sp == nil {
		return nil, fmt.Errorf("%w: both rule documents are required", internalerr.ErrInvalidConfig)
	}

	t := &rules.Tables{
		EnergySections:          rules.NewSectionTable(cr.EnergyControlSections),
		InstrumentationSections: rules.NewSectionTable(cr.InstrumentationSections),
		Elements:                rules.NewElementTable(cr.InstrumentationElements),
		Keywords: rules.Keywords{
			VFD:             rules.NormalizeTerms(sp.CategoryKeywords.VFD),
			Instrumentation: rules.NormalizeTerms(sp.CategoryKeywords.Instrumentation),
			Control:         rules.NormalizeTerms(sp.CategoryKeywords.Control),
			Energy:          rules.NormalizeTerms(sp.CategoryKeywords.Energy),
		},
		ControlThreshold: defaultControlThreshold,
		VFD: rules.VFDRules{
			Insulation: normalizeAttribute(sp.VFD.Insulation),
			Sheath:     normalizeAttribute(sp.VFD.Sheath),
			Colors:     normalizeAttribute(sp.VFD.Colors),
		},
		Instrumentation: rules.InstrumentationRules{
			Insulation:     sp.Instrumentation.Insulation,
			DefaultElement: sp.Instrumentation.DefaultElement,
			SingleShield:   sp.Instrumentation.ShieldSingle,
			MultiShield:    sp.Instrumentation.ShieldMulti,
			Cover:          normalizeAttribute(sp.Instrumentation.Cover),
			Colors:         normalizeAttribute(sp.Instrumentation.Colors),
		},
		EnergyControl: rules.EnergyControlRules{
			EnergyTag:  sp.EnergyControl.EnergyTag,
			ControlTag: normalizeAttribute(sp.EnergyControl.ControlTag),
			Insulation: normalizeAttribute(sp.EnergyControl.Insulation),
			Cover:      normalizeAttribute(sp.EnergyControl.Cover),
			Class:      normalizeAttribute(sp.EnergyControl.Class),
			Armor:      normalizeAttribute(sp.EnergyControl.Armor),
			Colors:     normalizeAttribute(sp.EnergyControl.Colors),
			Tinned:     normalizeAttribute(sp.EnergyControl.Tinned),
		},
	}

	if t.Instrumentation.DefaultElement == "" {
		t.Instrumentation.DefaultElement = "2"
	}
	if n := sp.Classification.ControlMinConductorsExclusive; n != nil {
		t.ControlThreshold = *n
	}

	if sp.CIL.Pattern == "" {
		return nil, fmt.Errorf("%w: cil.pattern is required", internalerr.ErrInvalidConfig)
	}
	cil, err := compile("cil.pattern", sp.CIL.Pattern)
	if err != nil {
		return nil, err
	}
	t.CIL = cil

	colors, err := buildConductorColors(sp.ConductorColors)
	if err != nil {
		return nil, err
	}
	t.ConductorColors = colors

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func normalizeAttribute(a rules.Attribute) rules.Attribute {
	return rules.NewAttribute(a.Default, a.Choices)
}

func buildConductorColors(doc ConductorColorsDoc) (rules.ConductorColors, error) {
	cc := rules.ConductorColors{
		Trigger: textnorm.Upper(strings.TrimSpace(doc.Trigger)),
		ByCount: make(map[int]rules.ColorRule, len(doc.ByCount)),
	}

	counts := make([]int, 0, len(doc.ByCount))
	for n := range doc.ByCount {
		counts = append(counts, n)
	}
	sort.Ints(counts)

	for _, n := range counts {
		entry := doc.ByCount[n]
		name := fmt.Sprintf("conductor_colors.by_count.%d", n)
		if entry.Code == "" {
			return cc, fmt.Errorf("%w: %s.code is required", internalerr.ErrInvalidConfig, name)
		}

		rule := rules.ColorRule{Code: entry.Code}
		var err error
		if n == 5 {
			if entry.PatternGreenYellow == "" {
				return cc, fmt.Errorf("%w: %s.pattern_green_yellow is required", internalerr.ErrInvalidConfig, name)
			}
			rule.GreenYellow, err = compile(name+".pattern_green_yellow", entry.PatternGreenYellow)
		} else {
			if entry.Pattern == "" {
				return cc, fmt.Errorf("%w: %s.pattern is required", internalerr.ErrInvalidConfig, name)
			}
			rule.Pattern, err = compile(name+".pattern", entry.Pattern)
		}
		if err != nil {
			return cc, err
		}
		cc.ByCount[n] = rule
	}

	return cc, nil
}

// compile builds a case-insensitive expression.
func compile(name, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, name, err)
	}
	return re, nil
}

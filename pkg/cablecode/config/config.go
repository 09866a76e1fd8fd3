package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/cablecode/pkg/cablecode/rules"
)

// ConversionRules is the section and element lookup document
type ConversionRules struct {
	EnergyControlSections   map[string]string `yaml:"energy_control_sections"`
	InstrumentationSections map[string]string `yaml:"instrumentation_sections"`
	InstrumentationElements map[string]string `yaml:"instrumentation_elements"`
}

// LoadConversionRules loads section and element tables from a YAML file
func LoadConversionRules(path string) (*ConversionRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConversionRules(data)
}

// ParseConversionRules decodes a conversion rules document
func ParseConversionRules(data []byte) (*ConversionRules, error) {
	var cr ConversionRules
	if err := yaml.Unmarshal(data, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// SpecialPatterns is the classification vocabulary and attribute document
type SpecialPatterns struct {
	CategoryKeywords CategoryKeywords   `yaml:"category_keywords"`
	Classification   Classification     `yaml:"classification"`
	CIL              CILRule            `yaml:"cil"`
	ConductorColors  ConductorColorsDoc `yaml:"conductor_colors"`
	VFD              VFDDoc             `yaml:"vfd"`
	Instrumentation  InstrumentationDoc `yaml:"instrumentation"`
	EnergyControl    EnergyControlDoc   `yaml:"energy_control"`
}

// CategoryKeywords lists trigger words per category
type CategoryKeywords struct {
	VFD             []string `yaml:"vfd"`
	Instrumentation []string `yaml:"instrumentation"`
	Control         []string `yaml:"control"`
	Energy          []string `yaml:"energy"`
}

// Classification holds the structural classification threshold
type Classification struct {
	ControlMinConductorsExclusive *int `yaml:"control_min_conductors_exclusive"`
}

// CILRule is the explicit-finish trigger expression
type CILRule struct {
	Pattern string `yaml:"pattern"`
}

// ConductorColorsDoc configures per-conductor colour suffixes
type ConductorColorsDoc struct {
	Trigger string                    `yaml:"trigger"`
	ByCount map[int]ConductorColorDoc `yaml:"by_count"`
}

// ConductorColorDoc is the colour rule for one conductor count
type ConductorColorDoc struct {
	Pattern            string `yaml:"pattern,omitempty"`
	PatternGreenYellow string `yaml:"pattern_green_yellow,omitempty"`
	Code               string `yaml:"code"`
}

// VFDDoc lists the VFD attribute priorities
type VFDDoc struct {
	Insulation rules.Attribute `yaml:"insulation"`
	Sheath     rules.Attribute `yaml:"sheath"`
	Colors     rules.Attribute `yaml:"colors"`
}

// InstrumentationDoc lists the instrumentation attributes
type InstrumentationDoc struct {
	Insulation     string          `yaml:"insulation"`
	DefaultElement string          `yaml:"default_element"`
	ShieldSingle   string          `yaml:"shield_single"`
	ShieldMulti    string          `yaml:"shield_multi"`
	Cover          rules.Attribute `yaml:"cover"`
	Colors         rules.Attribute `yaml:"colors"`
}

// EnergyControlDoc lists the energy/control attributes
type EnergyControlDoc struct {
	EnergyTag  string          `yaml:"energy_tag"`
	ControlTag rules.Attribute `yaml:"control_tag"`
	Insulation rules.Attribute `yaml:"insulation"`
	Cover      rules.Attribute `yaml:"cover"`
	Class      rules.Attribute `yaml:"class"`
	Armor      rules.Attribute `yaml:"armor"`
	Colors     rules.Attribute `yaml:"colors"`
	Tinned     rules.Attribute `yaml:"tinned"`
}

// LoadSpecialPatterns loads the vocabulary document from a YAML file
func LoadSpecialPatterns(path string) (*SpecialPatterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSpecialPatterns(data)
}

// ParseSpecialPatterns decodes a special patterns document
func ParseSpecialPatterns(data []byte) (*SpecialPatterns, error) {
	var sp SpecialPatterns
	if err := yaml.Unmarshal(data, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

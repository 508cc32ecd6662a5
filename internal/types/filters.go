// Package types provides type definitions for structured data used throughout the cv-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default experience range for a fresh filter state
const (
	DefaultMinYears = 0
	DefaultMaxYears = 20
)

// FilterState describes the active filter dimensions for the candidate list.
// An empty slice on any multi-select dimension means "no restriction".
type FilterState struct {
	EducationLevels    []EducationLevel `json:"education_levels"`
	MinYearsExperience float64          `json:"min_years_experience" validate:"gte=0"`
	MaxYearsExperience float64          `json:"max_years_experience" validate:"gte=0"`
	CompanySizes       []CompanySize    `json:"company_sizes"`
	MinTechAdjacency   int              `json:"min_tech_adjacency" validate:"gte=0,lte=100"`
	MatchBands         []MatchBand      `json:"match_bands"`
	// Keywords are ANDed: every requested keyword must substring-match
	// one of the candidate's matched keywords.
	Keywords []string `json:"keywords"`
}

// DefaultFilterState returns the unrestricted filter state
func DefaultFilterState() FilterState {
	return FilterState{
		EducationLevels:    []EducationLevel{},
		MinYearsExperience: DefaultMinYears,
		MaxYearsExperience: DefaultMaxYears,
		CompanySizes:       []CompanySize{},
		MinTechAdjacency:   0,
		MatchBands:         []MatchBand{},
		Keywords:           []string{},
	}
}

// Validate checks numeric ranges and enum membership. An unknown enum member
// is a programming error at the call boundary and is rejected rather than
// silently ignored.
func (f *FilterState) Validate() error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return err
	}
	if f.MinYearsExperience > f.MaxYearsExperience {
		return fmt.Errorf("invalid experience range: min %.1f exceeds max %.1f",
			f.MinYearsExperience, f.MaxYearsExperience)
	}
	for _, l := range f.EducationLevels {
		if !l.Valid() {
			return fmt.Errorf("unknown education level: %q", l)
		}
	}
	for _, s := range f.CompanySizes {
		if !s.Valid() {
			return fmt.Errorf("unknown company size: %q", s)
		}
	}
	for _, b := range f.MatchBands {
		if !b.Valid() {
			return fmt.Errorf("unknown match band: %q", b)
		}
	}
	return nil
}

// Package types provides type definitions for structured data used throughout the cv-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchBand is the coarse classification derived from the numeric match score
type MatchBand string

// Match bands
const (
	BandHigh   MatchBand = "high"
	BandMedium MatchBand = "medium"
	BandLow    MatchBand = "low"
)

// Valid reports whether b is a known match band
func (b MatchBand) Valid() bool {
	switch b {
	case BandHigh, BandMedium, BandLow:
		return true
	}
	return false
}

// EducationLevel represents a candidate's or job's education level
type EducationLevel string

// Education levels
const (
	EducationHighSchool EducationLevel = "high_school"
	EducationOther      EducationLevel = "other"
	EducationBachelors  EducationLevel = "bachelors"
	EducationMasters    EducationLevel = "masters"
	EducationPhD        EducationLevel = "phd"
)

// educationRank orders levels for requirement comparison. "other" sits
// between high_school and bachelors; that ordering is carried over from the
// upstream dataset and is load-bearing for existing explanation data, so it
// must not be "corrected" here.
var educationRank = map[EducationLevel]int{
	EducationHighSchool: 0,
	EducationOther:      1,
	EducationBachelors:  2,
	EducationMasters:    3,
	EducationPhD:        4,
}

// Rank returns the numeric rank used when comparing against a requirement.
// Unknown levels rank below high_school.
func (l EducationLevel) Rank() int {
	if r, ok := educationRank[l]; ok {
		return r
	}
	return -1
}

// Valid reports whether l is a known education level
func (l EducationLevel) Valid() bool {
	_, ok := educationRank[l]
	return ok
}

// CompanySize labels the size of a past role's employer. Sizes are unordered
// categories and are never compared numerically.
type CompanySize string

// Company sizes
const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// Valid reports whether s is a known company size
func (s CompanySize) Valid() bool {
	switch s {
	case SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return true
	}
	return false
}

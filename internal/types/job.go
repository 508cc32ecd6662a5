// Package types provides type definitions for structured data used throughout the cv-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobDescription represents a structured job posting. Immutable once loaded
// for a screening session.
type JobDescription struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
	// Requirements are required skills in display-priority order.
	// Order carries no weight in scoring.
	Requirements         []string       `json:"requirements"`
	PreferredSkills      []string       `json:"preferred_skills"`
	MinYearsExperience   float64        `json:"min_years_experience"`
	EducationRequirement EducationLevel `json:"education_requirement"`
	// Keywords drive highlighting and the keyword filter, not the score.
	Keywords []string `json:"keywords"`
}

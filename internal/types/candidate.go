// Package types provides type definitions for structured data used throughout the cv-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate represents a single parsed CV as produced by the upload/parsing layer.
// All fields are populated before scoring; the core treats them as read-only.
type Candidate struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	Filename             string     `json:"filename"`
	Content              string     `json:"content"`
	Education            Education  `json:"education"`
	TotalYearsExperience float64    `json:"total_years_experience"`
	PastRoles            []PastRole `json:"past_roles"`
	Skills               []string   `json:"skills"`
	// TechAdjacency is a precomputed 0-100 signal of how closely the
	// candidate's overall technical profile adjoins the target domain.
	TechAdjacency int `json:"tech_adjacency"`
	// SkillCitations holds per-skill excerpts produced by the external
	// extraction step, keyed into match explanations when a skill matches.
	SkillCitations []SkillCitation `json:"skill_citations,omitempty"`
}

// Education represents a candidate's highest education record
type Education struct {
	Level       EducationLevel `json:"level"`
	Field       string         `json:"field"`
	Institution string         `json:"institution"`
	Year        int            `json:"year"`
}

// PastRole represents a single prior position on a CV.
// Candidates hold past roles most recent first; index 0 is the current role.
type PastRole struct {
	Title            string      `json:"title"`
	Company          string      `json:"company"`
	CompanySize      CompanySize `json:"company_size"`
	Duration         string      `json:"duration"`
	YearsInRole      float64     `json:"years_in_role"`
	Description      string      `json:"description"`
	RelevantKeywords []string    `json:"relevant_keywords"`
}

// SkillCitation ties a skill claim to an excerpt of the candidate's source
// document. Excerpts come from the external extraction step and are carried
// as opaque strings.
type SkillCitation struct {
	Skill    string `json:"skill"`
	Citation string `json:"citation,omitempty"`
}

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-screener/internal/config"
	"github.com/jonathan/cv-screener/internal/types"
)

const testCandidatesJSON = `[
  {
    "id": "c-001",
    "name": "Sarah Chen",
    "email": "sarah.chen@email.com",
    "filename": "sarah_chen_cv.pdf",
    "content": "SARAH CHEN - Senior Software Engineer with React, TypeScript, Node.js and AWS.",
    "education": {"level": "masters", "field": "Computer Science", "institution": "Stanford University", "year": 2015},
    "total_years_experience": 9,
    "past_roles": [],
    "skills": ["React", "TypeScript", "Node.js", "AWS"],
    "tech_adjacency": 95
  }
]`

const testJobJSON = `{
  "id": "jd-001",
  "title": "Senior Full-Stack Engineer",
  "company": "TechCorp Inc.",
  "filename": "jd.pdf",
  "content": "Senior Full-Stack Engineer with React, TypeScript and Node.js.",
  "requirements": ["React", "TypeScript", "Node.js"],
  "preferred_skills": ["Docker"],
  "min_years_experience": 5,
  "education_requirement": "bachelors",
  "keywords": ["React", "TypeScript", "Node.js"]
}`

func writeTestDataset(t *testing.T) (candidatesPath, jobPath string) {
	t.Helper()
	dir := t.TempDir()
	candidatesPath = filepath.Join(dir, "candidates.json")
	jobPath = filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(candidatesPath, []byte(testCandidatesJSON), 0644))
	require.NoError(t, os.WriteFile(jobPath, []byte(testJobJSON), 0644))
	return candidatesPath, jobPath
}

func TestLoadScoredCorpus(t *testing.T) {
	candidatesPath, jobPath := writeTestDataset(t)

	scored, job, err := loadScoredCorpus(context.Background(), config.Default(), candidatesPath, jobPath)
	require.NoError(t, err)

	require.Len(t, scored, 1)
	assert.Equal(t, "Sarah Chen", scored[0].Candidate.Name)
	assert.Equal(t, types.BandHigh, scored[0].Match.Band)
	assert.Equal(t, "Senior Full-Stack Engineer", job.Title)
}

func TestLoadScoredCorpus_FlagOverridesConfig(t *testing.T) {
	candidatesPath, jobPath := writeTestDataset(t)

	cfg := config.Default()
	cfg.Candidates = filepath.Join(t.TempDir(), "does-not-exist.json")
	cfg.Job = jobPath

	scored, _, err := loadScoredCorpus(context.Background(), cfg, candidatesPath, "")
	require.NoError(t, err)
	assert.Len(t, scored, 1)
}

func TestLoadScoredCorpus_MissingPaths(t *testing.T) {
	_, _, err := loadScoredCorpus(context.Background(), &config.Config{}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates file")
}

func TestFilterEnumConversion(t *testing.T) {
	levels := toEducationLevels([]string{"bachelors", "phd"})
	assert.Equal(t, []types.EducationLevel{types.EducationBachelors, types.EducationPhD}, levels)

	sizes := toCompanySizes([]string{"startup"})
	assert.Equal(t, []types.CompanySize{types.SizeStartup}, sizes)

	bands := toMatchBands([]string{"high", "low"})
	assert.Equal(t, []types.MatchBand{types.BandHigh, types.BandLow}, bands)
}

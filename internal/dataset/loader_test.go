package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-screener/internal/types"
)

func TestLoadCandidates(t *testing.T) {
	candidates, err := LoadCandidates(filepath.Join("testdata", "candidates.json"))
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	sarah := candidates[0]
	assert.Equal(t, "c-001", sarah.ID)
	assert.Equal(t, types.EducationMasters, sarah.Education.Level)
	assert.Equal(t, 9.0, sarah.TotalYearsExperience)
	assert.Equal(t, types.SizeStartup, sarah.PastRoles[0].CompanySize)
	require.Len(t, sarah.SkillCitations, 1)
	assert.Equal(t, "React", sarah.SkillCitations[0].Skill)

	jessica := candidates[2]
	assert.Equal(t, types.EducationOther, jessica.Education.Level)
}

func TestLoadJob(t *testing.T) {
	job, err := LoadJob(filepath.Join("testdata", "job.json"))
	require.NoError(t, err)

	assert.Equal(t, "jd-001", job.ID)
	assert.Equal(t, "Senior Full-Stack Engineer", job.Title)
	assert.Len(t, job.Requirements, 8)
	assert.Equal(t, types.EducationBachelors, job.EducationRequirement)
	assert.Equal(t, 5.0, job.MinYearsExperience)
}

func TestLoadCandidates_MissingFile(t *testing.T) {
	_, err := LoadCandidates(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "failed to read")
}

func TestLoadCandidates_SchemaViolation(t *testing.T) {
	path := writeTemp(t, `[{"id": "c-x", "name": "No Fields"}]`)

	_, err := LoadCandidates(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestLoadCandidates_RejectsOutOfRangeAdjacency(t *testing.T) {
	path := writeTemp(t, `[{
		"id": "c-x", "name": "Over Adjacent", "email": "", "filename": "", "content": "",
		"education": {"level": "bachelors", "field": "", "institution": "", "year": 2020},
		"total_years_experience": 1, "past_roles": [], "skills": [], "tech_adjacency": 150
	}]`)

	_, err := LoadCandidates(path)
	assert.Error(t, err)
}

func TestLoadJob_RejectsUnknownEducationLevel(t *testing.T) {
	path := writeTemp(t, `{
		"id": "jd-x", "title": "Role", "company": "Co", "content": "",
		"requirements": [], "preferred_skills": [], "min_years_experience": 0,
		"education_requirement": "doctorate", "keywords": []
	}`)

	_, err := LoadJob(path)
	assert.Error(t, err)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

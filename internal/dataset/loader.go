// Package dataset loads pre-parsed candidate and job description fixtures.
// Document parsing happens upstream; this package only consumes its JSON
// output, validating each file against a JSON Schema before decoding.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-screener/internal/types"
)

//go:embed schemas/candidates.schema.json
var candidatesSchema string

//go:embed schemas/job.schema.json
var jobSchema string

// LoadError wraps failures while reading, validating or decoding a dataset
// file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadCandidates reads, validates and decodes a candidates JSON file
func LoadCandidates(path string) ([]types.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := validateJSON(candidatesSchema, string(content)); err != nil {
		return nil, &LoadError{Path: path, Message: "candidates file failed schema validation", Cause: err}
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(content, &candidates); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}
	return candidates, nil
}

// LoadJob reads, validates and decodes a job description JSON file
func LoadJob(path string) (*types.JobDescription, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := validateJSON(jobSchema, string(content)); err != nil {
		return nil, &LoadError{Path: path, Message: "job file failed schema validation", Cause: err}
	}

	var job types.JobDescription
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}
	return &job, nil
}

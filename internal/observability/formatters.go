// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/cv-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxNameLength truncates candidate names in table rows
	maxNameLength = 25
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of the loaded job description
func (p *Printer) PrintJob(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Company:  %s\n", job.Company)
	fmt.Fprintf(&sb, "Role:     %s\n", job.Title)
	fmt.Fprintf(&sb, "Min exp:  %.0f years\n", job.MinYearsExperience)
	fmt.Fprintf(&sb, "Education: %s\n", job.EducationRequirement)
	sb.WriteString("\nRequirements:\n")
	for _, req := range job.Requirements {
		sb.WriteString("  - " + req + "\n")
	}

	p.printBox("Job Description", strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking writes a ranked candidate table
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRanking(scored []types.ScoredCandidate) {
	if len(scored) == 0 {
		fmt.Fprintln(p.out, "No candidates to display.")
		return
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCORE\tBAND\tYEARS\tKEYWORDS")
	fmt.Fprintln(tw, "----\t-----\t----\t-----\t--------")

	for _, sc := range scored {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\t%d\n",
			truncate(sc.Candidate.Name, maxNameLength),
			sc.Match.Score,
			sc.Match.Band,
			sc.Candidate.TotalYearsExperience,
			len(sc.Match.MatchedKeywords),
		)
	}

	tw.Flush()
}

// PrintExplanation outputs the match explanation for one candidate
func (p *Printer) PrintExplanation(sc *types.ScoredCandidate) {
	if sc == nil {
		return
	}

	var sb strings.Builder
	exp := sc.Match.Explanation
	fmt.Fprintf(&sb, "Score:     %d (%s)\n", sc.Match.Score, sc.Match.Band)
	fmt.Fprintf(&sb, "Education: %s\n", exp.EducationNote)
	fmt.Fprintf(&sb, "Experience: %s\n", exp.ExperienceNote)
	sb.WriteString("\nSkills:\n")
	for _, sm := range exp.SkillMatches {
		marker := "✗"
		if sm.Matched {
			marker = "✓"
		}
		fmt.Fprintf(&sb, "  %s %s\n", marker, sm.Skill)
	}
	sb.WriteString("\n" + exp.OverallReason)

	p.printBox(sc.Candidate.Name, sb.String())
}

// truncate shortens a string to maxLen characters
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

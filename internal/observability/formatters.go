// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the headline scores of an analysis report.
func (p *Printer) PrintSummary(report *analysis.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:      %s\n", report.FileName))
	sb.WriteString(fmt.Sprintf("Score:     %d/100 (%s)\n", report.ResumeScore, report.ResumeStrength))
	sb.WriteString(fmt.Sprintf("ATS:       %d/100\n", report.ATSScore))
	sb.WriteString(fmt.Sprintf("Role fit:  %s", report.RoleFit))
	if report.JobMatchScore != nil {
		sb.WriteString(fmt.Sprintf("\nJob match: %d/100", *report.JobMatchScore))
	}

	p.printBox("RESUME ANALYSIS", sb.String())
}

// PrintSectionScores outputs the per-section score breakdown.
func (p *Printer) PrintSectionScores(report *analysis.Report) {
	if report == nil {
		return
	}

	scores := report.SectionScores
	rows := []struct {
		name  string
		score int
	}{
		{"Personal info", scores.PersonalInfo},
		{"Summary", scores.Summary},
		{"Skills", scores.Skills},
		{"Work experience", scores.WorkExperience},
		{"Education", scores.Education},
		{"Projects", scores.Projects},
		{"Certifications", scores.Certifications},
		{"Formatting", scores.Formatting},
	}

	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%-16s %3d/100", row.name, row.score))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTION SCORES", sb.String())
}

// PrintSkills outputs the extracted skills, and the match breakdown when a
// job description was supplied.
func (p *Printer) PrintSkills(report *analysis.Report) {
	if report == nil || len(report.ExtractedSkills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted: %d\n", len(report.ExtractedSkills)))
	count := min(len(report.ExtractedSkills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", report.ExtractedSkills[i]))
	}
	if len(report.ExtractedSkills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.ExtractedSkills)-maxItemsToShow))
	}

	if report.JobMatchScore != nil {
		sb.WriteString(fmt.Sprintf("\nMatched:  %d\n", len(report.MatchedSkills)))
		sb.WriteString(fmt.Sprintf("Missing:  %d", len(report.MissingSkills)))
		if len(report.MissingSkills) > 0 {
			missing := strings.Join(report.MissingSkills, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf(" (%s)", missing))
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs the generated feedback items grouped in order.
func (p *Printer) PrintFeedback(report *analysis.Report) {
	if report == nil || len(report.Feedback) == 0 {
		return
	}

	var sb strings.Builder
	for i, item := range report.Feedback {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(item.Type)), item.Section))
		sb.WriteString(fmt.Sprintf("  %s", item.Message))
		if i < len(report.Feedback)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FEEDBACK", sb.String())
}

// PrintKeywordDensity outputs nonzero keyword densities, highest first.
func (p *Printer) PrintKeywordDensity(report *analysis.Report) {
	if report == nil || len(report.KeywordDensity) == 0 {
		return
	}

	type entry struct {
		keyword string
		density float64
	}
	var entries []entry
	for keyword, density := range report.KeywordDensity {
		if density > 0 {
			entries = append(entries, entry{keyword, density})
		}
	}
	if len(entries) == 0 {
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].density != entries[j].density {
			return entries[i].density > entries[j].density
		}
		return entries[i].keyword < entries[j].keyword
	})

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%-14s %.2f%%", entries[i].keyword, entries[i].density))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KEYWORD DENSITY", sb.String())
}

// PrintReport outputs the full verbose rendering of a report.
func (p *Printer) PrintReport(report *analysis.Report) {
	p.PrintSummary(report)
	p.PrintSectionScores(report)
	p.PrintSkills(report)
	p.PrintKeywordDensity(report)
	p.PrintFeedback(report)
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintScores outputs the overall ATS score with the weighted subscore
// breakdown.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score:    %d / 100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Impact Score: %d / 20\n", result.ImpactScore))
	sb.WriteString("\nSubscores (weighted):\n")

	names := make([]string, 0, len(result.Subscores))
	for name := range result.Subscores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-18s %5.1f  x %.2f\n", name, result.Subscores[name], result.Theta[name]))
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs detected skills and the top missing vocabulary terms.
func (p *Printer) PrintSkills(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d skills:\n", len(result.Skills)))

	count := min(len(result.Skills), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", result.Skills[i]))
	}
	if len(result.Skills) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-count))
	}

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		missing := result.MissingKeywords
		if len(missing) > maxItemsToShow {
			missing = missing[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(missing, ", ")))
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBackground outputs experience, education, and certification facts.
func (p *Printer) PrintBackground(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %.2f years\n", result.ExperienceYears))

	if len(result.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(result.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := result.Education[i]
			line := entry.Line
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
			if entry.Degree != "" {
				sb.WriteString(fmt.Sprintf("    degree: %s", entry.Degree))
				if entry.StartYear != nil && entry.EndYear != nil {
					sb.WriteString(fmt.Sprintf(" (%d-%d)", *entry.StartYear, *entry.EndYear))
				}
				sb.WriteString("\n")
			}
		}
		if len(result.Education) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Education)-maxItemsToShow))
		}
	}

	if len(result.Certifications) > 0 {
		sb.WriteString("\nCertifications:\n")
		count := min(len(result.Certifications), 3)
		for i := 0; i < count; i++ {
			cert := result.Certifications[i]
			if len(cert) > 50 {
				cert = cert[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", cert))
		}
		if len(result.Certifications) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Certifications)-3))
		}
	}

	p.printBox("BACKGROUND", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs detected project entries with their technologies.
func (p *Printer) PrintProjects(result *types.AnalysisResult) {
	if result == nil || len(result.Projects) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d projects:\n\n", len(result.Projects)))

	count := min(len(result.Projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := result.Projects[i]
		title := project.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		if project.Tech != "" {
			tech := project.Tech
			if len(tech) > 40 {
				tech = tech[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]\n", tech))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(result.Projects)-maxItemsToShow))
	}

	p.printBox("PROJECTS", sb.String())
}

// PrintWritingQuality outputs detected links and the most repeated words.
func (p *Printer) PrintWritingQuality(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if len(result.Links) > 0 {
		sb.WriteString("Links:\n")
		kinds := make([]string, 0, len(result.Links))
		for kind := range result.Links {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			values := strings.Join(result.Links[kind], ", ")
			if len(values) > 40 {
				values = values[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %-10s %s\n", kind, values))
		}
		sb.WriteString("\n")
	}

	if len(result.RepeatedWordsTop) > 0 {
		sb.WriteString("Most repeated words:\n")
		count := min(len(result.RepeatedWordsTop), maxItemsToShow)
		for i := 0; i < count; i++ {
			wc := result.RepeatedWordsTop[i]
			sb.WriteString(fmt.Sprintf("  %-15s %d\n", wc.Word, wc.Count))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No links or notable repetition found")
	}

	p.printBox("WRITING QUALITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAll renders the full verbose report for an analysis result.
func (p *Printer) PrintAll(result *types.AnalysisResult) {
	p.PrintScores(result)
	p.PrintSkills(result)
	p.PrintBackground(result)
	p.PrintProjects(result)
	p.PrintWritingQuality(result)
}

package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// snippetLimit caps a project snippet's length in characters.
const snippetLimit = 300

var paragraphSplitRx = regexp.MustCompile(`\n{2,}`)

// ExtractProjects parses the projects section into one entry per
// blank-line-separated paragraph. The first non-empty line (bullet
// markers stripped) becomes the title, the skills found in the paragraph
// become the sorted comma-joined tech list, and the remaining lines form
// a snippet truncated to 300 characters. Returns nil when the text has no
// projects section.
func ExtractProjects(text string, vocab *Vocabulary) []types.ProjectEntry {
	block := sections.Split(text)["projects"]
	if block == "" {
		return nil
	}

	var projects []types.ProjectEntry
	for _, para := range paragraphSplitRx.Split(strings.TrimSpace(block), -1) {
		var lines []string
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(strings.Trim(line, "•*- "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		snippet := strings.Join(lines[1:], " ")
		if runes := []rune(snippet); len(runes) > snippetLimit {
			snippet = string(runes[:snippetLimit])
		}

		projects = append(projects, types.ProjectEntry{
			Title:   lines[0],
			Tech:    strings.Join(ExtractSkills(para, vocab), ", "),
			Snippet: snippet,
		})
	}
	return projects
}

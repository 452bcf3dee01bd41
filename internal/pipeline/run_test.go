package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinnedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestAnalyzeText_WorkedExample(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})
	text := "Built scalable APIs. 2019 - 2021 Software Engineer. linkedin.com/in/jane AWS Docker Python 5 years"

	result := a.AnalyzeText(text)

	assert.GreaterOrEqual(t, result.ExperienceYears, 5.0)
	assert.Subset(t, result.Skills, []string{"aws", "docker", "python"})
	require.Contains(t, result.Links, "linkedin")
	assert.Len(t, result.Links["linkedin"], 1)
	assert.GreaterOrEqual(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
}

func TestAnalyzeText_EmptyInput(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})

	result := a.AnalyzeText("")

	assert.Equal(t, 0, result.ATSScore)
	assert.Equal(t, 0.0, result.ExperienceYears)
	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Education)
	assert.Empty(t, result.Links)
	assert.Equal(t, "", result.Summary)
	assert.NotEmpty(t, result.MissingKeywords)
	assert.Len(t, result.Theta, 9)
}

func TestAnalyzeText_DeterministicWithPinnedClock(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})
	text := "Experience\n2020 - Present Software Engineer\nSkills\nGo, Python, Docker"

	first := a.AnalyzeText(text)
	second := a.AnalyzeText(text)

	assert.Equal(t, first, second)
}

func TestAnalyzeText_PresentUsesInjectedClock(t *testing.T) {
	text := "Experience\n2020 - Present Software Engineer"

	early := New(Options{Now: pinnedClock(2022)}).AnalyzeText(text)
	late := New(Options{Now: pinnedClock(2025)}).AnalyzeText(text)

	assert.Equal(t, 2.0, early.ExperienceYears)
	assert.Equal(t, 5.0, late.ExperienceYears)
}

func TestAnalyzeText_SummaryTruncated(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})
	text := strings.Repeat("word ", 500)

	result := a.AnalyzeText(strings.TrimSpace(text))

	assert.Len(t, []rune(result.Summary), 800)
}

func TestAnalyzeText_FoundKeywordsMirrorSkills(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})

	result := a.AnalyzeText("Python and Docker on AWS")

	assert.Equal(t, result.Skills, result.FoundKeywords)
}

func TestAnalyzeText_CustomVocabulary(t *testing.T) {
	vocab := extraction.NewVocabulary([]string{"erlang", "elixir"})
	a := New(Options{Vocabulary: vocab, Now: pinnedClock(2024)})

	result := a.AnalyzeText("Shipped Erlang services")

	assert.Equal(t, []string{"erlang"}, result.Skills)
	assert.Equal(t, []string{"elixir"}, result.MissingKeywords)
}

func TestAnalyze_PlainTextDocument(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})
	data := []byte("Jane Doe\nSkills\nGo, Python\nExperience\n2019 - 2022 Engineer")

	result := a.Analyze("resume.txt", data)

	assert.Contains(t, result.Skills, "go")
	assert.Contains(t, result.Skills, "python")
	assert.Equal(t, 3.0, result.ExperienceYears)
}

func TestAnalyze_UnreadableDocumentStillProducesResult(t *testing.T) {
	a := New(Options{Now: pinnedClock(2024)})

	result := a.Analyze("resume.pdf", []byte("garbage bytes"))

	require.NotNil(t, result)
	assert.Equal(t, 0, result.ATSScore)
	assert.Equal(t, "", result.Summary)
}

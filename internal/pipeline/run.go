// Package pipeline wires document ingestion, fact extraction, and scoring
// into the end-to-end resume analysis flow.
package pipeline

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// summaryCharLimit caps the summary excerpt included in the result.
const summaryCharLimit = 800

// Options configures an Analyzer. The zero value selects the built-in
// vocabulary and the real clock.
type Options struct {
	// Vocabulary overrides the canonical skill vocabulary.
	Vocabulary *extraction.Vocabulary
	// Now supplies the current time, used to resolve "present" in date
	// ranges. Tests pin it for deterministic results.
	Now func() time.Time
}

// Analyzer runs the analysis pipeline. It holds only read-only state and
// is safe for concurrent use; every Analyze call works on isolated data.
type Analyzer struct {
	vocab     *extraction.Vocabulary
	now       func() time.Time
	extractor *ingestion.Extractor
}

// New creates an Analyzer from the given options.
func New(opts Options) *Analyzer {
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = extraction.DefaultVocabulary()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Analyzer{
		vocab:     vocab,
		now:       now,
		extractor: ingestion.NewExtractor(),
	}
}

// Analyze extracts text from the uploaded document and analyzes it. The
// filename is used only for format sniffing. Unreadable documents degrade
// to empty text and still produce a structurally valid, low-scoring
// result.
func (a *Analyzer) Analyze(filename string, data []byte) *types.AnalysisResult {
	return a.AnalyzeText(a.ExtractText(filename, data))
}

// ExtractText returns the normalized text of the uploaded document
// without analyzing it, for collaborators that consume the text directly
// (the suggestion advisor).
func (a *Analyzer) ExtractText(filename string, data []byte) string {
	return a.extractor.ExtractText(filename, data)
}

// AnalyzeText runs fact extraction and scoring over already-normalized
// text and assembles the immutable analysis result.
func (a *Analyzer) AnalyzeText(text string) *types.AnalysisResult {
	nowYear := a.now().Year()

	skills := extraction.ExtractSkills(text, a.vocab)
	years := extraction.ExtractExperienceYears(text, nowYear)
	education := extraction.ExtractEducation(text, nowYear)
	certs, achievements := extraction.ExtractCertificationsAndAchievements(text)
	projects := extraction.ExtractProjects(text, a.vocab)
	links := extraction.ExtractLinks(text)
	repeats := extraction.RepeatedWords(text, extraction.DefaultTopWords)

	scored := scoring.Compute(text, scoring.Facts{
		Skills:          skills,
		ExperienceYears: years,
		Education:       education,
		Certifications:  certs,
		Links:           links,
		RepeatedWords:   repeats,
	}, a.vocab)

	summary := text
	if runes := []rune(summary); len(runes) > summaryCharLimit {
		summary = string(runes[:summaryCharLimit])
	}

	return &types.AnalysisResult{
		Theta:            scoring.Weights,
		Subscores:        scored.Subscores,
		ATSScore:         scored.ATSScore,
		ImpactScore:      scored.ImpactScore,
		Skills:           skills,
		ExperienceYears:  years,
		Education:        education,
		Certifications:   certs,
		Achievements:     achievements,
		Projects:         projects,
		Links:            links,
		RepeatedWordsTop: repeats,
		Summary:          summary,
		FoundKeywords:    skills,
		MissingKeywords:  scored.MissingKeywords,
	}
}

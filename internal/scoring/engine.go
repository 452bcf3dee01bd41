package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights is the subscore weight table. The values sum to 1.0.
var Weights = map[string]float64{
	"skills":           0.30,
	"experience":       0.20,
	"education":        0.10,
	"certs":            0.07,
	"impact_verbs":     0.10,
	"metrics":          0.08,
	"formatting":       0.07,
	"links":            0.05,
	"section_coverage": 0.03,
}

// Flat penalties, each independent and additive.
const (
	noEducationPenalty   = 5.0
	lowExperiencePenalty = 5.0
	fewSkillsPenalty     = 5.0
	repetitionPenalty    = 3.0

	minExperienceYears  = 1.0
	minSkillCount       = 5
	repetitionThreshold = 30
)

// impactScoreMax caps the secondary impact score.
const impactScoreMax = 20

// missingKeywordsCap limits the reported missing-keyword list.
const missingKeywordsCap = 50

// Facts holds the extracted inputs to the scoring engine.
type Facts struct {
	Skills          []string
	ExperienceYears float64
	Education       []types.EducationEntry
	Certifications  []string
	Links           map[string][]string
	RepeatedWords   []types.WordCount
}

// Result is the scoring engine's output.
type Result struct {
	Subscores       map[string]float64
	ATSScore        int
	ImpactScore     int
	MissingKeywords []string
}

// Compute derives the nine subscores from the facts and raw text, combines
// them by the weight table, applies the flat penalties, and clips the
// final score to [0, 100]. The impact score is a coarse 0-20 signal built
// from the impact-verb and metrics subscores. Missing keywords are the
// canonical vocabulary terms not found in the resume, sorted and capped.
func Compute(text string, facts Facts, vocab *extraction.Vocabulary) Result {
	subs := map[string]float64{
		"skills":           subscoreSkills(facts.Skills),
		"experience":       subscoreExperience(facts.ExperienceYears),
		"education":        subscoreEducation(facts.Education),
		"certs":            subscoreCerts(facts.Certifications),
		"impact_verbs":     subscoreImpactVerbs(text),
		"metrics":          subscoreMetrics(text),
		"formatting":       subscoreFormatting(text),
		"links":            subscoreLinks(facts.Links),
		"section_coverage": subscoreSectionCoverage(text),
	}

	total := 0.0
	for name, weight := range Weights {
		total += subs[name] * weight
	}

	penalty := 0.0
	if len(facts.Education) == 0 {
		penalty += noEducationPenalty
	}
	if facts.ExperienceYears < minExperienceYears {
		penalty += lowExperiencePenalty
	}
	if len(facts.Skills) < minSkillCount {
		penalty += fewSkillsPenalty
	}
	if len(facts.RepeatedWords) > 0 && facts.RepeatedWords[0].Count > repetitionThreshold {
		penalty += repetitionPenalty
	}

	ats := int(math.Round(clip(total-penalty, 0, 100)))

	impact := int(subs["impact_verbs"]/10) + int(subs["metrics"]/10)
	if impact > impactScoreMax {
		impact = impactScoreMax
	}

	return Result{
		Subscores:       subs,
		ATSScore:        ats,
		ImpactScore:     impact,
		MissingKeywords: missingKeywords(vocab, facts.Skills),
	}
}

// missingKeywords returns the canonical terms absent from the found
// skills, sorted, capped at missingKeywordsCap.
func missingKeywords(vocab *extraction.Vocabulary, found []string) []string {
	if vocab == nil {
		vocab = extraction.DefaultVocabulary()
	}
	foundSet := make(map[string]bool, len(found))
	for _, s := range found {
		foundSet[s] = true
	}

	missing := make([]string, 0, vocab.Len())
	for _, term := range vocab.Terms() {
		if !foundSet[term] {
			missing = append(missing, term)
		}
	}
	sort.Strings(missing)
	if len(missing) > missingKeywordsCap {
		missing = missing[:missingKeywordsCap]
	}
	return missing
}

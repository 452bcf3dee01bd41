// Package scoring computes the weighted multi-factor ATS score from
// extracted resume facts.
package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Subscore denominators. These constants were chosen heuristically and
// are contract values: changing any of them silently changes every score.
const (
	skillsTarget     = 25.0
	experienceTarget = 8.0
	certsTarget      = 4.0
	verbsTarget      = 12.0
	metricsTarget    = 8.0
	bulletsTarget    = 20.0
	headersTarget    = 8.0
	linkKindsTarget  = 3.0
)

// Education subscore increments per entry.
const (
	degreePoints    = 35.0
	fullRangePoints = 25.0
	startOnlyPoints = 15.0
)

// actionVerbs is the fixed impact-verb list.
var actionVerbs = []string{
	"developed", "designed", "implemented", "engineered", "created", "optimized", "led",
	"managed", "analyzed", "built", "deployed", "delivered", "streamlined", "architected",
	"launched", "scaled", "improved", "reduced", "increased", "owned",
}

var actionVerbRxs = compileVerbPatterns()

func compileVerbPatterns() []*regexp.Regexp {
	rxs := make([]*regexp.Regexp, len(actionVerbs))
	for i, v := range actionVerbs {
		rxs[i] = regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, v))
	}
	return rxs
}

// requiredSections drive the section-coverage subscore.
var requiredSections = []string{"experience", "education", "skills", "projects"}

// profileLinkKinds drive the links subscore; email and phone are not
// counted.
var profileLinkKinds = []string{"linkedin", "github", "portfolio", "leetcode"}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ratioScore(count float64, target float64) float64 {
	return clip(count/target, 0, 1) * 100
}

func subscoreSkills(skills []string) float64 {
	return ratioScore(float64(len(skills)), skillsTarget)
}

func subscoreExperience(years float64) float64 {
	return ratioScore(years, experienceTarget)
}

func subscoreEducation(entries []types.EducationEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	score := 0.0
	for _, e := range entries {
		if e.Degree != "" {
			score += degreePoints
		}
		switch {
		case e.StartYear != nil && e.EndYear != nil:
			score += fullRangePoints
		case e.StartYear != nil:
			score += startOnlyPoints
		}
	}
	return clip(score, 0, 100)
}

func subscoreCerts(certs []string) float64 {
	return ratioScore(float64(len(certs)), certsTarget)
}

func subscoreImpactVerbs(text string) float64 {
	count := 0
	for _, rx := range actionVerbRxs {
		if rx.MatchString(text) {
			count++
		}
	}
	return ratioScore(float64(count), verbsTarget)
}

func subscoreMetrics(text string) float64 {
	hits := extraction.MetricsRx.FindAllString(text, -1)
	return ratioScore(float64(len(hits)), metricsTarget)
}

func subscoreFormatting(text string) float64 {
	bullets := float64(len(extraction.BulletLineRx.FindAllString(text, -1)))
	headers := float64(len(extraction.HeaderLineRx.FindAllString(text, -1)))
	return clip(bullets/bulletsTarget+headers/headersTarget, 0, 1) * 100
}

func subscoreLinks(links map[string][]string) float64 {
	have := 0
	for _, kind := range profileLinkKinds {
		if len(links[kind]) > 0 {
			have++
		}
	}
	return ratioScore(float64(have), linkKindsTarget)
}

func subscoreSectionCoverage(text string) float64 {
	low := strings.ToLower(text)
	have := 0
	for _, s := range requiredSections {
		if strings.Contains(low, s) {
			have++
		}
	}
	return clip(float64(have)/float64(len(requiredSections)), 0, 1) * 100
}

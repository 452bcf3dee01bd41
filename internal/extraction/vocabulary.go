package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// defaultSkills is the built-in canonical skill vocabulary, used when no
// external vocabulary file is configured.
var defaultSkills = []string{
	"python", "java", "c", "c++", "javascript", "typescript", "go", "rust", "kotlin", "swift",
	"react", "next.js", "node.js", "express", "spring", "spring boot", "django", "flask",
	"html", "css", "tailwind", "sass", "webpack", "jest", "pytest",
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch", "spark",
	"machine learning", "deep learning", "pytorch", "tensorflow", "scikit-learn",
	"nlp", "computer vision", "data engineering", "airflow", "dbt",
	"aws", "gcp", "azure", "lambda", "s3", "ec2", "eks", "docker", "kubernetes", "terraform", "git", "linux",
	"jwt", "oauth", "spring security",
	"jira", "confluence", "github", "gitlab", "bitbucket", "vs code",
}

// skillAliases maps canonical terms to variant spellings. An alias hit
// adds the canonical term to the result set.
var skillAliases = map[string][]string{
	"react":        {"reactjs", "react.js"},
	"node.js":      {"node", "nodejs"},
	"spring boot":  {"springboot"},
	"tailwind":     {"tailwind css"},
	"postgresql":   {"postgres"},
	"tensorflow":   {"tf"},
	"pytorch":      {"torch"},
	"scikit-learn": {"sklearn", "sci-kit learn"},
	"aws":          {"amazon web services"},
	"git":          {"github", "gitlab", "bitbucket"},
	"sql":          {"mysql", "postgresql", "postgres", "mssql", "oracle sql"},
}

// Vocabulary is the canonical skill list used for both exact and fuzzy
// matching. It is immutable after construction and safe for concurrent
// use.
type Vocabulary struct {
	terms []string
	set   map[string]bool
}

// NewVocabulary builds a vocabulary from the given terms, lower-cased and
// deduplicated. An empty input yields the built-in default vocabulary.
func NewVocabulary(terms []string) *Vocabulary {
	if len(terms) == 0 {
		terms = defaultSkills
	}

	v := &Vocabulary{set: make(map[string]bool, len(terms))}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || v.set[term] {
			continue
		}
		v.set[term] = true
		v.terms = append(v.terms, term)
	}
	return v
}

// DefaultVocabulary returns the built-in skill vocabulary.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(nil)
}

// LoadVocabulary reads an external vocabulary override: a JSON array of
// strings. A missing, empty, or malformed file falls back to the default
// vocabulary with an error describing why.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultVocabulary(), fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	if err := schemas.ValidateSkillVocabulary(data); err != nil {
		return DefaultVocabulary(), fmt.Errorf("invalid vocabulary file %s: %w", path, err)
	}

	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return DefaultVocabulary(), fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	return NewVocabulary(terms), nil
}

// Contains reports whether term is in the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	return v.set[term]
}

// Terms returns the canonical terms in insertion order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Len returns the number of canonical terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

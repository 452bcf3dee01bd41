// Package types defines the shared data structures exchanged between the
// analysis pipeline, the persistence layer, and the HTTP API.
package types

// EducationEntry is a single education line recognized in the resume.
// StartYear and EndYear are nil when no date range was found on the line.
type EducationEntry struct {
	Line      string `json:"line"`
	Degree    string `json:"degree"`
	StartYear *int   `json:"start_year"`
	EndYear   *int   `json:"end_year"`
}

// ProjectEntry is one project paragraph from the projects section.
type ProjectEntry struct {
	Title   string `json:"title"`
	Tech    string `json:"tech"`
	Snippet string `json:"snippet"`
}

// WordCount is a (word, frequency) pair from the repetition analyzer.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalysisResult is the terminal aggregate produced by one pipeline run.
// It is created once per upload and never mutated afterwards.
type AnalysisResult struct {
	Theta            map[string]float64  `json:"theta"`
	Subscores        map[string]float64  `json:"subscores"`
	ATSScore         int                 `json:"ats_score"`
	ImpactScore      int                 `json:"impact_score"`
	Skills           []string            `json:"skills"`
	ExperienceYears  float64             `json:"experience_years"`
	Education        []EducationEntry    `json:"education"`
	Certifications   []string            `json:"certifications"`
	Achievements     []string            `json:"achievements"`
	Projects         []ProjectEntry      `json:"projects"`
	Links            map[string][]string `json:"links"`
	RepeatedWordsTop []WordCount         `json:"repeated_words_top"`
	Summary          string              `json:"summary"`
	FoundKeywords    []string            `json:"found_keywords"`
	MissingKeywords  []string            `json:"missing_keywords"`
}

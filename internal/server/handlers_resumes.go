package server

import (
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadBytes caps the accepted resume upload size (10 MiB).
const maxUploadBytes = 10 << 20

// uploadResponse is the response body for a resume upload.
type uploadResponse struct {
	ID         string                `json:"id"`
	Filename   string                `json:"filename"`
	ATSScore   int                   `json:"ats_score"`
	AIFeedback string                `json:"ai_feedback"`
	Analysis   *types.AnalysisResult `json:"analysis"`
}

// handleUploadResume accepts a multipart resume upload, runs the analysis
// pipeline and the suggestion advisor, persists the result, and returns
// the full analysis. Analysis itself never fails a request; only a
// missing file or a persistence error does.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		missing := &ErrMissingFile{}
		http.Error(w, missing.Error(), HTTPStatus(missing))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	text := s.analyzer.ExtractText(header.Filename, data)

	// The advisor is an independently-failing collaborator; run it
	// alongside the analysis. Neither branch returns an error.
	var (
		analysis *types.AnalysisResult
		feedback string
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		analysis = s.analyzer.AnalyzeText(text)
		return nil
	})
	g.Go(func() error {
		feedback = s.advisor.Suggest(ctx, text)
		return nil
	})
	_ = g.Wait()

	resumeID, err := s.db.SaveResume(r.Context(), userID, header.Filename, analysis.ATSScore, analysis, feedback)
	if err != nil {
		http.Error(w, "Failed to save analysis", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:         resumeID.String(),
		Filename:   header.Filename,
		ATSScore:   analysis.ATSScore,
		AIFeedback: feedback,
		Analysis:   analysis,
	})
}

// resumeSummary is the listing/latest representation of a stored resume.
type resumeSummary struct {
	ID         string                `json:"id"`
	Filename   string                `json:"filename"`
	ATSScore   int                   `json:"ats_score"`
	AIFeedback string                `json:"ai_feedback,omitempty"`
	UploadedAt string                `json:"uploaded_at"`
	Analysis   *types.AnalysisResult `json:"analysis,omitempty"`
}

func toResumeSummary(r *db.Resume, includeAnalysis bool) resumeSummary {
	summary := resumeSummary{
		ID:         r.ID.String(),
		Filename:   r.Filename,
		ATSScore:   r.ATSScore,
		AIFeedback: r.AIFeedback,
		UploadedAt: r.UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if includeAnalysis {
		var analysis types.AnalysisResult
		if err := json.Unmarshal(r.Analysis, &analysis); err == nil {
			summary.Analysis = &analysis
		}
	}
	return summary
}

// handleLatestResume returns the caller's most recent analysis.
func (s *Server) handleLatestResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resume, err := s.db.GetLatestResume(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load analysis", http.StatusInternalServerError)
		return
	}
	if resume == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No analyses yet"})
		return
	}

	writeJSON(w, http.StatusOK, toResumeSummary(resume, true))
}

// handleListResumes returns the caller's analyses, most recent first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to list analyses", http.StatusInternalServerError)
		return
	}

	summaries := make([]resumeSummary, 0, len(resumes))
	for i := range resumes {
		summaries = append(summaries, toResumeSummary(&resumes[i], false))
	}
	writeJSON(w, http.StatusOK, summaries)
}

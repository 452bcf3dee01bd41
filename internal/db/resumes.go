package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores one analyzed resume and returns its ID. The analysis
// value is marshaled to JSON for the JSONB column.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, filename string, atsScore int, analysis any, aiFeedback string) (uuid.UUID, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, ats_score, analysis, ai_feedback)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, filename, atsScore, analysisJSON, aiFeedback,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetLatestResume retrieves the most recently uploaded resume for the
// user. Returns nil when the user has no analyses yet.
func (db *DB) GetLatestResume(ctx context.Context, userID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, ats_score, analysis, ai_feedback, uploaded_at
		 FROM resumes
		 WHERE user_id = $1
		 ORDER BY uploaded_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&r.ID, &r.UserID, &r.Filename, &r.ATSScore, &r.Analysis, &r.AIFeedback, &r.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest resume: %w", err)
	}
	return &r, nil
}

// ListResumes returns the user's resumes, most recent first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, ats_score, analysis, ai_feedback, uploaded_at
		 FROM resumes
		 WHERE user_id = $1
		 ORDER BY uploaded_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.Filename, &r.ATSScore, &r.Analysis, &r.AIFeedback, &r.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

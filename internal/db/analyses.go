package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores an analysis report and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, rec *NewAnalysis) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(rec.Report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, file_name, resume_score, ats_score, role_fit, resume_strength,
		                       job_match_score, job_title, job_company, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		rec.UserID, rec.FileName, rec.ResumeScore, rec.ATSScore, rec.RoleFit, rec.ResumeStrength,
		rec.JobMatchScore, rec.JobTitle, rec.JobCompany, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a full analysis by ID. Returns nil, nil when not found.
func (db *DB) GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, resume_score, ats_score, role_fit, resume_strength,
		        job_match_score, job_title, job_company, report, created_at
		 FROM analyses WHERE id = $1`,
		analysisID,
	).Scan(&a.ID, &a.UserID, &a.FileName, &a.ResumeScore, &a.ATSScore, &a.RoleFit, &a.ResumeStrength,
		&a.JobMatchScore, &a.JobTitle, &a.JobCompany, &a.Report, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// ListAnalyses retrieves a user's analysis history, newest first.
// The full reports are omitted so the listing stays small.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, resume_score, ats_score, role_fit, resume_strength,
		        job_match_score, job_title, job_company, created_at
		 FROM analyses WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.FileName, &a.ResumeScore, &a.ATSScore, &a.RoleFit, &a.ResumeStrength,
			&a.JobMatchScore, &a.JobTitle, &a.JobCompany, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis deletes an analysis by ID
func (db *DB) DeleteAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, analysisID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", analysisID)
	}
	return nil
}

package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis represents a stored resume analysis
type Analysis struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	FileName       string          `json:"file_name"`
	ResumeScore    int             `json:"resume_score"`
	ATSScore       int             `json:"ats_score"`
	RoleFit        string          `json:"role_fit"`
	ResumeStrength string          `json:"resume_strength"`
	JobMatchScore  *int            `json:"job_match_score,omitempty"`
	JobTitle       *string         `json:"job_title,omitempty"`
	JobCompany     *string         `json:"job_company,omitempty"`
	Report         json.RawMessage `json:"report"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AnalysisSummary is a lightweight view of an analysis for listing.
// It omits the full report, which carries the resume text.
type AnalysisSummary struct {
	ID             uuid.UUID `json:"id"`
	FileName       string    `json:"file_name"`
	ResumeScore    int       `json:"resume_score"`
	ATSScore       int       `json:"ats_score"`
	RoleFit        string    `json:"role_fit"`
	ResumeStrength string    `json:"resume_strength"`
	JobMatchScore  *int      `json:"job_match_score,omitempty"`
	JobTitle       *string   `json:"job_title,omitempty"`
	JobCompany     *string   `json:"job_company,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewAnalysis holds the fields needed to store a fresh analysis
type NewAnalysis struct {
	UserID         uuid.UUID
	FileName       string
	ResumeScore    int
	ATSScore       int
	RoleFit        string
	ResumeStrength string
	JobMatchScore  *int
	JobTitle       *string
	JobCompany     *string
	Report         any // marshaled to JSONB
}

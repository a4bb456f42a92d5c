package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

// maxUploadBytes caps the size of an uploaded resume file.
const maxUploadBytes = 8 << 20 // 8 MB

// defaultHistoryLimit is how many history entries are returned without an explicit limit.
const defaultHistoryLimit = 50

// AnalysisStore is the subset of database operations the resume handler needs.
// Tests substitute a fake implementation.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, rec *db.NewAnalysis) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*db.Analysis, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]db.AnalysisSummary, error)
	DeleteAnalysis(ctx context.Context, analysisID uuid.UUID) error
}

// JobFetcher retrieves a job posting URL as plain text.
type JobFetcher func(ctx context.Context, url string) (string, error)

// ResumeHandler handles resume analysis HTTP requests.
type ResumeHandler struct {
	store    AnalysisStore
	fetchJob JobFetcher
}

// NewResumeHandler creates a ResumeHandler. fetchJob may be nil to disable
// job URL fetching.
func NewResumeHandler(store AnalysisStore, fetchJob JobFetcher) *ResumeHandler {
	return &ResumeHandler{
		store:    store,
		fetchJob: fetchJob,
	}
}

// AnalyzeResponse is the response body for POST /resume/analyze.
type AnalyzeResponse struct {
	ID     uuid.UUID        `json:"id"`
	Report *analysis.Report `json:"report"`
}

// Analyze handles multipart resume uploads. The "resume" file field is
// required; "jobDescription", "jobUrl", "jobTitle" and "jobCompany" are
// optional.
func (h *ResumeHandler) Analyze(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Failed to read resume file")
		return
	}
	if len(data) > maxUploadBytes {
		jsonError(w, http.StatusRequestEntityTooLarge, "resume file exceeds size limit")
		return
	}

	text, err := extraction.Text(header.Filename, data)
	if err != nil {
		var unsupported *extraction.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(w, http.StatusUnprocessableEntity, "Failed to extract text: "+err.Error())
		return
	}

	jobDescription := r.FormValue("jobDescription")
	if jobDescription == "" {
		if jobURL := r.FormValue("jobUrl"); jobURL != "" {
			if h.fetchJob == nil {
				jsonError(w, http.StatusBadRequest, "job URL fetching is not enabled")
				return
			}
			jobDescription, err = h.fetchJob(r.Context(), jobURL)
			if err != nil {
				logger.Warn().Err(err).Str("url", jobURL).Msg("job posting fetch failed")
				jsonError(w, http.StatusBadGateway, "Failed to fetch job posting")
				return
			}
		}
	}

	report := analysis.Analyze(text, header.Filename, jobDescription)

	rec := &db.NewAnalysis{
		UserID:         userID,
		FileName:       report.FileName,
		ResumeScore:    report.ResumeScore,
		ATSScore:       report.ATSScore,
		RoleFit:        string(report.RoleFit),
		ResumeStrength: string(report.ResumeStrength),
		JobMatchScore:  report.JobMatchScore,
		JobTitle:       optionalField(r.FormValue("jobTitle")),
		JobCompany:     optionalField(r.FormValue("jobCompany")),
		Report:         report,
	}
	id, err := h.store.SaveAnalysis(r.Context(), rec)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save analysis")
		jsonError(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}

	writeJSON(w, http.StatusCreated, AnalyzeResponse{ID: id, Report: report})
}

// History returns the authenticated user's analysis history, newest first.
func (h *ResumeHandler) History(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := parsePositiveInt(v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	summaries, err := h.store.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list analyses")
		jsonError(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}
	if summaries == nil {
		summaries = []db.AnalysisSummary{}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Get returns a single analysis, including the full report.
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	rec, ok := h.ownedAnalysis(w, r, userID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete removes a single analysis.
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	rec, ok := h.ownedAnalysis(w, r, userID)
	if !ok {
		return
	}

	if err := h.store.DeleteAnalysis(r.Context(), rec.ID); err != nil {
		logger.Error().Err(err).Msg("failed to delete analysis")
		jsonError(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Analysis deleted"})
}

// ownedAnalysis loads the analysis from the path and verifies ownership.
// It writes the error response itself when the second return value is false.
func (h *ResumeHandler) ownedAnalysis(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*db.Analysis, bool) {
	analysisID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid analysis ID")
		return nil, false
	}

	rec, err := h.store.GetAnalysis(r.Context(), analysisID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to get analysis")
		jsonError(w, http.StatusInternalServerError, "Failed to get analysis")
		return nil, false
	}
	if rec == nil {
		notFound := &ErrAnalysisNotFound{AnalysisID: analysisID}
		jsonError(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	if rec.UserID != userID {
		forbidden := &ErrForbidden{}
		jsonError(w, HTTPStatus(forbidden), forbidden.Error())
		return nil, false
	}
	return rec, true
}

func optionalField(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func parsePositiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 1000 {
		return 0, errors.New("out of range")
	}
	return n, nil
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// jsonError writes an error JSON response.
func jsonError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

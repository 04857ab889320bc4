package roiapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/roivolution/roivolution/internal/roi"
	"github.com/roivolution/roivolution/internal/roi/anomaly"
	"github.com/roivolution/roivolution/internal/roi/storage"
)

// calculateRequest uses pointer fields so absent inputs are distinguishable
// from zero values.
type calculateRequest struct {
	ProjectBudget       *float64 `json:"project_budget"`
	EmployeeImpact      *float64 `json:"employee_impact"`
	ProjectDuration     *float64 `json:"project_duration"`
	AverageSalary       *float64 `json:"average_salary"`
	RiskLevel           *string  `json:"risk_level"`
	IndustryType        *string  `json:"industry_type"`
	PreviousSuccess     *float64 `json:"previous_success"`
	LeadershipAlignment *float64 `json:"leadership_alignment"`
	EmployeeReadiness   *float64 `json:"employee_readiness"`
	CommunicationPlan   *float64 `json:"communication_plan"`
	TrainingBudget      *float64 `json:"training_budget"`
}

func (req calculateRequest) complete() bool {
	return req.ProjectBudget != nil &&
		req.EmployeeImpact != nil &&
		req.ProjectDuration != nil &&
		req.AverageSalary != nil &&
		req.RiskLevel != nil &&
		req.IndustryType != nil &&
		req.PreviousSuccess != nil &&
		req.LeadershipAlignment != nil &&
		req.EmployeeReadiness != nil &&
		req.CommunicationPlan != nil &&
		req.TrainingBudget != nil
}

func (req calculateRequest) inputs() roi.Inputs {
	return roi.Inputs{
		ProjectBudget:       *req.ProjectBudget,
		EmployeeImpact:      *req.EmployeeImpact,
		ProjectDuration:     *req.ProjectDuration,
		AverageSalary:       *req.AverageSalary,
		RiskLevel:           *req.RiskLevel,
		IndustryType:        *req.IndustryType,
		PreviousSuccess:     *req.PreviousSuccess,
		LeadershipAlignment: *req.LeadershipAlignment,
		EmployeeReadiness:   *req.EmployeeReadiness,
		CommunicationPlan:   *req.CommunicationPlan,
		TrainingBudget:      *req.TrainingBudget,
	}
}

type calculateResponse struct {
	ROI             float64 `json:"roi"`
	NetBenefit      float64 `json:"net_benefit"`
	ExpectedSuccess float64 `json:"expected_success"`
	IndustryType    string  `json:"industry_type"`
	ProjectDuration float64 `json:"project_duration"`
}

type entryPayload struct {
	ID              string  `json:"id"`
	ProjectBudget   float64 `json:"project_budget"`
	NetBenefit      float64 `json:"net_benefit"`
	ROI             float64 `json:"roi"`
	ExpectedSuccess float64 `json:"expected_success"`
	IndustryType    string  `json:"industry_type"`
	ProjectDuration float64 `json:"project_duration"`
	Timestamp       string  `json:"timestamp"`
}

func toPayload(entry storage.Entry) entryPayload {
	return entryPayload{
		ID:              entry.ID,
		ProjectBudget:   entry.ProjectBudget,
		NetBenefit:      entry.NetBenefit,
		ROI:             entry.ROI,
		ExpectedSuccess: entry.ExpectedSuccess,
		IndustryType:    entry.IndustryType,
		ProjectDuration: entry.ProjectDuration,
		Timestamp:       entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPayloads(entries []storage.Entry) []entryPayload {
	payloads := make([]entryPayload, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, toPayload(entry))
	}
	return payloads
}

func (m Module) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if m.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage is unavailable")
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.complete() {
		writeError(w, http.StatusBadRequest, "missing input fields")
		return
	}

	result, err := roi.Calculate(req.inputs())
	if err != nil {
		if errors.Is(err, roi.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "projection failed")
		return
	}

	entry := storage.Entry{
		ID:              uuid.NewString(),
		ProjectBudget:   *req.ProjectBudget,
		NetBenefit:      result.NetBenefit,
		ROI:             result.ROI,
		ExpectedSuccess: result.ExpectedSuccess,
		IndustryType:    result.IndustryType,
		ProjectDuration: result.ProjectDuration,
		CreatedAt:       time.Now().UTC(),
	}
	if err := m.store.CreateEntry(r.Context(), entry); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store projection")
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		ROI:             result.ROI,
		NetBenefit:      result.NetBenefit,
		ExpectedSuccess: result.ExpectedSuccess,
		IndustryType:    result.IndustryType,
		ProjectDuration: result.ProjectDuration,
	})
}

func (m Module) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if m.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage is unavailable")
		return
	}

	entries, err := m.store.ListEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projections")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"roi_data": toPayloads(entries)})
}

func (m Module) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if m.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage is unavailable")
		return
	}
	if m.detector == nil || !m.detector.Configured() {
		writeError(w, http.StatusServiceUnavailable, "anomaly detection is not configured")
		return
	}

	flagged, err, _ := m.detectGroup.Do("detect", func() (any, error) {
		entries, err := m.store.ListEntries(r.Context())
		if err != nil {
			return nil, err
		}
		return m.detector.Detect(r.Context(), entries)
	})
	if err != nil {
		if errors.Is(err, anomaly.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, "anomaly detection is not configured")
			return
		}
		writeError(w, http.StatusBadGateway, "anomaly detection failed")
		return
	}

	entries, _ := flagged.([]storage.Entry)
	writeJSON(w, http.StatusOK, map[string]any{"anomalies": toPayloads(entries)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

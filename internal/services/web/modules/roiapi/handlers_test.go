package roiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roivolution/roivolution/internal/roi/storage"
	"github.com/roivolution/roivolution/internal/services/web/routepath"
)

type fakeStore struct {
	entries   []storage.Entry
	createErr error
	listErr   error
}

func (f *fakeStore) CreateEntry(_ context.Context, entry storage.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeStore) ListEntries(context.Context) ([]storage.Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

type fakeDetector struct {
	configured bool
	flagged    []storage.Entry
	err        error
	calls      int
}

func (f *fakeDetector) Configured() bool { return f.configured }

func (f *fakeDetector) Detect(context.Context, []storage.Entry) ([]storage.Entry, error) {
	f.calls++
	return f.flagged, f.err
}

func mountModule(t *testing.T, m Module) http.Handler {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if mount.Pattern != routepath.APIPrefix {
		t.Fatalf("pattern = %q, want %q", mount.Pattern, routepath.APIPrefix)
	}
	return mount.Handler
}

func validBody() map[string]any {
	return map[string]any{
		"project_budget":       10000.0,
		"employee_impact":      50.0,
		"project_duration":     6.0,
		"average_salary":       1000.0,
		"risk_level":           "medium",
		"industry_type":        "finance",
		"previous_success":     80.0,
		"leadership_alignment": 5.0,
		"employee_readiness":   5.0,
		"communication_plan":   5.0,
		"training_budget":      2000.0,
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func TestCalculateStoresAndResponds(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	handler := mountModule(t, New(WithStore(store)))

	rr := postJSON(t, handler, routepath.APICalculateROI, validBody())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %q", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp calculateResponse
	decodeBody(t, rr, &resp)
	if resp.ROI != 2300 {
		t.Fatalf("roi = %v, want 2300", resp.ROI)
	}
	if resp.NetBenefit != 230000 {
		t.Fatalf("net_benefit = %v, want 230000", resp.NetBenefit)
	}
	if resp.ExpectedSuccess != 80 {
		t.Fatalf("expected_success = %v, want 80", resp.ExpectedSuccess)
	}

	if len(store.entries) != 1 {
		t.Fatalf("stored entries = %d, want 1", len(store.entries))
	}
	entry := store.entries[0]
	if entry.ID == "" {
		t.Fatal("expected generated entry id")
	}
	if entry.IndustryType != "finance" {
		t.Fatalf("stored industry = %q, want %q", entry.IndustryType, "finance")
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected entry timestamp")
	}
}

func TestCalculateMissingFields(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, New(WithStore(&fakeStore{})))

	body := validBody()
	delete(body, "communication_plan")

	rr := postJSON(t, handler, routepath.APICalculateROI, body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	decodeBody(t, rr, &resp)
	if resp["error"] != "missing input fields" {
		t.Fatalf("error = %q, want %q", resp["error"], "missing input fields")
	}
}

func TestCalculateInvalidInputs(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, New(WithStore(&fakeStore{})))

	body := validBody()
	body["project_budget"] = 0.0

	rr := postJSON(t, handler, routepath.APICalculateROI, body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCalculateStoreFailure(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, New(WithStore(&fakeStore{createErr: errors.New("disk full")})))

	rr := postJSON(t, handler, routepath.APICalculateROI, validBody())
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestListReturnsStoredEntries(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{entries: []storage.Entry{{
		ID:              "entry-1",
		ProjectBudget:   10000,
		NetBenefit:      230000,
		ROI:             2300,
		ExpectedSuccess: 80,
		IndustryType:    "finance",
		ProjectDuration: 6,
		CreatedAt:       created,
	}}}
	handler := mountModule(t, New(WithStore(store)))

	req := httptest.NewRequest(http.MethodGet, routepath.APIListROI, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		ROIData []entryPayload `json:"roi_data"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.ROIData) != 1 {
		t.Fatalf("roi_data length = %d, want 1", len(resp.ROIData))
	}
	if resp.ROIData[0].Timestamp != "2026-03-01T12:00:00Z" {
		t.Fatalf("timestamp = %q, want RFC3339 UTC", resp.ROIData[0].Timestamp)
	}
}

func TestAnomaliesReturnsFlaggedEntries(t *testing.T) {
	t.Parallel()

	store := &fakeStore{entries: []storage.Entry{
		{ID: "entry-1", ROI: 100, CreatedAt: time.Now(), IndustryType: "finance"},
		{ID: "entry-2", ROI: 9000, CreatedAt: time.Now(), IndustryType: "finance"},
	}}
	detector := &fakeDetector{configured: true, flagged: store.entries[1:]}
	handler := mountModule(t, New(WithStore(store), WithDetector(detector)))

	req := httptest.NewRequest(http.MethodGet, routepath.APIDetectAnomalies, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %q", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Anomalies []entryPayload `json:"anomalies"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Anomalies) != 1 {
		t.Fatalf("anomalies length = %d, want 1", len(resp.Anomalies))
	}
	if resp.Anomalies[0].ID != "entry-2" {
		t.Fatalf("anomaly id = %q, want %q", resp.Anomalies[0].ID, "entry-2")
	}
	if detector.calls != 1 {
		t.Fatalf("detector calls = %d, want 1", detector.calls)
	}
}

func TestAnomaliesWithoutDetector(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, New(WithStore(&fakeStore{})))

	req := httptest.NewRequest(http.MethodGet, routepath.APIDetectAnomalies, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestAnomaliesDetectorFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{entries: []storage.Entry{{ID: "entry-1", ROI: 100, CreatedAt: time.Now()}}}
	detector := &fakeDetector{configured: true, err: errors.New("api down")}
	handler := mountModule(t, New(WithStore(store), WithDetector(detector)))

	req := httptest.NewRequest(http.MethodGet, routepath.APIDetectAnomalies, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
}

func TestMethodContracts(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, New(WithStore(&fakeStore{}), WithDetector(&fakeDetector{configured: true})))

	tests := []struct {
		name      string
		method    string
		path      string
		wantAllow string
	}{
		{name: "calculate get rejected", method: http.MethodGet, path: routepath.APICalculateROI, wantAllow: http.MethodPost},
		{name: "list post rejected", method: http.MethodPost, path: routepath.APIListROI, wantAllow: http.MethodGet},
		{name: "anomalies post rejected", method: http.MethodPost, path: routepath.APIDetectAnomalies, wantAllow: http.MethodGet},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
			}
			if got := rr.Header().Get("Allow"); got != tc.wantAllow {
				t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
			}
		})
	}
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, New(WithStore(&fakeStore{})))

	req := httptest.NewRequest(http.MethodOptions, routepath.APICalculateROI, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Allow-Origin = %q, want %q", got, "*")
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "POST, GET, OPTIONS" {
		t.Fatalf("Allow-Methods = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, routepath.APIListROI, nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Allow-Origin on GET = %q, want %q", got, "*")
	}
}

func TestDegradedModuleWithoutStore(t *testing.T) {
	t.Parallel()

	m := New()
	if m.Healthy() {
		t.Fatal("expected module without store to report unhealthy")
	}

	handler := mountModule(t, m)
	rr := postJSON(t, handler, routepath.APICalculateROI, validBody())
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

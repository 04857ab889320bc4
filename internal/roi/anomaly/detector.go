// Package anomaly flags unusual ROI projections through an external
// time-series anomaly detection API.
package anomaly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/roivolution/roivolution/internal/platform/timeouts"
	"github.com/roivolution/roivolution/internal/roi/storage"
)

const detectPath = "/anomalydetector/v1.1/timeseries/entire/detect"

// subscriptionKeyHeader authenticates requests to the detector API.
const subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

// ErrNotConfigured reports detection without a configured endpoint.
var ErrNotConfigured = errors.New("anomaly detector is not configured")

// Detector calls the external anomaly detection API over HTTP.
type Detector struct {
	endpoint string
	key      string
	client   *http.Client
	tracer   trace.Tracer
}

// Option configures a Detector.
type Option func(*Detector)

// WithHTTPClient overrides the HTTP client used for detector calls.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Detector) {
		if client != nil {
			d.client = client
		}
	}
}

// New returns a Detector for the given API endpoint and subscription key.
func New(endpoint string, key string, opts ...Option) *Detector {
	d := &Detector{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		key:      strings.TrimSpace(key),
		client:   &http.Client{Timeout: timeouts.AnomalyRequest},
		tracer:   otel.Tracer("roivolution/anomaly"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Configured reports whether the detector has an endpoint to call.
func (d *Detector) Configured() bool {
	return d != nil && d.endpoint != ""
}

type seriesPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

type detectRequest struct {
	Series []seriesPoint `json:"series"`
}

type detectResponse struct {
	IsAnomaly []bool `json:"isAnomaly"`
}

// Detect submits the ROI series built from entries to the detector API and
// returns the entries the API flagged, in series order.
func (d *Detector) Detect(ctx context.Context, entries []storage.Entry) ([]storage.Entry, error) {
	if !d.Configured() {
		return nil, ErrNotConfigured
	}
	if len(entries) == 0 {
		return nil, nil
	}

	ctx, span := d.tracer.Start(ctx, "anomaly.detect",
		trace.WithAttributes(attribute.Int("roi.series_length", len(entries))),
	)
	defer span.End()

	payload := detectRequest{Series: make([]seriesPoint, 0, len(entries))}
	for _, entry := range entries {
		payload.Series = append(payload.Series, seriesPoint{
			Timestamp: entry.CreatedAt.UTC().Format(time.RFC3339),
			Value:     entry.ROI,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint+detectPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.key != "" {
		req.Header.Set(subscriptionKeyHeader, d.key)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call anomaly detector: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anomaly detector returned status %d", resp.StatusCode)
	}

	var result detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode detect response: %w", err)
	}
	if len(result.IsAnomaly) != len(entries) {
		return nil, fmt.Errorf("anomaly detector returned %d flags for %d points", len(result.IsAnomaly), len(entries))
	}

	var flagged []storage.Entry
	for i, isAnomaly := range result.IsAnomaly {
		if isAnomaly {
			flagged = append(flagged, entries[i])
		}
	}
	return flagged, nil
}

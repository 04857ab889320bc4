// Package routepath centralizes web route constants so handlers, modules,
// and tests agree on the URL space.
package routepath

const (
	// Home is the root page.
	Home = "/"
	// Contacts is the contacts page.
	Contacts = "/contacts"
	// StaticPrefix serves embedded static assets.
	StaticPrefix = "/static/"

	// APIPrefix mounts the JSON API module.
	APIPrefix = "/api/"
	// APICalculateROI accepts ROI projection submissions.
	APICalculateROI = "/api/roi/calculate"
	// APIListROI lists stored ROI projections.
	APIListROI = "/api/roi"
	// APIDetectAnomalies runs anomaly detection over stored projections.
	APIDetectAnomalies = "/api/roi/anomalies"
)

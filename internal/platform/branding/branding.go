// Package branding centralizes user-facing product naming so surfaces stay
// consistent when the product name changes.
package branding

// AppName is the user-facing product name.
const AppName = "ROIvolution"

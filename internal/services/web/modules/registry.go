// Package modules composes the web page and API modules into the serving mux.
package modules

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/roivolution/roivolution/internal/services/web/module"
	"github.com/roivolution/roivolution/internal/services/web/modules/contacts"
	"github.com/roivolution/roivolution/internal/services/web/modules/roiapi"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the capabilities required to compose the module
// registry. Each field is typed as the narrow contract defined by the
// consuming module, so modules physically cannot access capabilities they
// were not given.
type Dependencies struct {
	// Panel is the configuration panel the contacts page delegates to.
	Panel templ.Component

	// API module capabilities.
	Store    roiapi.EntryStore
	Detector roiapi.Detector
}

// Compose builds the module set for the web service.
func Compose(deps Dependencies) []Module {
	return []Module{
		contacts.New(contacts.WithPanel(deps.Panel)),
		roiapi.New(roiapi.WithStore(deps.Store), roiapi.WithDetector(deps.Detector)),
	}
}

// MountAll mounts every module onto mux. A module that fails to mount aborts
// composition; the server should not start half-wired.
func MountAll(mux *http.ServeMux, mods []Module) error {
	if mux == nil {
		return fmt.Errorf("mux is required")
	}
	for _, mod := range mods {
		mount, err := mod.Mount()
		if err != nil {
			return fmt.Errorf("mount module %s: %w", mod.ID(), err)
		}
		if mount.Pattern == "" || mount.Handler == nil {
			return fmt.Errorf("mount module %s: incomplete mount", mod.ID())
		}
		mux.Handle(mount.Pattern, mount.Handler)
	}
	return nil
}

// Health reports per-module availability. Modules that do not implement
// HealthReporter count as healthy.
func Health(mods []Module) map[string]bool {
	health := make(map[string]bool, len(mods))
	for _, mod := range mods {
		healthy := true
		if reporter, ok := mod.(module.HealthReporter); ok {
			healthy = reporter.Healthy()
		}
		health[mod.ID()] = healthy
	}
	return health
}

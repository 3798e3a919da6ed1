package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FeatureFlags manages feature toggles. Defaults are set in code; any flag
// can be flipped per environment without a rebuild.
type FeatureFlags struct {
	mu sync.RWMutex

	features map[string]*Feature
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool
}

// Predefined feature flag names.
const (
	// FeatureStalenessGuard tags each fetch with a request token and
	// discards responses whose token no longer matches the active view.
	FeatureStalenessGuard = "ui.staleness_guard"

	// FeatureRiskFilter exposes the mentor roster risk filter.
	FeatureRiskFilter = "ui.risk_filter"

	// FeatureNotificationsTab exposes the notifications tab.
	FeatureNotificationsTab = "ui.notifications_tab"

	// FeatureThemeToggle exposes the light/dark toggle.
	FeatureThemeToggle = "ui.theme_toggle"
)

// LoadFeatureFlags loads feature flags from environment variables.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{
		features: make(map[string]*Feature),
	}

	ff.initializeDefaults()
	ff.loadFromEnvironment()

	return ff
}

// initializeDefaults sets up all features with default values.
func (ff *FeatureFlags) initializeDefaults() {
	ff.features[FeatureStalenessGuard] = &Feature{
		Name:        FeatureStalenessGuard,
		Description: "Discard fetch responses that arrive for a view no longer active",
		Enabled:     true,
	}

	ff.features[FeatureRiskFilter] = &Feature{
		Name:        FeatureRiskFilter,
		Description: "Mentor roster risk level filter",
		Enabled:     true,
	}

	ff.features[FeatureNotificationsTab] = &Feature{
		Name:        FeatureNotificationsTab,
		Description: "Notifications tab in the navigation",
		Enabled:     true,
	}

	ff.features[FeatureThemeToggle] = &Feature{
		Name:        FeatureThemeToggle,
		Description: "Light/dark theme toggle",
		Enabled:     true,
	}
}

// loadFromEnvironment applies env overrides.
// "ui.risk_filter" is overridden by FEATURE_UI_RISK_FILTER.
func (ff *FeatureFlags) loadFromEnvironment() {
	for name, feature := range ff.features {
		envKey := featureNameToEnvKey(name)
		if val := os.Getenv(envKey); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				feature.Enabled = b
			}
		}
	}
}

// featureNameToEnvKey converts feature name to environment variable key.
// "ui.staleness_guard" -> "FEATURE_UI_STALENESS_GUARD"
func featureNameToEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, ".", "_")
	return "FEATURE_" + key
}

// IsEnabled checks if a feature is enabled. Unknown names are disabled.
func (ff *FeatureFlags) IsEnabled(featureName string) bool {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	feature, ok := ff.features[featureName]
	return ok && feature.Enabled
}

// EnableFeature enables a feature at runtime.
func (ff *FeatureFlags) EnableFeature(featureName string) error {
	return ff.setEnabled(featureName, true)
}

// DisableFeature disables a feature at runtime.
func (ff *FeatureFlags) DisableFeature(featureName string) error {
	return ff.setEnabled(featureName, false)
}

func (ff *FeatureFlags) setEnabled(featureName string, enabled bool) error {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	feature, ok := ff.features[featureName]
	if !ok {
		return &FeatureFlagError{Feature: featureName, Message: "unknown feature"}
	}
	feature.Enabled = enabled
	return nil
}

// GetAllFeatures returns a copy of all registered features.
func (ff *FeatureFlags) GetAllFeatures() map[string]Feature {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	out := make(map[string]Feature, len(ff.features))
	for name, f := range ff.features {
		out[name] = *f
	}
	return out
}

// --- Convenience helpers ---

// StalenessGuardEnabled reports whether stale fetch responses are discarded.
func (ff *FeatureFlags) StalenessGuardEnabled() bool {
	return ff.IsEnabled(FeatureStalenessGuard)
}

// RiskFilterEnabled reports whether the mentor risk filter is exposed.
func (ff *FeatureFlags) RiskFilterEnabled() bool {
	return ff.IsEnabled(FeatureRiskFilter)
}

// NotificationsTabEnabled reports whether the notifications tab is exposed.
func (ff *FeatureFlags) NotificationsTabEnabled() bool {
	return ff.IsEnabled(FeatureNotificationsTab)
}

// ThemeToggleEnabled reports whether the theme toggle is exposed.
func (ff *FeatureFlags) ThemeToggleEnabled() bool {
	return ff.IsEnabled(FeatureThemeToggle)
}

// FeatureFlagError describes an invalid feature flag operation.
type FeatureFlagError struct {
	Feature string
	Message string
}

func (e *FeatureFlagError) Error() string {
	return fmt.Sprintf("feature flag %q: %s", e.Feature, e.Message)
}

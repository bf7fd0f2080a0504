package server

import (
	"fmt"
	"strings"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name for metrics and logs,
// deriving it from the instance type when not configured.
func normalizeProviderName(raw string, provider providers.TeamMatchesProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}

package domain

import "strings"

const (
	ResponseAcknowledged = "Ackn."
	ResponseFixed        = "Fixed"
)

// NormalizeResponse collapses free-text team responses into short statuses.
// "acknowledged" wins over "fixed" when both appear.
func NormalizeResponse(response string) string {
	lower := strings.ToLower(response)
	switch {
	case strings.Contains(lower, "acknowledged"):
		return ResponseAcknowledged
	case strings.Contains(lower, "fixed"):
		return ResponseFixed
	default:
		return response
	}
}

// ResponseIcon picks the status icon for a response. It is independent of
// NormalizeResponse: "Wontfix" is kept verbatim but still gets ❌.
func ResponseIcon(response string) string {
	lower := strings.ToLower(response)
	switch {
	case strings.Contains(lower, "fixed"):
		return "✅"
	case strings.Contains(lower, "wontfix"):
		return "❌"
	case strings.Contains(lower, "ack"):
		return "🤝"
	case strings.Contains(lower, "invalid"):
		return "🔨"
	default:
		return ""
	}
}

// Package taxonomy maps linter check identifiers to the hand-curated
// names, descriptions, and remediation advice used across reports and
// outreach messages.
package taxonomy

// Defaults returned for identifiers outside the curated ruleset.
const (
	UnknownCheckName      = "Unknown Check"
	NoDescription         = "No description available"
	DefaultRecommendation = "Review and remediate according to your organization's best practices."
)

// Name returns the human-readable name for a check identifier.
func Name(checkID string) string {
	if name, ok := checkNames[checkID]; ok {
		return name
	}
	return UnknownCheckName
}

// Description returns the long-form description for a check identifier.
func Description(checkID string) string {
	if desc, ok := checkDescriptions[checkID]; ok {
		return desc
	}
	return NoDescription
}

// Recommendations returns the ordered remediation steps for a check
// identifier, or a single generic step for unknown identifiers.
func Recommendations(checkID string) []string {
	if recs, ok := checkRecommendations[checkID]; ok {
		return recs
	}
	return []string{DefaultRecommendation}
}

// IsBillingCheck reports whether the identifier signals non-on-demand
// DynamoDB billing.
func IsBillingCheck(checkID string) bool {
	return billingChecks[checkID]
}

// Package severity provides severity level constants for lint issues.
//
// Levels used by the lint engine:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: An identifier was renamed by autofix
//   - SeverityError: An identifier violates its category's naming convention
//   - SeverityCritical: An autofix rename would overwrite an existing identifier
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a lint issue.
type Severity int

const (
	// SeverityError indicates a naming-convention violation reported in report mode.
	SeverityError Severity = iota

	// SeverityWarning indicates a non-fatal finding, such as an autofix rename
	// that operators should see in their logs.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo

	// SeverityCritical indicates a finding that aborts startup even in autofix mode.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// IsFatal reports whether an issue of this severity must stop startup.
func (s Severity) IsFatal() bool {
	return s == SeverityError || s == SeverityCritical
}

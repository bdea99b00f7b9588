// Package lint checks the static tables of dump domains: group expansions,
// default lists and name collisions between namespaces.
package lint

import "encoding/json"

// Severity indicates the severity level of a lint issue.
type Severity int

const (
	// SeverityError indicates a table that resolves incorrectly.
	SeverityError Severity = iota
	// SeverityWarning indicates a table that works but may surprise users.
	SeverityWarning
	// SeverityInfo indicates something worth documenting.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue represents a single lint issue found in a domain.
type Issue struct {
	// Rule is the unique identifier of the rule that found this issue.
	Rule string `json:"rule"`
	// Domain is the name of the offending domain.
	Domain string `json:"domain"`
	// Subject is the field, group or default entry the issue is about.
	Subject string `json:"subject,omitempty"`
	// Message describes the issue.
	Message string `json:"message"`
	// Severity indicates how serious the issue is.
	Severity Severity `json:"severity"`
	// Suggestion provides a recommended fix for the issue.
	Suggestion string `json:"suggestion,omitempty"`
}

// Config controls linting behavior.
type Config struct {
	// DisabledRules is a list of rule IDs to skip.
	DisabledRules []string
	// MinSeverity is the minimum severity level to report.
	// Issues with lower severity will be filtered out.
	MinSeverity Severity
}

// IsRuleDisabled returns true if the given rule ID is disabled.
func (c *Config) IsRuleDisabled(ruleID string) bool {
	for _, id := range c.DisabledRules {
		if id == ruleID {
			return true
		}
	}
	return false
}

// ShouldReport returns true if the issue should be reported based on config.
func (c *Config) ShouldReport(issue Issue) bool {
	if c.IsRuleDisabled(issue.Rule) {
		return false
	}
	// Lower severity value means higher priority (Error=0 is most severe)
	return issue.Severity <= c.MinSeverity
}

// Package cmd provides the commands shared by statdump binaries.
//
// The dump command tree lives in package domain; this package adds the root
// command and the commands that inspect the domain tables.
package cmd

import "github.com/lex00/statdump/lint"

// LintOptions contains options for the lint command.
type LintOptions struct {
	// Format is "text" or "json".
	Format  string
	Disable []string
	// MinSeverity filters out issues below it.
	MinSeverity string
}

// config converts the options into a lint.Config.
func (o LintOptions) config() (*lint.Config, error) {
	cfg := &lint.Config{DisabledRules: o.Disable, MinSeverity: lint.SeverityInfo}
	switch o.MinSeverity {
	case "", "info":
	case "warning":
		cfg.MinSeverity = lint.SeverityWarning
	case "error":
		cfg.MinSeverity = lint.SeverityError
	default:
		return nil, &UnknownSeverityError{Name: o.MinSeverity}
	}
	return cfg, nil
}

// UnknownSeverityError reports a --severity value that names no severity.
type UnknownSeverityError struct {
	Name string
}

func (e *UnknownSeverityError) Error() string {
	return "unknown severity: " + e.Name + " (choose from error, warning, info)"
}

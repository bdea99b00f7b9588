package lint

import "github.com/lex00/statdump/domain"

// LintDomain runs rules over one domain and returns the issues that pass
// the config filters.
func LintDomain(d domain.Info, rules []Rule, cfg *Config) []Issue {
	var issues []Issue
	for _, rule := range rules {
		if cfg != nil && cfg.IsRuleDisabled(rule.ID()) {
			continue
		}
		for _, issue := range rule.Check(d) {
			if issue.Domain == "" {
				issue.Domain = d.Name()
			}
			if issue.Rule == "" {
				issue.Rule = rule.ID()
			}
			if cfg != nil && !cfg.ShouldReport(issue) {
				continue
			}
			issues = append(issues, issue)
		}
	}
	return issues
}

// LintAll lints every domain in order.
func LintAll(domains []domain.Info, rules []Rule, cfg *Config) []Issue {
	var issues []Issue
	for _, d := range domains {
		issues = append(issues, LintDomain(d, rules, cfg)...)
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

package lint

import (
	"fmt"
	"strings"

	"github.com/lex00/statdump/domain"
	"github.com/lex00/statdump/field"
)

// DefaultRules returns every built-in rule.
func DefaultRules() []Rule {
	return []Rule{
		EmptyGroupRule{},
		UnknownExpansionRule{},
		NamespaceCollisionRule{},
		CuratedSubsetRule{},
		DefaultRoundTripRule{},
	}
}

// EmptyGroupRule reports groups that expand to nothing.
type EmptyGroupRule struct{}

func (EmptyGroupRule) ID() string { return "DUMP001" }

func (EmptyGroupRule) Description() string {
	return "aggregated fields must expand to at least one field"
}

func (r EmptyGroupRule) Check(d domain.Info) []Issue {
	var issues []Issue
	for _, g := range d.GroupNames() {
		for _, detail := range []bool{false, true} {
			names, err := d.Expansion(g, detail)
			if err == nil && len(names) > 0 {
				continue
			}
			issues = append(issues, Issue{
				Rule:     r.ID(),
				Subject:  g,
				Message:  fmt.Sprintf("%s expands to no fields %s", g, detailLabel(detail)),
				Severity: SeverityError,
			})
		}
	}
	return issues
}

// UnknownExpansionRule reports expansions naming fields the domain does not
// declare.
type UnknownExpansionRule struct{}

func (UnknownExpansionRule) ID() string { return "DUMP002" }

func (UnknownExpansionRule) Description() string {
	return "aggregated fields must expand to declared fields"
}

func (r UnknownExpansionRule) Check(d domain.Info) []Issue {
	declared := setOf(d.FieldNames())
	var issues []Issue
	for _, g := range d.GroupNames() {
		for _, detail := range []bool{false, true} {
			names, _ := d.Expansion(g, detail)
			for _, name := range names {
				if declared[name] {
					continue
				}
				issues = append(issues, Issue{
					Rule:     r.ID(),
					Subject:  g,
					Message:  fmt.Sprintf("%s %s includes undeclared field %s", g, detailLabel(detail), name),
					Severity: SeverityError,
				})
			}
		}
	}
	return issues
}

// NamespaceCollisionRule reports names present in more than one namespace.
// Resolution picks the first of common field, group, field, so the others
// are unreachable by name.
type NamespaceCollisionRule struct{}

func (NamespaceCollisionRule) ID() string { return "DUMP003" }

func (NamespaceCollisionRule) Description() string {
	return "a name should belong to only one of common fields, groups and fields"
}

func (r NamespaceCollisionRule) Check(d domain.Info) []Issue {
	spaces := map[string][]field.Namespace{}
	var order []string
	add := func(ns field.Namespace, names []string) {
		for _, name := range names {
			if _, seen := spaces[name]; !seen {
				order = append(order, name)
			}
			spaces[name] = append(spaces[name], ns)
		}
	}
	add(field.NamespaceCommon, d.CommonNames())
	add(field.NamespaceGroup, d.GroupNames())
	add(field.NamespaceField, d.FieldNames())

	var issues []Issue
	for _, name := range order {
		ns := spaces[name]
		if len(ns) < 2 {
			continue
		}
		winner, err := d.Classify(name)
		if err != nil {
			continue
		}
		kinds := make([]string, len(ns))
		for i, n := range ns {
			kinds[i] = n.String()
		}
		issues = append(issues, Issue{
			Rule:       r.ID(),
			Subject:    name,
			Message:    fmt.Sprintf("%s is both a %s; the %s wins", name, strings.Join(kinds, " and a "), winner),
			Severity:   SeverityWarning,
			Suggestion: "rename one of them",
		})
	}
	return issues
}

// CuratedSubsetRule reports curated expansions that are not part of the
// full expansion, unless the field is a documented exclusion.
type CuratedSubsetRule struct{}

func (CuratedSubsetRule) ID() string { return "DUMP004" }

func (CuratedSubsetRule) Description() string {
	return "--detail should only add fields to an aggregated field"
}

func (r CuratedSubsetRule) Check(d domain.Info) []Issue {
	var issues []Issue
	for _, g := range d.GroupNames() {
		curated, err := d.Expansion(g, false)
		if err != nil {
			continue
		}
		full, err := d.Expansion(g, true)
		if err != nil {
			continue
		}
		inFull := setOf(full)
		excluded := setOf(d.Exclusions(g))
		for _, name := range curated {
			if inFull[name] || excluded[name] {
				continue
			}
			issues = append(issues, Issue{
				Rule:       r.ID(),
				Subject:    g,
				Message:    fmt.Sprintf("%s drops %s under --detail", g, name),
				Severity:   SeverityInfo,
				Suggestion: "document it as an exclusion",
			})
		}
	}
	return issues
}

// DefaultRoundTripRule reports default entries that do not resolve back to
// the namespace they were written in.
type DefaultRoundTripRule struct{}

func (DefaultRoundTripRule) ID() string { return "DUMP005" }

func (DefaultRoundTripRule) Description() string {
	return "default fields must resolve to themselves by name"
}

func (r DefaultRoundTripRule) Check(d domain.Info) []Issue {
	var issues []Issue
	for _, e := range d.DefaultEntries() {
		ns, err := d.Classify(e.Name)
		switch {
		case err != nil:
			issues = append(issues, Issue{
				Rule:     r.ID(),
				Subject:  e.Name,
				Message:  fmt.Sprintf("default %s %s does not resolve: %v", e.Namespace, e.Name, err),
				Severity: SeverityError,
			})
		case ns != e.Namespace:
			issues = append(issues, Issue{
				Rule:     r.ID(),
				Subject:  e.Name,
				Message:  fmt.Sprintf("default %s %s resolves as a %s", e.Namespace, e.Name, ns),
				Severity: SeverityError,
			})
		}
	}
	return issues
}

func detailLabel(detail bool) string {
	if detail {
		return "with --detail"
	}
	return "without --detail"
}

func setOf(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

package lint

import (
	"sort"
	"sync"

	"github.com/lex00/statdump/domain"
)

// Rule defines the interface for lint rules.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "DUMP001").
	ID() string
	// Description returns a brief description of what the rule checks.
	Description() string
	// Check analyzes one domain and returns any issues found.
	Check(d domain.Info) []Issue
}

// RuleRegistry maintains a collection of rules.
type RuleRegistry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRuleRegistry creates a new empty rule registry.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{
		rules: make(map[string]Rule),
	}
}

// DefaultRegistry returns a registry holding DefaultRules.
func DefaultRegistry() *RuleRegistry {
	r := NewRuleRegistry()
	for _, rule := range DefaultRules() {
		r.Register(rule)
	}
	return r
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it will be replaced.
func (r *RuleRegistry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
}

// Get returns the rule with the given ID, or nil if not found.
func (r *RuleRegistry) Get(id string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[id]
}

// All returns all registered rules ordered by ID.
func (r *RuleRegistry) All() []Rule {
	ids := r.IDs()
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules := make([]Rule, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, r.rules[id])
	}
	return rules
}

// IDs returns all registered rule IDs in sorted order.
func (r *RuleRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

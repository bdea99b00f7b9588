package domain

import (
	"context"

	"github.com/lex00/statdump/field"
)

// Info is the type-erased view of a Domain used by commands and lint rules
// that work across every domain.
type Info interface {
	// Name returns the subcommand name (e.g., "system", "disk")
	Name() string

	// About returns the one line description of the domain
	About() string

	// LongAbout returns the generated help text
	LongAbout() string

	// Selectable reports whether the domain offers --select
	Selectable() bool

	CommonNames() []string
	FieldNames() []string
	GroupNames() []string

	// Expansion renders the named group's expansion for detail
	Expansion(group string, detail bool) ([]string, error)

	// Exclusions renders the fields documented as missing from the named
	// group's full expansion
	Exclusions(group string) []string

	// DefaultEntries renders the default field list
	DefaultEntries() []DefaultEntry

	// Classify reports which namespace a token resolves in
	Classify(token string) (field.Namespace, error)

	// ResolveNames resolves tokens and renders the flattened result
	ResolveNames(tokens []string, forceDefault, detail bool) ([]string, error)
}

// DefaultEntry is one rendered entry of a default field list.
type DefaultEntry struct {
	Name      string
	Namespace field.Namespace
}

// Plan is a fully resolved dump request. Concrete plans are *Request[F] for
// the domain's field type F; dumpers that need typed fields type switch on it.
type Plan interface {
	// DomainName returns the domain the plan was resolved for
	DomainName() string

	// Titles renders the resolved leaf fields in output order
	Titles() []string

	// SelectName renders the --select field, or "" when none was given
	SelectName() string

	// Options returns the general options of the request
	Options() GeneralOpts
}

// Dumper retrieves and renders the statistics of a plan. It is supplied by
// the host tool.
type Dumper interface {
	Dump(ctx context.Context, plan Plan) error
}

// DumperFunc adapts a function to Dumper.
type DumperFunc func(ctx context.Context, plan Plan) error

// Dump implements Dumper.
func (f DumperFunc) Dump(ctx context.Context, plan Plan) error {
	return f(ctx, plan)
}

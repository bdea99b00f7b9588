package domain

import (
	"fmt"
	"sync"

	"github.com/lex00/statdump/field"
)

// Example is one illustrative invocation shown in a domain's help text.
type Example struct {
	// Description introduces the command; empty for a bare example.
	Description string
	// Args follows "statdump dump <domain>".
	Args string
}

// Definition is the static configuration of a domain.
type Definition[F field.ID, A field.Group[F]] struct {
	Name     string
	About    string
	Fields   *field.Catalog[F]
	Groups   *field.Catalog[A]
	Defaults []field.OptionField[F, A]
	// Exclusions lists, per group, fields deliberately left out of the full
	// expansion even though they belong to the group's sub-model.
	Exclusions map[A][]F
	Examples   []Example
	// Selectable enables --select and the row operations built on it.
	Selectable bool
}

// Domain is one statistics category with its own closed field set. All of its
// configuration is immutable; only the generated help text is computed lazily.
type Domain[F field.ID, A field.Group[F]] struct {
	def      Definition[F, A]
	resolver field.Resolver[F, A]
	help     func() string
}

// New builds a domain from its definition.
func New[F field.ID, A field.Group[F]](def Definition[F, A]) *Domain[F, A] {
	d := &Domain[F, A]{
		def:      def,
		resolver: field.Resolver[F, A]{Fields: def.Fields, Groups: def.Groups},
	}
	d.help = sync.OnceValue(d.buildLongAbout)
	return d
}

// Name returns the subcommand name.
func (d *Domain[F, A]) Name() string { return d.def.Name }

// About returns the one line description.
func (d *Domain[F, A]) About() string { return d.def.About }

// Selectable reports whether the domain offers --select.
func (d *Domain[F, A]) Selectable() bool { return d.def.Selectable }

// Fields returns the leaf field catalog.
func (d *Domain[F, A]) Fields() *field.Catalog[F] { return d.def.Fields }

// Groups returns the aggregate group catalog.
func (d *Domain[F, A]) Groups() *field.Catalog[A] { return d.def.Groups }

// Resolver returns the token resolver of the domain.
func (d *Domain[F, A]) Resolver() field.Resolver[F, A] { return d.resolver }

// DefaultOptions returns a copy of the default field list.
func (d *Domain[F, A]) DefaultOptions() []field.OptionField[F, A] {
	return append([]field.OptionField[F, A](nil), d.def.Defaults...)
}

// Examples returns the example invocations.
func (d *Domain[F, A]) Examples() []Example {
	return append([]Example(nil), d.def.Examples...)
}

// LongAbout returns the generated help text. It is built on first use and the
// same string is returned to every caller afterwards.
func (d *Domain[F, A]) LongAbout() string {
	return d.help()
}

// Resolve turns tokens into the leaf fields to print. Tokens are always
// resolved so a bad token fails even when the default list is forced. When
// forceDefault is set, or no tokens are given, the default list is expanded.
func (d *Domain[F, A]) Resolve(tokens []string, forceDefault, detail bool) ([]field.DumpField[F], error) {
	opts, err := d.resolver.ParseAll(tokens)
	if err != nil {
		return nil, err
	}
	if forceDefault || len(tokens) == 0 {
		opts = d.def.Defaults
	}
	return field.ExpandFields(opts, detail), nil
}

// ExcludedFrom returns the fields documented as missing from the full
// expansion of group a.
func (d *Domain[F, A]) ExcludedFrom(a A) []F {
	return append([]F(nil), d.def.Exclusions[a]...)
}

// CommonNames lists the common field names.
func (d *Domain[F, A]) CommonNames() []string {
	return field.CommonFields().Names()
}

// FieldNames lists the domain field names in declared order.
func (d *Domain[F, A]) FieldNames() []string {
	return d.def.Fields.Names()
}

// GroupNames lists the group names in declared order.
func (d *Domain[F, A]) GroupNames() []string {
	return d.def.Groups.Names()
}

// Expansion renders the expansion of the named group.
func (d *Domain[F, A]) Expansion(group string, detail bool) ([]string, error) {
	a, err := d.def.Groups.Parse(group)
	if err != nil {
		return nil, err
	}
	return field.Names(a.Expand(detail)), nil
}

// Exclusions renders the documented exclusions of the named group.
func (d *Domain[F, A]) Exclusions(group string) []string {
	a, err := d.def.Groups.Parse(group)
	if err != nil {
		return nil
	}
	return field.Names(d.def.Exclusions[a])
}

// DefaultEntries renders the default list with the namespace each entry was
// authored in.
func (d *Domain[F, A]) DefaultEntries() []DefaultEntry {
	out := make([]DefaultEntry, len(d.def.Defaults))
	for i, o := range d.def.Defaults {
		out[i] = DefaultEntry{Name: o.String(), Namespace: namespaceOf(o)}
	}
	return out
}

// Classify reports which namespace token resolves in.
func (d *Domain[F, A]) Classify(token string) (field.Namespace, error) {
	o, err := d.resolver.Parse(token)
	if err != nil {
		return 0, err
	}
	return namespaceOf(o), nil
}

// ResolveNames is Resolve with the result rendered as names.
func (d *Domain[F, A]) ResolveNames(tokens []string, forceDefault, detail bool) ([]string, error) {
	leaves, err := d.Resolve(tokens, forceDefault, detail)
	if err != nil {
		return nil, err
	}
	return field.Names(leaves), nil
}

func namespaceOf[F field.ID, A field.Group[F]](o field.OptionField[F, A]) field.Namespace {
	if o.IsAgg() {
		return field.NamespaceGroup
	}
	u, _ := o.Unit()
	if _, ok := u.Common(); ok {
		return field.NamespaceCommon
	}
	return field.NamespaceField
}

var (
	registryOnce sync.Once
	registry     []Info
	byName       map[string]Info
)

func loadRegistry() {
	registry = []Info{System, Disk, Btrfs, Process, Cgroup, Iface, Network, Transport}
	byName = make(map[string]Info, len(registry))
	for _, d := range registry {
		byName[d.Name()] = d
	}
}

// All returns every built-in domain in subcommand order.
func All() []Info {
	registryOnce.Do(loadRegistry)
	return append([]Info(nil), registry...)
}

// Lookup returns the built-in domain called name.
func Lookup(name string) (Info, error) {
	registryOnce.Do(loadRegistry)
	d, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown domain: %s", name)
	}
	return d, nil
}

// Package field resolves user supplied field tokens into typed statistic
// fields.
//
// Every statistics domain owns a closed set of leaf fields and a closed set of
// aggregate groups. Both are described by a Catalog, an ordered table of
// canonical names from which parsing, rendering and enumeration are derived.
// A Resolver turns one token into an OptionField (a leaf or a group reference)
// and ExpandFields flattens a selection into the leaves to print.
package field

import (
	"errors"
	"fmt"
	"strings"
)

// ID is satisfied by every closed identifier set: leaf fields, aggregate
// groups and CommonField.
type ID interface {
	comparable
	fmt.Stringer
}

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("no such field")

// NotFoundError reports a token that is not a name in a catalog.
type NotFoundError struct {
	// Kind names the catalog, for example "system field" or "disk group".
	Kind  string
	Token string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %s", e.Kind, e.Token)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Entry pairs a canonical name with its value.
type Entry[T comparable] struct {
	Name  string
	Value T
}

// E is shorthand for building an Entry.
func E[T comparable](name string, value T) Entry[T] {
	return Entry[T]{Name: name, Value: value}
}

// FieldCatalog parses, renders and enumerates a closed identifier set.
type FieldCatalog[T comparable] interface {
	Parse(s string) (T, error)
	Name(v T) string
	All() []T
}

// Catalog is an ordered table of canonical names. It is immutable once built
// and safe for concurrent use.
type Catalog[T comparable] struct {
	kind    string
	entries []Entry[T]
	byName  map[string]T
	byValue map[T]string
}

// NewCatalog builds a catalog from entries in their declared order.
// It panics on duplicate names, duplicate values and names that are empty or
// not lower case: catalogs are package level tables and such mistakes must
// surface at init.
func NewCatalog[T comparable](kind string, entries ...Entry[T]) *Catalog[T] {
	c := &Catalog[T]{
		kind:    kind,
		entries: make([]Entry[T], 0, len(entries)),
		byName:  make(map[string]T, len(entries)),
		byValue: make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" || e.Name != strings.ToLower(e.Name) {
			panic(fmt.Sprintf("field: %s name %q must be non-empty lower case", kind, e.Name))
		}
		if _, dup := c.byName[e.Name]; dup {
			panic(fmt.Sprintf("field: duplicate %s name %q", kind, e.Name))
		}
		if prev, dup := c.byValue[e.Value]; dup {
			panic(fmt.Sprintf("field: %s %q and %q share a value", kind, prev, e.Name))
		}
		c.byName[e.Name] = e.Value
		c.byValue[e.Value] = e.Name
		c.entries = append(c.entries, e)
	}
	return c
}

// Kind returns the catalog's description used in error messages.
func (c *Catalog[T]) Kind() string {
	return c.kind
}

// Parse returns the value named s, ignoring case.
func (c *Catalog[T]) Parse(s string) (T, error) {
	if v, ok := c.byName[strings.ToLower(s)]; ok {
		return v, nil
	}
	var zero T
	return zero, &NotFoundError{Kind: c.kind, Token: s}
}

// Name returns the canonical name of v. Values outside the catalog render as
// "<kind>(v)" using the Go syntax of v, so String methods built on Name do
// not recurse.
func (c *Catalog[T]) Name(v T) string {
	if name, ok := c.byValue[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%#v)", c.kind, v)
}

// Contains reports whether v is part of the catalog.
func (c *Catalog[T]) Contains(v T) bool {
	_, ok := c.byValue[v]
	return ok
}

// All returns every value in declared order.
func (c *Catalog[T]) All() []T {
	out := make([]T, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Value
	}
	return out
}

// Names returns every canonical name in declared order.
func (c *Catalog[T]) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Name
	}
	return out
}

// Under returns, in declared order, the values whose name lives below prefix,
// that is "prefix.<something>". It enumerates one sub-model of a nested field
// set such as every "cpu.*" field.
func (c *Catalog[T]) Under(prefix string) []T {
	p := strings.ToLower(prefix) + "."
	var out []T
	for _, e := range c.entries {
		if strings.HasPrefix(e.Name, p) {
			out = append(out, e.Value)
		}
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog[T]) Len() int {
	return len(c.entries)
}

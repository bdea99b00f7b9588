package field

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedField is matched by every UnrecognizedFieldError.
var ErrUnrecognizedField = errors.New("unrecognized field")

// UnrecognizedFieldError reports a token that names no common field, group or
// domain field.
type UnrecognizedFieldError struct {
	Token string
}

func (e *UnrecognizedFieldError) Error() string {
	return fmt.Sprintf("unrecognized field: %s", e.Token)
}

// Is reports whether target is ErrUnrecognizedField.
func (e *UnrecognizedFieldError) Is(target error) bool {
	return target == ErrUnrecognizedField
}

// OptionField is one entry of a field selection: a unit (common or domain
// field) or a reference to an aggregate group A of the domain.
type OptionField[F ID, A Group[F]] struct {
	unit  DumpField[F]
	agg   A
	isAgg bool
}

// Unit wraps a leaf field.
func Unit[F ID, A Group[F]](d DumpField[F]) OptionField[F, A] {
	return OptionField[F, A]{unit: d}
}

// Agg wraps a group reference.
func Agg[F ID, A Group[F]](a A) OptionField[F, A] {
	return OptionField[F, A]{agg: a, isAgg: true}
}

// IsAgg reports whether o references a group.
func (o OptionField[F, A]) IsAgg() bool {
	return o.isAgg
}

// Unit returns the wrapped leaf, if o is a unit.
func (o OptionField[F, A]) Unit() (DumpField[F], bool) {
	return o.unit, !o.isAgg
}

// Agg returns the wrapped group, if o is a group reference.
func (o OptionField[F, A]) Agg() (A, bool) {
	return o.agg, o.isAgg
}

// String renders the name the user would type: the leaf's name, or the
// group's own name rather than its expansion.
func (o OptionField[F, A]) String() string {
	if o.isAgg {
		return o.agg.String()
	}
	return o.unit.String()
}

// Builder spells option fields of one domain without repeating the type
// parameters:
//
//	var b field.Builder[model.DiskField, DiskGroup]
//	defaults := []DiskOption{b.Common(field.CommonDatetime), b.Field(model.DiskName), b.Agg(DiskRead)}
type Builder[F ID, A Group[F]] struct{}

// Common returns a unit option holding a common field.
func (Builder[F, A]) Common(c CommonField) OptionField[F, A] {
	return Unit[F, A](CommonLeaf[F](c))
}

// Field returns a unit option holding a domain field.
func (Builder[F, A]) Field(id F) OptionField[F, A] {
	return Unit[F, A](Leaf(id))
}

// Agg returns a group option.
func (Builder[F, A]) Agg(a A) OptionField[F, A] {
	return Agg[F](a)
}

// Resolver turns tokens into option fields for one domain.
type Resolver[F ID, A Group[F]] struct {
	Fields FieldCatalog[F]
	Groups FieldCatalog[A]
}

// Parse resolves token against common fields, then groups, then domain
// fields. The first namespace that knows the name wins; names shared between
// namespaces are shadowed in that order.
func (r Resolver[F, A]) Parse(token string) (OptionField[F, A], error) {
	if c, err := ParseCommonField(token); err == nil {
		return Unit[F, A](CommonLeaf[F](c)), nil
	}
	if a, err := r.Groups.Parse(token); err == nil {
		return Agg[F](a), nil
	}
	if id, err := r.Fields.Parse(token); err == nil {
		return Unit[F, A](Leaf(id)), nil
	}
	return OptionField[F, A]{}, &UnrecognizedFieldError{Token: token}
}

// ParseAll resolves every token in order. It stops at the first token that
// does not resolve.
func (r Resolver[F, A]) ParseAll(tokens []string) ([]OptionField[F, A], error) {
	out := make([]OptionField[F, A], 0, len(tokens))
	for _, tok := range tokens {
		o, err := r.Parse(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// ParseLeaf resolves token as a domain field only, for flags such as --select
// that name one column of the domain.
func (r Resolver[F, A]) ParseLeaf(token string) (F, error) {
	id, err := r.Fields.Parse(token)
	if err != nil {
		var zero F
		return zero, &UnrecognizedFieldError{Token: token}
	}
	return id, nil
}

// Render returns the display name of o.
func (r Resolver[F, A]) Render(o OptionField[F, A]) string {
	return o.String()
}

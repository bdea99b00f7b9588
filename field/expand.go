package field

import (
	"fmt"
	"strings"
)

// ExpandFields flattens a selection into the leaves to print. Units are kept
// as they are; each group is replaced in place by its expansion for detail.
// Order is preserved and nothing is deduplicated, so a field or overlapping
// group listed twice appears twice.
func ExpandFields[F ID, A Group[F]](opts []OptionField[F, A], detail bool) []DumpField[F] {
	out := make([]DumpField[F], 0, len(opts))
	for _, o := range opts {
		if a, ok := o.Agg(); ok {
			for _, id := range a.Expand(detail) {
				out = append(out, Leaf(id))
			}
			continue
		}
		out = append(out, o.unit)
	}
	return out
}

// Names renders each item by its String method.
func Names[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}

// Join renders items separated by ", ", the form used in help listings.
func Join[T fmt.Stringer](items []T) string {
	return strings.Join(Names(items), ", ")
}

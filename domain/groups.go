package domain

import "slices"

// without returns fields minus every member of drop, keeping order.
func without[F comparable](fields []F, drop ...F) []F {
	out := make([]F, 0, len(fields))
	for _, f := range fields {
		if !slices.Contains(drop, f) {
			out = append(out, f)
		}
	}
	return out
}

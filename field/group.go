package field

// Group is an aggregate group of one domain: a named shorthand for an ordered
// subset of that domain's leaf fields F.
//
// Expand returns the curated subset when detail is false and the full subset
// when detail is true. The result is never empty, holds only members of the
// domain's field catalog and is the same on every call.
type Group[F comparable] interface {
	ID
	Expand(detail bool) []F
}

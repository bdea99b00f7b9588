package field

// DumpField is one leaf of a resolved selection: either a CommonField or a
// domain field F. It is what crosses over to the renderer.
type DumpField[F ID] struct {
	common CommonField
	id     F
	isID   bool
}

// CommonLeaf wraps a common field.
func CommonLeaf[F ID](c CommonField) DumpField[F] {
	return DumpField[F]{common: c}
}

// Leaf wraps a domain field.
func Leaf[F ID](id F) DumpField[F] {
	return DumpField[F]{id: id, isID: true}
}

// Common returns the wrapped common field, if any.
func (d DumpField[F]) Common() (CommonField, bool) {
	return d.common, !d.isID
}

// ID returns the wrapped domain field, if any.
func (d DumpField[F]) ID() (F, bool) {
	return d.id, d.isID
}

// String returns the canonical name of the wrapped field.
func (d DumpField[F]) String() string {
	if d.isID {
		return d.id.String()
	}
	return d.common.String()
}

package field

// Namespace is one of the three name spaces a token can resolve in. The
// resolver tries them in declaration order.
type Namespace int

const (
	NamespaceCommon Namespace = iota
	NamespaceGroup
	NamespaceField
)

func (n Namespace) String() string {
	switch n {
	case NamespaceCommon:
		return "common field"
	case NamespaceGroup:
		return "group"
	case NamespaceField:
		return "field"
	default:
		return "unknown"
	}
}

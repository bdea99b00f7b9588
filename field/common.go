package field

// CommonField is a field shared by every domain.
type CommonField int

const (
	// CommonTimestamp is the sample time as seconds since the epoch.
	CommonTimestamp CommonField = iota + 1
	// CommonDatetime is the sample time formatted for humans.
	CommonDatetime
)

var commonFields = NewCatalog("common field",
	E("timestamp", CommonTimestamp),
	E("datetime", CommonDatetime),
)

// String returns the canonical name of c.
func (c CommonField) String() string {
	return commonFields.Name(c)
}

// ParseCommonField returns the common field named s, ignoring case.
func ParseCommonField(s string) (CommonField, error) {
	return commonFields.Parse(s)
}

// CommonFields returns the catalog of common fields.
func CommonFields() *Catalog[CommonField] {
	return commonFields
}

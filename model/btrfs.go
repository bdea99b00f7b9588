package model

import "github.com/lex00/statdump/field"

// BtrfsField identifies one statistic of a btrfs subvolume.
type BtrfsField int

const (
	BtrfsName BtrfsField = iota
	BtrfsDiskFraction
	BtrfsDiskBytes
)

var btrfsFields = field.NewCatalog("btrfs field",
	field.E("name", BtrfsName),
	field.E("disk_fraction", BtrfsDiskFraction),
	field.E("disk_bytes", BtrfsDiskBytes),
)

// String returns the canonical name of f.
func (f BtrfsField) String() string {
	return btrfsFields.Name(f)
}

// ParseBtrfsField returns the field named s, ignoring case.
func ParseBtrfsField(s string) (BtrfsField, error) {
	return btrfsFields.Parse(s)
}

// BtrfsFields returns the catalog of btrfs fields in declared order.
func BtrfsFields() *field.Catalog[BtrfsField] {
	return btrfsFields
}

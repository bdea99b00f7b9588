package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// BtrfsGroup is an aggregate group of the btrfs domain.
type BtrfsGroup int

const (
	BtrfsDiskUsage BtrfsGroup = iota
)

var btrfsGroups = field.NewCatalog("btrfs group",
	field.E("disk_usage", BtrfsDiskUsage),
)

func (g BtrfsGroup) String() string {
	return btrfsGroups.Name(g)
}

// Expand implements field.Group.
func (g BtrfsGroup) Expand(bool) []model.BtrfsField {
	if g == BtrfsDiskUsage {
		return []model.BtrfsField{model.BtrfsDiskFraction, model.BtrfsDiskBytes}
	}
	return nil
}

// BtrfsOption is one entry of a btrfs field selection.
type BtrfsOption = field.OptionField[model.BtrfsField, BtrfsGroup]

var btrfsOpt field.Builder[model.BtrfsField, BtrfsGroup]

// Btrfs dumps btrfs subvolume statistics.
var Btrfs = New(Definition[model.BtrfsField, BtrfsGroup]{
	Name:   "btrfs",
	About:  "Dump btrfs stats",
	Fields: model.BtrfsFields(),
	Groups: btrfsGroups,
	Defaults: []BtrfsOption{
		btrfsOpt.Common(field.CommonDatetime),
		btrfsOpt.Field(model.BtrfsName),
		btrfsOpt.Agg(BtrfsDiskUsage),
		btrfsOpt.Common(field.CommonTimestamp),
	},
	Selectable: true,
	Examples: []Example{
		{Description: "Simple example:", Args: `-b "08:30:00" -e "08:30:30" -f disk_usage -O csv`},
		{
			Description: "Output stats for top 5 subvolumes for each time slice from 08:30:00 to 08:30:30:",
			Args:        `-b "08:30:00" -e "08:30:30" -s disk_bytes --rsort --top 5`,
		},
	},
})

package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// DiskGroup is an aggregate group of the disk domain. Detail has no effect.
type DiskGroup int

const (
	DiskRead DiskGroup = iota
	DiskWrite
	DiskDiscard
	DiskFsInfo
)

var diskGroups = field.NewCatalog("disk group",
	field.E("read", DiskRead),
	field.E("write", DiskWrite),
	field.E("discard", DiskDiscard),
	field.E("fs_info", DiskFsInfo),
)

func (g DiskGroup) String() string {
	return diskGroups.Name(g)
}

// Expand implements field.Group.
func (g DiskGroup) Expand(bool) []model.DiskField {
	switch g {
	case DiskRead:
		return []model.DiskField{
			model.DiskReadBytesPerSec,
			model.DiskReadCompleted,
			model.DiskReadMerged,
			model.DiskReadSectors,
			model.DiskTimeSpendReadMs,
		}
	case DiskWrite:
		return []model.DiskField{
			model.DiskWriteBytesPerSec,
			model.DiskWriteCompleted,
			model.DiskWriteMerged,
			model.DiskWriteSectors,
			model.DiskTimeSpendWriteMs,
		}
	case DiskDiscard:
		return []model.DiskField{
			model.DiskDiscardBytesPerSec,
			model.DiskDiscardCompleted,
			model.DiskDiscardMerged,
			model.DiskDiscardSectors,
			model.DiskTimeSpendDiscardMs,
		}
	case DiskFsInfo:
		return []model.DiskField{model.DiskDiskUsage, model.DiskPartitionSize, model.DiskFilesystemType}
	}
	return nil
}

// DiskOption is one entry of a disk field selection.
type DiskOption = field.OptionField[model.DiskField, DiskGroup]

var diskOpt field.Builder[model.DiskField, DiskGroup]

// Disk dumps block device and partition statistics.
var Disk = New(Definition[model.DiskField, DiskGroup]{
	Name:   "disk",
	About:  "Dump disk stats",
	Fields: model.DiskFields(),
	Groups: diskGroups,
	Defaults: []DiskOption{
		diskOpt.Common(field.CommonDatetime),
		diskOpt.Field(model.DiskName),
		diskOpt.Field(model.DiskDiskTotalBytesPerSec),
		diskOpt.Field(model.DiskMajor),
		diskOpt.Field(model.DiskMinor),
		diskOpt.Agg(DiskRead),
		diskOpt.Agg(DiskWrite),
		diskOpt.Agg(DiskDiscard),
		diskOpt.Agg(DiskFsInfo),
		diskOpt.Common(field.CommonTimestamp),
	},
	Selectable: true,
	Examples: []Example{
		{Description: "Simple example:", Args: `-b "08:30:00" -e "08:30:30" -f read write discard -O csv`},
		{
			Description: `Output stats for all "nvme0*" matched disk from 08:30:00 to 08:30:30:`,
			Args:        `-b "08:30:00" -e "08:30:30" -s name -F nvme0* -O json`,
		},
		{
			Description: "Output stats for top 5 read partitions for each time slice from 08:30:00 to 08:30:30:",
			Args:        `-b "08:30:00" -e "08:30:30" -s read_bytes_per_sec --rsort --top 5`,
		},
	},
})

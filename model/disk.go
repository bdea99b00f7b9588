package model

import "github.com/lex00/statdump/field"

// DiskField identifies one statistic of a block device or partition.
type DiskField int

const (
	DiskName DiskField = iota
	DiskDiskTotalBytesPerSec
	DiskReadBytesPerSec
	DiskWriteBytesPerSec
	DiskDiscardBytesPerSec
	DiskReadCompleted
	DiskReadMerged
	DiskReadSectors
	DiskTimeSpendReadMs
	DiskWriteCompleted
	DiskWriteMerged
	DiskWriteSectors
	DiskTimeSpendWriteMs
	DiskDiscardCompleted
	DiskDiscardMerged
	DiskDiscardSectors
	DiskTimeSpendDiscardMs
	DiskMajor
	DiskMinor
	DiskDiskUsage
	DiskPartitionSize
	DiskFilesystemType
)

var diskFields = field.NewCatalog("disk field",
	field.E("name", DiskName),
	field.E("disk_total_bytes_per_sec", DiskDiskTotalBytesPerSec),
	field.E("read_bytes_per_sec", DiskReadBytesPerSec),
	field.E("write_bytes_per_sec", DiskWriteBytesPerSec),
	field.E("discard_bytes_per_sec", DiskDiscardBytesPerSec),
	field.E("read_completed", DiskReadCompleted),
	field.E("read_merged", DiskReadMerged),
	field.E("read_sectors", DiskReadSectors),
	field.E("time_spend_read_ms", DiskTimeSpendReadMs),
	field.E("write_completed", DiskWriteCompleted),
	field.E("write_merged", DiskWriteMerged),
	field.E("write_sectors", DiskWriteSectors),
	field.E("time_spend_write_ms", DiskTimeSpendWriteMs),
	field.E("discard_completed", DiskDiscardCompleted),
	field.E("discard_merged", DiskDiscardMerged),
	field.E("discard_sectors", DiskDiscardSectors),
	field.E("time_spend_discard_ms", DiskTimeSpendDiscardMs),
	field.E("major", DiskMajor),
	field.E("minor", DiskMinor),
	field.E("disk_usage", DiskDiskUsage),
	field.E("partition_size", DiskPartitionSize),
	field.E("filesystem_type", DiskFilesystemType),
)

// String returns the canonical name of f.
func (f DiskField) String() string {
	return diskFields.Name(f)
}

// ParseDiskField returns the field named s, ignoring case.
func ParseDiskField(s string) (DiskField, error) {
	return diskFields.Parse(s)
}

// DiskFields returns the catalog of disk fields in declared order.
func DiskFields() *field.Catalog[DiskField] {
	return diskFields
}

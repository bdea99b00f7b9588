package model

import "github.com/lex00/statdump/field"

// CgroupField identifies one statistic of a single cgroup.
type CgroupField int

const (
	CgroupName CgroupField = iota
	CgroupFullPath
	CgroupInodeNumber
	CgroupDepth
	CgroupCPUUsagePct
	CgroupCPUUserPct
	CgroupCPUSystemPct
	CgroupCPUNrPeriodsPerSec
	CgroupCPUNrThrottledPerSec
	CgroupCPUThrottledPct
	CgroupIORBytesPerSec
	CgroupIOWBytesPerSec
	CgroupIORIOsPerSec
	CgroupIOWIOsPerSec
	CgroupIODBytesPerSec
	CgroupIODIOsPerSec
	CgroupIORWBytesPerSec
	CgroupMemTotal
	CgroupMemSwap
	CgroupMemAnon
	CgroupMemFile
	CgroupMemKernelStack
	CgroupMemSlab
	CgroupMemSock
	CgroupMemShmem
	CgroupMemFileMapped
	CgroupMemFileDirty
	CgroupMemFileWriteback
	CgroupMemAnonTHP
	CgroupMemInactiveAnon
	CgroupMemActiveAnon
	CgroupMemInactiveFile
	CgroupMemActiveFile
	CgroupMemUnevictable
	CgroupMemSlabReclaimable
	CgroupMemSlabUnreclaimable
	CgroupMemPgfault
	CgroupMemPgmajfault
	CgroupMemWorkingsetRefaultAnon
	CgroupMemWorkingsetRefaultFile
	CgroupMemEventsLow
	CgroupMemEventsHigh
	CgroupMemEventsMax
	CgroupMemEventsOOM
	CgroupMemEventsOOMKill
	CgroupPressureCPUSomePct
	CgroupPressureCPUFullPct
	CgroupPressureIOSomePct
	CgroupPressureIOFullPct
	CgroupPressureMemorySomePct
	CgroupPressureMemoryFullPct
)

var cgroupFields = field.NewCatalog("cgroup field",
	field.E("name", CgroupName),
	field.E("full_path", CgroupFullPath),
	field.E("inode_number", CgroupInodeNumber),
	field.E("depth", CgroupDepth),
	field.E("cpu.usage_pct", CgroupCPUUsagePct),
	field.E("cpu.user_pct", CgroupCPUUserPct),
	field.E("cpu.system_pct", CgroupCPUSystemPct),
	field.E("cpu.nr_periods_per_sec", CgroupCPUNrPeriodsPerSec),
	field.E("cpu.nr_throttled_per_sec", CgroupCPUNrThrottledPerSec),
	field.E("cpu.throttled_pct", CgroupCPUThrottledPct),
	field.E("io.rbytes_per_sec", CgroupIORBytesPerSec),
	field.E("io.wbytes_per_sec", CgroupIOWBytesPerSec),
	field.E("io.rios_per_sec", CgroupIORIOsPerSec),
	field.E("io.wios_per_sec", CgroupIOWIOsPerSec),
	field.E("io.dbytes_per_sec", CgroupIODBytesPerSec),
	field.E("io.dios_per_sec", CgroupIODIOsPerSec),
	field.E("io.rwbytes_per_sec", CgroupIORWBytesPerSec),
	field.E("mem.total", CgroupMemTotal),
	field.E("mem.swap", CgroupMemSwap),
	field.E("mem.anon", CgroupMemAnon),
	field.E("mem.file", CgroupMemFile),
	field.E("mem.kernel_stack", CgroupMemKernelStack),
	field.E("mem.slab", CgroupMemSlab),
	field.E("mem.sock", CgroupMemSock),
	field.E("mem.shmem", CgroupMemShmem),
	field.E("mem.file_mapped", CgroupMemFileMapped),
	field.E("mem.file_dirty", CgroupMemFileDirty),
	field.E("mem.file_writeback", CgroupMemFileWriteback),
	field.E("mem.anon_thp", CgroupMemAnonTHP),
	field.E("mem.inactive_anon", CgroupMemInactiveAnon),
	field.E("mem.active_anon", CgroupMemActiveAnon),
	field.E("mem.inactive_file", CgroupMemInactiveFile),
	field.E("mem.active_file", CgroupMemActiveFile),
	field.E("mem.unevictable", CgroupMemUnevictable),
	field.E("mem.slab_reclaimable", CgroupMemSlabReclaimable),
	field.E("mem.slab_unreclaimable", CgroupMemSlabUnreclaimable),
	field.E("mem.pgfault", CgroupMemPgfault),
	field.E("mem.pgmajfault", CgroupMemPgmajfault),
	field.E("mem.workingset_refault_anon", CgroupMemWorkingsetRefaultAnon),
	field.E("mem.workingset_refault_file", CgroupMemWorkingsetRefaultFile),
	field.E("mem.events_low", CgroupMemEventsLow),
	field.E("mem.events_high", CgroupMemEventsHigh),
	field.E("mem.events_max", CgroupMemEventsMax),
	field.E("mem.events_oom", CgroupMemEventsOOM),
	field.E("mem.events_oom_kill", CgroupMemEventsOOMKill),
	field.E("pressure.cpu_some_pct", CgroupPressureCPUSomePct),
	field.E("pressure.cpu_full_pct", CgroupPressureCPUFullPct),
	field.E("pressure.io_some_pct", CgroupPressureIOSomePct),
	field.E("pressure.io_full_pct", CgroupPressureIOFullPct),
	field.E("pressure.memory_some_pct", CgroupPressureMemorySomePct),
	field.E("pressure.memory_full_pct", CgroupPressureMemoryFullPct),
)

// String returns the canonical name of f.
func (f CgroupField) String() string {
	return cgroupFields.Name(f)
}

// ParseCgroupField returns the field named s, ignoring case.
func ParseCgroupField(s string) (CgroupField, error) {
	return cgroupFields.Parse(s)
}

// CgroupFields returns the catalog of cgroup fields in declared order.
func CgroupFields() *field.Catalog[CgroupField] {
	return cgroupFields
}

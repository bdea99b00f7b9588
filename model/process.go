package model

import "github.com/lex00/statdump/field"

// ProcessField identifies one statistic of a single process.
type ProcessField int

const (
	ProcessPID ProcessField = iota
	ProcessPPID
	ProcessNSTGID
	ProcessComm
	ProcessState
	ProcessUptimeSecs
	ProcessCgroup
	ProcessIORBytesPerSec
	ProcessIOWBytesPerSec
	ProcessIORWBytesPerSec
	ProcessMemMinorfaultsPerSec
	ProcessMemMajorfaultsPerSec
	ProcessMemRSSBytes
	ProcessMemVMSize
	ProcessMemLock
	ProcessMemPin
	ProcessMemAnon
	ProcessMemFile
	ProcessMemShmem
	ProcessMemPTE
	ProcessMemSwap
	ProcessMemHugeTLB
	ProcessCPUUsagePct
	ProcessCPUUserPct
	ProcessCPUSystemPct
	ProcessCPUNumThreads
	ProcessCmdline
	ProcessExePath
)

var processFields = field.NewCatalog("process field",
	field.E("pid", ProcessPID),
	field.E("ppid", ProcessPPID),
	field.E("ns_tgid", ProcessNSTGID),
	field.E("comm", ProcessComm),
	field.E("state", ProcessState),
	field.E("uptime_secs", ProcessUptimeSecs),
	field.E("cgroup", ProcessCgroup),
	field.E("io.rbytes_per_sec", ProcessIORBytesPerSec),
	field.E("io.wbytes_per_sec", ProcessIOWBytesPerSec),
	field.E("io.rwbytes_per_sec", ProcessIORWBytesPerSec),
	field.E("mem.minorfaults_per_sec", ProcessMemMinorfaultsPerSec),
	field.E("mem.majorfaults_per_sec", ProcessMemMajorfaultsPerSec),
	field.E("mem.rss_bytes", ProcessMemRSSBytes),
	field.E("mem.vm_size", ProcessMemVMSize),
	field.E("mem.lock", ProcessMemLock),
	field.E("mem.pin", ProcessMemPin),
	field.E("mem.anon", ProcessMemAnon),
	field.E("mem.file", ProcessMemFile),
	field.E("mem.shmem", ProcessMemShmem),
	field.E("mem.pte", ProcessMemPTE),
	field.E("mem.swap", ProcessMemSwap),
	field.E("mem.huge_tlb", ProcessMemHugeTLB),
	field.E("cpu.usage_pct", ProcessCPUUsagePct),
	field.E("cpu.user_pct", ProcessCPUUserPct),
	field.E("cpu.system_pct", ProcessCPUSystemPct),
	field.E("cpu.num_threads", ProcessCPUNumThreads),
	field.E("cmdline", ProcessCmdline),
	field.E("exe_path", ProcessExePath),
)

// String returns the canonical name of f.
func (f ProcessField) String() string {
	return processFields.Name(f)
}

// ParseProcessField returns the field named s, ignoring case.
func ParseProcessField(s string) (ProcessField, error) {
	return processFields.Parse(s)
}

// ProcessFields returns the catalog of process fields in declared order.
func ProcessFields() *field.Catalog[ProcessField] {
	return processFields
}

package model

import "github.com/lex00/statdump/field"

// SystemField identifies one host wide statistic: identity, /proc/stat
// counters, the aggregated cpu, memory and vm statistics.
type SystemField int

const (
	SystemHostname SystemField = iota
	SystemKernelVersion
	SystemOSRelease
	SystemStatTotalInterruptCt
	SystemStatContextSwitches
	SystemStatBootTimeEpochSecs
	SystemStatTotalProcesses
	SystemStatRunningProcesses
	SystemStatBlockedProcesses
	SystemCPUIdx
	SystemCPUUsagePct
	SystemCPUUserPct
	SystemCPUIdlePct
	SystemCPUSystemPct
	SystemCPUNicePct
	SystemCPUIOWaitPct
	SystemCPUIRQPct
	SystemCPUSoftIRQPct
	SystemCPUStolenPct
	SystemCPUGuestPct
	SystemCPUGuestNicePct
	SystemMemTotal
	SystemMemFree
	SystemMemAvailable
	SystemMemBuffers
	SystemMemCached
	SystemMemSwapCached
	SystemMemActive
	SystemMemInactive
	SystemMemAnon
	SystemMemFile
	SystemMemUnevictable
	SystemMemMlocked
	SystemMemSwapTotal
	SystemMemSwapFree
	SystemMemDirty
	SystemMemWriteback
	SystemMemAnonPages
	SystemMemMapped
	SystemMemShmem
	SystemMemKReclaimable
	SystemMemSlab
	SystemMemSlabReclaimable
	SystemMemSlabUnreclaimable
	SystemMemKernelStack
	SystemMemPageTables
	SystemMemAnonHugePagesBytes
	SystemMemShmemHugePagesBytes
	SystemMemFileHugePagesBytes
	SystemMemHugeTLB
	SystemMemCmaTotal
	SystemMemCmaFree
	SystemMemVmallocTotal
	SystemMemVmallocUsed
	SystemMemVmallocChunk
	SystemMemDirectMap4K
	SystemMemDirectMap2M
	SystemMemDirectMap1G
	SystemVMPgPgInPerSec
	SystemVMPgPgOutPerSec
	SystemVMPSwpInPerSec
	SystemVMPSwpOutPerSec
	SystemVMPgStealKswapd
	SystemVMPgStealDirect
	SystemVMPgScanKswapd
	SystemVMPgScanDirect
	SystemVMOOMKill
)

var systemFields = field.NewCatalog("system field",
	field.E("hostname", SystemHostname),
	field.E("kernel_version", SystemKernelVersion),
	field.E("os_release", SystemOSRelease),
	field.E("stat.total_interrupt_ct", SystemStatTotalInterruptCt),
	field.E("stat.context_switches", SystemStatContextSwitches),
	field.E("stat.boot_time_epoch_secs", SystemStatBootTimeEpochSecs),
	field.E("stat.total_processes", SystemStatTotalProcesses),
	field.E("stat.running_processes", SystemStatRunningProcesses),
	field.E("stat.blocked_processes", SystemStatBlockedProcesses),
	field.E("cpu.idx", SystemCPUIdx),
	field.E("cpu.usage_pct", SystemCPUUsagePct),
	field.E("cpu.user_pct", SystemCPUUserPct),
	field.E("cpu.idle_pct", SystemCPUIdlePct),
	field.E("cpu.system_pct", SystemCPUSystemPct),
	field.E("cpu.nice_pct", SystemCPUNicePct),
	field.E("cpu.iowait_pct", SystemCPUIOWaitPct),
	field.E("cpu.irq_pct", SystemCPUIRQPct),
	field.E("cpu.softirq_pct", SystemCPUSoftIRQPct),
	field.E("cpu.stolen_pct", SystemCPUStolenPct),
	field.E("cpu.guest_pct", SystemCPUGuestPct),
	field.E("cpu.guest_nice_pct", SystemCPUGuestNicePct),
	field.E("mem.total", SystemMemTotal),
	field.E("mem.free", SystemMemFree),
	field.E("mem.available", SystemMemAvailable),
	field.E("mem.buffers", SystemMemBuffers),
	field.E("mem.cached", SystemMemCached),
	field.E("mem.swap_cached", SystemMemSwapCached),
	field.E("mem.active", SystemMemActive),
	field.E("mem.inactive", SystemMemInactive),
	field.E("mem.anon", SystemMemAnon),
	field.E("mem.file", SystemMemFile),
	field.E("mem.unevictable", SystemMemUnevictable),
	field.E("mem.mlocked", SystemMemMlocked),
	field.E("mem.swap_total", SystemMemSwapTotal),
	field.E("mem.swap_free", SystemMemSwapFree),
	field.E("mem.dirty", SystemMemDirty),
	field.E("mem.writeback", SystemMemWriteback),
	field.E("mem.anon_pages", SystemMemAnonPages),
	field.E("mem.mapped", SystemMemMapped),
	field.E("mem.shmem", SystemMemShmem),
	field.E("mem.kreclaimable", SystemMemKReclaimable),
	field.E("mem.slab", SystemMemSlab),
	field.E("mem.slab_reclaimable", SystemMemSlabReclaimable),
	field.E("mem.slab_unreclaimable", SystemMemSlabUnreclaimable),
	field.E("mem.kernel_stack", SystemMemKernelStack),
	field.E("mem.page_tables", SystemMemPageTables),
	field.E("mem.anon_huge_pages_bytes", SystemMemAnonHugePagesBytes),
	field.E("mem.shmem_huge_pages_bytes", SystemMemShmemHugePagesBytes),
	field.E("mem.file_huge_pages_bytes", SystemMemFileHugePagesBytes),
	field.E("mem.hugetlb", SystemMemHugeTLB),
	field.E("mem.cma_total", SystemMemCmaTotal),
	field.E("mem.cma_free", SystemMemCmaFree),
	field.E("mem.vmalloc_total", SystemMemVmallocTotal),
	field.E("mem.vmalloc_used", SystemMemVmallocUsed),
	field.E("mem.vmalloc_chunk", SystemMemVmallocChunk),
	field.E("mem.direct_map_4k", SystemMemDirectMap4K),
	field.E("mem.direct_map_2m", SystemMemDirectMap2M),
	field.E("mem.direct_map_1g", SystemMemDirectMap1G),
	field.E("vm.pgpgin_per_sec", SystemVMPgPgInPerSec),
	field.E("vm.pgpgout_per_sec", SystemVMPgPgOutPerSec),
	field.E("vm.pswpin_per_sec", SystemVMPSwpInPerSec),
	field.E("vm.pswpout_per_sec", SystemVMPSwpOutPerSec),
	field.E("vm.pgsteal_kswapd", SystemVMPgStealKswapd),
	field.E("vm.pgsteal_direct", SystemVMPgStealDirect),
	field.E("vm.pgscan_kswapd", SystemVMPgScanKswapd),
	field.E("vm.pgscan_direct", SystemVMPgScanDirect),
	field.E("vm.oom_kill", SystemVMOOMKill),
)

// String returns the canonical name of f.
func (f SystemField) String() string {
	return systemFields.Name(f)
}

// ParseSystemField returns the field named s, ignoring case.
func ParseSystemField(s string) (SystemField, error) {
	return systemFields.Parse(s)
}

// SystemFields returns the catalog of system fields in declared order.
func SystemFields() *field.Catalog[SystemField] {
	return systemFields
}

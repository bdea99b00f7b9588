package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// SystemGroup is an aggregate group of the system domain, one per sub-model.
type SystemGroup int

const (
	SystemCPU SystemGroup = iota
	SystemMem
	SystemVM
	SystemStat
)

var systemGroups = field.NewCatalog("system group",
	field.E("cpu", SystemCPU),
	field.E("mem", SystemMem),
	field.E("vm", SystemVM),
	field.E("stat", SystemStat),
)

func (g SystemGroup) String() string {
	return systemGroups.Name(g)
}

// Expand implements field.Group.
func (g SystemGroup) Expand(detail bool) []model.SystemField {
	fields := model.SystemFields()
	switch g {
	case SystemCPU:
		if !detail {
			return []model.SystemField{model.SystemCPUUsagePct, model.SystemCPUUserPct, model.SystemCPUSystemPct}
		}
		// cpu.idx is constant once every cpu is aggregated.
		return without(fields.Under("cpu"), model.SystemCPUIdx)
	case SystemMem:
		if !detail {
			return []model.SystemField{model.SystemMemTotal, model.SystemMemFree}
		}
		return fields.Under("mem")
	case SystemVM:
		return fields.Under("vm")
	case SystemStat:
		return fields.Under("stat")
	}
	return nil
}

// SystemOption is one entry of a system field selection.
type SystemOption = field.OptionField[model.SystemField, SystemGroup]

var sysOpt field.Builder[model.SystemField, SystemGroup]

// System dumps host wide statistics.
var System = New(Definition[model.SystemField, SystemGroup]{
	Name:   "system",
	About:  "Dump system stats",
	Fields: model.SystemFields(),
	Groups: systemGroups,
	Defaults: []SystemOption{
		sysOpt.Field(model.SystemHostname),
		sysOpt.Common(field.CommonDatetime),
		sysOpt.Agg(SystemCPU),
		sysOpt.Agg(SystemMem),
		sysOpt.Agg(SystemVM),
		sysOpt.Field(model.SystemKernelVersion),
		sysOpt.Field(model.SystemOSRelease),
		sysOpt.Agg(SystemStat),
		sysOpt.Common(field.CommonTimestamp),
	},
	Exclusions: map[SystemGroup][]model.SystemField{
		SystemCPU: {model.SystemCPUIdx},
	},
	Examples: []Example{
		{Args: `-b "08:30:00" -e "08:30:30" -f datetime vm hostname -O csv`},
	},
})

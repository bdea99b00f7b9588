package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// CgroupGroup is an aggregate group of the cgroup domain.
type CgroupGroup int

const (
	CgroupCPU CgroupGroup = iota
	CgroupMem
	CgroupIO
	CgroupPressure
)

var cgroupGroups = field.NewCatalog("cgroup group",
	field.E("cpu", CgroupCPU),
	field.E("mem", CgroupMem),
	field.E("io", CgroupIO),
	field.E("pressure", CgroupPressure),
)

func (g CgroupGroup) String() string {
	return cgroupGroups.Name(g)
}

// Expand implements field.Group.
func (g CgroupGroup) Expand(detail bool) []model.CgroupField {
	fields := model.CgroupFields()
	switch g {
	case CgroupCPU:
		if !detail {
			return []model.CgroupField{model.CgroupCPUUsagePct}
		}
		return fields.Under("cpu")
	case CgroupMem:
		if !detail {
			return []model.CgroupField{model.CgroupMemTotal}
		}
		return fields.Under("mem")
	case CgroupIO:
		if !detail {
			return []model.CgroupField{model.CgroupIORBytesPerSec, model.CgroupIOWBytesPerSec}
		}
		return fields.Under("io")
	case CgroupPressure:
		if !detail {
			return []model.CgroupField{
				model.CgroupPressureCPUSomePct,
				model.CgroupPressureMemoryFullPct,
				model.CgroupPressureIOFullPct,
			}
		}
		return fields.Under("pressure")
	}
	return nil
}

// CgroupOption is one entry of a cgroup field selection.
type CgroupOption = field.OptionField[model.CgroupField, CgroupGroup]

var cgroupOpt field.Builder[model.CgroupField, CgroupGroup]

// Cgroup dumps per cgroup statistics.
var Cgroup = New(Definition[model.CgroupField, CgroupGroup]{
	Name:   "cgroup",
	About:  "Dump cgroup stats",
	Fields: model.CgroupFields(),
	Groups: cgroupGroups,
	Defaults: []CgroupOption{
		cgroupOpt.Field(model.CgroupName),
		cgroupOpt.Field(model.CgroupInodeNumber),
		cgroupOpt.Common(field.CommonDatetime),
		cgroupOpt.Agg(CgroupCPU),
		cgroupOpt.Agg(CgroupMem),
		cgroupOpt.Agg(CgroupIO),
		cgroupOpt.Agg(CgroupPressure),
		cgroupOpt.Common(field.CommonTimestamp),
	},
	Selectable: true,
	Examples: []Example{
		{Description: "Simple example:", Args: `-b "08:30:00" -e "08:30:30" -f name cpu -O csv`},
		{
			Description: "Output stats for all cgroups matching pattern \"below*\" for time slices\nfrom 08:30:00 to 08:30:30:",
			Args:        `-b "08:30:00" -e "08:30:30" -s name -F below* -O json`,
		},
		{
			Description: "Output stats for top 5 CPU intense cgroups for each time slice\nfrom 08:30:00 to 08:30:30 recursively:",
			Args:        `-b "08:30:00" -e "08:30:30" -s cpu.usage_pct --rsort --top 5`,
		},
	},
})

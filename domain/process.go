package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// ProcessGroup is an aggregate group of the process domain.
type ProcessGroup int

const (
	ProcessCPU ProcessGroup = iota
	ProcessMem
	ProcessIO
)

var processGroups = field.NewCatalog("process group",
	field.E("cpu", ProcessCPU),
	field.E("mem", ProcessMem),
	field.E("io", ProcessIO),
)

func (g ProcessGroup) String() string {
	return processGroups.Name(g)
}

// Expand implements field.Group.
func (g ProcessGroup) Expand(detail bool) []model.ProcessField {
	fields := model.ProcessFields()
	switch g {
	case ProcessCPU:
		if !detail {
			return []model.ProcessField{model.ProcessCPUUsagePct}
		}
		return fields.Under("cpu")
	case ProcessMem:
		if !detail {
			return []model.ProcessField{model.ProcessMemRSSBytes}
		}
		return fields.Under("mem")
	case ProcessIO:
		if !detail {
			return []model.ProcessField{model.ProcessIORBytesPerSec, model.ProcessIOWBytesPerSec}
		}
		return fields.Under("io")
	}
	return nil
}

// ProcessOption is one entry of a process field selection.
type ProcessOption = field.OptionField[model.ProcessField, ProcessGroup]

var procOpt field.Builder[model.ProcessField, ProcessGroup]

// Process dumps per process statistics.
var Process = New(Definition[model.ProcessField, ProcessGroup]{
	Name:   "process",
	About:  "Dump process stats",
	Fields: model.ProcessFields(),
	Groups: processGroups,
	Defaults: []ProcessOption{
		procOpt.Common(field.CommonDatetime),
		procOpt.Field(model.ProcessPID),
		procOpt.Field(model.ProcessPPID),
		procOpt.Field(model.ProcessComm),
		procOpt.Field(model.ProcessState),
		procOpt.Agg(ProcessCPU),
		procOpt.Agg(ProcessMem),
		procOpt.Agg(ProcessIO),
		procOpt.Field(model.ProcessUptimeSecs),
		procOpt.Field(model.ProcessCgroup),
		procOpt.Common(field.CommonTimestamp),
		procOpt.Field(model.ProcessCmdline),
		procOpt.Field(model.ProcessExePath),
	},
	Selectable: true,
	Examples: []Example{
		{Description: "Simple example:", Args: `-b "08:30:00" -e "08:30:30" -f comm cpu io.rwbytes_per_sec -O csv`},
		{
			Description: `Output stats for all "below*" matched processes from 08:30:00 to 08:30:30:`,
			Args:        `-b "08:30:00" -e "08:30:30" -s comm -F below* -O json`,
		},
		{
			Description: "Output stats for top 5 CPU intense processes for each time slice from 08:30:00 to 08:30:30:",
			Args:        `-b "08:30:00" -e "08:30:30" -s cpu.usage_pct --rsort --top 5`,
		},
	},
})

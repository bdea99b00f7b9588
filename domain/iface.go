package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// IfaceGroup is an aggregate group of the iface domain. Detail has no effect.
type IfaceGroup int

const (
	IfaceRate IfaceGroup = iota
	IfaceRx
	IfaceTx
)

var ifaceGroups = field.NewCatalog("iface group",
	field.E("rate", IfaceRate),
	field.E("rx", IfaceRx),
	field.E("tx", IfaceTx),
)

func (g IfaceGroup) String() string {
	return ifaceGroups.Name(g)
}

// Expand implements field.Group.
func (g IfaceGroup) Expand(bool) []model.NetField {
	switch g {
	case IfaceRate:
		return []model.NetField{
			model.NetRxBytesPerSec,
			model.NetTxBytesPerSec,
			model.NetThroughputPerSec,
			model.NetRxPacketsPerSec,
			model.NetTxPacketsPerSec,
		}
	case IfaceRx:
		return []model.NetField{
			model.NetRxBytes,
			model.NetRxCompressed,
			model.NetRxCRCErrors,
			model.NetRxDropped,
			model.NetRxErrors,
			model.NetRxFIFOErrors,
			model.NetRxFrameErrors,
			model.NetRxLengthErrors,
			model.NetRxMissedErrors,
			model.NetRxNoHandler,
			model.NetRxOverErrors,
			model.NetRxPackets,
		}
	case IfaceTx:
		return []model.NetField{
			model.NetTxAbortedErrors,
			model.NetTxBytes,
			model.NetTxCarrierErrors,
			model.NetTxCompressed,
			model.NetTxDropped,
			model.NetTxErrors,
			model.NetTxFIFOErrors,
			model.NetTxHeartbeatErrors,
			model.NetTxPackets,
			model.NetTxWindowErrors,
		}
	}
	return nil
}

// IfaceOption is one entry of an iface field selection.
type IfaceOption = field.OptionField[model.NetField, IfaceGroup]

var ifaceOpt field.Builder[model.NetField, IfaceGroup]

// Iface dumps link layer statistics per network interface.
var Iface = New(Definition[model.NetField, IfaceGroup]{
	Name:   "iface",
	About:  "Dump the link layer iface stats",
	Fields: model.NetFields(),
	Groups: ifaceGroups,
	Defaults: []IfaceOption{
		ifaceOpt.Common(field.CommonDatetime),
		ifaceOpt.Field(model.NetCollisions),
		ifaceOpt.Field(model.NetMulticast),
		ifaceOpt.Field(model.NetInterface),
		ifaceOpt.Agg(IfaceRate),
		ifaceOpt.Agg(IfaceRx),
		ifaceOpt.Agg(IfaceTx),
		ifaceOpt.Common(field.CommonTimestamp),
	},
	Selectable: true,
	Examples: []Example{
		{Description: "Simple example:", Args: `-b "08:30:00" -e "08:30:30" -f interface rate -O csv`},
		{
			Description: "Output stats for all iface stats matching pattern \"eth*\" for time slices\nfrom 08:30:00 to 08:30:30:",
			Args:        `-b "08:30:00" -e "08:30:30" -s interface -F eth* -O json`,
		},
	},
})

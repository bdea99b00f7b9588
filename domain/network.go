package domain

import (
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// NetworkGroup is an aggregate group of the network domain: one per network
// layer protocol. Detail has no effect.
type NetworkGroup int

const (
	NetworkIP NetworkGroup = iota
	NetworkIP6
	NetworkICMP
	NetworkICMP6
)

var networkGroups = field.NewCatalog("network group",
	field.E("ip", NetworkIP),
	field.E("ip6", NetworkIP6),
	field.E("icmp", NetworkICMP),
	field.E("icmp6", NetworkICMP6),
)

func (g NetworkGroup) String() string {
	return networkGroups.Name(g)
}

// Expand implements field.Group.
func (g NetworkGroup) Expand(bool) []model.NetworkField {
	switch g {
	case NetworkIP, NetworkIP6, NetworkICMP, NetworkICMP6:
		return model.NetworkFields().Under(g.String())
	}
	return nil
}

// NetworkOption is one entry of a network field selection.
type NetworkOption = field.OptionField[model.NetworkField, NetworkGroup]

var netOpt field.Builder[model.NetworkField, NetworkGroup]

// Network dumps network layer statistics.
var Network = New(Definition[model.NetworkField, NetworkGroup]{
	Name:   "network",
	About:  "Dump the network layer stats including ip and icmp",
	Fields: model.NetworkFields(),
	Groups: networkGroups,
	Defaults: []NetworkOption{
		netOpt.Common(field.CommonDatetime),
		netOpt.Agg(NetworkIP),
		netOpt.Agg(NetworkIP6),
		netOpt.Agg(NetworkICMP),
		netOpt.Agg(NetworkICMP6),
		netOpt.Common(field.CommonTimestamp),
	},
	Examples: []Example{
		{Description: "Example:", Args: `-b "08:30:00" -e "08:30:30" -f ip ip6 -O json`},
	},
})

// TransportGroup is an aggregate group of the transport domain: one per
// transport layer protocol. Detail has no effect.
type TransportGroup int

const (
	TransportTCP TransportGroup = iota
	TransportUDP
	TransportUDP6
)

var transportGroups = field.NewCatalog("transport group",
	field.E("tcp", TransportTCP),
	field.E("udp", TransportUDP),
	field.E("udp6", TransportUDP6),
)

func (g TransportGroup) String() string {
	return transportGroups.Name(g)
}

// Expand implements field.Group.
func (g TransportGroup) Expand(bool) []model.NetworkField {
	switch g {
	case TransportTCP, TransportUDP, TransportUDP6:
		return model.NetworkFields().Under(g.String())
	}
	return nil
}

// TransportOption is one entry of a transport field selection.
type TransportOption = field.OptionField[model.NetworkField, TransportGroup]

var transportOpt field.Builder[model.NetworkField, TransportGroup]

// Transport dumps transport layer statistics. It shares the network field
// set with Network.
var Transport = New(Definition[model.NetworkField, TransportGroup]{
	Name:   "transport",
	About:  "Dump the transport layer stats including tcp and udp",
	Fields: model.NetworkFields(),
	Groups: transportGroups,
	Defaults: []TransportOption{
		transportOpt.Common(field.CommonDatetime),
		transportOpt.Agg(TransportTCP),
		transportOpt.Agg(TransportUDP),
		transportOpt.Agg(TransportUDP6),
		transportOpt.Common(field.CommonTimestamp),
	},
	Examples: []Example{
		{Description: "Example:", Args: `-b "08:30:00" -e "08:30:30" -f tcp udp -O json`},
	},
})

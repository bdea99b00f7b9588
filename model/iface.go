package model

import "github.com/lex00/statdump/field"

// NetField identifies one link layer statistic of a single network interface.
type NetField int

const (
	NetInterface NetField = iota
	NetRxBytesPerSec
	NetTxBytesPerSec
	NetThroughputPerSec
	NetRxPacketsPerSec
	NetTxPacketsPerSec
	NetCollisions
	NetMulticast
	NetRxBytes
	NetRxCompressed
	NetRxCRCErrors
	NetRxDropped
	NetRxErrors
	NetRxFIFOErrors
	NetRxFrameErrors
	NetRxLengthErrors
	NetRxMissedErrors
	NetRxNoHandler
	NetRxOverErrors
	NetRxPackets
	NetTxAbortedErrors
	NetTxBytes
	NetTxCarrierErrors
	NetTxCompressed
	NetTxDropped
	NetTxErrors
	NetTxFIFOErrors
	NetTxHeartbeatErrors
	NetTxPackets
	NetTxWindowErrors
)

var netFields = field.NewCatalog("iface field",
	field.E("interface", NetInterface),
	field.E("rx_bytes_per_sec", NetRxBytesPerSec),
	field.E("tx_bytes_per_sec", NetTxBytesPerSec),
	field.E("throughput_per_sec", NetThroughputPerSec),
	field.E("rx_packets_per_sec", NetRxPacketsPerSec),
	field.E("tx_packets_per_sec", NetTxPacketsPerSec),
	field.E("collisions", NetCollisions),
	field.E("multicast", NetMulticast),
	field.E("rx_bytes", NetRxBytes),
	field.E("rx_compressed", NetRxCompressed),
	field.E("rx_crc_errors", NetRxCRCErrors),
	field.E("rx_dropped", NetRxDropped),
	field.E("rx_errors", NetRxErrors),
	field.E("rx_fifo_errors", NetRxFIFOErrors),
	field.E("rx_frame_errors", NetRxFrameErrors),
	field.E("rx_length_errors", NetRxLengthErrors),
	field.E("rx_missed_errors", NetRxMissedErrors),
	field.E("rx_nohandler", NetRxNoHandler),
	field.E("rx_over_errors", NetRxOverErrors),
	field.E("rx_packets", NetRxPackets),
	field.E("tx_aborted_errors", NetTxAbortedErrors),
	field.E("tx_bytes", NetTxBytes),
	field.E("tx_carrier_errors", NetTxCarrierErrors),
	field.E("tx_compressed", NetTxCompressed),
	field.E("tx_dropped", NetTxDropped),
	field.E("tx_errors", NetTxErrors),
	field.E("tx_fifo_errors", NetTxFIFOErrors),
	field.E("tx_heartbeat_errors", NetTxHeartbeatErrors),
	field.E("tx_packets", NetTxPackets),
	field.E("tx_window_errors", NetTxWindowErrors),
)

// String returns the canonical name of f.
func (f NetField) String() string {
	return netFields.Name(f)
}

// ParseNetField returns the field named s, ignoring case.
func ParseNetField(s string) (NetField, error) {
	return netFields.Parse(s)
}

// NetFields returns the catalog of iface fields in declared order.
func NetFields() *field.Catalog[NetField] {
	return netFields
}

package model

import "github.com/lex00/statdump/field"

// NetworkField identifies one network or transport layer statistic of the
// host: ip, ip6, icmp, icmp6, tcp, udp and udp6 counters.
type NetworkField int

const (
	NetworkIPForwardingPktsPerSec NetworkField = iota
	NetworkIPInReceivesPktsPerSec
	NetworkIPForwDatagramsPerSec
	NetworkIPInDiscardsPktsPerSec
	NetworkIPInDeliversPktsPerSec
	NetworkIPOutRequestsPerSec
	NetworkIPOutDiscardsPktsPerSec
	NetworkIPOutNoRoutesPktsPerSec
	NetworkIPInMcastPktsPerSec
	NetworkIPOutMcastPktsPerSec
	NetworkIPInBcastPktsPerSec
	NetworkIPOutBcastPktsPerSec
	NetworkIPInOctetsPerSec
	NetworkIPOutOctetsPerSec
	NetworkIPInMcastOctetsPerSec
	NetworkIPOutMcastOctetsPerSec
	NetworkIPInBcastOctetsPerSec
	NetworkIPOutBcastOctetsPerSec
	NetworkIPInNoECTPktsPerSec
	NetworkIP6InReceivesPktsPerSec
	NetworkIP6InHdrErrors
	NetworkIP6InNoRoutesPktsPerSec
	NetworkIP6InAddrErrors
	NetworkIP6InDiscardsPktsPerSec
	NetworkIP6InDeliversPktsPerSec
	NetworkIP6OutForwDatagramsPerSec
	NetworkIP6OutRequestsPerSec
	NetworkIP6OutNoRoutesPktsPerSec
	NetworkIP6InMcastPktsPerSec
	NetworkIP6OutMcastPktsPerSec
	NetworkIP6InOctetsPerSec
	NetworkIP6OutOctetsPerSec
	NetworkIP6InMcastOctetsPerSec
	NetworkIP6OutMcastOctetsPerSec
	NetworkIP6InBcastOctetsPerSec
	NetworkIP6OutBcastOctetsPerSec
	NetworkICMPInMsgsPerSec
	NetworkICMPInErrors
	NetworkICMPInDestUnreachs
	NetworkICMPOutMsgsPerSec
	NetworkICMPOutErrors
	NetworkICMPOutDestUnreachs
	NetworkICMP6InMsgsPerSec
	NetworkICMP6InErrors
	NetworkICMP6InDestUnreachs
	NetworkICMP6OutMsgsPerSec
	NetworkICMP6OutErrors
	NetworkICMP6OutDestUnreachs
	NetworkTCPActiveOpensPerSec
	NetworkTCPPassiveOpensPerSec
	NetworkTCPAttemptFailsPerSec
	NetworkTCPEstabResetsPerSec
	NetworkTCPCurrEstabConn
	NetworkTCPInSegsPerSec
	NetworkTCPOutSegsPerSec
	NetworkTCPRetransSegsPerSec
	NetworkTCPRetransSegs
	NetworkTCPInErrs
	NetworkTCPOutRstsPerSec
	NetworkTCPInCsumErrors
	NetworkUDPInDatagramsPktsPerSec
	NetworkUDPNoPorts
	NetworkUDPInErrors
	NetworkUDPOutDatagramsPktsPerSec
	NetworkUDPRcvBufErrors
	NetworkUDPSndBufErrors
	NetworkUDPIgnoredMulti
	NetworkUDP6InDatagramsPktsPerSec
	NetworkUDP6NoPorts
	NetworkUDP6InErrors
	NetworkUDP6OutDatagramsPktsPerSec
	NetworkUDP6RcvBufErrors
	NetworkUDP6SndBufErrors
	NetworkUDP6InCsumErrors
	NetworkUDP6IgnoredMulti
)

var networkFields = field.NewCatalog("network field",
	field.E("ip.forwarding_pkts_per_sec", NetworkIPForwardingPktsPerSec),
	field.E("ip.in_receives_pkts_per_sec", NetworkIPInReceivesPktsPerSec),
	field.E("ip.forw_datagrams_per_sec", NetworkIPForwDatagramsPerSec),
	field.E("ip.in_discards_pkts_per_sec", NetworkIPInDiscardsPktsPerSec),
	field.E("ip.in_delivers_pkts_per_sec", NetworkIPInDeliversPktsPerSec),
	field.E("ip.out_requests_per_sec", NetworkIPOutRequestsPerSec),
	field.E("ip.out_discards_pkts_per_sec", NetworkIPOutDiscardsPktsPerSec),
	field.E("ip.out_no_routes_pkts_per_sec", NetworkIPOutNoRoutesPktsPerSec),
	field.E("ip.in_mcast_pkts_per_sec", NetworkIPInMcastPktsPerSec),
	field.E("ip.out_mcast_pkts_per_sec", NetworkIPOutMcastPktsPerSec),
	field.E("ip.in_bcast_pkts_per_sec", NetworkIPInBcastPktsPerSec),
	field.E("ip.out_bcast_pkts_per_sec", NetworkIPOutBcastPktsPerSec),
	field.E("ip.in_octets_per_sec", NetworkIPInOctetsPerSec),
	field.E("ip.out_octets_per_sec", NetworkIPOutOctetsPerSec),
	field.E("ip.in_mcast_octets_per_sec", NetworkIPInMcastOctetsPerSec),
	field.E("ip.out_mcast_octets_per_sec", NetworkIPOutMcastOctetsPerSec),
	field.E("ip.in_bcast_octets_per_sec", NetworkIPInBcastOctetsPerSec),
	field.E("ip.out_bcast_octets_per_sec", NetworkIPOutBcastOctetsPerSec),
	field.E("ip.in_no_ect_pkts_per_sec", NetworkIPInNoECTPktsPerSec),
	field.E("ip6.in_receives_pkts_per_sec", NetworkIP6InReceivesPktsPerSec),
	field.E("ip6.in_hdr_errors", NetworkIP6InHdrErrors),
	field.E("ip6.in_no_routes_pkts_per_sec", NetworkIP6InNoRoutesPktsPerSec),
	field.E("ip6.in_addr_errors", NetworkIP6InAddrErrors),
	field.E("ip6.in_discards_pkts_per_sec", NetworkIP6InDiscardsPktsPerSec),
	field.E("ip6.in_delivers_pkts_per_sec", NetworkIP6InDeliversPktsPerSec),
	field.E("ip6.out_forw_datagrams_per_sec", NetworkIP6OutForwDatagramsPerSec),
	field.E("ip6.out_requests_per_sec", NetworkIP6OutRequestsPerSec),
	field.E("ip6.out_no_routes_pkts_per_sec", NetworkIP6OutNoRoutesPktsPerSec),
	field.E("ip6.in_mcast_pkts_per_sec", NetworkIP6InMcastPktsPerSec),
	field.E("ip6.out_mcast_pkts_per_sec", NetworkIP6OutMcastPktsPerSec),
	field.E("ip6.in_octets_per_sec", NetworkIP6InOctetsPerSec),
	field.E("ip6.out_octets_per_sec", NetworkIP6OutOctetsPerSec),
	field.E("ip6.in_mcast_octets_per_sec", NetworkIP6InMcastOctetsPerSec),
	field.E("ip6.out_mcast_octets_per_sec", NetworkIP6OutMcastOctetsPerSec),
	field.E("ip6.in_bcast_octets_per_sec", NetworkIP6InBcastOctetsPerSec),
	field.E("ip6.out_bcast_octets_per_sec", NetworkIP6OutBcastOctetsPerSec),
	field.E("icmp.in_msgs_per_sec", NetworkICMPInMsgsPerSec),
	field.E("icmp.in_errors", NetworkICMPInErrors),
	field.E("icmp.in_dest_unreachs", NetworkICMPInDestUnreachs),
	field.E("icmp.out_msgs_per_sec", NetworkICMPOutMsgsPerSec),
	field.E("icmp.out_errors", NetworkICMPOutErrors),
	field.E("icmp.out_dest_unreachs", NetworkICMPOutDestUnreachs),
	field.E("icmp6.in_msgs_per_sec", NetworkICMP6InMsgsPerSec),
	field.E("icmp6.in_errors", NetworkICMP6InErrors),
	field.E("icmp6.in_dest_unreachs", NetworkICMP6InDestUnreachs),
	field.E("icmp6.out_msgs_per_sec", NetworkICMP6OutMsgsPerSec),
	field.E("icmp6.out_errors", NetworkICMP6OutErrors),
	field.E("icmp6.out_dest_unreachs", NetworkICMP6OutDestUnreachs),
	field.E("tcp.active_opens_per_sec", NetworkTCPActiveOpensPerSec),
	field.E("tcp.passive_opens_per_sec", NetworkTCPPassiveOpensPerSec),
	field.E("tcp.attempt_fails_per_sec", NetworkTCPAttemptFailsPerSec),
	field.E("tcp.estab_resets_per_sec", NetworkTCPEstabResetsPerSec),
	field.E("tcp.curr_estab_conn", NetworkTCPCurrEstabConn),
	field.E("tcp.in_segs_per_sec", NetworkTCPInSegsPerSec),
	field.E("tcp.out_segs_per_sec", NetworkTCPOutSegsPerSec),
	field.E("tcp.retrans_segs_per_sec", NetworkTCPRetransSegsPerSec),
	field.E("tcp.retrans_segs", NetworkTCPRetransSegs),
	field.E("tcp.in_errs", NetworkTCPInErrs),
	field.E("tcp.out_rsts_per_sec", NetworkTCPOutRstsPerSec),
	field.E("tcp.in_csum_errors", NetworkTCPInCsumErrors),
	field.E("udp.in_datagrams_pkts_per_sec", NetworkUDPInDatagramsPktsPerSec),
	field.E("udp.no_ports", NetworkUDPNoPorts),
	field.E("udp.in_errors", NetworkUDPInErrors),
	field.E("udp.out_datagrams_pkts_per_sec", NetworkUDPOutDatagramsPktsPerSec),
	field.E("udp.rcvbuf_errors", NetworkUDPRcvBufErrors),
	field.E("udp.sndbuf_errors", NetworkUDPSndBufErrors),
	field.E("udp.ignored_multi", NetworkUDPIgnoredMulti),
	field.E("udp6.in_datagrams_pkts_per_sec", NetworkUDP6InDatagramsPktsPerSec),
	field.E("udp6.no_ports", NetworkUDP6NoPorts),
	field.E("udp6.in_errors", NetworkUDP6InErrors),
	field.E("udp6.out_datagrams_pkts_per_sec", NetworkUDP6OutDatagramsPktsPerSec),
	field.E("udp6.rcvbuf_errors", NetworkUDP6RcvBufErrors),
	field.E("udp6.sndbuf_errors", NetworkUDP6SndBufErrors),
	field.E("udp6.in_csum_errors", NetworkUDP6InCsumErrors),
	field.E("udp6.ignored_multi", NetworkUDP6IgnoredMulti),
)

// String returns the canonical name of f.
func (f NetworkField) String() string {
	return networkFields.Name(f)
}

// ParseNetworkField returns the field named s, ignoring case.
func ParseNetworkField(s string) (NetworkField, error) {
	return networkFields.Parse(s)
}

// NetworkFields returns the catalog of network fields in declared order.
func NetworkFields() *field.Catalog[NetworkField] {
	return networkFields
}

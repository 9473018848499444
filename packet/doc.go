// Package packet frames encoded component records for transport.
//
// A construction buffer is a flat byte sequence of packets, one per
// component type. Every packet starts with a fixed header of little-endian
// u64 words:
//
//	single-value packet (24-byte header):
//	  [type_id][size][alignment][payload: size bytes]
//
//	multi-value packet (32-byte header):
//	  [type_id][size][alignment][count][payload: size*count bytes]
//
// The size and alignment words repeat what the receiver's schema already
// declares; the receiver cross-checks them against its registry, so a layout
// skew between the two sides is detected at the packet boundary rather than
// mid-record. Zero-size marker components are framed like any other type,
// with an empty payload.
//
// A buffer uses one header form throughout. Single-value buffers construct
// one entity; multi-value buffers construct a batch sharing the same
// component set, with every packet carrying the same count.
package packet

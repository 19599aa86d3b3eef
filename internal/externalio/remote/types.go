// Package remote forwards rendered events to an upstream secure log
// collector over UDP, using the station's AEAD-sealed syslog wire protocol
// (see pkg/protocol) instead of plaintext journal export or file lines --
// for stations whose collector lives across an untrusted network hop.
package remote

import "net"

type OutModule struct {
	conn           *net.UDPConn
	hostID         int
	maxPayloadSize int
}

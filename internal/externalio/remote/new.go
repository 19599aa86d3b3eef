package remote

import (
	"fmt"
	"net"

	"eventlink/internal/crypto/wrappers"
	"eventlink/internal/global"
	"eventlink/internal/network"
)

// Creates a new remote output module sending to endpoint over UDP, sealed
// under collectorPub. Returns nil nil if endpoint is empty. maxPayloadSize
// is derived from endpoint's path MTU the same way the teacher's sender
// picks a fragment size.
func NewOutput(endpoint string, collectorPub []byte) (module *OutModule, err error) {
	if endpoint == "" {
		return
	}

	if err = wrappers.SetupEncryptInnerPayload(collectorPub); err != nil {
		err = fmt.Errorf("failed initializing collector public key: %v", err)
		return
	}

	addr, err := net.ResolveUDPAddr("udp", endpoint)
	if err != nil {
		err = fmt.Errorf("invalid remote collector address: %v", err)
		return
	}

	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		err = fmt.Errorf("failed to open UDP socket to remote collector: %v", err)
		return
	}

	maxPayloadSize, err := network.FindSendingMaxUDPPayload(endpoint)
	if err != nil {
		conn.Close()
		err = fmt.Errorf("failed determining max UDP payload size: %v", err)
		return
	}

	module = &OutModule{
		conn:           conn,
		hostID:         global.PID,
		maxPayloadSize: maxPayloadSize,
	}
	return
}

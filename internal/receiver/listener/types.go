package listener

import (
	"net"
	"sync"
	"sync/atomic"

	"eventlink/internal/global"
	"eventlink/internal/queue/mpmc"
	"eventlink/internal/receiver/delivery"
	"eventlink/pkg/eventdef"
	"eventlink/pkg/eventproto"
	"eventlink/pkg/mavwire"
)

// Station is this station's own (system_id, component_id), used by every
// Protocol instance to decide whether an event addresses us.
type Station struct {
	SystemID    uint8
	ComponentID uint8
}

type remoteKey struct {
	systemID    uint8
	componentID uint8
}

// protocolEntry pairs a remote's Protocol state machine with the socket/
// address last seen carrying its traffic, so the protocol's own
// SendRequestEvent callback can write a reply without the Registry having
// to hold a lock across the network call.
type protocolEntry struct {
	proto *eventproto.Protocol
	conn  atomic.Pointer[net.UDPConn]
	addr  atomic.Pointer[net.UDPAddr]
}

// Registry owns one Protocol instance per remote (system_id, component_id)
// seen on the wire, shared by every listener Instance bound to the same
// port via SO_REUSEPORT -- datagrams from one remote can land on any of
// them, so Get must be safe under concurrent access even though each
// Protocol instance then serializes itself internally.
type Registry struct {
	mu        sync.Mutex
	protocols map[remoteKey]*protocolEntry
	station   Station
	store     *atomic.Pointer[eventdef.Store]
	cfg       eventdef.Configuration
	outbox    *mpmc.Queue[delivery.Item]
	Namespace []string
	Metrics   ProtocolMetricStorage
}

// NewRegistry constructs an empty protocol registry. store must be kept
// pointed at the current Metadata Store generation by the caller; a
// definitions reload is then visible to every Protocol instance on their
// next lookup, never mid-build.
func NewRegistry(namespace []string, station Station, store *atomic.Pointer[eventdef.Store], cfg eventdef.Configuration, outbox *mpmc.Queue[delivery.Item]) *Registry {
	return &Registry{
		protocols: make(map[remoteKey]*protocolEntry),
		station:   station,
		store:     store,
		cfg:       cfg,
		outbox:    outbox,
		Namespace: append(namespace, global.NSProtocol),
	}
}

// Get returns the Protocol instance for remote, creating one on first
// sight. conn/addr record where this remote's traffic is currently arriving
// from so a subsequent SendRequestEvent callback has something to write a
// reply to -- UDP is connectionless, so any socket bound to our listen port
// can send it, not only the one that happened to read this particular
// datagram.
func (r *Registry) Get(remote eventproto.RemotePeer, conn *net.UDPConn, addr *net.UDPAddr) *eventproto.Protocol {
	key := remoteKey{remote.SystemID, remote.ComponentID}

	r.mu.Lock()
	entry, ok := r.protocols[key]
	if !ok {
		entry = &protocolEntry{}
		entry.proto = eventproto.New(remote, eventproto.Station(r.station), r.store, r.cfg, eventproto.Callbacks{
			SendRequestEvent: func(seq uint16) {
				r.sendRequestEvent(remote, entry, seq)
			},
			HandleEvent: func(p *eventdef.ParsedEvent) {
				r.outbox.Push(delivery.Item{Remote: delivery.RemotePeer(remote), Parsed: p})
			},
			HandleUnknownEvent: func(id uint32) {
				r.outbox.Push(delivery.Item{Remote: delivery.RemotePeer(remote), UnknownID: id, IsUnknown: true})
			},
			Error: func(numLost int) {
				r.Metrics.GapCount.Add(1)
				r.Metrics.EventsLost.Add(uint64(numLost))
			},
			RebootDetected: func() {
				r.Metrics.RebootCount.Add(1)
			},
		})
		r.protocols[key] = entry
	}
	r.mu.Unlock()

	entry.conn.Store(conn)
	entry.addr.Store(addr)
	return entry.proto
}

// sendRequestEvent builds and transmits a RequestEvent message back to
// remote over whichever socket/address last carried its traffic. Called
// synchronously from inside the Protocol's own ProcessMessage/OnTimeout, so
// it must never block for long or call back into the registry.
func (r *Registry) sendRequestEvent(remote eventproto.RemotePeer, entry *protocolEntry, seq uint16) {
	conn := entry.conn.Load()
	addr := entry.addr.Load()
	if conn == nil || addr == nil {
		return
	}

	header := []byte{r.station.SystemID, r.station.ComponentID, mavwire.MsgIDRequestEvent}
	body := mavwire.EncodeRequestEvent(mavwire.RequestEvent{
		TargetSystem:    remote.SystemID,
		TargetComponent: remote.ComponentID,
		Sequence:        seq,
	})
	pkt := append(header, body...)

	if _, err := conn.WriteToUDP(pkt, addr); err != nil {
		r.Metrics.SendErrors.Add(1)
		return
	}
	r.Metrics.RequestsSent.Add(1)
}

type Instance struct {
	Namespace []string
	conn      *net.UDPConn
	registry  *Registry
	minLen    int
	Metrics   MetricStorage
}

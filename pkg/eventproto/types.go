// Package eventproto implements the receive-side state machine of the event
// telemetry protocol: sequence tracking with gap detection and re-request,
// reboot detection via timestamp regression, and delivery of decoded events
// to caller-supplied callbacks.
package eventproto

import (
	"sync"
	"sync/atomic"
	"time"

	"eventlink/pkg/eventdef"
)

// retransmitInterval is how often an outstanding request-event is re-fired
// until the awaited sequence (or an event-error for it) arrives.
const retransmitInterval = 100 * time.Millisecond

// rebootGapMs and rebootGuardMs implement check_timestamp_reset: a peer
// reboot is detected when the incoming timestamp regresses by more than
// rebootGapMs, and only while the previous timestamp is still comfortably
// below wraparound (so a timer overflow near UINT32_MAX is never mistaken
// for a reboot).
const (
	rebootGapMs   uint32 = 10_000
	rebootGuardMs uint32 = 60_000
)

// Callbacks bundles every side effect the protocol can have. All five are
// invoked synchronously from inside ProcessMessage/OnTimeout and must not
// call back into the same Protocol instance.
type Callbacks struct {
	SendRequestEvent   func(seq uint16)
	HandleEvent        func(*eventdef.ParsedEvent)
	HandleUnknownEvent func(id uint32)
	Error              func(numLost int)
	RebootDetected     func()
}

// SequenceState is the per-remote bookkeeping the protocol mutates. It is
// exported read-only via Protocol.State for observability/metrics.
type SequenceState struct {
	HasSequence           bool
	LatestSequence        uint16
	HasCurrentSequence    bool
	LatestCurrentSequence uint16
	LastTimestampMs       uint32
}

// RemotePeer identifies the fixed (system_id, component_id) this Protocol
// instance tracks sequence state for.
type RemotePeer struct {
	SystemID    uint8
	ComponentID uint8
}

// Station identifies the local station's own (system_id, component_id), used
// to decide whether an event's destination_component addresses us.
type Station struct {
	SystemID    uint8
	ComponentID uint8
}

// Protocol is one remote peer's receive state machine. Construct one per
// (system_id, component_id) seen; instances are independent and each owns
// its own mutex, so separate remotes never contend with each other.
type Protocol struct {
	remote  RemotePeer
	station Station
	store   *atomic.Pointer[eventdef.Store]
	cfg     eventdef.Configuration
	cb      Callbacks

	mu    sync.Mutex
	state SequenceState

	pendingSeq   *uint16
	pendingTimer *time.Timer
}

// New constructs a Protocol for one remote peer. store must be an
// atomic.Pointer the caller keeps pointed at the current Metadata Store
// generation -- a definitions reload is then a single pointer swap that this
// Protocol picks up on its next lookup, never observing a half-built store.
func New(remote RemotePeer, station Station, store *atomic.Pointer[eventdef.Store], cfg eventdef.Configuration, cb Callbacks) *Protocol {
	return &Protocol{
		remote:  remote,
		station: station,
		store:   store,
		cfg:     cfg,
		cb:      cb,
	}
}

// State returns a snapshot of the current sequence state, safe to call
// concurrently with ProcessMessage.
func (p *Protocol) State() SequenceState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Close cancels any outstanding retransmit timer. Call it when a Protocol
// instance (and its remote peer) is being torn down.
func (p *Protocol) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopPendingTimerLocked()
}

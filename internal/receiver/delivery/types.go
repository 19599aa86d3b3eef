// Package delivery defines the hand-off types between the Receive Protocol's
// callbacks and the output worker pool: an Item is what gets enqueued the
// moment a protocol instance accepts or fails to resolve an event; a Record
// is what the worker pool produces after rendering, ready for a sink to
// write.
package delivery

import "eventlink/pkg/eventdef"

// RemotePeer identifies which (system_id, component_id) produced an Item or
// Record, for tagging output and metrics.
type RemotePeer struct {
	SystemID    uint8
	ComponentID uint8
}

// Item is pushed onto the output queue directly from inside a Protocol's
// callbacks (ProcessMessage's synchronous call path) and carries everything
// the worker pool needs to render later -- rendering is deliberately deferred
// off the protocol's single-threaded state machine.
type Item struct {
	Remote    RemotePeer
	Parsed    *eventdef.ParsedEvent
	UnknownID uint32
	IsUnknown bool
}

// Record is a fully rendered, dispatch-ready event.
type Record struct {
	Remote      RemotePeer
	EventID     uint32
	Sequence    uint16
	TimeBootMs  uint32
	Level       eventdef.LogLevel
	Message     string
	Description string
	Unknown     bool
}

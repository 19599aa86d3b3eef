// Package mavwire codecs the four MAVLink-style event-protocol messages this
// repository consumes and emits. It is not a general MAVLink frame codec --
// framing, CRC, and every other message in the MAVLink message space are an
// external collaborator's concern. This package only turns the
// already-demultiplexed payload bytes of these four message ids into and out
// of Go structs.
package mavwire

// Message ids of the event protocol messages. They form a local one-byte id
// space carried in the listener's frame header and do not follow the MAVLink
// common dialect's numbering.
const (
	MsgIDEvent                byte = 1 // placeholder local id space, see Envelope.MsgID
	MsgIDCurrentEventSequence byte = 2
	MsgIDEventError           byte = 3
	MsgIDRequestEvent         byte = 4
)

// ArgumentBufferLen is the fixed length of an Event message's raw argument
// payload.
const ArgumentBufferLen = 32

// BroadcastComponent is the sentinel destination_component value meaning
// "all components on this system".
const BroadcastComponent uint8 = 0

// ResetFlag is the only recognized bit in CurrentEventSequence.Flags.
const ResetFlag uint8 = 0x01

// Envelope carries the MAVLink fields this protocol cares about regardless
// of which of the four message kinds follows: who sent it and which message
// id it is. The external MAVLink codec is responsible for demultiplexing a
// frame into an Envelope plus raw payload bytes.
type Envelope struct {
	SystemID    uint8
	ComponentID uint8
	MsgID       byte
}

// Event is the decoded form of the wire Event message.
type Event struct {
	DestinationComponent uint8
	Id                   uint32
	TimeBootMs           uint32
	Sequence             uint16
	Arguments            [ArgumentBufferLen]byte
}

// CurrentEventSequence is the decoded form of the wire
// CurrentEventSequence message.
type CurrentEventSequence struct {
	Flags    uint8
	Sequence uint16
}

func (c CurrentEventSequence) Reset() bool {
	return c.Flags&ResetFlag != 0
}

// EventError is the decoded form of the wire EventError message.
type EventError struct {
	TargetSystem            uint8
	TargetComponent         uint8
	Sequence                uint16
	SequenceOldestAvailable uint16
}

// RequestEvent is the wire message this protocol emits to ask a peer to
// resend a specific sequence number.
type RequestEvent struct {
	TargetSystem    uint8
	TargetComponent uint8
	Sequence        uint16
}

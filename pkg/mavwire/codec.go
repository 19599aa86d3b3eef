package mavwire

import (
	"encoding/binary"
	"fmt"
)

// Fixed wire lengths, little-endian, no padding -- mirroring the argument
// decoder's own wire rules (§4.3 of the specification).
const (
	lenEventFixed   = 1 + 4 + 4 + 2 // destination_component, id, time_boot_ms, sequence
	EventWireLen    = lenEventFixed + ArgumentBufferLen
	CurrentSeqWireLen = 1 + 2
	EventErrorWireLen = 1 + 1 + 2 + 2
	RequestEventWireLen = 1 + 1 + 2
)

// DecodeEvent parses an Event message payload.
func DecodeEvent(payload []byte) (Event, error) {
	if len(payload) < EventWireLen {
		return Event{}, fmt.Errorf("event payload too short: got %d bytes, want %d", len(payload), EventWireLen)
	}

	var ev Event
	ev.DestinationComponent = payload[0]
	ev.Id = binary.LittleEndian.Uint32(payload[1:5])
	ev.TimeBootMs = binary.LittleEndian.Uint32(payload[5:9])
	ev.Sequence = binary.LittleEndian.Uint16(payload[9:11])
	copy(ev.Arguments[:], payload[11:11+ArgumentBufferLen])
	return ev, nil
}

// EncodeEvent serializes an Event message payload.
func EncodeEvent(ev Event) []byte {
	buf := make([]byte, EventWireLen)
	buf[0] = ev.DestinationComponent
	binary.LittleEndian.PutUint32(buf[1:5], ev.Id)
	binary.LittleEndian.PutUint32(buf[5:9], ev.TimeBootMs)
	binary.LittleEndian.PutUint16(buf[9:11], ev.Sequence)
	copy(buf[11:11+ArgumentBufferLen], ev.Arguments[:])
	return buf
}

// DecodeCurrentEventSequence parses a CurrentEventSequence message payload.
func DecodeCurrentEventSequence(payload []byte) (CurrentEventSequence, error) {
	if len(payload) < CurrentSeqWireLen {
		return CurrentEventSequence{}, fmt.Errorf("current-event-sequence payload too short: got %d bytes, want %d", len(payload), CurrentSeqWireLen)
	}
	return CurrentEventSequence{
		Flags:    payload[0],
		Sequence: binary.LittleEndian.Uint16(payload[1:3]),
	}, nil
}

// EncodeCurrentEventSequence serializes a CurrentEventSequence message payload.
func EncodeCurrentEventSequence(c CurrentEventSequence) []byte {
	buf := make([]byte, CurrentSeqWireLen)
	buf[0] = c.Flags
	binary.LittleEndian.PutUint16(buf[1:3], c.Sequence)
	return buf
}

// DecodeEventError parses an EventError message payload.
func DecodeEventError(payload []byte) (EventError, error) {
	if len(payload) < EventErrorWireLen {
		return EventError{}, fmt.Errorf("event-error payload too short: got %d bytes, want %d", len(payload), EventErrorWireLen)
	}
	return EventError{
		TargetSystem:            payload[0],
		TargetComponent:         payload[1],
		Sequence:                binary.LittleEndian.Uint16(payload[2:4]),
		SequenceOldestAvailable: binary.LittleEndian.Uint16(payload[4:6]),
	}, nil
}

// EncodeEventError serializes an EventError message payload.
func EncodeEventError(e EventError) []byte {
	buf := make([]byte, EventErrorWireLen)
	buf[0] = e.TargetSystem
	buf[1] = e.TargetComponent
	binary.LittleEndian.PutUint16(buf[2:4], e.Sequence)
	binary.LittleEndian.PutUint16(buf[4:6], e.SequenceOldestAvailable)
	return buf
}

// DecodeRequestEvent parses a RequestEvent message payload.
func DecodeRequestEvent(payload []byte) (RequestEvent, error) {
	if len(payload) < RequestEventWireLen {
		return RequestEvent{}, fmt.Errorf("request-event payload too short: got %d bytes, want %d", len(payload), RequestEventWireLen)
	}
	return RequestEvent{
		TargetSystem:    payload[0],
		TargetComponent: payload[1],
		Sequence:        binary.LittleEndian.Uint16(payload[2:4]),
	}, nil
}

// EncodeRequestEvent serializes a RequestEvent message payload.
func EncodeRequestEvent(r RequestEvent) []byte {
	buf := make([]byte, RequestEventWireLen)
	buf[0] = r.TargetSystem
	buf[1] = r.TargetComponent
	binary.LittleEndian.PutUint16(buf[2:4], r.Sequence)
	return buf
}

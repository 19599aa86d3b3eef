package syslog

import "eventlink/pkg/eventdef"

// NoForward is returned by EventLevelToCode for eventdef.Disabled, which is
// not a wire severity at all but an instruction to drop the event before it
// ever reaches a sink.
const NoForward uint16 = 0xFFFF

var eventLevelToCode = map[eventdef.LogLevel]uint16{
	eventdef.Emergency: 0,
	eventdef.Alert:     1,
	eventdef.Critical:  2,
	eventdef.Error:     3,
	eventdef.Warning:   4,
	eventdef.Notice:    5,
	eventdef.Info:      6,
	eventdef.Protocol:  7,
	eventdef.Disabled:  NoForward,
}

// EventLevelToCode maps a definition's LogLevel to the syslog/journal
// PRIORITY code a sink should stamp on the rendered event. eventdef.Disabled
// maps to NoForward: the caller must not write the event to any sink.
func EventLevelToCode(level eventdef.LogLevel) uint16 {
	if code, ok := eventLevelToCode[level]; ok {
		return code
	}
	return 6 // info
}

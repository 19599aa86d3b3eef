package remote

import (
	"context"
	"fmt"
	"time"

	"eventlink/internal/global"
	"eventlink/internal/receiver/delivery"
	"eventlink/internal/syslog"
	"eventlink/pkg/protocol"
)

// Write seals a rendered event under the station's sender protocol (AEAD,
// fragmented if needed) and forwards it to the configured collector. A
// record whose Level maps to syslog.NoForward is dropped silently, same as
// the journald sink.
func (mod *OutModule) Write(ctx context.Context, rec delivery.Record) (packetsSent int, err error) {
	if mod == nil {
		return
	}

	priorityCode := syslog.EventLevelToCode(rec.Level)
	if priorityCode == syslog.NoForward {
		return
	}
	severity, err := syslog.CodeToSeverity(priorityCode)
	if err != nil {
		severity = "info"
		err = nil
	}

	message := rec.Message
	if rec.Unknown {
		message = fmt.Sprintf("unknown event id %d", rec.EventID)
	}
	if rec.Description != "" {
		message += " -- " + rec.Description
	}

	msg := protocol.Message{
		Facility:        "user",
		Severity:        severity,
		Timestamp:       time.Now(),
		ProcessID:       global.PID,
		Hostname:        global.Hostname,
		ApplicationName: "eventlink",
		LogText:         fmt.Sprintf("sys=%d/%d seq=%d event=%d %s", rec.Remote.SystemID, rec.Remote.ComponentID, rec.Sequence, rec.EventID, message),
	}

	packets, err := protocol.Create(msg, mod.hostID, mod.maxPayloadSize)
	if err != nil {
		err = fmt.Errorf("failed sealing event for remote collector: %w", err)
		return
	}

	for _, packet := range packets {
		if _, err = mod.conn.Write(packet); err != nil {
			err = fmt.Errorf("failed sending sealed event to remote collector: %w", err)
			return
		}
		packetsSent++
	}

	return
}

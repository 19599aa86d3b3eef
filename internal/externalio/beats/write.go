package beats

import (
	"context"
	"fmt"
	"os"
	"time"

	"eventlink/internal/global"
	"eventlink/internal/receiver/delivery"
	"eventlink/internal/syslog"
)

// Write forwards a rendered event to the configured beats/Logstash server
// as a single lumberjack event. A record whose Level maps to
// syslog.NoForward is dropped silently, same as the journald and remote
// sinks.
func (mod *OutModule) Write(ctx context.Context, rec delivery.Record) (eventsSent int, err error) {
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

	fields := map[string]interface{}{
		// Minimum required fields
		"@timestamp": time.Now(),
		"message":    message,

		// Common fields
		"host": map[string]interface{}{
			"name":     global.Hostname,
			"hostname": global.Hostname,
			"id":       global.BootID,
		},
		"agent": map[string]interface{}{
			"name":    global.Hostname,
			"program": "eventlink",
			"pid":     os.Getpid(),
			"type":    "filebeat",
		},

		// Event-protocol fields
		"event": map[string]interface{}{
			"id":           rec.EventID,
			"sequence":     rec.Sequence,
			"time_boot_ms": rec.TimeBootMs,
			"system_id":    rec.Remote.SystemID,
			"component_id": rec.Remote.ComponentID,
			"description":  rec.Description,
			"severity":     severity,
		},
	}
	events := []interface{}{fields}

	eventsSent, err = mod.sink.Send(events)
	if err != nil {
		err = fmt.Errorf("failed sending event to beats output: %w", err)
		return
	}
	return
}

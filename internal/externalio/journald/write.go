package journald

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"eventlink/internal/global"
	"eventlink/internal/receiver/delivery"
	"eventlink/internal/syslog"
)

// Write forwards a rendered event to systemd-journal-remote. A record whose
// Level maps to syslog.NoForward (eventdef.Disabled) is dropped silently --
// the definitions author asked for it not to reach any sink.
func (mod *OutModule) Write(ctx context.Context, rec delivery.Record) (entriesWritten int, err error) {
	if mod == nil {
		return
	}

	priority := syslog.EventLevelToCode(rec.Level)
	if priority == syslog.NoForward {
		return
	}

	message := rec.Message
	if rec.Unknown {
		message = fmt.Sprintf("unknown event id %d", rec.EventID)
	}

	fields := map[string]string{
		"__REALTIME_TIMESTAMP": fmt.Sprintf("%d", time.Now().UnixMicro()), // Required field
		"_BOOT_ID":             global.BootID,                             // Required field
		"MESSAGE":              message,                                   // Required field
		"PRIORITY":             strconv.Itoa(int(priority)),
		"SYSLOG_IDENTIFIER":    "eventlink",
		"EVENT_ID":             strconv.FormatUint(uint64(rec.EventID), 10),
		"EVENT_SEQUENCE":       strconv.FormatUint(uint64(rec.Sequence), 10),
		"EVENT_TIME_BOOT_MS":   strconv.FormatUint(uint64(rec.TimeBootMs), 10),
		"EVENT_SYSTEM_ID":      strconv.Itoa(int(rec.Remote.SystemID)),
		"EVENT_COMPONENT_ID":   strconv.Itoa(int(rec.Remote.ComponentID)),
	}
	if rec.Description != "" {
		fields["EVENT_DESCRIPTION"] = rec.Description
	}

	// Key=val\n Format
	var buf bytes.Buffer
	for key, value := range fields {
		if key == "" || value == "" {
			continue
		}
		buf.WriteString(key)
		buf.WriteByte('=')
		buf.WriteString(value)
		buf.WriteByte('\n')
	}
	// Terminate with double newline
	buf.WriteByte('\n')

	err = sendJournalExport(mod.sink, mod.url, buf.Bytes())
	if err != nil {
		err = fmt.Errorf("%w (event id %d, system %d/%d)", err, rec.EventID, rec.Remote.SystemID, rec.Remote.ComponentID)
		return
	}
	entriesWritten = 1

	return
}

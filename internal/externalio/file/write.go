package file

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventlink/internal/receiver/delivery"
)

// Main raw line format for outputs
// Fmt: '2020-01-01T10:10:10.123456789Z sys=1/1 seq=42 [INFO] this is a rendered event message'
func formatAsText(rec delivery.Record) (text string) {
	message := rec.Message
	if rec.Unknown {
		message = fmt.Sprintf("unknown event id %d", rec.EventID)
	}

	text = time.Now().Format(time.RFC3339Nano) + " " +
		fmt.Sprintf("sys=%d/%d", rec.Remote.SystemID, rec.Remote.ComponentID) + " " +
		fmt.Sprintf("seq=%d", rec.Sequence) + " " +
		"[" + strings.ToUpper(rec.Level.String()) + "] " +
		message
	if rec.Description != "" {
		text += " -- " + rec.Description
	}
	return
}

// Writes a rendered event in one line to the configured sink
func (mod *OutModule) Write(ctx context.Context, rec delivery.Record) (linesWritten int, err error) {
	if mod == nil {
		return
	}

	newEntry := formatAsText(rec)

	// Always ensure outputs have only one trailing newline
	var lineParts []string
	if !strings.HasSuffix(newEntry, "\n") {
		lineParts = append(lineParts, newEntry+"\n")
	} else {
		lineParts = []string{newEntry}
	}
	newLine := strings.Join(lineParts, " ")

	// Buffer small amount to reorder and write in batches
	*mod.batchBuffer = append(*mod.batchBuffer, newLine)

	// Flush once more than 20 lines are buffered
	if len(*mod.batchBuffer) > 20 {
		linesWritten, err = mod.FlushBuffer()
		if err != nil {
			return
		}
	}

	return
}

// Flushes line buffer to the sink
func (mod *OutModule) FlushBuffer() (flushedCnt int, err error) {
	if mod.batchBuffer == nil {
		return
	}

	if len(*mod.batchBuffer) == 0 {
		return
	}

	sort.Slice(*mod.batchBuffer, func(i, j int) bool {
		// Extract timestamp prefix (up to first space)
		getTime := func(s string) time.Time {
			ts := s
			if idx := strings.IndexByte(s, ' '); idx != -1 {
				ts = s[:idx]
			}
			t, err := time.Parse(time.RFC3339Nano, ts)
			if err != nil {
				return time.Time{} // zero time on error
			}
			return t
		}

		ti := getTime((*mod.batchBuffer)[i])
		tj := getTime((*mod.batchBuffer)[j])

		// Newest first, compare reverse
		return ti.After(tj)
	})

	for _, line := range *mod.batchBuffer {
		data := []byte(line)
		for len(data) > 0 {
			var n int
			n, err = mod.sink.Write(data)
			if err != nil {
				return
			}
			data = data[n:] // remove the bytes that were successfully written
		}
		flushedCnt++
	}

	// All writes succeeded, empty buffer
	*mod.batchBuffer = []string{}

	return
}

package logctx

import (
	"fmt"
	"sort"
	"strings"
)

func (logger *Logger) GetFormattedLogLines() (formatted []string) {
	// Copy under lock to avoid holding mutex while sorting/formatting
	logger.mutex.Lock()
	events := make([]Event, len(logger.queue))
	copy(events, logger.queue)
	logger.mutex.Unlock()

	// Stable sort: oldest to newest
	sort.SliceStable(events, func(i, j int) bool {
		ti := events[i].Timestamp
		tj := events[j].Timestamp

		// Zero timestamps sort last
		if ti.IsZero() && tj.IsZero() {
			return false
		}
		if ti.IsZero() {
			return false
		}
		if tj.IsZero() {
			return true
		}
		return ti.Before(tj)
	})

	formatted = make([]string, 0, len(logger.queue))
	for _, event := range events {
		var parts []string

		// Message timestamp
		if !event.Timestamp.IsZero() {
			parts = append(parts, fmt.Sprintf("[%s]", padTimestamp(event.Timestamp)))
		}

		// Message tags
		if len(event.Tags) > 0 {
			tagPrefixes := "["
			tagPrefixes += strings.Join(event.Tags, "/")
			tagPrefixes += "]"
			parts = append(parts, tagPrefixes)
		}

		// Message severity
		if event.Severity != "" {
			parts = append(parts, fmt.Sprintf("[%s]", event.Severity))
		}

		// Main Text
		if event.Message != "" {
			msg := event.Message

			// Append newlines if not present
			if !strings.HasSuffix(msg, "\n") {
				msg += "\n"
			}

			parts = append(parts, msg)
		}

		// Final string
		formatted = append(formatted, strings.Join(parts, " "))
	}
	return
}

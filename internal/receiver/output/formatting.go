package output

import (
	"eventlink/internal/receiver/delivery"
	"eventlink/pkg/eventdef"
)

// render turns a pre-render Item into a dispatch-ready Record, invoking the
// Template Renderer through ParsedEvent's lazy accessors exactly once per
// field -- this is where rendering cost is paid, off the Receive Protocol's
// single-threaded critical section.
func render(item delivery.Item) delivery.Record {
	if item.IsUnknown {
		return delivery.Record{
			Remote:  item.Remote,
			EventID: item.UnknownID,
			Level:   eventdef.Warning,
			Unknown: true,
		}
	}

	p := item.Parsed
	return delivery.Record{
		Remote:      item.Remote,
		EventID:     p.Id(),
		Sequence:    p.Sequence(),
		TimeBootMs:  p.TimeBootMs(),
		Level:       p.LogLevel(),
		Message:     p.Message(),
		Description: p.Description(),
	}
}

// Package journald forwards rendered events to systemd-journal-remote over
// its HTTP journal-export endpoint.
package journald

import (
	"net/http"
)

type OutModule struct {
	sink *http.Client
	url  string
}

// Package beats forwards rendered events to a Logstash/Beats-compatible
// collector over the lumberjack protocol -- a fifth output sink sitting
// alongside file, journald, and remote, for deployments whose log pipeline
// already terminates on an Elastic stack rather than journald or a bespoke
// collector.
package beats

import (
	lumberjack "github.com/elastic/go-lumber/client/v2"
)

type OutModule struct {
	sink *lumberjack.SyncClient
}

package receiver

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"eventlink/internal/externalio/server"
	"eventlink/internal/global"
	"eventlink/internal/receiver/metrics"
	"eventlink/internal/receiver/shared"
	"eventlink/pkg/eventdef"
)

// On-disk config shape; field names/tags match the daemon config documented
// for the receive daemon. Defined (not aliased) so NewDaemonConf can hang
// off it.
type JSONConfig global.DaemonConfig

// Parsed, defaulted runtime configuration for a single daemon instance.
type Config struct {
	PrivateKeyFile string

	// Network
	ListenIP   string
	ListenPort int

	// Definitions
	DefinitionsPath string
	ReloadOnChange  bool
	Profile         string

	// Definition Sync
	SyncEnabled      bool
	SyncEndpoint     string
	TrustedPublicKey string

	// Outputs
	JournalEndpoint          string
	StdoutEnabled            bool
	OutputFilePath           string
	RemoteEndpoint           string
	RemoteCollectorPublicKey string
	BeatsEndpoint            string

	// Remote identity
	OurSystemID    uint8
	OurComponentID uint8

	// Metrics
	MetricQueryServerEnabled bool
	MetricQueryServerPort   int
	MetricCollectionInterval time.Duration
	MetricMaxAge             time.Duration

	// Logging
	LogLevel int
}

type Daemon struct {
	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup

	store     atomic.Pointer[eventdef.Store] // Current Metadata Store generation
	renderCfg eventdef.Configuration

	Mgrs             shared.Managers
	metricsCollector *metrics.Gatherer
	MetricServer     *http.Server

	MetricDataSearcher server.DataSearcher
	MetricDiscoverer   server.Discoverer
	MetricAggregator   server.AggSearcher
}

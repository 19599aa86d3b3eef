// Daemon for continuous reception of event telemetry, rendering of decoded
// events, and delivery to configured output destinations
package receiver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"eventlink/internal/atomics"
	"eventlink/internal/crypto/wrappers"
	"eventlink/internal/defsync"
	"eventlink/internal/externalio/server"
	"eventlink/internal/global"
	"eventlink/internal/lifecycle"
	"eventlink/internal/logctx"
	"eventlink/internal/receiver/listener"
	"eventlink/internal/receiver/managers/in"
	"eventlink/internal/receiver/managers/out"
	"eventlink/internal/receiver/metrics"
	"eventlink/pkg/eventdef"
)

// Create new receiver daemon instance
func NewDaemon(cfg Config) (new *Daemon) {
	ctx, cancel := context.WithCancel(context.Background())
	new = &Daemon{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
	return
}

// Starts pipeline worker threads in background -- gracefully shuts down if startup error is encountered
func (daemon *Daemon) Start(globalCtx context.Context, serverPriv []byte) (err error) {
	// New context for the daemon
	daemon.ctx, daemon.cancel = context.WithCancel(context.Background())
	daemon.ctx = context.WithValue(daemon.ctx, global.LoggerKey, logctx.GetLogger(globalCtx))

	// Top level tag for daemon logs
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSRecv)
	defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	if len(serverPriv) > 0 {
		err = wrappers.SetupDecryptInnerPayload(serverPriv)
		if err != nil {
			err = fmt.Errorf("failed initializing station private key: %v", err)
			return
		}
	}

	global.Hostname, err = os.Hostname()
	if err != nil {
		err = fmt.Errorf("failed to determine local hostname: %v", err)
		return
	}
	global.PID = os.Getpid()

	data, err := os.ReadFile("/proc/sys/kernel/random/boot_id")
	if err != nil {
		err = fmt.Errorf("failed to determine local boot id: %v", err)
		return
	}
	global.BootID = strings.TrimSpace(string(data))

	// Metadata Store: loaded from disk, optionally refreshed from a sync
	// endpoint before the listener starts accepting traffic
	store, err := eventdef.LoadFile(daemon.cfg.DefinitionsPath)
	if err != nil {
		err = fmt.Errorf("failed loading event definitions: %v", err)
		return
	}
	daemon.store.Store(store)

	if daemon.cfg.SyncEnabled {
		synced, syncErr := daemon.syncDefinitions(daemon.ctx)
		if syncErr != nil {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"definitions sync failed, continuing with on-disk definitions: %v\n", syncErr)
		} else {
			daemon.store.Store(synced)
		}
	}

	renderCfg := eventdef.NewConfiguration()
	renderCfg.SetProfile(daemon.cfg.Profile)
	daemon.renderCfg = renderCfg

	// Stage 2 - Output worker pool (built first so the listener registry has
	// a queue to hand rendered work off to)
	daemon.Mgrs.Output, err = out.NewInstanceManager(daemon.ctx, global.DefaultMinQueueSize)
	if err != nil {
		err = fmt.Errorf("failed creating output instance manager: %v", err)
		return
	}
	err = daemon.Mgrs.Output.AddInstance(daemon.cfg.OutputFilePath, daemon.cfg.StdoutEnabled, daemon.cfg.JournalEndpoint,
		daemon.cfg.RemoteEndpoint, []byte(daemon.cfg.RemoteCollectorPublicKey), daemon.cfg.BeatsEndpoint)
	if err != nil {
		err = fmt.Errorf("failed starting output: %v", err)
		return
	}

	// Stage 1 - Listener + Receive Protocol registry
	station := listener.Station{SystemID: daemon.cfg.OurSystemID, ComponentID: daemon.cfg.OurComponentID}
	registry := listener.NewRegistry(logctx.GetTagList(daemon.ctx), station, &daemon.store, renderCfg, daemon.Mgrs.Output.Queue)

	daemon.Mgrs.Input = in.NewInstanceManager(daemon.ctx, daemon.cfg.ListenPort, registry, 1, 1)
	_, err = daemon.Mgrs.Input.AddInstance()
	if err != nil {
		err = fmt.Errorf("failed adding new listener instance: %v", err)
		daemon.Shutdown()
		return
	}

	// Start handling exit/reload signals once the pipeline is live
	go lifecycle.SignalHandler(daemon.ctx, daemon)

	// Metrics Collector
	daemon.metricsCollector = metrics.New(daemon.Mgrs,
		daemon.cfg.MetricCollectionInterval,
		daemon.cfg.MetricMaxAge)
	workerCtx := daemon.ctx
	daemon.wg.Add(1)
	go func() {
		defer daemon.wg.Done()
		daemon.metricsCollector.Run(workerCtx)
	}()
	daemon.MetricDataSearcher = daemon.metricsCollector.Registry.Search
	daemon.MetricDiscoverer = daemon.metricsCollector.Registry.Discover
	daemon.MetricAggregator = daemon.metricsCollector.Registry.Aggregate

	// Metric Server
	if daemon.cfg.MetricQueryServerEnabled {
		// Top level tag for metric server logs (copy so return doesn't strip ns tags)
		serverCtx := daemon.ctx
		serverCtx = logctx.AppendCtxTag(serverCtx, global.NSMetric)
		serverCtx = logctx.AppendCtxTag(serverCtx, global.NSMetricSrv)

		daemon.MetricServer, err = server.SetupListener(serverCtx,
			daemon.cfg.MetricQueryServerPort,
			daemon.MetricDataSearcher,
			daemon.MetricDiscoverer,
			daemon.MetricAggregator)
		if err != nil {
			err = fmt.Errorf("failed setting up metric query server: %v", err)
			daemon.Shutdown()
			return
		}
		daemon.wg.Add(1)
		go func() {
			defer daemon.wg.Done()
			server.Start(serverCtx, daemon.MetricServer)
		}()
	}

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Startup complete.\n")
	return
}

// Fetches a fresh definitions bundle from the configured sync endpoint.
func (daemon *Daemon) syncDefinitions(ctx context.Context) (store *eventdef.Store, err error) {
	syncer := defsync.Syncer{
		Endpoint:         daemon.cfg.SyncEndpoint,
		TrustedPublicKey: []byte(daemon.cfg.TrustedPublicKey),
	}
	store, err = syncer.Fetch(ctx)
	return
}

// Reloads on-disk (and, if enabled, remote) event definitions and rebuilds
// the daemon's render configuration from the profile already held in its
// config. The daemon's config file is not re-read, so a changed setting
// (profile, sync endpoint, trusted key, listen address, outputs, metric
// server port) takes effect only after a restart.
func (daemon *Daemon) Reload(ctx context.Context) (err error) {
	store, loadErr := eventdef.LoadFile(daemon.cfg.DefinitionsPath)
	if loadErr != nil {
		err = fmt.Errorf("reload: failed loading event definitions: %v", loadErr)
		return
	}

	if daemon.cfg.SyncEnabled {
		synced, syncErr := daemon.syncDefinitions(ctx)
		if syncErr != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"reload: definitions sync failed, keeping on-disk definitions: %v\n", syncErr)
		} else {
			store = synced
		}
	}

	daemon.store.Store(store)

	renderCfg := eventdef.NewConfiguration()
	renderCfg.SetProfile(daemon.cfg.Profile)
	daemon.renderCfg = renderCfg

	return
}

// Blocking daemon waiter
func (daemon *Daemon) Run() {
	<-daemon.ctx.Done()
}

// Gracefully shutdown pipeline worker threads (errors are printed to program log buffer)
func (daemon *Daemon) Shutdown() {
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSRecv)
	defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Daemon shutdown started...\n")

	// Stop metric server
	if daemon.cfg.MetricQueryServerEnabled && daemon.MetricServer != nil {
		err := daemon.MetricServer.Shutdown(daemon.ctx)
		if err != nil && err != http.ErrServerClosed {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"metric HTTP server did not shutdown gracefully: %v\n", err)
		}
	}

	// Stop listener instances
	if daemon.Mgrs.Input != nil {
		for instanceID := range daemon.Mgrs.Input.Instances {
			daemon.Mgrs.Input.RemoveInstance(instanceID)
		}
	}

	// Stop output worker (drain the queue first, it's the only hand-off point)
	if daemon.Mgrs.Output != nil {
		queue := daemon.Mgrs.Output.Queue.ActiveWrite.Load()
		success, last := atomics.WaitUntilZero(&queue.Metrics.Depth, global.ReceiveShutdownTimeout)
		if !success {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"output queue did not empty in time: %d items still queued\n", last)
		}
		daemon.Mgrs.Output.RemoveInstance()
	}

	// Stop the run loop after instances are drained and stopped
	daemon.cancel()

	// Wait for all workers to finish (with timeout)
	done := make(chan struct{})
	go func() {
		daemon.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown completed successfully\n")
	case <-time.After(global.ReceiveShutdownTimeout):
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Timeout: receive daemon did not shutdown within %v seconds",
			global.ReceiveShutdownTimeout.Seconds())
		return
	}
}

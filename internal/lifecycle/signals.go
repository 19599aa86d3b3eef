package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"syscall"
)

// DaemonLike is any daemon that can drain itself on shutdown and reload its
// configuration and definitions without restarting.
type DaemonLike interface {
	Shutdown()
	Reload(ctx context.Context) error
}

// Handles all incoming signals from external sources. SIGHUP reloads the
// daemon's configuration and event definitions in place; SIGINT/SIGQUIT/
// SIGTERM initiate a graceful shutdown and return control to the caller.
func SignalHandler(ctx context.Context, daemonManager DaemonLike) {
	sigChan := make(chan os.Signal, 10)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		sig := <-sigChan
		logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v\n", sig)

		recvSignal, ok := sig.(syscall.Signal)
		if !ok {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "Failed to type assert received signal: %v\n", sig)
			continue
		}

		if recvSignal == syscall.SIGHUP {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Beginning reload...\n")

			if err := NotifyReload(ctx); err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd reload notify failed: %v\n", err)
			}

			if err := daemonManager.Reload(ctx); err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "Reload failed: %v\n", err)
				if nerr := NotifyStatus(ctx, "Reload failed, check daemon logs"); nerr != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd status notify failed: %v\n", nerr)
				}
			} else {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Reload complete.\n")
			}

			if err := NotifyReady(ctx); err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd ready notify failed: %v\n", err)
			}

			continue
		}

		daemonManager.Shutdown()
		return
	}
}

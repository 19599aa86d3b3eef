// Gathers instance metrics and saves to central registry
package metrics

import (
	"context"
	"runtime/debug"
	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"eventlink/internal/metrics"
	"eventlink/internal/receiver/shared"
	"time"
)

func New(mgrs shared.Managers, interval time.Duration, maximumMetricAge time.Duration) (new *Gatherer) {
	new = &Gatherer{
		Registry:  metrics.New(),
		Mgrs:      mgrs,
		Interval:  interval,
		Retention: maximumMetricAge,
	}
	return
}

func (gatherer *Gatherer) Run(ctx context.Context) {
	ctx = logctx.AppendCtxTag(ctx, global.NSMetric)
	defer func() { ctx = logctx.RemoveLastCtxTag(ctx) }()

	// Track last run times for each interval
	lastRun := time.Now()

	ticker := time.NewTicker(gatherer.Interval / 2) // Use polling interval half of desired record interval
	defer ticker.Stop()

	// Counter to track how many ticks have passed (for retention)
	var tickCount int

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.Sub(lastRun) >= gatherer.Interval {
				timeSlice := gatherer.Registry.NewTimeSlice(now, gatherer.Interval)

				lastRun = now
				go gatherer.runIntervalTasks(ctx, timeSlice, gatherer.Interval)
			}

			// Conduct old metric evaluations and cleanup
			tickCount++
			if tickCount >= 30 {
				gatherer.Registry.Prune(now, gatherer.Retention)
				tickCount = 0 // Reset the counter after cleanup
			}
		}
	}
}

// Read and calculate metrics for each pipeline component
func (gatherer *Gatherer) runIntervalTasks(ctx context.Context, timeSlice time.Time, interval time.Duration) {
	// Record panics and continue on next interval
	defer func() {
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in receiver metric collector thread: %v\n%s", fatalError, stack)
		}
	}()

	// Gatherer is started post-daemon pipeline startup, therefore certain pointers have to be initialized already (startup is run synchronously)

	// Listener
	gatherer.Mgrs.Input.Mu.Lock() // Ensure instances don't disappear mid-read
	for _, instance := range gatherer.Mgrs.Input.Instances {
		if instance.Listener == nil {
			continue
		}

		m1 := instance.Listener.CollectMetrics(interval)
		gatherer.Registry.Add(timeSlice, m1)
	}
	gatherer.Mgrs.Input.Mu.Unlock()

	// Receive Protocol registry (gap/reboot/request-sent counters, shared
	// across every remote's Protocol instance regardless of which listener
	// socket carried its traffic)
	if registry := gatherer.Mgrs.Input.Registry(); registry != nil {
		protoMetrics := registry.CollectMetrics(interval)
		gatherer.Registry.Add(timeSlice, protoMetrics)
	}

	// Output
	// Inbox Queue
	queueMetrics := gatherer.Mgrs.Output.Queue.CollectMetrics(interval)
	gatherer.Registry.Add(timeSlice, queueMetrics)

	// Worker
	if gatherer.Mgrs.Output.Instance != nil && gatherer.Mgrs.Output.Instance.Worker != nil {
		workerMetrics := gatherer.Mgrs.Output.Instance.Worker.CollectMetrics(interval)
		gatherer.Registry.Add(timeSlice, workerMetrics)
	}
}

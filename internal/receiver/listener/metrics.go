package listener

import (
	"eventlink/internal/metrics"
	"sync/atomic"
	"time"
)

type MetricStorage struct {
	BusyNs         atomic.Uint64 // sum of ns spent doing anything
	ValidPackets   atomic.Uint64 // number of received packets that passed validation
	InvalidPackets atomic.Uint64 // number of received packets that failed validation
	SumNs          atomic.Uint64 // sum of elapsed ns for all ops
	MaxNs          atomic.Uint64 // max observed op duration
}

// ProtocolMetricStorage tracks the Receive Protocol side effects §3.1's
// ProtocolMetrics names (gap count, reboot count, requests sent), plus a
// send-error counter for outbound RequestEvent writes that fail. Shared by
// every remote's Protocol instance through Registry.Metrics -- these are
// aggregate counts across all remotes seen by this registry, not per-remote.
type ProtocolMetricStorage struct {
	GapCount     atomic.Uint64 // event-error notifications received (permanent loss)
	EventsLost   atomic.Uint64 // sum of numLost across all gap notifications
	RebootCount  atomic.Uint64 // peer reboots detected via timestamp regression
	RequestsSent atomic.Uint64 // RequestEvent messages written to the wire
	SendErrors   atomic.Uint64 // RequestEvent writes that failed
}

// CollectMetrics reads and clears the registry's protocol-level counters.
func (r *Registry) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	gapCount := r.Metrics.GapCount.Swap(0)
	eventsLost := r.Metrics.EventsLost.Swap(0)
	rebootCount := r.Metrics.RebootCount.Swap(0)
	requestsSent := r.Metrics.RequestsSent.Swap(0)
	sendErrors := r.Metrics.SendErrors.Swap(0)

	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "gap_count",
			Description: "Event-error notifications received in the interval (permanent sequence loss)",
			Namespace:   r.Namespace,
			Value:       metrics.MetricValue{Raw: gapCount, Unit: "count", Interval: interval},
			Type:        metrics.Counter,
			Timestamp:   recordTime,
		},
		{
			Name:        "events_lost",
			Description: "Sum of reported lost-event counts across gap notifications in the interval",
			Namespace:   r.Namespace,
			Value:       metrics.MetricValue{Raw: eventsLost, Unit: "count", Interval: interval},
			Type:        metrics.Counter,
			Timestamp:   recordTime,
		},
		{
			Name:        "reboot_count",
			Description: "Peer reboots detected via timestamp regression in the interval",
			Namespace:   r.Namespace,
			Value:       metrics.MetricValue{Raw: rebootCount, Unit: "count", Interval: interval},
			Type:        metrics.Counter,
			Timestamp:   recordTime,
		},
		{
			Name:        "requests_sent",
			Description: "RequestEvent messages transmitted in the interval",
			Namespace:   r.Namespace,
			Value:       metrics.MetricValue{Raw: requestsSent, Unit: "count", Interval: interval},
			Type:        metrics.Counter,
			Timestamp:   recordTime,
		},
		{
			Name:        "request_send_errors",
			Description: "RequestEvent writes that failed in the interval",
			Namespace:   r.Namespace,
			Value:       metrics.MetricValue{Raw: sendErrors, Unit: "count", Interval: interval},
			Type:        metrics.Counter,
			Timestamp:   recordTime,
		},
	}
	return
}

func (instance *Instance) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	busyNs := instance.Metrics.BusyNs.Swap(0)
	valid := instance.Metrics.ValidPackets.Swap(0)
	invalid := instance.Metrics.InvalidPackets.Swap(0)
	sumNs := instance.Metrics.SumNs.Swap(0)
	maxNs := instance.Metrics.MaxNs.Swap(0)

	// Record read time
	recordTime := time.Now()

	// Percent worker was busy
	busyPct := (float64(busyNs) / float64(interval.Nanoseconds())) * 100

	total := valid + invalid
	var avgNs uint64
	if total > 0 {
		avgNs = sumNs / total
	}

	collection = []metrics.Metric{
		{
			Name:        "busy_time_percent",
			Description: "Total time spent doing anything in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      busyPct,
				Unit:     "%",
				Interval: interval,
			},
			Type:      metrics.Summary,
			Timestamp: recordTime,
		},
		{
			Name:        "valid_packets_total",
			Description: "Total packets that passed basic validation in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      valid,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "invalid_packets_total",
			Description: "Total packets that failed basic validation in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      invalid,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "total_packets",
			Description: "Total packets received in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      total,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "elapsed_time_sum_ns",
			Description: "Total time spent validating packets in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      sumNs,
				Unit:     "ns",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "elapsed_time_avg_ns",
			Description: "Average time spent validating packets in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      avgNs,
				Unit:     "ns",
				Interval: interval,
			},
			Type:      metrics.Summary,
			Timestamp: recordTime,
		},
		{
			Name:        "elapsed_time_max_ns",
			Description: "Maximum (seen) time spent validating packets in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      maxNs,
				Unit:     "ns",
				Interval: interval,
			},
			Type:      metrics.Summary,
			Timestamp: recordTime,
		},
	}
	return
}

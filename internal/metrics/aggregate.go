package metrics

import (
	"fmt"
	"strconv"
	"time"

	"eventlink/internal/calc"
	"eventlink/internal/global"
)

// Converts a metric's raw value into a float64 for aggregation. Raw values
// are produced by callers as various numeric types or, occasionally, a
// numeric string; anything else cannot be aggregated.
func toFloat64(raw interface{}) (value float64, err error) {
	switch v := raw.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int8:
		value = float64(v)
	case int16:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint8:
		value = float64(v)
	case uint16:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	case string:
		value, err = strconv.ParseFloat(v, 64)
		if err != nil {
			err = fmt.Errorf("metric value %q is not numeric: %w", v, err)
		}
	default:
		err = fmt.Errorf("metric value of type %T is not numeric", v)
	}
	return
}

// Combines every metric matching name/namespacePrefix/time window into a
// single summary value using aggType (one of global.MetricSum,
// global.MetricMin, global.MetricMax, global.MetricAvg,
// global.MetricTrimmedMean). Errors if nothing
// matches or if any matching value cannot be interpreted as numeric.
func (registry *Registry) Aggregate(aggType, name string, namespacePrefix []string, start, end time.Time) (result Metric, err error) {
	matches := registry.Search(name, namespacePrefix, start, end)
	if len(matches) == 0 {
		err = fmt.Errorf("no metrics found matching name %q under namespace %v", name, namespacePrefix)
		return
	}

	values := make([]float64, 0, len(matches))
	for _, metric := range matches {
		var value float64
		value, err = toFloat64(metric.Value.Raw)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	var aggregated float64
	switch aggType {
	case global.MetricSum:
		for _, value := range values {
			aggregated += value
		}
	case global.MetricMin:
		aggregated = values[0]
		for _, value := range values[1:] {
			if value < aggregated {
				aggregated = value
			}
		}
	case global.MetricMax:
		aggregated = values[0]
		for _, value := range values[1:] {
			if value > aggregated {
				aggregated = value
			}
		}
	case global.MetricAvg:
		for _, value := range values {
			aggregated += value
		}
		aggregated /= float64(len(values))
	case global.MetricTrimmedMean:
		// Render-latency and similar metrics occasionally spike from GC
		// pauses or a slow output sink; trim the extremes before averaging
		// so one outlier sample doesn't dominate the summary.
		rounded := make([]uint64, len(values))
		for i, value := range values {
			rounded[i] = uint64(value)
		}
		aggregated = float64(calc.TrimmedMeanUint64(rounded, global.MetricTrimmedMeanTrimPercent))
	default:
		err = fmt.Errorf("unknown aggregation type %q", aggType)
		return
	}

	latest := matches[0]
	for _, metric := range matches {
		if metric.Timestamp.After(latest.Timestamp) {
			latest = metric
		}
	}

	result = Metric{
		Name:        latest.Name,
		Description: latest.Description,
		Namespace:   latest.Namespace,
		Type:        latest.Type,
		Timestamp:   latest.Timestamp,
		Value: MetricValue{
			Raw:      aggregated,
			Unit:     latest.Value.Unit,
			Interval: latest.Value.Interval,
		},
	}
	return
}

package file

import "sync/atomic"

type MetricStorage struct {
	LinesWritten atomic.Uint64 // number of lines written to the sink
}

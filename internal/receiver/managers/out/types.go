package out

import (
	"context"
	"sync"

	"eventlink/internal/queue/mpmc"
	"eventlink/internal/receiver/delivery"
	"eventlink/internal/receiver/output"
)

type InstanceManager struct {
	Queue    *mpmc.Queue[delivery.Item] // Shared queue between listener callbacks and output workers
	Instance *OutputInstance            // Worker for writing output
	ctx      context.Context
}

type OutputInstance struct {
	Worker *output.Instance   // Individual output worker
	wg     sync.WaitGroup     // Waiter for instance
	cancel context.CancelFunc // Stop instance
}

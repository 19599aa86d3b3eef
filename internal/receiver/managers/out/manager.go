// Manages output writer worker instance
package out

import (
	"context"

	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"eventlink/internal/queue/mpmc"
	"eventlink/internal/receiver/delivery"
)

// Creates new instance manager with shared queue (between listener callbacks and output workers)
func NewInstanceManager(ctx context.Context, size int) (new *InstanceManager, err error) {
	// Add log context
	ctx = logctx.AppendCtxTag(ctx, global.NSmOutput)
	defer func() { ctx = logctx.RemoveLastCtxTag(ctx) }()

	outQueue, err := mpmc.New[delivery.Item](logctx.GetTagList(ctx), uint64(size), 2, global.DefaultMaxQueueSize)
	if err != nil {
		return
	}

	new = &InstanceManager{
		Instance: &OutputInstance{},
		Queue:    outQueue,
		ctx:      ctx,
	}
	return
}

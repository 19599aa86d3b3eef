// Handles rendering delivered events and writing them to configured output destinations (file, stdout, journald)
package output

import (
	"context"
	"runtime/debug"
	"time"

	"eventlink/internal/atomics"
	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"eventlink/internal/queue/mpmc"
	"eventlink/internal/receiver/delivery"
)

// Creates new worker instance
func New(namespace []string, inQueue *mpmc.Queue[delivery.Item]) (new *Instance) {
	new = &Instance{
		Namespace: append(namespace, global.NSWorker),
		Inbox:     inQueue,
		Metrics:   MetricStorage{},
	}
	return
}

// Drain the inbox, render each item, and dispatch to every configured sink
func (instance *Instance) Run(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	popCh := make(chan delivery.Item, 1)

	go func() {
		for {
			item, ok := instance.Inbox.Pop(ctx)
			if !ok {
				select {
				case <-ctx.Done():
					return
				default:
					continue
				}
			}
			popCh <- item
			// Subtract data size from sum
			size := itemSize(item)
			atomics.Subtract(&instance.Inbox.ActiveWrite.Load().Metrics.Bytes, uint64(size), 4)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if instance.FileMod != nil {
				instance.FileMod.FlushBuffer()
			}
			return
		case <-ticker.C:
			if instance.FileMod != nil {
				// Periodic flush of file output event buffer
				// Buffer might never fill and flush if we don't get enough messages
				instance.FileMod.FlushBuffer()
			}
		case item, ok := <-popCh:
			func() {
				// Record panics and continue output
				defer func() {
					if fatalError := recover(); fatalError != nil {
						stack := debug.Stack()
						logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
							"panic in output worker thread: %v\n%s", fatalError, stack)
					}
				}()

				if !ok {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
						"failed to retrieve waiting delivery item from output queue\n")
					return
				}
				instance.Metrics.ReceivedMessages.Add(1)

				rec := render(item)

				n, err := instance.FileMod.Write(ctx, rec)
				if err != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"Failed to write event to file output: %v\n", err)
				}
				instance.Metrics.SuccessfulFileWrites.Add(uint64(n))

				n, err = instance.JrnlMod.Write(ctx, rec)
				if err != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"Failed to write event to journald output: %v\n", err)
				}
				instance.Metrics.SuccessfulJrnlWrites.Add(uint64(n))

				n, err = instance.RemoteMod.Write(ctx, rec)
				if err != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"Failed to write event to remote collector output: %v\n", err)
				}
				instance.Metrics.SuccessfulRemoteWrites.Add(uint64(n))

				n, err = instance.BeatsMod.Write(ctx, rec)
				if err != nil {
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
						"Failed to write event to beats output: %v\n", err)
				}
				instance.Metrics.SuccessfulBeatsWrites.Add(uint64(n))
			}()
		}
	}
}

func itemSize(item delivery.Item) int {
	if item.IsUnknown {
		return 16
	}
	return 64
}

// Reads packets from the network and demultiplexes them into the Receive
// Protocol. Framing is deliberately minimal: system_id, component_id, and
// message id precede the already-specified mavwire payload. A production
// deployment would sit this behind a full MAVLink frame codec (CRC,
// signing, multi-message frames); that framing layer is explicitly an
// external collaborator's concern (see pkg/mavwire's package doc), so this
// listener only implements the narrow slice needed to demultiplex the four
// message ids this repository understands.
package listener

import (
	"context"
	"errors"
	"net"
	"runtime/debug"
	"time"

	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"eventlink/pkg/eventproto"
	"eventlink/pkg/mavwire"
)

// frameHeaderLen is system_id + component_id + msg_id preceding the
// mavwire payload.
const frameHeaderLen = 3

func New(namespace []string, conn *net.UDPConn, registry *Registry) (new *Instance) {
	new = &Instance{
		Namespace: append(namespace, global.NSListen),
		conn:      conn,
		registry:  registry,
		minLen:    frameHeaderLen,
		Metrics:   MetricStorage{},
	}
	return
}

func (instance *Instance) Run(ctx context.Context) {
	buffer := make([]byte, 65535)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			defer func() {
				if fatalError := recover(); fatalError != nil {
					stack := debug.Stack()
					logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "panic in listener worker thread: %v\n%s", fatalError, stack)
				}
			}()

			endIndex, remoteAddr, err := instance.conn.ReadFromUDP(buffer)
			start := time.Now()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if errors.Is(err, net.ErrClosed) {
					return
				}
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "Failed reading data from socket: %v\n", err)
				instance.Metrics.BusyNs.Add(uint64(time.Since(start)))
				return
			}

			payload := buffer[:endIndex]
			if len(payload) < instance.minLen {
				instance.Metrics.InvalidPackets.Add(1)
				instance.Metrics.BusyNs.Add(uint64(time.Since(start)))
				logctx.LogEvent(ctx, global.VerbosityProgress, global.WarnLog, "Received undersized frame from %s (%d bytes)\n", remoteAddr.String(), len(payload))
				return
			}

			remote := eventproto.RemotePeer{SystemID: payload[0], ComponentID: payload[1]}
			env := mavwire.Envelope{SystemID: payload[0], ComponentID: payload[1], MsgID: payload[2]}
			body := append([]byte(nil), payload[frameHeaderLen:endIndex]...)

			proto := instance.registry.Get(remote, instance.conn, remoteAddr)
			if err := proto.ProcessMessage(env, body); err != nil {
				instance.Metrics.InvalidPackets.Add(1)
				instance.Metrics.BusyNs.Add(uint64(time.Since(start)))
				logctx.LogEvent(ctx, global.VerbosityProgress, global.WarnLog, "Rejected frame from %s: %v\n", remoteAddr.String(), err)
				return
			}

			durNs := time.Since(start).Nanoseconds()
			instance.Metrics.SumNs.Add(uint64(durNs))
			oldMax := int64(instance.Metrics.MaxNs.Load())
			for {
				if durNs > oldMax {
					if instance.Metrics.MaxNs.CompareAndSwap(uint64(oldMax), uint64(durNs)) {
						break
					}
					oldMax = int64(instance.Metrics.MaxNs.Load())
				} else {
					break
				}
			}
			instance.Metrics.ValidPackets.Add(1)
			instance.Metrics.BusyNs.Add(uint64(time.Since(start)))
		}()
	}
}

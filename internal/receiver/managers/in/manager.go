// Manages packet listener worker instances
package in

import (
	"context"
	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"eventlink/internal/receiver/listener"
)

// Creates new instance manager
func NewInstanceManager(ctx context.Context, port int, registry *listener.Registry, minInsts, maxInsts int) (new *InstanceManager) {
	ctx = logctx.AppendCtxTag(ctx, global.NSmIngest)
	defer func() { ctx = logctx.RemoveLastCtxTag(ctx) }()

	new = &InstanceManager{
		Instances:    make(map[int]*Instance),
		MinInstCount: minInsts,
		MaxInstCount: maxInsts,
		port:         port,
		registry:     registry,
		ctx:          ctx,
	}
	return
}

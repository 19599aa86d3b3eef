package in

import (
	"context"
	"net"
	"eventlink/internal/receiver/listener"
	"sync"
)

type InstanceManager struct {
	Mu           sync.Mutex        // For scaling operations
	nextID       int               // Next free ID for new pair
	Instances    map[int]*Instance // Existing running instances
	MinInstCount int               // Minimum number of instances at any one time
	MaxInstCount int               // Maximum number of instances at any one time
	port         int               // Network listen port
	registry     *listener.Registry
	ctx          context.Context
}

// Registry returns the shared protocol registry every listener Instance
// dispatches into, so the metrics gatherer can read its gap/reboot/request
// counters alongside the per-socket listener metrics.
func (manager *InstanceManager) Registry() *listener.Registry {
	return manager.registry
}

type Instance struct {
	Listener *listener.Instance // Network packet reader
	conn     *net.UDPConn       // Socket (reused) for the listener

	wg     sync.WaitGroup     // Waiter for instance
	cancel context.CancelFunc // Stop instance
}

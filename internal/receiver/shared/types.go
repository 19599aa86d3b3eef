package shared

import (
	"eventlink/internal/receiver/managers/in"
	"eventlink/internal/receiver/managers/out"
)

// Pipeline component trackers
type Managers struct {
	Input  *in.InstanceManager
	Output *out.InstanceManager
}

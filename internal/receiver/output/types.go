package output

import (
	"eventlink/internal/externalio/beats"
	"eventlink/internal/externalio/file"
	"eventlink/internal/externalio/journald"
	"eventlink/internal/externalio/remote"
	"eventlink/internal/queue/mpmc"
	"eventlink/internal/receiver/delivery"
)

type Instance struct {
	Namespace []string
	FileMod   *file.OutModule
	JrnlMod   *journald.OutModule
	RemoteMod *remote.OutModule
	BeatsMod  *beats.OutModule
	Inbox     *mpmc.Queue[delivery.Item]
	Metrics   MetricStorage
}

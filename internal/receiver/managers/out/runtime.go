package out

import (
	"context"
	"fmt"

	"eventlink/internal/externalio/beats"
	"eventlink/internal/externalio/file"
	"eventlink/internal/externalio/journald"
	"eventlink/internal/externalio/remote"
	"eventlink/internal/global"
	"eventlink/internal/logctx"
	"eventlink/internal/receiver/output"
)

// Create and start new output instance. filePath opens a batched file sink;
// when filePath is empty and stdoutEnabled is set, the same batched sink
// writes to the process's stdout instead. journalEndpoint, when non-empty,
// enables forwarding to systemd-journal-remote. remoteEndpoint, when
// non-empty, enables forwarding events sealed under remoteCollectorPub to an
// upstream collector over UDP; an empty remoteCollectorPub is accepted only
// if an encryption key was installed earlier. beatsEndpoint, when non-empty, enables
// forwarding to a Logstash/Beats collector over lumberjack.
func (manager *InstanceManager) AddInstance(filePath string, stdoutEnabled bool, journalEndpoint string, remoteEndpoint string, remoteCollectorPub []byte, beatsEndpoint string) (err error) {
	if filePath == "" && !stdoutEnabled && journalEndpoint == "" && remoteEndpoint == "" && beatsEndpoint == "" {
		err = fmt.Errorf("no outputs enabled/configured")
		return
	}

	// Create new context for output instance
	workerCtx, cancelInstance := context.WithCancel(context.Background())
	workerCtx = context.WithValue(workerCtx, global.LoggerKey, logctx.GetLogger(manager.ctx))

	instance := &OutputInstance{
		Worker: output.New(logctx.GetTagList(manager.ctx), manager.Queue),
		cancel: cancelInstance,
	}

	manager.Instance = instance

	// Add outputs
	switch {
	case filePath != "":
		instance.Worker.FileMod, err = file.NewOutput(filePath)
		if err != nil {
			return
		}
	case stdoutEnabled:
		instance.Worker.FileMod = file.NewStdout()
	}

	if journalEndpoint != "" {
		instance.Worker.JrnlMod, err = journald.NewOutput(journalEndpoint)
		if err != nil {
			err = fmt.Errorf("failed to reach journald-remote endpoint: %v", err)
			return
		}
	}

	if remoteEndpoint != "" {
		instance.Worker.RemoteMod, err = remote.NewOutput(remoteEndpoint, remoteCollectorPub)
		if err != nil {
			err = fmt.Errorf("failed to reach remote collector endpoint: %v", err)
			return
		}
	}

	if beatsEndpoint != "" {
		instance.Worker.BeatsMod, err = beats.NewOutput(beatsEndpoint)
		if err != nil {
			err = fmt.Errorf("failed to reach beats endpoint: %v", err)
			return
		}
	}

	// Start worker
	instance.wg.Add(1)
	go func() {
		defer instance.wg.Done()
		workerCtx := logctx.OverwriteCtxTag(workerCtx, instance.Worker.Namespace)
		instance.Worker.Run(workerCtx)
	}()
	return
}

// Shutdown existing output instance
func (manager *InstanceManager) RemoveInstance() {
	if manager.Instance == nil {
		return
	}
	if manager.Instance.cancel != nil {
		manager.Instance.cancel()
	}
	manager.Instance.wg.Wait()

	if manager.Instance.Worker.FileMod != nil {
		manager.Instance.Worker.FileMod.Shutdown()
	}
	if manager.Instance.Worker.JrnlMod != nil {
		manager.Instance.Worker.JrnlMod.Shutdown()
	}
	if manager.Instance.Worker.RemoteMod != nil {
		manager.Instance.Worker.RemoteMod.Shutdown()
	}
	if manager.Instance.Worker.BeatsMod != nil {
		manager.Instance.Worker.BeatsMod.Shutdown()
	}
}

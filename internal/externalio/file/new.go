package file

import (
	"io"
	"os"
)

// nopCloser wraps an io.Writer that must never be closed by the sink that
// owns it -- os.Stdout belongs to the process, not to this module.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Creates new file output module. Returns nil nil if no path.
func NewOutput(filePath string) (module *OutModule, err error) {
	if filePath == "" {
		return
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return
	}

	module = &OutModule{
		sink:        f,
		batchBuffer: &[]string{},
	}
	return
}

// Creates a new output module that writes to the process's stdout.
func NewStdout() *OutModule {
	return &OutModule{
		sink:        nopCloser{os.Stdout},
		batchBuffer: &[]string{},
	}
}

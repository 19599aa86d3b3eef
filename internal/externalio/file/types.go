// Package file implements a batched, timestamp-sorted line sink used for
// both the file and stdout outputs -- the only difference between the two
// is which io.WriteCloser backs the OutModule.
package file

import "io"

type OutModule struct {
	sink        io.WriteCloser
	batchBuffer *[]string
}

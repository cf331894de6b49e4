package decode

import (
	"encoding/binary"
	"os"

	"github.com/samcharles93/detok/internal/logger"
)

// ReadIDFile reads a file holding a flat array of little-endian uint16 ids
// with no header or padding. A trailing odd byte is dropped.
//
// Unlike the line-oriented path, a file that cannot be opened does not
// abort the run: the error is reported on the diagnostic channel and the
// file decodes as an empty id sequence. See DESIGN.md for why the
// divergence is kept.
func ReadIDFile(path string, log logger.Logger) []int {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("unable to open id file, treating as empty", "path", path, "error", err)
		return nil
	}

	n := len(data) / 2
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = int(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return ids
}

package outfile

import (
	"bytes"

	"github.com/natefinch/atomic"
)

// WriteRenderedFile writes out to outPath, always overwriting any existing
// file. The write is atomic so a failed render never leaves a truncated
// output behind.
func WriteRenderedFile(outPath string, out []byte) error {
	return atomic.WriteFile(outPath, bytes.NewReader(out))
}

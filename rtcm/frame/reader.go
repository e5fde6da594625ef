package frame

import (
	"errors"
	"io"

	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
)

// DefaultBlockSize is the size of the reads made by a Reader.
const DefaultBlockSize = 4096

// Reader gets message frames from an io.Reader.
type Reader struct {
	source    io.Reader
	extractor *Extractor
	block     []byte
	eof       bool
}

// NewReader creates a Reader that reads from source in blocks of
// DefaultBlockSize bytes.
func NewReader(source io.Reader) *Reader {
	return &Reader{
		source:    source,
		extractor: NewExtractor(),
		block:     make([]byte, DefaultBlockSize),
	}
}

// Extractor gives access to the underlying extractor, for example to find
// out how many non-RTCM bytes have been skipped.
func (r *Reader) Extractor() *Extractor {
	return r.extractor
}

// Next returns the next valid message frame.  A *ChecksumError is
// returned for each frame that fails the CRC check and the caller can
// carry on calling Next.  At the end of the input, a frame that can't be
// completed is treated as a false start and the scan carries on from the
// byte after its 0xd3.  When nothing more can be found, what's left is
// discarded and Next returns io.EOF.  Any other read error is returned
// as it is.
func (r *Reader) Next() (*RawFrame, error) {
	for {
		frame, err := r.extractor.Next()
		if err == nil {
			return frame, nil
		}
		if !errors.Is(err, rtcmerr.ErrNeedMoreData) {
			return nil, err
		}

		if r.eof {
			if r.extractor.Resync() {
				continue
			}
			r.extractor.Drain()
			return nil, io.EOF
		}

		n, readErr := r.source.Read(r.block)
		if n > 0 {
			r.extractor.Append(r.block[:n])
		}
		if readErr != nil {
			if readErr != io.EOF {
				return nil, readErr
			}
			r.eof = true
		}
	}
}

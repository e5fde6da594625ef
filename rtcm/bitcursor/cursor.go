// The bitcursor package reads bit fields from a byte buffer.  RTCM3
// messages are tightly packed: fields are any number of bits long and
// don't line up with byte boundaries.  A Cursor tracks the position of
// the next unread bit, so each decoding step picks up where the last
// one finished:
//
//	c := bitcursor.New(payload)
//	messageType, err := c.Read(12)
//	stationID, err := c.Read(12)
//
// Bits are numbered from the most significant bit of the first byte.
package bitcursor

import (
	"fmt"

	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
)

// MaxFieldLength is the longest field that one Read can return.
const MaxFieldLength = 64

// Cursor is a read position in a byte buffer.
type Cursor struct {
	buf   []byte
	pos   uint
	limit uint
}

// New creates a cursor at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf, limit: uint(len(buf)) * 8}
}

// NewAt creates a cursor at the given bit position in buf.
func NewAt(buf []byte, pos uint) *Cursor {
	c := New(buf)
	if pos > c.limit {
		pos = c.limit
	}
	c.pos = pos
	return c
}

// Position returns the number of the next bit to be read.
func (c *Cursor) Position() uint {
	return c.pos
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() uint {
	return c.limit - c.pos
}

// Read returns the next n bits as an unsigned value and advances the
// cursor.  n must be between 1 and 64.  If fewer than n bits remain, the
// cursor doesn't move and the error wraps rtcmerr.ErrOutOfRange.
func (c *Cursor) Read(n uint) (uint64, error) {
	if err := c.check(n); err != nil {
		return 0, err
	}

	var value uint64
	pos := c.pos
	end := c.pos + n
	for pos < end {
		// Take as many bits as possible from the current byte.
		offset := pos % 8
		take := 8 - offset
		if take > end-pos {
			take = end - pos
		}
		b := uint64(c.buf[pos/8])
		bits := (b >> (8 - offset - take)) & (1<<take - 1)
		value = value<<take | bits
		pos += take
	}

	c.pos = end
	return value, nil
}

// ReadSigned returns the next n bits as a two's complement signed value
// and advances the cursor.
func (c *Cursor) ReadSigned(n uint) (int64, error) {
	value, err := c.Read(n)
	if err != nil {
		return 0, err
	}

	// Shift the sign bit up to bit 63 and back down again to extend it.
	shift := MaxFieldLength - n
	return int64(value<<shift) >> shift, nil
}

// ReadBool reads one bit and returns true if it's set.
func (c *Cursor) ReadBool() (bool, error) {
	value, err := c.Read(1)
	if err != nil {
		return false, err
	}
	return value == 1, nil
}

// Skip advances the cursor over n bits without reading them.
func (c *Cursor) Skip(n uint) error {
	if c.Remaining() < n {
		return fmt.Errorf("%w - cannot skip %d bits at position %d, %d left",
			rtcmerr.ErrOutOfRange, n, c.pos, c.Remaining())
	}
	c.pos += n
	return nil
}

// check fails if a read of n bits is not possible.
func (c *Cursor) check(n uint) error {
	if n == 0 || n > MaxFieldLength {
		return fmt.Errorf("%w - field length %d is not between 1 and %d",
			rtcmerr.ErrOutOfRange, n, MaxFieldLength)
	}
	if c.Remaining() < n {
		return fmt.Errorf("%w - want %d bits at position %d, %d left",
			rtcmerr.ErrOutOfRange, n, c.pos, c.Remaining())
	}
	return nil
}

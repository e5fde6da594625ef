// The frame package finds RTCM3 message frames in a stream of bytes.
//
// A message frame is a 3-byte leader, an embedded message and a 3-byte
// CRC.  The leader is the start of message byte 0xd3, six reserved bits
// which must be zero and a 10-bit message length.  The embedded message
// starts with a 12-bit message type.  The CRC is a CRC-24Q checksum of the
// leader and the embedded message.
//
// The stream may contain other data (NMEA, UBX etc) between the RTCM3
// frames, and the 0xd3 byte can appear anywhere, so finding a 0xd3 doesn't
// guarantee the start of a message frame.  We only know that we have one
// when the CRC check passes.
package frame

import (
	"bytes"
	"fmt"

	"github.com/goblimey/go-crc24q/crc24q"

	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// State is the state of the Extractor.
type State int

const (
	// Scanning means looking for the start of a frame.
	Scanning State = iota
	// LengthKnown means that the leader has been read and the extractor is
	// waiting for the rest of the frame.
	LengthKnown
	// Verifying means that the whole frame is buffered and its CRC is
	// about to be checked.
	Verifying
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "Scanning"
	case LengthKnown:
		return "LengthKnown"
	case Verifying:
		return "Verifying"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RawFrame is a complete RTCM3 message frame.
type RawFrame struct {
	// Data is the frame - leader, embedded message and CRC.
	Data []byte
	// MessageType is the type of the embedded message.
	MessageType int
	// Checksum is the CRC at the end of the frame.
	Checksum uint32
	// Valid is true if the checksum matches the frame.
	Valid bool
}

// Payload returns the embedded message.
func (f *RawFrame) Payload() []byte {
	return f.Data[utils.LeaderLengthBytes : len(f.Data)-utils.CRCLengthBytes]
}

// ChecksumError is returned when the CRC at the end of a message frame
// doesn't match the frame.  It wraps rtcmerr.ErrChecksumFailure.
type ChecksumError struct {
	MessageType int
	Length      uint
	Given       uint32
	Computed    uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf(
		"CRC check failed on message type %d, length 0x%x - given %06x, calculated %06x",
		e.MessageType, e.Length, e.Given, e.Computed)
}

func (e *ChecksumError) Unwrap() error {
	return rtcmerr.ErrChecksumFailure
}

// Extractor is a state machine that takes a stream of bytes in arbitrary
// chunks and produces verified message frames.
type Extractor struct {
	buf          []byte
	state        State
	length       int
	nonRTCMBytes int64
}

// NewExtractor creates an Extractor with an empty buffer.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Append adds data to the end of the buffer.
func (e *Extractor) Append(data []byte) {
	e.buf = append(e.buf, data...)
}

// State returns the current state.
func (e *Extractor) State() State {
	return e.state
}

// Buffered returns the number of bytes waiting to be processed.
func (e *Extractor) Buffered() int {
	return len(e.buf)
}

// NonRTCMBytes returns the number of bytes discarded so far because they
// were not part of a valid message frame.
func (e *Extractor) NonRTCMBytes() int64 {
	return e.nonRTCMBytes
}

// Drain discards anything left in the buffer, for use at the end of the
// input.  The bytes are counted as non-RTCM.  It returns the number of
// bytes discarded.
func (e *Extractor) Drain() int {
	n := len(e.buf)
	e.discard(n)
	e.state = Scanning
	return n
}

// Resync gives up on a frame whose length is known but which is not all
// in the buffer.  The first byte is discarded and the extractor goes back
// to scanning.  At the end of the input the rest of the frame will never
// arrive, so the 0xd3 was probably just part of some other data and a real
// frame may start inside the bytes it claimed.  The result is false if
// there was no such frame.
func (e *Extractor) Resync() bool {
	if e.state != LengthKnown {
		return false
	}
	e.discard(1)
	e.state = Scanning
	return true
}

// Next returns the next valid message frame in the buffer.  If the buffer
// doesn't yet hold a complete frame it returns rtcmerr.ErrNeedMoreData and
// the caller should Append some more data and try again.  Any bytes before
// the frame that can't be part of a frame are discarded.  If a frame fails
// the CRC check, its first byte is discarded, the extractor goes back to
// scanning and Next returns a *ChecksumError.
func (e *Extractor) Next() (*RawFrame, error) {
	for {
		switch e.state {

		case Scanning:
			i := bytes.IndexByte(e.buf, utils.StartOfMessageFrame)
			if i < 0 {
				e.discard(len(e.buf))
				return nil, rtcmerr.ErrNeedMoreData
			}
			e.discard(i)
			if len(e.buf) < utils.LeaderLengthBytes {
				return nil, rtcmerr.ErrNeedMoreData
			}
			// The six bits after the 0xd3 must be zero and the length must
			// not be.  If not, the 0xd3 is just part of some other data.
			length := (int(e.buf[1])<<8 | int(e.buf[2])) & utils.MaxMessageLength
			if e.buf[1]&0xfc != 0 || length == 0 {
				e.discard(1)
				continue
			}
			e.length = length
			e.state = LengthKnown

		case LengthKnown:
			if len(e.buf) < e.frameLength() {
				return nil, rtcmerr.ErrNeedMoreData
			}
			e.state = Verifying

		case Verifying:
			frameLength := e.frameLength()
			data := e.buf[:frameLength]
			startOfCRC := frameLength - utils.CRCLengthBytes
			given := uint32(data[startOfCRC])<<16 |
				uint32(data[startOfCRC+1])<<8 |
				uint32(data[startOfCRC+2])
			messageType := getMessageType(data)

			newCRC := crc24q.Hash(data[:startOfCRC])
			if crc24q.HiByte(newCRC) != data[startOfCRC] ||
				crc24q.MiByte(newCRC) != data[startOfCRC+1] ||
				crc24q.LoByte(newCRC) != data[startOfCRC+2] {

				computed := uint32(crc24q.HiByte(newCRC))<<16 |
					uint32(crc24q.MiByte(newCRC))<<8 |
					uint32(crc24q.LoByte(newCRC))
				e.discard(1)
				e.state = Scanning
				return nil, &ChecksumError{
					MessageType: messageType,
					Length:      uint(e.length),
					Given:       given,
					Computed:    computed,
				}
			}

			frame := RawFrame{
				Data:        append([]byte(nil), data...),
				MessageType: messageType,
				Checksum:    given,
				Valid:       true,
			}
			e.buf = e.buf[frameLength:]
			e.state = Scanning
			return &frame, nil
		}
	}
}

func (e *Extractor) frameLength() int {
	return utils.LeaderLengthBytes + e.length + utils.CRCLengthBytes
}

// discard drops n bytes from the front of the buffer and counts them as
// non-RTCM.
func (e *Extractor) discard(n int) {
	e.nonRTCMBytes += int64(n)
	e.buf = e.buf[n:]
	if len(e.buf) == 0 {
		e.buf = nil
	}
}

// getMessageType returns the 12-bit message type at the start of the
// embedded message.  A one-byte message only has room for the top 8 bits.
func getMessageType(frame []byte) int {
	switch {
	case len(frame) < 4:
		return 0
	case len(frame) < 5:
		return int(frame[3]) << 4
	default:
		return int(frame[3])<<4 | int(frame[4]>>4)
	}
}

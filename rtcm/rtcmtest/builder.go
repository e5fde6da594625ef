// The rtcmtest package provides RTCM3 test fixtures: real message frames
// captured from receivers and builders that produce synthetic messages
// with chosen field values.
package rtcmtest

import (
	"github.com/goblimey/go-crc24q/crc24q"

	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
)

// BitWriter packs fields into a byte slice, most significant bit first.
type BitWriter struct {
	buf []byte
	pos uint
}

// Write appends the bottom n bits of value.
func (w *BitWriter) Write(value uint64, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		if w.pos%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if (value>>uint(i))&1 == 1 {
			w.buf[w.pos/8] |= 0x80 >> (w.pos % 8)
		}
		w.pos++
	}
}

// WriteSigned appends value as an n-bit two's complement number.
func (w *BitWriter) WriteSigned(value int64, n uint) {
	w.Write(uint64(value), n)
}

// WriteBool appends one bit, 1 for true.
func (w *BitWriter) WriteBool(b bool) {
	if b {
		w.Write(1, 1)
	} else {
		w.Write(0, 1)
	}
}

// PadTo appends zero bits until the writer holds n bytes.
func (w *BitWriter) PadTo(n int) {
	for len(w.buf) < n {
		w.buf = append(w.buf, 0)
	}
	w.pos = uint(len(w.buf)) * 8
}

// Len returns the number of bits written.
func (w *BitWriter) Len() uint {
	return w.pos
}

// Bytes returns the packed fields.  The last byte is zero padded.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// Frame wraps a message in an RTCM3 message frame: the 0xd3 leader, the
// 10-bit length and a CRC-24Q checksum.
func Frame(payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+6)
	frame = append(frame, 0xd3, byte(len(payload)>>8)&0x03, byte(len(payload)))
	frame = append(frame, payload...)
	crc := crc24q.Hash(frame)
	frame = append(frame, crc24q.HiByte(crc), crc24q.MiByte(crc), crc24q.LoByte(crc))
	return frame
}

// Satellite holds the raw satellite cell fields of a synthetic MSM.
type Satellite struct {
	ID            uint
	RangeMillis   uint
	ExtendedInfo  uint
	RangeFraction uint
	RoughRate     int64
}

// Signal holds the raw signal cell fields of a synthetic MSM.
type Signal struct {
	SatelliteID     uint
	SignalID        uint
	FinePseudorange int64
	FinePhase       int64
	LockTime        uint
	HalfCycle       bool
	CNR             uint
	FineRate        int64
}

// MSM describes a synthetic Multiple Signal Message.  The satellite and
// signal masks are made from Satellites and SignalIDs, the cell mask from
// Signals.  The fields are written with the widths of the message type's
// variant.
type MSM struct {
	MessageType         int
	StationID           uint
	Epoch               uint
	MultipleMessage     bool
	IODS                uint
	SessionTransmitTime uint
	ClockSteering       uint
	ExternalClock       uint
	Smoothing           bool
	SmoothingInterval   uint
	Satellites          []Satellite
	SignalIDs           []uint
	Signals             []Signal
}

// Payload returns the message.  If the message type has no variant only
// the header is written.
func (m *MSM) Payload() []byte {
	var w BitWriter
	w.Write(uint64(m.MessageType), 12)
	w.Write(uint64(m.StationID), 12)
	w.Write(uint64(m.Epoch), 30)
	w.WriteBool(m.MultipleMessage)
	w.Write(uint64(m.IODS), 3)
	w.Write(uint64(m.SessionTransmitTime), 7)
	w.Write(uint64(m.ClockSteering), 2)
	w.Write(uint64(m.ExternalClock), 2)
	w.WriteBool(m.Smoothing)
	w.Write(uint64(m.SmoothingInterval), 3)

	var satMask uint64
	for _, s := range m.Satellites {
		satMask |= 1 << (64 - s.ID)
	}
	w.Write(satMask, 64)

	var sigMask uint64
	for _, id := range m.SignalIDs {
		sigMask |= 1 << (32 - id)
	}
	w.Write(sigMask, 32)

	// The cell mask and the signal cells are in satellite order and then
	// signal order, whatever order the caller gave.
	satellites := maskOrder(satMask, 64)
	signalIDs := maskOrder(sigMask, 32)
	cells := make([]Signal, 0, len(m.Signals))
	for _, satID := range satellites {
		for _, sigID := range signalIDs {
			cell, found := m.findSignal(satID, sigID)
			w.WriteBool(found)
			if found {
				cells = append(cells, cell)
			}
		}
	}

	variant, ok := msm.Lookup(m.MessageType)
	if !ok {
		return w.Bytes()
	}

	sats := make([]Satellite, 0, len(satellites))
	for _, id := range satellites {
		sats = append(sats, m.findSatellite(id))
	}

	for _, s := range sats {
		w.Write(uint64(s.RangeMillis), variant.RangeMillis)
	}
	if variant.ExtendedInfo > 0 {
		for _, s := range sats {
			w.Write(uint64(s.ExtendedInfo), variant.ExtendedInfo)
		}
	}
	for _, s := range sats {
		w.Write(uint64(s.RangeFraction), variant.RangeFraction)
	}
	if variant.RoughRate > 0 {
		for _, s := range sats {
			w.WriteSigned(s.RoughRate, variant.RoughRate)
		}
	}

	for _, c := range cells {
		w.WriteSigned(c.FinePseudorange, variant.FinePseudorange)
	}
	for _, c := range cells {
		w.WriteSigned(c.FinePhase, variant.FinePhase)
	}
	for _, c := range cells {
		w.Write(uint64(c.LockTime), variant.LockTime)
	}
	for _, c := range cells {
		w.WriteBool(c.HalfCycle)
	}
	for _, c := range cells {
		w.Write(uint64(c.CNR), variant.CNR)
	}
	if variant.FineRate > 0 {
		for _, c := range cells {
			w.WriteSigned(c.FineRate, variant.FineRate)
		}
	}

	return w.Bytes()
}

// Frame returns the message in a message frame.
func (m *MSM) Frame() []byte {
	return Frame(m.Payload())
}

func (m *MSM) findSignal(satID, sigID uint) (Signal, bool) {
	for _, s := range m.Signals {
		if s.SatelliteID == satID && s.SignalID == sigID {
			return s, true
		}
	}
	return Signal{}, false
}

func (m *MSM) findSatellite(id uint) Satellite {
	for _, s := range m.Satellites {
		if s.ID == id {
			return s
		}
	}
	return Satellite{ID: id}
}

// maskOrder returns the numbers of the set bits in a mask, counting the
// top bit as 1.
func maskOrder(mask uint64, width uint) []uint {
	var ids []uint
	for i := uint(1); i <= width; i++ {
		if mask&(1<<(width-i)) != 0 {
			ids = append(ids, i)
		}
	}
	return ids
}

// Message1005 returns a station position message.  The coordinates are in
// units of 0.1 mm.
func Message1005(stationID uint, x, y, z int64) []byte {
	var w BitWriter
	writeStation(&w, 1005, stationID, x, y, z)
	return w.Bytes()
}

// Message1006 returns a station position message with antenna height.  The
// coordinates and height are in units of 0.1 mm.
func Message1006(stationID uint, x, y, z int64, height uint) []byte {
	var w BitWriter
	writeStation(&w, 1006, stationID, x, y, z)
	w.Write(uint64(height), 16)
	return w.Bytes()
}

func writeStation(w *BitWriter, messageType int, stationID uint, x, y, z int64) {
	w.Write(uint64(messageType), 12)
	w.Write(uint64(stationID), 12)
	w.Write(0, 6) // ITRF realisation year.
	w.Write(0xe, 4)
	w.WriteSigned(x, 38)
	w.Write(0, 2)
	w.WriteSigned(y, 38)
	w.Write(0, 2)
	w.WriteSigned(z, 38)
}

// Ephemeris returns an ephemeris message of type 1019 (GPS), 1042 (BeiDou),
// 1045 or 1046 (Galileo) with the given satellite and week number.  The
// orbit fields are all zero.
func Ephemeris(messageType int, satellite, week uint) []byte {
	var w BitWriter
	w.Write(uint64(messageType), 12)
	w.Write(uint64(satellite), 6)
	switch messageType {
	case 1019:
		w.Write(uint64(week), 10)
		w.PadTo(61)
	case 1042:
		w.Write(uint64(week), 13)
		w.PadTo(64)
	case 1045:
		w.Write(uint64(week), 12)
		w.PadTo(62)
	default:
		w.Write(uint64(week), 12)
		w.PadTo(63)
	}
	return w.Bytes()
}

// The station package handles messages of type 1005 (base position) and
// 1006 (base position and antenna height).  The position goes into the
// APPROX POSITION XYZ line of the RINEX header and the height into the
// ANTENNA: DELTA H/E/N line.
package station

import (
	"fmt"
	"log/slog"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Lengths of the fields in the bit stream.
const lenMessageType = 12
const lenStationID = 12
const lenITRFRealisationYear = 6
const lenIgnoredBits1 = 4
const lenAntennaRef = 38
const lenIgnoredBits2 = 2
const lenIgnoredBits3 = 2
const lenAntennaHeight = 16

const lengthOf1005InBits = lenMessageType + lenStationID +
	lenITRFRealisationYear + lenIgnoredBits1 +
	lenAntennaRef + lenIgnoredBits2 + lenAntennaRef +
	lenIgnoredBits3 + lenAntennaRef

const lengthOf1006InBits = lengthOf1005InBits + lenAntennaHeight

// The antenna reference coordinates and the height are in units of
// 1/10,000 of a metre.
const scaleFactor = 0.0001

// Position contains a message of type 1005 or 1006 - antenna position and
// optionally its height.
type Position struct {
	// Some bits in the message are ignored by the RTKLIB decoder so
	// we're not sure what they are.  We just store them for display.

	// MessageType - uint12 - 1005 or 1006.
	MessageType int `json:"message_type,omitempty"`

	// StationID - uint12.
	StationID uint `json:"station_id,omitempty"`

	// Reserved for ITRF Realisaton Year - uint6.
	ITRFRealisationYear uint `json:"itrf_realisation_year,omitempty"`

	// Ignored1 represents the next four bits which are ignored.
	Ignored1 uint `json:"ignored1,omitempty"`

	// AntennaRefX is the antenna Reference Point coordinate X in ECEF - int38.
	AntennaRefX int64 `json:"antenna_ref_x,omitempty"`

	// Ignored2 represents the next two bits which are ignored.
	Ignored2 uint `json:"ignored2,omitempty"`

	// AntennaRefY is the antenna Reference Point coordinate Y in ECEF - int38.
	AntennaRefY int64 `json:"antenna_ref_y,omitempty"`

	// Ignored3 represents the next two bits which are ignored.
	Ignored3 uint `json:"ignored3,omitempty"`

	// AntennaRefZ is the antenna Reference Point coordinate Z in ECEF - int38.
	AntennaRefZ int64 `json:"antenna_ref_z,omitempty"`

	// AntennaHeight is the height of the antenna above the marker - uint16.
	// Only a 1006 carries it.
	AntennaHeight uint `json:"antenna_height,omitempty"`

	// logLevel is a slog-style logging level.
	logLevel slog.Level
}

// X returns the X coordinate in metres.
func (p *Position) X() float64 {
	return float64(p.AntennaRefX) * scaleFactor
}

// Y returns the Y coordinate in metres.
func (p *Position) Y() float64 {
	return float64(p.AntennaRefY) * scaleFactor
}

// Z returns the Z coordinate in metres.
func (p *Position) Z() float64 {
	return float64(p.AntennaRefZ) * scaleFactor
}

// Height returns the antenna height in metres, zero for a 1005.
func (p *Position) Height() float64 {
	return float64(p.AntennaHeight) * scaleFactor
}

// String returns a text version of the position.
func (p *Position) String() string {
	display := fmt.Sprintf("stationID %d, ITRF realisation year %d,",
		p.StationID, p.ITRFRealisationYear)

	if p.logLevel == slog.LevelDebug {
		display += fmt.Sprintf(" unknown bits %04b,\n", p.Ignored1)
		display += fmt.Sprintf("x %d, unknown bits %02b, y %d, unknown bits %02b, z %d,\n",
			p.AntennaRefX, p.Ignored2, p.AntennaRefY, p.Ignored3, p.AntennaRefZ)
	} else {
		display += "\n"
	}

	display += fmt.Sprintf("ECEF coords in metres (%.4f, %.4f, %.4f)\n",
		p.X(), p.Y(), p.Z())

	if p.MessageType == utils.MessageType1006 {
		display += fmt.Sprintf("Antenna height %.4f\n", p.Height())
	}
	return display
}

// GetPosition decodes the embedded message of a 1005 or 1006 frame.
func GetPosition(bitStream []byte, logLevel slog.Level) (*Position, error) {
	c := bitcursor.New(bitStream)

	mt, err := c.Read(lenMessageType)
	if err != nil {
		return nil, fmt.Errorf("%w - expected %d bits in a station position message, got %d",
			rtcmerr.ErrOutOfRange, lengthOf1005InBits, len(bitStream)*8)
	}
	messageType := int(mt)

	var want uint
	switch messageType {
	case utils.MessageType1005:
		want = lengthOf1005InBits
	case utils.MessageType1006:
		want = lengthOf1006InBits
	default:
		return nil, fmt.Errorf("%w - message type %d is not a station position",
			rtcmerr.ErrUnsupportedMessage, messageType)
	}

	// Check the length once so that the reads below can't fail.
	if uint(len(bitStream)*8) < want {
		return nil, fmt.Errorf("%w - expected %d bits in a message type %d, got %d",
			rtcmerr.ErrOutOfRange, want, messageType, len(bitStream)*8)
	}

	p := Position{MessageType: messageType, logLevel: logLevel}

	stationID, _ := c.Read(lenStationID)
	p.StationID = uint(stationID)
	year, _ := c.Read(lenITRFRealisationYear)
	p.ITRFRealisationYear = uint(year)
	ignored1, _ := c.Read(lenIgnoredBits1)
	p.Ignored1 = uint(ignored1)
	p.AntennaRefX, _ = c.ReadSigned(lenAntennaRef)
	ignored2, _ := c.Read(lenIgnoredBits2)
	p.Ignored2 = uint(ignored2)
	p.AntennaRefY, _ = c.ReadSigned(lenAntennaRef)
	ignored3, _ := c.Read(lenIgnoredBits3)
	p.Ignored3 = uint(ignored3)
	p.AntennaRefZ, _ = c.ReadSigned(lenAntennaRef)

	if messageType == utils.MessageType1006 {
		height, _ := c.Read(lenAntennaHeight)
		p.AntennaHeight = uint(height)
	}

	return &p, nil
}

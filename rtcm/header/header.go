// The header package handles a Multiple Signal Message (MSM) header.
package header

import (
	"fmt"
	"math/bits"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Header field widths in bits, in the order they appear.
const (
	lenMessageType                          = 12
	lenStationID                            = 12
	lenEpochTime                            = 30
	lenMultipleMessageFlag                  = 1
	lenIssueOfDataStation                   = 3
	lenSessionTransmissionTime              = 7
	lenClockSteeringIndicator               = 2
	lenExternalClockIndicator               = 2
	lenGNSSDivergenceFreeSmoothingIndicator = 1
	lenGNSSSmoothingInterval                = 3
	lenSatelliteMask                        = 64
	lenSignalMask                           = 32
)

// maxLengthOfCellMask is the upper limit on nSat X nSig.
const maxLengthOfCellMask = 64

// minBitsInHeader is the size of the fixed part, everything except the
// cell mask.
const minBitsInHeader = lenMessageType + lenStationID + lenEpochTime +
	lenMultipleMessageFlag + lenIssueOfDataStation + lenSessionTransmissionTime +
	lenClockSteeringIndicator + lenExternalClockIndicator +
	lenGNSSDivergenceFreeSmoothingIndicator + lenGNSSSmoothingInterval +
	lenSatelliteMask + lenSignalMask

// Header is the decoded start of an MSM4, MSM5, MSM6 or MSM7 message.  The
// masks at the end say which satellites and signals the rest of the
// message carries.
type Header struct {
	// Variant gives the constellation, the MSM kind and the cell layout.
	Variant msm.Variant

	MessageType   int
	Constellation msm.Constellation
	StationID     uint

	// EpochTime is in milliseconds.  GPS and Galileo count from the start
	// of the GPS week (midnight at the start of Sunday, GPS time), BeiDou
	// from a week that starts 14 seconds later.  For GLONASS the top three
	// bits give the day and the rest the milliseconds into the day, Moscow
	// time.
	EpochTime uint

	// MultipleMessage is set when another MSM with the same constellation,
	// station and epoch time follows.
	MultipleMessage bool

	IssueOfDataStation                   uint
	SessionTransmissionTime              uint
	ClockSteeringIndicator               uint
	ExternalClockIndicator               uint
	GNSSDivergenceFreeSmoothingIndicator bool
	GNSSSmoothingInterval                uint

	// SatelliteMask has the top bit for satellite 1 and the bottom bit for
	// satellite 64.  A mask starting 0101 means satellites 2 and 4.
	SatelliteMask uint64

	// SignalMask has the top bit for signal 1 and the bottom bit for
	// signal 32.
	SignalMask uint32

	// CellMask is nSat X nSig bits, a row per observed satellite with a bit
	// for each observed signal.  With satellites {2, 4} and signals {2, 3}
	// where satellite 2 sent both signals and satellite 4 sent only signal
	// 3, the mask is 11 01.
	CellMask uint64

	// Satellites and Signals list the IDs set in the two masks, lowest
	// first.  For the example above {2, 4} and {2, 3}.
	Satellites []uint
	Signals    []uint

	// Cells is the cell mask unpacked into rows, {{t,t}, {f,t}} for the
	// example.
	Cells [][]bool

	// CellList has one entry for each set bit in the cell mask, in the
	// order that the signal cells appear in the message.
	CellList []Cell

	// NumSignalCells is len(CellList).
	NumSignalCells int
}

// Cell identifies one signal cell - the satellite and signal that it
// describes.
type Cell struct {
	// SatelliteIndex is the position of the satellite in Satellites.
	SatelliteIndex int
	// SignalIndex is the position of the signal in Signals.
	SignalIndex int
	SatelliteID uint
	SignalID    uint
}

// New creates a Header.
func New(
	messageType int,
	stationID uint,
	epochTime uint,
	multipleMessage bool,
	issueOfDataStation uint,
	sessionTransmissionTime uint,
	clockSteeringIndicator uint,
	externalClockIndicator uint,
	gnssDivergenceFreeSmoothingIndicator bool,
	gnssSmoothingInterval uint,
	satelliteMask uint64,
	signalMask uint32,
	cellMask uint64,
) *Header {

	variant, _ := msm.Lookup(messageType)

	satellites := getSatellites(satelliteMask)

	signals := getSignals(signalMask)

	cells := getCells(cellMask, len(satellites), len(signals))

	cellList := getCellList(cells, satellites, signals)

	header := Header{
		Variant:                              variant,
		MessageType:                          messageType,
		Constellation:                        msm.ConstellationForMessageType(messageType),
		StationID:                            stationID,
		EpochTime:                            epochTime,
		MultipleMessage:                      multipleMessage,
		IssueOfDataStation:                   issueOfDataStation,
		SessionTransmissionTime:              sessionTransmissionTime,
		ClockSteeringIndicator:               clockSteeringIndicator,
		ExternalClockIndicator:               externalClockIndicator,
		GNSSDivergenceFreeSmoothingIndicator: gnssDivergenceFreeSmoothingIndicator,
		GNSSSmoothingInterval:                gnssSmoothingInterval,
		SatelliteMask:                        satelliteMask,
		SignalMask:                           signalMask,
		CellMask:                             cellMask,
		Satellites:                           satellites,
		Signals:                              signals,
		Cells:                                cells,
		CellList:                             cellList,
		NumSignalCells:                       len(cellList),
	}

	return &header
}

// String returns a readable display of the header.
func (header *Header) String() string {

	line := fmt.Sprintf("type %d %s %s\n",
		header.MessageType, header.Constellation, header.getTitle())

	days := header.EpochTime / utils.MillisIn24Hours
	hours, minutes, seconds, millis := utils.ParseMilliseconds(header.EpochTime)
	line += fmt.Sprintf("epoch time %d (day %d %02d:%02d:%02d.%03d)\n",
		header.EpochTime, days, hours, minutes, seconds, millis)
	mode := "single"
	if header.MultipleMessage {
		mode = "multiple"
	}
	line += fmt.Sprintf("stationID %d, %s message, sequence number %d, session transmit time %d\n",
		header.StationID, mode, header.IssueOfDataStation, header.SessionTransmissionTime)
	line += fmt.Sprintf("clock steering %d, external clock %d\n",
		header.ClockSteeringIndicator, header.ExternalClockIndicator)
	line += fmt.Sprintf("divergence free smoothing %v, smoothing interval %d\n",
		header.GNSSDivergenceFreeSmoothingIndicator, header.GNSSSmoothingInterval)
	line += fmt.Sprintf("%d satellites, %d signal types, %d signals\n",
		len(header.Satellites), len(header.Signals), header.NumSignalCells)

	return line
}

// getTitle is a helper for String.  It gets the title for the display.
func (header *Header) getTitle() string {

	switch header.Variant.Kind {
	case msm.MSM4:
		return "Full Pseudoranges and PhaseRanges plus CNR"
	case msm.MSM5:
		return "Full Pseudoranges, PhaseRanges, PhaseRangeRate and CNR"
	case msm.MSM6:
		return "Full Pseudoranges and PhaseRanges plus CNR (high resolution)"
	case msm.MSM7:
		return "Full Pseudoranges, PhaseRanges, PhaseRangeRate and CNR (high resolution)"
	default:
		return "Unknown MSM type"
	}
}

// GetMSMHeader extracts the header from an MSM4, MSM5, MSM6 or MSM7
// message.  The cursor should be at the start of the message and is left
// at the start of the satellite data, which comes next.  Any failure is
// an error wrapping rtcmerr.ErrMalformedHeader.
func GetMSMHeader(c *bitcursor.Cursor) (*Header, error) {

	// A scan that doesn't fit in one message is split into several with
	// the same epoch time, all but the last with the multiple message flag.

	startLength := c.Remaining()

	// The message type decides everything else, so it's checked first.
	messageType, err := getMSMType(c)
	if err != nil {
		return nil, err
	}

	// The cell mask length isn't known yet, but the fixed part must be there.
	if startLength < minBitsInHeader {
		return nil, fmt.Errorf("%w - bitstream is too short for an MSM header - got %d bits, expected at least %d",
			rtcmerr.ErrMalformedHeader, startLength, minBitsInHeader)
	}

	// The length has been checked, so these reads can't fail.
	stationID := read(c, lenStationID)
	epochTime := read(c, lenEpochTime)
	multipleMessage := read(c, lenMultipleMessageFlag) == 1
	issueOfDataStation := read(c, lenIssueOfDataStation)
	sessionTransmissionTime := read(c, lenSessionTransmissionTime)
	clockSteeringIndicator := read(c, lenClockSteeringIndicator)
	externalClockIndicator := read(c, lenExternalClockIndicator)
	gnssDivergenceFreeSmoothingIndicator := read(c, lenGNSSDivergenceFreeSmoothingIndicator) == 1
	gnssSmoothingInterval := read(c, lenGNSSSmoothingInterval)
	satelliteMask, _ := c.Read(lenSatelliteMask)
	signalMask := uint32(read(c, lenSignalMask))

	// The cell mask comes last and is nSat X nSig bits.
	lenCellMaskBits := uint(bits.OnesCount64(satelliteMask) * bits.OnesCount32(signalMask))

	if lenCellMaskBits > maxLengthOfCellMask {
		return nil, fmt.Errorf("%w - cell mask is %d bits - expected <= %d",
			rtcmerr.ErrMalformedHeader, lenCellMaskBits, maxLengthOfCellMask)
	}

	var cellMask uint64
	if lenCellMaskBits > 0 {
		cellMask, err = c.Read(lenCellMaskBits)
		if err != nil {
			return nil, fmt.Errorf("%w - bitstream is too short for an MSM header with %d cell mask bits - got %d bits, expected at least %d",
				rtcmerr.ErrMalformedHeader, lenCellMaskBits, startLength, minBitsInHeader+lenCellMaskBits)
		}
	}

	header := New(messageType, stationID, epochTime, multipleMessage, issueOfDataStation,
		sessionTransmissionTime, clockSteeringIndicator, externalClockIndicator,
		gnssDivergenceFreeSmoothingIndicator, gnssSmoothingInterval,
		satelliteMask, signalMask, cellMask)

	return header, nil
}

// getMSMType is a helper function for GetMSMHeader.  It reads the message
// type and checks that it's an MSM4, MSM5, MSM6 or MSM7.
func getMSMType(c *bitcursor.Cursor) (int, error) {

	mt, err := c.Read(lenMessageType)
	if err != nil {
		return 0, fmt.Errorf("%w - bit stream is %d bits long, too short for a message type",
			rtcmerr.ErrMalformedHeader, c.Remaining())
	}

	messageType := int(mt)
	if _, ok := msm.Lookup(messageType); !ok {
		return 0, fmt.Errorf("%w - message type %d is not an MSM4, MSM5, MSM6 or MSM7",
			rtcmerr.ErrMalformedHeader, messageType)
	}

	return messageType, nil
}

// read gets a field that is known to be present.
func read(c *bitcursor.Cursor, n uint) uint {
	value, _ := c.Read(n)
	return uint(value)
}

// getSatellites lists the satellite IDs set in the mask.
func getSatellites(satelliteMask uint64) []uint {
	return maskIDs(satelliteMask, lenSatelliteMask)
}

// getSignals lists the signal IDs set in the mask.
func getSignals(signalMask uint32) []uint {
	return maskIDs(uint64(signalMask), lenSignalMask)
}

// maskIDs returns the 1-based positions of the bits set in a mask of the
// given width, counting from the most significant bit.
func maskIDs(mask uint64, width int) []uint {
	ids := make([]uint, 0, bits.OnesCount64(mask))
	for id := 1; id <= width; id++ {
		if mask&(1<<(width-id)) != 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

// getCells gets the cell mask as a slice of slices of bools, one row per
// satellite and one column per signal type.
func getCells(cellMask uint64, numberOfSatellites, numberOfSignalTypes int) [][]bool {
	// Mask 11 10 01 with three satellites and two signals gives
	// {{t,t}, {t,f}, {f,t}}.
	remaining := numberOfSatellites * numberOfSignalTypes
	cells := make([][]bool, numberOfSatellites)
	for sat := range cells {
		cells[sat] = make([]bool, numberOfSignalTypes)
		for sig := range cells[sat] {
			remaining--
			cells[sat][sig] = cellMask&(1<<remaining) != 0
		}
	}
	return cells
}

// getCellList lists the cells that are present, satellite by satellite.
func getCellList(cells [][]bool, satellites, signals []uint) []Cell {
	list := make([]Cell, 0)
	for i, row := range cells {
		for j, present := range row {
			if present {
				list = append(list, Cell{
					SatelliteIndex: i,
					SignalIndex:    j,
					SatelliteID:    satellites[i],
					SignalID:       signals[j],
				})
			}
		}
	}
	return list
}

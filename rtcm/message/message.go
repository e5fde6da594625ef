// The message package breaks an MSM4, MSM5, MSM6 or MSM7 message out into
// its header, satellite cells and signal cells.
package message

import (
	"fmt"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/header"
	"github.com/goblimey/go-rtcm2rinex/rtcm/satellite"
	"github.com/goblimey/go-rtcm2rinex/rtcm/signal"
)

// Message is a broken-out version of a Multiple Signal Message.
type Message struct {
	// Header is the MSM Header
	Header *header.Header

	// Satellites is a list of the satellites for which signals
	// were observed.
	Satellites []satellite.Cell

	// Signals is a list of the signals observed, in the order of the
	// header's cell list - satellite by satellite and then signal by
	// signal.
	Signals []signal.Cell
}

// New creates a Message.
func New(header *header.Header, satellites []satellite.Cell, signals []signal.Cell) *Message {
	message := Message{Header: header, Satellites: satellites, Signals: signals}

	return &message
}

// String return a text version of the Message.
func (message *Message) String() string {
	result :=
		message.Header.String() +
			message.DisplaySatelliteCells() +
			message.DisplaySignalCells()

	return result
}

// DisplaySatelliteCells returns a text version of the satellite cells.
func (message *Message) DisplaySatelliteCells() string {

	if len(message.Satellites) < 1 {
		return "No Satellites\n"
	}

	heading := fmt.Sprintf("%d Satellites\nsatellite ID {range ms}\n",
		len(message.Satellites))
	if message.Header.Variant.HasRates() {
		heading = fmt.Sprintf("%d Satellites\nsatellite ID {range ms, extended info, phase range rate m/s}\n",
			len(message.Satellites))
	}

	body := ""
	for i := range message.Satellites {
		body += message.Satellites[i].String() + "\n"
	}

	return heading + body
}

// DisplaySignalCells returns a text version of the signal cells.
func (message *Message) DisplaySignalCells() string {

	if len(message.Signals) < 1 {
		return "No Signals\n"
	}

	columns := "range m, phase range m, lock time ind, half cycle ambiguity, Carrier Noise Ratio"
	if message.Header.Variant.HasRates() {
		columns += ", phase range rate m/s"
	}
	heading := fmt.Sprintf("%d Signals\nsat ID sig ID {%s}\n", len(message.Signals), columns)

	body := ""
	for i := range message.Signals {
		body += message.Signals[i].String() + "\n"
	}

	return heading + body
}

// GetMessage presents an MSM4, MSM5, MSM6 or MSM7 (type 1074, 1087 etc) as
// broken out fields.  A message that can't be decoded produces an error
// wrapping rtcmerr.ErrMalformedHeader or rtcmerr.ErrMalformedCell.
func GetMessage(bitStream []byte) (*Message, error) {

	c := bitcursor.New(bitStream)

	header, headerError := header.GetMSMHeader(c)
	if headerError != nil {
		return nil, headerError
	}

	satellites, fetchSatellitesError := satellite.GetSatelliteCells(c, header)
	if fetchSatellitesError != nil {
		return nil, fetchSatellitesError
	}

	signals, fetchSignalsError := signal.GetSignalCells(c, header, satellites)
	if fetchSignalsError != nil {
		return nil, fetchSignalsError
	}

	return New(header, satellites, signals), nil
}

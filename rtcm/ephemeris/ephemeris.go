// The ephemeris package gets the week number from GPS, Galileo and BeiDou
// ephemeris messages (types 1019, 1045, 1046 and 1042).  The MSM epoch
// time is a time of week, so the week number is needed to turn it into a
// date.  Only the week number is decoded - the orbit parameters are not
// needed to produce observation files.
//
// All week numbers are returned as GPS weeks.  GPS time started at the
// start of the 6th January 1980.  Galileo System Time week 0 is GPS week
// 1024 and BeiDou Time week 0 is GPS week 1356.
package ephemeris

import (
	"fmt"
	"time"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// GPSEpoch is the start of GPS week 0.
var GPSEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// week is the length of a GPS week.
const week = 7 * 24 * time.Hour

// Week offsets from the other constellations' week 0 to the GPS week.
const (
	galileoWeekOffset = 1024
	beidouWeekOffset  = 1356
)

// gpsWeekRollover is the number of weeks that the 10-bit GPS week number
// can hold.
const gpsWeekRollover = 1024

// Week holds the week number from an ephemeris message.
type Week struct {
	MessageType   int
	Constellation msm.Constellation
	Satellite     uint
	// Number is the GPS week number.
	Number int
}

// Start returns the start of the week in GPS time.
func (w *Week) Start() time.Time {
	return WeekStart(w.Number)
}

// String returns a readable version, eg "GPS satellite 4 week 2131".
func (w *Week) String() string {
	return fmt.Sprintf("%s satellite %d week %d", w.Constellation, w.Satellite, w.Number)
}

// WeekStart returns the start of a GPS week.
func WeekStart(number int) time.Time {
	return GPSEpoch.Add(time.Duration(number) * week)
}

// WeekNumber returns the GPS week containing t.
func WeekNumber(t time.Time) int {
	return int(t.Sub(GPSEpoch) / week)
}

// IsEphemeris is true for the message types that GetWeek handles.
func IsEphemeris(messageType int) bool {
	switch messageType {
	case utils.MessageTypeGPSEphemeris, utils.MessageTypeBeidouEphemeris,
		utils.MessageTypeGalileoFNavEphemeris, utils.MessageTypeGalileoINavEphemeris:
		return true
	default:
		return false
	}
}

// GetWeek gets the week number from an ephemeris message.  The GPS message
// only carries the week modulo 1024, so the week in the 1024 week era
// nearest to now is chosen.
func GetWeek(bitStream []byte, now time.Time) (*Week, error) {
	c := bitcursor.New(bitStream)

	mt, err := c.Read(12)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: %w", err)
	}
	messageType := int(mt)

	var constellation msm.Constellation
	var weekBits uint
	switch messageType {
	case utils.MessageTypeGPSEphemeris:
		constellation, weekBits = msm.GPS, 10
	case utils.MessageTypeBeidouEphemeris:
		constellation, weekBits = msm.BeiDou, 13
	case utils.MessageTypeGalileoFNavEphemeris, utils.MessageTypeGalileoINavEphemeris:
		constellation, weekBits = msm.Galileo, 12
	default:
		return nil, fmt.Errorf("%w - message type %d is not an ephemeris",
			rtcmerr.ErrUnsupportedMessage, messageType)
	}

	satellite, err := c.Read(6)
	if err != nil {
		return nil, fmt.Errorf("ephemeris %d: %w", messageType, err)
	}
	weekField, err := c.Read(weekBits)
	if err != nil {
		return nil, fmt.Errorf("ephemeris %d: %w", messageType, err)
	}

	var number int
	switch constellation {
	case msm.GPS:
		number = nearestEra(int(weekField), WeekNumber(now))
	case msm.Galileo:
		number = int(weekField) + galileoWeekOffset
	case msm.BeiDou:
		number = int(weekField) + beidouWeekOffset
	}

	w := Week{
		MessageType:   messageType,
		Constellation: constellation,
		Satellite:     uint(satellite),
		Number:        number,
	}
	return &w, nil
}

// nearestEra returns the week number, equal to truncated modulo 1024,
// that is closest to the current week.
func nearestEra(truncated, current int) int {
	best := truncated
	for era := 0; era*gpsWeekRollover+truncated <= current+gpsWeekRollover; era++ {
		candidate := era*gpsWeekRollover + truncated
		if abs(candidate-current) < abs(best-current) {
			best = candidate
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

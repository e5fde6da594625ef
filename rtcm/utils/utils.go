// the utils package contains general-purpose functions and constants for
// the RTCM software.
package utils

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/goblimey/go-tools/dailylogger"
)

// StartOfMessageFrame is the value of the byte that starts an RTCM3 message frame.
const StartOfMessageFrame byte = 0xd3

// The message type is 12 bits unsigned.
const MaxMessageType = 4095

// MaxMessageLength is the largest value of the 10-bit length field.
const MaxMessageLength = 1023

// LeaderLengthBytes is the length of the message frame leader in bytes.
const LeaderLengthBytes = 3

// CRCLengthBytes is the length of the Cyclic Redundancy check value in bytes.
const CRCLengthBytes = 3

// NonRTCMMessage is the message type given to data that isn't RTCM3,
// such as NMEA sentences between the frames.
const NonRTCMMessage = -1

// RTCM3 Message types.
const MessageType1005 = 1005 // Base position.
const MessageType1006 = 1006 // Base position and height.
const MessageTypeGPSEphemeris = 1019
const MessageTypeBeidouEphemeris = 1042
const MessageTypeGalileoFNavEphemeris = 1045
const MessageTypeGalileoINavEphemeris = 1046
const MessageTypeGCPB = 1230 // Glonass code/phase bias.
const MessageTypeMSM4GPS = 1074
const MessageTypeMSM7GPS = 1077
const MessageTypeMSM4Glonass = 1084
const MessageTypeMSM5Galileo = 1095
const MessageTypeMSM7Galileo = 1097
const MessageTypeMSM4Beidou = 1124
const MessageTypeMSM6Beidou = 1126
const MessageTypeMSM7NavicIrnss = 1137

// Handling of timestamps and the equivalent times.

// Multiple Signal Messages contain a thirty-bit timestamp.  For GPS,
// Galileo and BeiDou it's milliseconds since the start of the week.  The
// GPS and Galileo weeks start at midnight on Saturday GPS time, which is a
// few leap seconds before midnight UTC.  The BeiDou week starts 14 seconds
// after the GPS week.

// MaxTimestamp is the maximum timestamp value.  The timestamp is 30 bits
// giving milliseconds since the start of the week BUT it must be less than
// seven days worth of milliseconds.
const MaxTimestamp = MillisIn7Days - 1

// GPSLeapSeconds is the duration that GPS time is ahead of UTC
// in seconds, correct from the start of 2017/01/01.
const GPSLeapSeconds = -18

// GPSTimeOffset is the offset to convert a GPS time to UTC.
var GPSTimeOffset time.Duration = time.Duration(GPSLeapSeconds) * time.Second

// BeidouTimeOffset is the offset to convert a BeiDou time of week to a
// GPS time of week.  BeiDou time is 14 seconds behind GPS time, so a BeiDou
// timestamp must be moved forward by 14 seconds.
const BeidouTimeOffset = 14 * time.Second

// DateLayout defines the layout of dates when they are displayed.  It
// produces "yyyy-mm-dd hh:mm:ss.ms timeshift timezone", for example
// "2023-05-12 00:00:05 +0000 UTC"
const DateLayout = "2006-01-02 15:04:05.999 -0700 MST"

// LocationUTC is the UTC timezone - set up by the init function.
var LocationUTC *time.Location

// SpeedOfLightMS is the speed of light in metres per second.
const SpeedOfLightMS = 299792458.0

// OneLightMillisecond is the distance in metres traveled by light in one
// millisecond.  The value can be used to convert a range in milliseconds to a
// distance in metres.
const OneLightMillisecond float64 = 299792.458

// Signal frequencies.  GPS names them L1, L2 and L5.  Galileo uses the same
// frequencies but gives them different names - GPS L5 is Galileo E5a, and so
// on.  The RTKLIB source code defines the bands and frequencies for all
// constellations.

// Freq1 is the L1/E1/B1C signal frequency in Hz.
const Freq1 float64 = 1.57542e9

// Freq2 is the L2 frequency in Hz.
const Freq2 float64 = 1.22760e9

// Freq5 is the L5/E5a/B2a frequency in Hz.
const Freq5 float64 = 1.17645e9

// Freq6 is the E6 frequency (Hz).
const Freq6 float64 = 1.27875e9

// Freq7 is the E5b/B2b frequency (Hz).
const Freq7 float64 = 1.20714e9

// Freq8 is the E5a+b frequency (Hz).
const Freq8 float64 = 1.191795e9

// FreqB1Beidou is the BeiDou B1I frequency (Hz).
const FreqB1Beidou float64 = 1.561098e9

// FreqB3Beidou is the BeiDou B3 frequency (Hz).
const FreqB3Beidou float64 = 1.26852e9

// MillisIn24Hours is 24 hours in milliseconds.
const MillisIn24Hours = 24 * 3600 * 1000

// MillisIn7Days is 7 days in milliseconds.
const MillisIn7Days = 7 * MillisIn24Hours

func init() {
	LocationUTC, _ = time.LoadLocation("UTC")
}

// ParseMilliseconds breaks a millisecond timestamp down into hours, minutes etc.
func ParseMilliseconds(timestamp uint) (hours, minutes, seconds, milliseconds uint) {
	milliseconds = timestamp % 1000
	// Get the number of seconds.
	totalSeconds := timestamp / 1000
	seconds = totalSeconds % 60
	// Get the number of minutes.
	totalMinutes := totalSeconds / 60
	minutes = totalMinutes % 60
	// Get the number of hours.
	totalHours := totalMinutes / 60
	hours = totalHours % 24

	return // hours, minutes, seconds, milliseconds
}

// GetTitle returns a short description of the message type.
func GetTitle(messageType int) string {
	switch {
	case messageType == NonRTCMMessage:
		return "Non-RTCM data"
	case messageType == MessageType1005:
		return "Stationary RTK Reference Station Antenna Reference Point (ARP)"
	case messageType == MessageType1006:
		return "Stationary RTK Reference Station ARP with Antenna Height"
	case messageType == MessageTypeGPSEphemeris:
		return "GPS Ephemerides"
	case messageType == MessageTypeBeidouEphemeris:
		return "BeiDou Satellite Ephemeris Data"
	case messageType == MessageTypeGalileoFNavEphemeris:
		return "Galileo F/NAV Satellite Ephemeris Data"
	case messageType == MessageTypeGalileoINavEphemeris:
		return "Galileo I/NAV Satellite Ephemeris Data"
	case messageType == MessageTypeGCPB:
		return "GLONASS L1 and L2 Code-Phase Biases"
	case messageType >= 1071 && messageType <= 1137:
		// Multiple Signal Messages - 1071-1077 GPS, 1081-1087 Glonass etc.
		constellations := []string{"GPS", "GLONASS", "Galileo", "SBAS", "QZSS", "BeiDou", "NavIC/IRNSS"}
		c := (messageType - 1071) / 10
		kind := messageType % 10
		if kind < 1 || kind > 7 {
			return "Unknown"
		}
		return fmt.Sprintf("%s Multiple Signal Message %d", constellations[c], kind)
	default:
		return "Unknown"
	}
}

// EqualWithin return true if the given float64 values are equal
// within (precision) decimal places after rounding.  (This can fail if
// either of the numbers or the difference between them are too large.)
func EqualWithin(precision uint, f1, f2 float64) bool {

	// see http://docs.oracle.com/cd/E19957-01/806-3568/ncg_goldberg.html

	var scaleFactor float64 = math.Pow(10, float64(precision))

	f1 = math.Round(f1 * scaleFactor)
	f2 = math.Round(f2 * scaleFactor)

	return math.Abs(f1-f2) <= 0.1
}

// ParseLogLevel converts "debug", "info", "warn" or "error" to a slog
// level.  An empty string gives slog.LevelInfo.
func ParseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("bad log level %q", name)
	}
	return level, nil
}

// NewEventLogger creates a structured logger.  If directory is not empty
// the log is written to a daily log file in that directory, otherwise it
// goes to stderr.
func NewEventLogger(directory string, level slog.Level) *slog.Logger {
	var w io.Writer = os.Stderr
	if directory != "" {
		w = dailylogger.New(directory, "rtcm2rinex.", ".log")
	}
	return NewLogger(w, level)
}

// NewLogger creates a structured logger that writes text to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

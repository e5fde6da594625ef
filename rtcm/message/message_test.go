package message

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/diff"

	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmtest"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

func payload(frame []byte) []byte {
	return frame[utils.LeaderLengthBytes : len(frame)-utils.CRCLengthBytes]
}

// TestGetMessage checks that real messages of each kind are broken out.
func TestGetMessage(t *testing.T) {
	var testData = []struct {
		frame          []byte
		wantSatellites int
		wantSignals    int
	}{
		{rtcmtest.Frame1077, 8, 14},
		{rtcmtest.Frame1087, -1, -1},
		{rtcmtest.Frame1097, 7, 14},
		{rtcmtest.Frame1127, 6, 7},
		{rtcmtest.Frame1074, 8, 15},
		{rtcmtest.Frame1124, 7, 9},
	}
	for _, td := range testData {
		message, err := GetMessage(payload(td.frame))
		if err != nil {
			t.Errorf("%v", err)
			continue
		}
		if td.wantSatellites < 0 {
			// GLONASS - just check that it decodes.
			continue
		}
		if len(message.Satellites) != td.wantSatellites {
			t.Errorf("%d: want %d satellites got %d",
				message.Header.MessageType, td.wantSatellites, len(message.Satellites))
		}
		if len(message.Signals) != td.wantSignals {
			t.Errorf("%d: want %d signals got %d",
				message.Header.MessageType, td.wantSignals, len(message.Signals))
		}
	}
}

// TestString checks the display of a small MSM7 with one satellite and
// one signal.
func TestString(t *testing.T) {
	m := rtcmtest.MSM{
		MessageType: utils.MessageTypeMSM7GPS,
		StationID:   1,
		Epoch:       432023000,
		Satellites: []rtcmtest.Satellite{
			{ID: 4, RangeMillis: 81, RangeFraction: 512, RoughRate: -135},
		},
		SignalIDs: []uint{2},
		Signals: []rtcmtest.Signal{
			{SatelliteID: 4, SignalID: 2, LockTime: 582, CNR: 640},
		},
	}

	const want = `type 1077 GPS Full Pseudoranges, PhaseRanges, PhaseRangeRate and CNR (high resolution)
epoch time 432023000 (day 5 00:00:23.000)
stationID 1, single message, sequence number 0, session transmit time 0
clock steering 0, external clock 0
divergence free smoothing false, smoothing interval 0
1 satellites, 1 signal types, 1 signals
1 Satellites
satellite ID {range ms, extended info, phase range rate m/s}
 4 {81.500, 0, -135}
1 Signals
sat ID sig ID {range m, phase range m, lock time ind, half cycle ambiguity, Carrier Noise Ratio, phase range rate m/s}
 4  2 {24433085.327 24433085.327 582, false, 40.00, -135.0000}
`

	message, err := GetMessage(m.Payload())
	if err != nil {
		t.Fatal(err)
	}

	got := message.String()
	if got != want {
		t.Error(diff.Diff(want, got))
	}
}

// TestStringMSM4 checks the display of an MSM4, which has no rates.
func TestStringMSM4(t *testing.T) {
	m := rtcmtest.MSM{
		MessageType: utils.MessageTypeMSM4Beidou,
		StationID:   2,
		Epoch:       1000,
		Satellites: []rtcmtest.Satellite{
			{ID: 30, RangeMillis: 76, RangeFraction: 256},
		},
		SignalIDs: []uint{14},
		Signals: []rtcmtest.Signal{
			{SatelliteID: 30, SignalID: 14, LockTime: 15, CNR: 30},
		},
	}

	const want = `1 Satellites
satellite ID {range ms}
30 {76.250}
1 Signals
sat ID sig ID {range m, phase range m, lock time ind, half cycle ambiguity, Carrier Noise Ratio}
30 14 {22859174.922 22859174.922 15, false, 30.00}
`

	message, err := GetMessage(m.Payload())
	if err != nil {
		t.Fatal(err)
	}

	got := message.DisplaySatelliteCells() + message.DisplaySignalCells()
	if got != want {
		t.Error(diff.Diff(want, got))
	}
}

// TestEmptyMessage checks a message with no satellites.
func TestEmptyMessage(t *testing.T) {
	m := rtcmtest.MSM{MessageType: utils.MessageTypeMSM7Galileo, Epoch: 5000}

	message, err := GetMessage(m.Payload())
	if err != nil {
		t.Fatal(err)
	}

	const want = "No Satellites\nNo Signals\n"
	got := message.DisplaySatelliteCells() + message.DisplaySignalCells()
	if got != want {
		t.Error(diff.Diff(want, got))
	}
}

// TestGetMessageErrors checks that broken messages are rejected.
func TestGetMessageErrors(t *testing.T) {
	var testData = []struct {
		description string
		message     []byte
		want        error
	}{
		{"not an MSM", rtcmtest.Message1005(1, 0, 0, 0), rtcmerr.ErrMalformedHeader},
		{"truncated header", payload(rtcmtest.Frame1077)[:10], rtcmerr.ErrMalformedHeader},
		{"truncated satellites", payload(rtcmtest.Frame1077)[:30], rtcmerr.ErrMalformedCell},
		{"truncated signals", payload(rtcmtest.Frame1077)[:100], rtcmerr.ErrMalformedCell},
	}
	for _, td := range testData {
		_, err := GetMessage(td.message)
		if !errors.Is(err, td.want) {
			t.Errorf("%s: want %v got %v", td.description, td.want, err)
		}
	}
}

package header

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/diff"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmtest"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// payload returns the embedded message from a message frame.
func payload(frame []byte) []byte {
	return frame[utils.LeaderLengthBytes : len(frame)-utils.CRCLengthBytes]
}

// TestNew checks that New creates a header correctly.
func TestNew(t *testing.T) {

	const wantSatelliteMask = 3
	const wantSignalMask = 7
	const wantCellMask = 0x29 // 101 001
	const wantMessageType = 1074
	const wantStationID = 1
	const wantTimestamp = 2 * 1000 // 2 seconds.
	const wantIssue = 3
	const wantTransTime = 4
	const wantClockSteeringIndicator = 2
	const wantExternalClockIndicator = 1
	const wantSmoothingInterval = 7

	gotHeader := New(wantMessageType, wantStationID, wantTimestamp,
		true,
		wantIssue, wantTransTime, wantClockSteeringIndicator,
		wantExternalClockIndicator, true, wantSmoothingInterval,
		wantSatelliteMask, wantSignalMask, wantCellMask)

	if gotHeader.MessageType != wantMessageType {
		t.Errorf("want %d got %d", wantMessageType, gotHeader.MessageType)
	}
	if gotHeader.Constellation != msm.GPS {
		t.Errorf("want GPS got %s", gotHeader.Constellation)
	}
	if gotHeader.Variant.Kind != msm.MSM4 {
		t.Errorf("want MSM4 got %s", gotHeader.Variant.Kind)
	}
	if gotHeader.StationID != wantStationID {
		t.Errorf("want %d got %d", wantStationID, gotHeader.StationID)
	}
	if gotHeader.EpochTime != wantTimestamp {
		t.Errorf("want %d got %d", wantTimestamp, gotHeader.EpochTime)
	}
	if !gotHeader.MultipleMessage {
		t.Error("want multiple message")
	}
	if gotHeader.IssueOfDataStation != wantIssue {
		t.Errorf("want %d got %d", wantIssue, gotHeader.IssueOfDataStation)
	}
	if gotHeader.SessionTransmissionTime != wantTransTime {
		t.Errorf("want %d got %d", wantTransTime, gotHeader.SessionTransmissionTime)
	}
	if gotHeader.ClockSteeringIndicator != wantClockSteeringIndicator {
		t.Errorf("want %d got %d", wantClockSteeringIndicator, gotHeader.ClockSteeringIndicator)
	}
	if gotHeader.ExternalClockIndicator != wantExternalClockIndicator {
		t.Errorf("want %d got %d", wantExternalClockIndicator, gotHeader.ExternalClockIndicator)
	}
	if !gotHeader.GNSSDivergenceFreeSmoothingIndicator {
		t.Error("want smoothing")
	}
	if gotHeader.GNSSSmoothingInterval != wantSmoothingInterval {
		t.Errorf("want %d got %d", wantSmoothingInterval, gotHeader.GNSSSmoothingInterval)
	}
	if gotHeader.SatelliteMask != wantSatelliteMask {
		t.Errorf("want %d got %d", wantSatelliteMask, gotHeader.SatelliteMask)
	}
	if gotHeader.SignalMask != wantSignalMask {
		t.Errorf("want %d got %d", wantSignalMask, gotHeader.SignalMask)
	}
	if gotHeader.CellMask != wantCellMask {
		t.Errorf("want %d got %d", wantCellMask, gotHeader.CellMask)
	}

	// Satellites 63 and 64, signals 30, 31 and 32.  The cell mask is
	// 101 001.
	wantCellList := []Cell{
		{0, 0, 63, 30},
		{0, 2, 63, 32},
		{1, 2, 64, 32},
	}
	if d := cmp.Diff(wantCellList, gotHeader.CellList); d != "" {
		t.Errorf("cell list (-want +got):\n%s", d)
	}
	if gotHeader.NumSignalCells != 3 {
		t.Errorf("want 3 signal cells got %d", gotHeader.NumSignalCells)
	}
}

// TestGetMSMType checks that the message type is checked against the
// MSM4-7 types.
func TestGetMSMType(t *testing.T) {

	var testData = []struct {
		MessageType int
		WantError   string // "" means the error is nil
	}{
		{1074, ""},
		{1075, ""},
		{1076, ""},
		{1077, ""},
		{1087, ""},
		{1094, ""},
		{1107, ""},
		{1117, ""},
		{1124, ""},
		{1137, ""},

		// These message numbers are not for MSM4-7 messages
		{0, "malformed MSM header - message type 0 is not an MSM4, MSM5, MSM6 or MSM7"},
		{1005, "malformed MSM header - message type 1005 is not an MSM4, MSM5, MSM6 or MSM7"},
		{1071, "malformed MSM header - message type 1071 is not an MSM4, MSM5, MSM6 or MSM7"},
		{1073, "malformed MSM header - message type 1073 is not an MSM4, MSM5, MSM6 or MSM7"},
		{1078, "malformed MSM header - message type 1078 is not an MSM4, MSM5, MSM6 or MSM7"},
		{1138, "malformed MSM header - message type 1138 is not an MSM4, MSM5, MSM6 or MSM7"},
		{utils.MaxMessageType, "malformed MSM header - message type 4095 is not an MSM4, MSM5, MSM6 or MSM7"},
	}
	for _, td := range testData {
		var w rtcmtest.BitWriter
		w.Write(uint64(td.MessageType), 12)

		c := bitcursor.New(w.Bytes())
		gotType, gotError := getMSMType(c)

		if len(td.WantError) > 0 {
			if gotError == nil {
				t.Errorf("%d: want error %q", td.MessageType, td.WantError)
				continue
			}
			if gotError.Error() != td.WantError {
				t.Errorf("%d: want error %q got %q", td.MessageType, td.WantError, gotError.Error())
			}
			if !errors.Is(gotError, rtcmerr.ErrMalformedHeader) {
				t.Errorf("%d: want ErrMalformedHeader", td.MessageType)
			}
			continue
		}

		if gotError != nil {
			t.Errorf("%d: %v", td.MessageType, gotError)
			continue
		}
		if gotType != td.MessageType {
			t.Errorf("want %d got %d", td.MessageType, gotType)
		}
		if c.Position() != lenMessageType {
			t.Errorf("%d: want position %d got %d", td.MessageType, lenMessageType, c.Position())
		}
	}
}

// TestGetMSMTypeWithShortBitStream checks that a bit stream too short to
// hold a message type is rejected.
func TestGetMSMTypeWithShortBitStream(t *testing.T) {
	const wantError = "malformed MSM header - bit stream is 8 bits long, too short for a message type"

	_, err := getMSMType(bitcursor.New([]byte{0x43}))

	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != wantError {
		t.Errorf("want %q got %q", wantError, err.Error())
	}
}

// TestGetMSMHeader checks that GetMSMHeader reads a real MSM7 header.
func TestGetMSMHeader(t *testing.T) {

	c := bitcursor.New(payload(rtcmtest.Frame1077))

	h, err := GetMSMHeader(c)
	if err != nil {
		t.Fatal(err)
	}

	if h.MessageType != 1077 || h.Constellation != msm.GPS || h.Variant.Kind != msm.MSM7 {
		t.Errorf("want 1077 GPS MSM7, got %d %s %s", h.MessageType, h.Constellation, h.Variant.Kind)
	}
	if h.EpochTime != 432023000 {
		t.Errorf("want epoch time 432023000 got %d", h.EpochTime)
	}
	if !h.MultipleMessage {
		t.Error("want multiple message flag")
	}

	wantSatellites := []uint{4, 9, 16, 18, 25, 26, 29, 31}
	if d := cmp.Diff(wantSatellites, h.Satellites); d != "" {
		t.Errorf("satellites (-want +got):\n%s", d)
	}
	wantSignals := []uint{2, 16}
	if d := cmp.Diff(wantSignals, h.Signals); d != "" {
		t.Errorf("signals (-want +got):\n%s", d)
	}
	if h.CellMask != 0xdbff {
		t.Errorf("want cell mask 0xdbff got 0x%x", h.CellMask)
	}
	if h.NumSignalCells != 14 {
		t.Errorf("want 14 signal cells got %d", h.NumSignalCells)
	}

	// Satellite 9 has only signal 16, satellite 16 only signal 2.
	wantCells := [][]bool{
		{true, true}, {false, true}, {true, false}, {true, true},
		{true, true}, {true, true}, {true, true}, {true, true},
	}
	if d := cmp.Diff(wantCells, h.Cells); d != "" {
		t.Errorf("cells (-want +got):\n%s", d)
	}
	if h.CellList[2] != (Cell{SatelliteIndex: 1, SignalIndex: 1, SatelliteID: 9, SignalID: 16}) {
		t.Errorf("unexpected third cell %+v", h.CellList[2])
	}

	// The fixed fields, the masks and 16 bits of cell mask.
	const wantPosition = minBitsInHeader + 16
	if c.Position() != wantPosition {
		t.Errorf("want position %d got %d", wantPosition, c.Position())
	}
}

// TestGetMSMHeaderWithEmptyCellMask checks a header that reports no
// signals.
func TestGetMSMHeaderWithEmptyCellMask(t *testing.T) {
	m := rtcmtest.MSM{MessageType: 1127, StationID: 42, Epoch: 1000}
	c := bitcursor.New(m.Payload())

	h, err := GetMSMHeader(c)
	if err != nil {
		t.Fatal(err)
	}

	if h.NumSignalCells != 0 || len(h.CellList) != 0 || len(h.Satellites) != 0 {
		t.Errorf("want no cells, got %d", h.NumSignalCells)
	}
	if h.StationID != 42 {
		t.Errorf("want station 42 got %d", h.StationID)
	}
	if c.Position() != minBitsInHeader {
		t.Errorf("want position %d got %d", minBitsInHeader, c.Position())
	}
}

// TestGetMSMHeaderErrors checks the errors that GetMSMHeader returns.
func TestGetMSMHeaderErrors(t *testing.T) {

	// 9 satellites X 8 signals needs a 72-bit cell mask.
	tooMany := rtcmtest.MSM{MessageType: 1077}
	for i := uint(1); i <= 9; i++ {
		tooMany.Satellites = append(tooMany.Satellites, rtcmtest.Satellite{ID: i})
	}
	for i := uint(1); i <= 8; i++ {
		tooMany.SignalIDs = append(tooMany.SignalIDs, i)
	}

	glonassSBAS := rtcmtest.MSM{MessageType: 1073}

	var testData = []struct {
		description string
		bitStream   []byte
		wantError   string
	}{
		{"empty", []byte{},
			"malformed MSM header - bit stream is 0 bits long, too short for a message type"},
		{"fixed fields short", payload(rtcmtest.Frame1077)[:10],
			"malformed MSM header - bitstream is too short for an MSM header - got 80 bits, expected at least 169"},
		{"cell mask short", payload(rtcmtest.Frame1077)[:22],
			"malformed MSM header - bitstream is too short for an MSM header with 16 cell mask bits - got 176 bits, expected at least 185"},
		{"cell mask too long", tooMany.Payload(),
			"malformed MSM header - cell mask is 72 bits - expected <= 64"},
		{"MSM3", glonassSBAS.Payload(),
			"malformed MSM header - message type 1073 is not an MSM4, MSM5, MSM6 or MSM7"},
	}

	for _, td := range testData {
		_, err := GetMSMHeader(bitcursor.New(td.bitStream))
		if err == nil {
			t.Errorf("%s: expected an error", td.description)
			continue
		}
		if !errors.Is(err, rtcmerr.ErrMalformedHeader) {
			t.Errorf("%s: want ErrMalformedHeader got %v", td.description, err)
		}
		if err.Error() != td.wantError {
			t.Errorf("%s: want error\n%s\ngot\n%s", td.description, td.wantError, err.Error())
		}
	}
}

// TestString checks that String displays the header correctly.
func TestString(t *testing.T) {

	const want = `type 1077 GPS Full Pseudoranges, PhaseRanges, PhaseRangeRate and CNR (high resolution)
epoch time 432023000 (day 5 00:00:23.000)
stationID 0, multiple message, sequence number 0, session transmit time 0
clock steering 0, external clock 0
divergence free smoothing false, smoothing interval 0
8 satellites, 2 signal types, 14 signals
`

	h, err := GetMSMHeader(bitcursor.New(payload(rtcmtest.Frame1077)))
	if err != nil {
		t.Fatal(err)
	}

	got := h.String()
	if got != want {
		t.Errorf("diff -want +got\n%s", diff.Diff(want, got))
	}
}

// TestStringSingleMessage checks the display of a synthetic MSM4 header.
func TestStringSingleMessage(t *testing.T) {

	const want = `type 1124 BeiDou Full Pseudoranges and PhaseRanges plus CNR
epoch time 86400001 (day 1 00:00:00.001)
stationID 4095, single message, sequence number 7, session transmit time 127
clock steering 3, external clock 2
divergence free smoothing true, smoothing interval 5
1 satellites, 1 signal types, 1 signals
`

	m := rtcmtest.MSM{
		MessageType: 1124, StationID: 4095, Epoch: 86400001,
		IODS: 7, SessionTransmitTime: 127, ClockSteering: 3, ExternalClock: 2,
		Smoothing: true, SmoothingInterval: 5,
		Satellites: []rtcmtest.Satellite{{ID: 19}},
		SignalIDs:  []uint{2},
		Signals:    []rtcmtest.Signal{{SatelliteID: 19, SignalID: 2}},
	}

	h, err := GetMSMHeader(bitcursor.New(m.Payload()))
	if err != nil {
		t.Fatal(err)
	}

	got := h.String()
	if got != want {
		t.Errorf("diff -want +got\n%s", diff.Diff(want, got))
	}
}

// TestGetSatellites checks getSatellites.
func TestGetSatellites(t *testing.T) {
	want := []uint{1, 3, 64}
	got := getSatellites(0xa000000000000001)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

// TestGetSignals checks getSignals.
func TestGetSignals(t *testing.T) {
	want := []uint{1, 2, 3, 5, 32}
	got := getSignals(0xe8000001)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

// TestGetCells checks getCells.
func TestGetCells(t *testing.T) {
	// 3 satellites, 2 signals, mask 11 10 01.
	want := [][]bool{{true, true}, {true, false}, {false, true}}
	got := getCells(0x39, 3, 2)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

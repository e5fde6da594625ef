package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goblimey/go-tools/clock"
	"github.com/kylelemons/godebug/diff"

	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmtest"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// newClock returns a clock that always gives the given time.
func newClock(t time.Time) clock.Clock {
	times := []time.Time{t}
	return clock.NewSteppingClock(&times)
}

// november13 is the day the test data was recorded.
var november13 = time.Date(2020, time.November, 13, 12, 0, 0, 0, time.UTC)

// fake1230 is a frame containing a type 1230 message.
var fake1230 = []byte{0xd3, 0x00, 0x08, 0x4c, 0xe0, 0x00, 0x8a, 0x00, 0x00, 0x00, 0x00, 0xa8, 0xf7, 0x2a}

// TestGetTime tests getTime
func TestGetTime(t *testing.T) {
	const dateTimeLayout = "2006-01-02 15:04:05.000000000 MST"

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}

	var testData = []struct {
		input string
		want  time.Time
	}{
		{"2020-11-13", time.Date(2020, time.November, 13, 0, 0, 0, 0, utils.LocationUTC)},
		{"2020-11-13T09:10:11Z", time.Date(2020, time.November, 13, 9, 10, 11, 0, utils.LocationUTC)},
		{"2020-11-13T09:10:11+01:00", time.Date(2020, time.November, 13, 9, 10, 11, 0, paris)},
	}
	for _, td := range testData {
		got, err := getTime(td.input)
		if err != nil {
			t.Errorf("%s: %v", td.input, err)
			continue
		}
		if !td.want.Equal(got) {
			t.Errorf("%s: expected %s got %s", td.input,
				td.want.Format(dateTimeLayout), got.Format(dateTimeLayout))
		}
	}

	// Test time values that should fail.
	for _, junk := range []string{"2020-11-13T09:10:11+junk", "2020-13-13"} {
		if _, err := getTime(junk); err == nil {
			t.Errorf("time string %s parsed but it should have failed", junk)
		}
	}
}

// TestDisplayMessage checks that DisplayMessages correctly displays input
// containing a single message.
func TestDisplayMessage(t *testing.T) {
	const want = `RTCM data

Note: epoch times are in GPS time, which is currently 18 seconds
ahead of UTC

message type 1230, frame length 14
00000000  d3 00 08 4c e0 00 8a 00  00 00 00 a8 f7 2a        |...L.........*|

(Message type 1230 - GLONASS L1 and L2 Code-Phase Biases - don't know how to decode this)

`

	reader := bytes.NewReader(append([]byte("junk"), fake1230...))
	var buffer bytes.Buffer

	err := DisplayMessages(time.Now(), reader, &buffer, slog.LevelInfo, newClock(november13))
	if err != nil {
		t.Fatal(err)
	}

	got := buffer.String()
	if want != got {
		t.Error(diff.Diff(want, got))
	}
}

// TestDisplayMSM checks the display of MSMs and the epoch they make.
func TestDisplayMSM(t *testing.T) {
	var input bytes.Buffer
	input.Write(rtcmtest.Frame1077)
	input.Write(rtcmtest.Frame1097)
	input.Write(rtcmtest.Frame1087)

	startTime := time.Date(2020, time.November, 13, 0, 0, 0, 0, utils.LocationUTC)
	var buffer bytes.Buffer
	if err := DisplayMessages(startTime, &input, &buffer, slog.LevelInfo, newClock(november13)); err != nil {
		t.Fatal(err)
	}
	got := buffer.String()

	wantParts := []string{
		"message type 1077, frame length 226\n00000000  d3 00 dc 43 50 00 67 00  97 62 00 00 08 40 a0 65  |...CP.g..b...@.e|\n",
		"\ntype 1077 GPS Full Pseudoranges, PhaseRanges, PhaseRangeRate and CNR (high resolution)\n",
		"message type 1097, frame length 201\n",
		"warning: unsupported message - message type 1087 (GLONASS)\n",
		"epoch 2020-11-13 00:00:23 +0000 UTC GPS station 0, 14 observables\n",
		"epoch 2020-11-13 00:00:23 +0000 UTC Galileo station 0, 14 observables\n",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("missing %q", part)
		}
	}

	// The epochs come after all the messages, GPS first.
	gps := strings.Index(got, "epoch 2020-11-13 00:00:23 +0000 UTC GPS")
	galileo := strings.Index(got, "epoch 2020-11-13 00:00:23 +0000 UTC Galileo")
	last := strings.Index(got, "message type 1087")
	if !(last < gps && gps < galileo) {
		t.Errorf("epochs out of order - %d %d %d", last, gps, galileo)
	}
}

// TestDisplayOthers checks the display of a station position, an
// ephemeris and a frame that fails the CRC check.
func TestDisplayOthers(t *testing.T) {
	corrupt := bytes.Clone(fake1230)
	corrupt[5] ^= 0x01

	var input bytes.Buffer
	input.Write(rtcmtest.Frame(rtcmtest.Message1005(2, 12345, -23456, 34567)))
	input.Write(rtcmtest.Frame(rtcmtest.Ephemeris(utils.MessageTypeGalileoFNavEphemeris, 2, 1107)))
	input.Write(corrupt)

	var buffer bytes.Buffer
	if err := DisplayMessages(time.Time{}, &input, &buffer, slog.LevelInfo, newClock(november13)); err != nil {
		t.Fatal(err)
	}
	got := buffer.String()

	wantParts := []string{
		"Stationary RTK Reference Station Antenna Reference Point (ARP)\nstationID 2, ITRF realisation year",
		"ECEF coords in metres (1.2345, -2.3456, 3.4567)\n",
		"Galileo F/NAV Satellite Ephemeris Data\nGalileo satellite 2 week 2131\n",
		fmt.Sprintf("CRC check failed on message type %d", utils.MessageTypeGCPB),
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("missing %q in\n%s", part, got)
		}
	}
}

// TestDisplayGPSWeek checks that the 10-bit week in a GPS ephemeris is
// resolved against the clock.
func TestDisplayGPSWeek(t *testing.T) {
	var testData = []struct {
		description string
		now         time.Time
		want        string
	}{
		{"first era", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), "GPS satellite 9 week 1023\n"},
		{"second era", time.Date(2019, time.April, 7, 12, 0, 0, 0, time.UTC), "GPS satellite 9 week 2047\n"},
	}
	for _, td := range testData {
		input := bytes.NewReader(rtcmtest.Frame(rtcmtest.Ephemeris(utils.MessageTypeGPSEphemeris, 9, 1023)))
		var buffer bytes.Buffer
		if err := DisplayMessages(time.Time{}, input, &buffer, slog.LevelInfo, newClock(td.now)); err != nil {
			t.Fatalf("%s: %v", td.description, err)
		}
		if !strings.Contains(buffer.String(), "GPS Ephemerides\n"+td.want) {
			t.Errorf("%s: want %q in\n%s", td.description, td.want, buffer.String())
		}
	}
}

// TestOpenFileWithError tests the openFile function using a file name that
// doesn't exist.
func TestOpenFileWithError(t *testing.T) {
	const filename = "junk"
	want := fmt.Sprintf("open %s: no such file or directory", filename)
	_, openError := openFile(filename)

	if openError == nil {
		t.Fatal("expected an error")
	}

	got := openError.Error()

	if got != want {
		t.Errorf("want %s got %s", want, got)
	}
}

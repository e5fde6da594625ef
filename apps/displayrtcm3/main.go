// displayrtcm3 reads bytes from stdin or a file, ignores anything that's
// not in RTCM version 3 format and writes a readable version of the
// messages to the standard output channel.
//
// Each frame is shown as a hex dump followed by the decoded message.
// Multiple Signal Messages (MSM4 to MSM7) are shown field by field,
// station position messages (1005 and 1006) give the antenna position and
// ephemerides give the week number.  Other message types are shown only as
// a hex dump plus the message type.  The MSMs are also passed through the
// same handler that rtcm2rinex uses and each epoch is shown as soon as
// it's complete, so you can see the observables that would be written to
// the RINEX file.
//
// For example:
//
//	message type 1077, frame length 226
//	00000000  d3 00 dc 43 50 00 67 00  97 62 00 00 08 40 a0 65  |...CP.g..b...@.e|
//	...
//
//	type 1077 GPS Full Pseudoranges, PhaseRanges, PhaseRangeRate and CNR (high resolution)
//	epoch time 432023000 (day 5 00:00:23.000)
//	...
//
// The tool is useful for trouble-shooting, particularly when you have a
// misbehaving base station and you are trying to figure out what it's
// doing.  A base station typically sends a batch of messages every
// second, so the tool produces A LOT of output.
//
// Usage:
//
//	displayrtcm3 file [yyyy-mm-dd]
//
// Examples:
//
//	displayrtcm3 testdata.rtcm 2020-11-13
//	displayrtcm3 - 2020-11-13 # take input from the standard input channel.
//
// The date is any day in the week when the data was collected and is
// used to turn the MSM timestamps into times.  Without it, the week for
// each constellation comes from its first ephemeris message.  Epoch times
// are in GPS time, which is currently 18 seconds ahead of UTC.
//
// The -v flag also shows the unknown bits in the station position
// messages.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/goblimey/go-tools/clock"
	"github.com/goblimey/go-tools/switchwriter"

	"github.com/goblimey/go-rtcm2rinex/rtcm/ephemeris"
	"github.com/goblimey/go-rtcm2rinex/rtcm/epoch"
	"github.com/goblimey/go-rtcm2rinex/rtcm/frame"
	"github.com/goblimey/go-rtcm2rinex/rtcm/handler"
	"github.com/goblimey/go-rtcm2rinex/rtcm/message"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/station"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "show the unknown bits in station position messages")
	flag.Parse()

	appName := os.Args[0]
	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		log.Fatalf("usage: %s [-v] file [yyyy-mm-dd]", appName)
	}

	var startTime time.Time
	if len(args) == 2 {
		var timeError error
		startTime, timeError = getTime(args[1])
		if timeError != nil {
			log.Printf("usage: %s [-v] file [yyyy-mm-dd]", appName)
			log.Fatal(timeError.Error())
		}
	}

	fileName := args[0]
	reader, openError := openFile(fileName)
	if openError != nil {
		log.Fatalf("%s: cannot open %s - %v", appName, fileName, openError)
	}

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	if err := DisplayMessages(startTime, reader, os.Stdout, logLevel, clock.NewSystemClock()); err != nil {
		log.Fatal(err)
	}
}

const heading = "RTCM data\n\nNote: epoch times are in GPS time, which is currently 18 seconds\nahead of UTC\n\n"

// DisplayMessages reads frames from reader until end of file and writes a
// readable display of each to writer.  The clock decides which 1024 week
// era the 10-bit week in a GPS ephemeris belongs to.
func DisplayMessages(startTime time.Time, reader io.Reader, writer io.Writer, logLevel slog.Level, c clock.Clock) error {
	h := handler.New(handler.Options{
		ReferenceTime: startTime,
		Logger:        slog.New(slog.NewTextHandler(switchwriter.New(), nil)),
		LogLevel:      logLevel,
		Clock:         c,
	})

	// Write the heading.
	if _, err := fmt.Fprint(writer, heading); err != nil {
		return err
	}

	frameReader := frame.NewReader(reader)
	for {
		f, err := frameReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, rtcmerr.ErrChecksumFailure) {
				if _, writeError := fmt.Fprintf(writer, "%v\n\n", err); writeError != nil {
					return writeError
				}
				continue
			}
			return err
		}

		display := displayFrame(f, logLevel, c.Now())
		epochs, warnings := h.HandleFrame(f)
		display += displayEpochs(epochs, warnings)

		if _, err := fmt.Fprint(writer, display); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(writer, displayEpochs(h.Flush(), nil))
	return err
}

// displayFrame returns a hex dump of a frame and the decoded message.
func displayFrame(f *frame.RawFrame, logLevel slog.Level, now time.Time) string {
	display := fmt.Sprintf("message type %d, frame length %d\n", f.MessageType, len(f.Data))
	display += hex.Dump(f.Data) + "\n"

	switch {
	case msm.IsMSM(f.MessageType):
		m, err := message.GetMessage(f.Payload())
		if err != nil {
			return display + err.Error() + "\n\n"
		}
		return display + m.String() + "\n"

	case ephemeris.IsEphemeris(f.MessageType):
		w, err := ephemeris.GetWeek(f.Payload(), now)
		if err != nil {
			return display + err.Error() + "\n\n"
		}
		return display + utils.GetTitle(f.MessageType) + "\n" + w.String() + "\n\n"

	case f.MessageType == utils.MessageType1005 || f.MessageType == utils.MessageType1006:
		p, err := station.GetPosition(f.Payload(), logLevel)
		if err != nil {
			return display + err.Error() + "\n\n"
		}
		return display + utils.GetTitle(f.MessageType) + "\n" + p.String() + "\n"

	default:
		return display + fmt.Sprintf("(Message type %d - %s - don't know how to decode this)\n\n",
			f.MessageType, utils.GetTitle(f.MessageType))
	}
}

// displayEpochs returns a display of the finished epochs and any warnings.
func displayEpochs(epochs []*epoch.Epoch, warnings error) string {
	display := ""
	if warnings != nil {
		display += fmt.Sprintf("warning: %v\n\n", warnings)
	}
	for _, e := range epochs {
		display += "epoch " + e.String() + "\n"
	}
	return display
}

// getTime gets a time from a string in one of two formats, yyyy-mm-dd or
// RFC3339, eg "2020-11-13T09:10:11+01:00".
func getTime(timeStr string) (time.Time, error) {
	const dateLayout = "2006-01-02"

	if len(dateLayout) == len(timeStr) {
		return time.ParseInLocation(dateLayout, timeStr, utils.LocationUTC)
	}
	return time.Parse(time.RFC3339, timeStr)
}

// openFile opens the given file and returns a Reader connected
// to it.  If the file name is "-" it returns os.Stdin
func openFile(fileName string) (io.Reader, error) {
	if fileName == "-" {
		return os.Stdin, nil
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}

	return file, nil
}

package frame

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmtest"
)

func stream(parts ...[]byte) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.Write(p)
	}
	return buf.Bytes()
}

// TestReader checks that the Reader returns all the frames in a stream,
// whatever size the reads are.
func TestReader(t *testing.T) {
	input := stream(
		[]byte("$GNGSA,A,3*2E\r\n"),
		rtcmtest.Frame1077,
		rtcmtest.Frame1087,
		[]byte{0xd3, 0xff},
		rtcmtest.Frame1097,
		rtcmtest.Frame1127,
		rtcmtest.Frame1074[:20], // truncated at the end of the input.
	)

	var testData = []struct {
		description string
		source      io.Reader
	}{
		{"one read", bytes.NewReader(input)},
		{"byte at a time", iotest.OneByteReader(bytes.NewReader(input))},
		{"half reads", iotest.HalfReader(bytes.NewReader(input))},
		{"data with EOF", iotest.DataErrReader(bytes.NewReader(input))},
	}

	for _, td := range testData {
		r := NewReader(td.source)
		var got []int
		for {
			frame, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("%s: %v", td.description, err)
			}
			got = append(got, frame.MessageType)
		}

		want := []int{1077, 1087, 1097, 1127}
		if len(got) != len(want) {
			t.Errorf("%s: want %v got %v", td.description, want, got)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: want %v got %v", td.description, want, got)
				break
			}
		}

		wantSkipped := int64(len("$GNGSA,A,3*2E\r\n") + 2 + 20)
		if r.Extractor().NonRTCMBytes() != wantSkipped {
			t.Errorf("%s: want %d skipped bytes got %d",
				td.description, wantSkipped, r.Extractor().NonRTCMBytes())
		}

		// EOF is sticky.
		if _, err := r.Next(); err != io.EOF {
			t.Errorf("%s: want io.EOF after the end, got %v", td.description, err)
		}
	}
}

// TestReaderChecksumError checks that the Reader reports a corrupt frame
// and carries on.
func TestReaderChecksumError(t *testing.T) {
	corrupt := append([]byte(nil), rtcmtest.Frame1077...)
	corrupt[100] ^= 0x01

	r := NewReader(bytes.NewReader(stream(corrupt, rtcmtest.Frame1097)))

	_, err := r.Next()
	if !errors.Is(err, rtcmerr.ErrChecksumFailure) {
		t.Fatalf("want ErrChecksumFailure got %v", err)
	}

	frame, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if frame.MessageType != 1097 {
		t.Errorf("want 1097 got %d", frame.MessageType)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("want io.EOF got %v", err)
	}
}

// TestReaderError checks that a read error other than EOF is returned.
func TestReaderError(t *testing.T) {
	r := NewReader(iotest.TimeoutReader(bytes.NewReader(rtcmtest.Frame1077[:10])))

	_, err := r.Next()
	if !errors.Is(err, iotest.ErrTimeout) {
		t.Errorf("want timeout error, got %v", err)
	}
}

// TestReaderFalseStartAtEnd checks that a false leader whose length runs
// past the end of the input doesn't swallow the frames after it.
func TestReaderFalseStartAtEnd(t *testing.T) {
	var testData = []struct {
		description string
		input       []byte
		want        []int
		wantSkipped int64
	}{
		{"one frame", stream([]byte{0xd3, 0x03, 0xff}, rtcmtest.Frame1077), []int{1077}, 3},
		{"two frames", stream([]byte{0xd3, 0x02, 0x00}, rtcmtest.Frame1077, rtcmtest.Frame1127), []int{1077, 1127}, 3},
		{"false start only", []byte{0xd3, 0x01, 0x00, 0x01}, nil, 4},
	}

	for _, td := range testData {
		r := NewReader(bytes.NewReader(td.input))
		var got []int
		for {
			frame, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("%s: %v", td.description, err)
			}
			got = append(got, frame.MessageType)
		}

		if len(got) != len(td.want) {
			t.Errorf("%s: want %v got %v", td.description, td.want, got)
		} else {
			for i := range td.want {
				if got[i] != td.want[i] {
					t.Errorf("%s: want %v got %v", td.description, td.want, got)
					break
				}
			}
		}

		if r.Extractor().NonRTCMBytes() != td.wantSkipped {
			t.Errorf("%s: want %d skipped bytes got %d",
				td.description, td.wantSkipped, r.Extractor().NonRTCMBytes())
		}
	}
}

// The rtcmerr package defines the errors produced while decoding RTCM3
// data.  Each decoding function wraps one of these values with details of
// what went wrong, so callers can classify a failure with errors.Is:
//
//	if errors.Is(err, rtcmerr.ErrChecksumFailure) {
//	    // The frame was discarded and the stream resynchronised.
//	}
//
// None of the errors is fatal.  Each is scoped to a frame, a message or
// a cell, and decoding can continue with the next frame.
package rtcmerr

import "errors"

// ErrNeedMoreData is returned by the frame extractor when the buffer does
// not yet hold a complete frame.  It's not a failure.  The caller should
// append more data and try again.
var ErrNeedMoreData = errors.New("need more data")

// ErrOutOfRange is returned by the bit cursor when a read runs off the end
// of the buffer.
var ErrOutOfRange = errors.New("overrun")

// ErrChecksumFailure means that a frame's CRC did not match its contents.
var ErrChecksumFailure = errors.New("CRC check failed")

// ErrMalformedHeader means that an MSM header could not be decoded, usually
// because the payload is shorter than the masks require.
var ErrMalformedHeader = errors.New("malformed MSM header")

// ErrMalformedCell means that the payload is too short for the satellite
// or signal cells declared by the header.
var ErrMalformedCell = errors.New("malformed MSM cell data")

// ErrUnsupportedSignal means that a signal ID has no entry in the signal
// code table for its constellation.  The cell is dropped.
var ErrUnsupportedSignal = errors.New("unsupported signal")

// ErrInvalidRoughRange means that a satellite's rough range carries the
// invalid marker.  Observables for that satellite are marked invalid.
var ErrInvalidRoughRange = errors.New("invalid rough range")

// ErrTemporalRegression means that an MSM is timestamped earlier than the
// epoch that was being built from earlier messages.
var ErrTemporalRegression = errors.New("epoch time went backwards")

// ErrUnsupportedMessage means that the message is an MSM for a
// constellation that the decoder can't reconstruct.
var ErrUnsupportedMessage = errors.New("unsupported message")

// ErrUnknownWeek means that an MSM arrived before the GNSS week for its
// constellation was known, so its timestamp could not be resolved.
var ErrUnknownWeek = errors.New("GNSS week not known")

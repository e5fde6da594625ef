// The handler package turns a stream of RTCM3 message frames into RINEX
// observation epochs.
//
//	h := handler.New(handler.Options{
//	    ReferenceTime: referenceDate,
//	    Tables:        signalcode.NewTables(),
//	    Logger:        logger,
//	    Stats:         stats.New(registry),
//	})
//
// creates a handler.  Each frame from a frame.Reader is passed to
// HandleFrame, which returns any epochs that the frame completed plus any
// warnings.  At the end of the input, Flush returns the epochs still under
// construction.
//
// RTCM messages contain a timestamp that rolls over each week.  To make
// sense of the timestamp the handler needs to know which week the data was
// collected in.  That can come from a reference time given by the caller,
// any time within the week.  Without one, the week for each constellation
// is taken from its first ephemeris message and MSMs that arrive before
// that are skipped.  Times are in the GPS time scale because that's what
// RINEX observation files use.  Galileo time keeps GPS time and BeiDou
// time is 14 seconds behind.
//
// A Handler is not safe for concurrent use.  To convert several streams at
// once, use one Handler per stream.  They can share the signal tables and
// the stats.
package handler

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/goblimey/go-tools/clock"
	"github.com/goblimey/go-tools/switchwriter"
	"go.uber.org/multierr"

	"github.com/goblimey/go-rtcm2rinex/rtcm/ephemeris"
	"github.com/goblimey/go-rtcm2rinex/rtcm/epoch"
	"github.com/goblimey/go-rtcm2rinex/rtcm/frame"
	"github.com/goblimey/go-rtcm2rinex/rtcm/lockstatus"
	"github.com/goblimey/go-rtcm2rinex/rtcm/message"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/observable"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/signalcode"
	"github.com/goblimey/go-rtcm2rinex/rtcm/station"
	"github.com/goblimey/go-rtcm2rinex/rtcm/stats"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

const week = 7 * 24 * time.Hour

// Options configures a Handler.
type Options struct {
	// ReferenceTime is any time (UTC) in the week in which the data was
	// collected.  If it's zero, the week comes from ephemeris messages.
	ReferenceTime time.Time

	// Tables holds the signal codes.  If nil, signalcode.NewTables is used.
	Tables *signalcode.Tables

	// Logger receives debug and info events.  If nil, nothing is logged.
	Logger *slog.Logger

	// Stats counts frames and epochs.  If nil, nothing is counted.
	Stats *stats.Stats

	// LLIMethod chooses the loss of lock rule.
	LLIMethod lockstatus.Method

	// Clock resolves the 10-bit GPS week in a 1019 message.  If nil, the
	// system clock is used.
	Clock clock.Clock

	// LogLevel controls the verbosity of the station position display.
	LogLevel slog.Level
}

// weekState tracks the week for one constellation.
type weekState struct {
	// start is the start of the current week, GPS time.
	start time.Time
	// previous is the time of week of the previous MSM, converted to
	// GPS time.
	previous     time.Duration
	havePrevious bool
}

// Handler is the per-stream decoding pipeline.
type Handler struct {
	reconstructor *observable.Reconstructor
	builder       *epoch.Builder
	logger        *slog.Logger
	stats         *stats.Stats
	clock         clock.Clock
	logLevel      slog.Level

	weeks map[msm.Constellation]*weekState

	station       *station.Position
	stationID     uint
	haveStationID bool

	firstEpoch time.Time
	lastEpoch  time.Time

	// types records the RINEX observation types seen, by constellation
	// and then by code.
	types map[msm.Constellation]map[string]map[byte]bool
}

// New creates a handler.
func New(options Options) *Handler {
	tables := options.Tables
	if tables == nil {
		tables = signalcode.NewTables()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(switchwriter.New(), nil))
	}
	c := options.Clock
	if c == nil {
		c = clock.NewSystemClock()
	}

	h := Handler{
		reconstructor: observable.NewReconstructor(tables),
		builder:       epoch.NewBuilder(lockstatus.NewTracker(options.LLIMethod)),
		logger:        logger,
		stats:         options.Stats,
		clock:         c,
		logLevel:      options.LogLevel,
		weeks:         make(map[msm.Constellation]*weekState),
		types:         make(map[msm.Constellation]map[string]map[byte]bool),
	}

	if !options.ReferenceTime.IsZero() {
		// Convert the reference time to GPS time, which may move it into
		// the next week.  The reference can be any day in the week, so it
		// only fixes the week.  Rollover is checked between MSMs.
		gpsTime := options.ReferenceTime.In(utils.LocationUTC).Add(-utils.GPSTimeOffset)
		start := ephemeris.WeekStart(ephemeris.WeekNumber(gpsTime))
		for _, c := range []msm.Constellation{msm.GPS, msm.Galileo, msm.BeiDou} {
			h.weeks[c] = &weekState{start: start}
		}
	}

	return &h
}

// HandleFrame processes one frame and returns any epochs that it
// completed.  The error, if not nil, may combine several warnings, which
// can be taken apart with multierr.Errors.  None of them is fatal and the
// caller should carry on with the next frame.
func (h *Handler) HandleFrame(f *frame.RawFrame) ([]*epoch.Epoch, error) {
	if h.stats != nil {
		h.stats.Frame(f.MessageType)
	}

	switch {
	case msm.IsMSM(f.MessageType):
		return h.handleMSM(f)
	case ephemeris.IsEphemeris(f.MessageType):
		return nil, h.handleEphemeris(f)
	case f.MessageType == utils.MessageType1005 || f.MessageType == utils.MessageType1006:
		return nil, h.handleStation(f)
	default:
		h.logger.Debug("ignoring message", "type", f.MessageType, "title", utils.GetTitle(f.MessageType))
		return nil, nil
	}
}

// Flush returns the epochs still under construction.
func (h *Handler) Flush() []*epoch.Epoch {
	epochs := h.builder.Flush()
	h.record(epochs)
	return epochs
}

// Station returns the position from the last 1005 or 1006 message, nil if
// there wasn't one.
func (h *Handler) Station() *station.Position {
	return h.station
}

// StationID returns the station ID from the first message that carried
// one.  The result is false if there hasn't been one.
func (h *Handler) StationID() (uint, bool) {
	return h.stationID, h.haveStationID
}

// FirstEpoch returns the time of the earliest epoch produced so far, zero
// if there hasn't been one.
func (h *Handler) FirstEpoch() time.Time {
	return h.firstEpoch
}

// LastEpoch returns the time of the latest epoch produced so far.
func (h *Handler) LastEpoch() time.Time {
	return h.lastEpoch
}

// Week returns the current GPS week for a constellation.  The result is
// false if the week is not yet known.
func (h *Handler) Week(constellation msm.Constellation) (int, bool) {
	w, ok := h.weeks[constellation]
	if !ok {
		return 0, false
	}
	return ephemeris.WeekNumber(w.start), true
}

// ObservationTypes returns the RINEX observation types seen for each
// constellation, for example "C1C", "L1C", "D1C", "S1C".  The codes are in
// order and the types for each code are in the order C, L, D, S.
func (h *Handler) ObservationTypes() map[msm.Constellation][]string {
	result := make(map[msm.Constellation][]string)
	for c, codes := range h.types {
		names := make([]string, 0, len(codes))
		for code := range codes {
			names = append(names, code)
		}
		sort.Strings(names)

		var types []string
		for _, code := range names {
			for _, kind := range []byte{'C', 'L', 'D', 'S'} {
				if codes[code][kind] {
					types = append(types, string(kind)+code)
				}
			}
		}
		result[c] = types
	}
	return result
}

func (h *Handler) handleMSM(f *frame.RawFrame) ([]*epoch.Epoch, error) {
	m, err := message.GetMessage(f.Payload())
	if err != nil {
		return nil, fmt.Errorf("message type %d: %w", f.MessageType, err)
	}
	if h.logLevel == slog.LevelDebug {
		h.logger.Debug("MSM", "type", f.MessageType, "message", m.String())
	}

	observables, warnings := h.reconstructor.Reconstruct(m)
	if observables == nil && warnings != nil {
		// The constellation is not supported.
		return nil, warnings
	}

	constellation := m.Header.Constellation
	t, err := h.epochTime(constellation, m.Header.EpochTime)
	if err != nil {
		return nil, multierr.Append(warnings, err)
	}

	h.noteStationID(m.Header.StationID)
	h.noteTypes(constellation, observables, m.Header.Variant.HasRates())

	finished, err := h.builder.Add(constellation, m.Header.StationID, t, observables)
	h.record(finished)

	return finished, multierr.Append(warnings, err)
}

// epochTime converts the timestamp from an MSM header to GPS time.  If the
// timestamp is more than half a week earlier than the previous one for the
// constellation, the week has rolled over.
func (h *Handler) epochTime(constellation msm.Constellation, timestamp uint) (time.Time, error) {
	if timestamp > utils.MaxTimestamp {
		return time.Time{}, fmt.Errorf("%w - %s timestamp %d out of range",
			rtcmerr.ErrMalformedHeader, constellation, timestamp)
	}

	w, ok := h.weeks[constellation]
	if !ok {
		return time.Time{}, fmt.Errorf("%w - %s message before any %s ephemeris",
			rtcmerr.ErrUnknownWeek, constellation, constellation)
	}

	timeOfWeek := time.Duration(timestamp) * time.Millisecond
	if constellation == msm.BeiDou {
		timeOfWeek += utils.BeidouTimeOffset
	}

	if w.havePrevious && w.previous-timeOfWeek > week/2 {
		w.start = w.start.Add(week)
		h.logger.Info("week rolled over", "constellation", constellation.String(),
			"week", ephemeris.WeekNumber(w.start))
	}
	w.previous = timeOfWeek
	w.havePrevious = true

	return w.start.Add(timeOfWeek), nil
}

// handleEphemeris sets the week for a constellation from its first
// ephemeris message.  Later ones are ignored.
func (h *Handler) handleEphemeris(f *frame.RawFrame) error {
	wk, err := ephemeris.GetWeek(f.Payload(), h.clock.Now())
	if err != nil {
		return err
	}
	if _, ok := h.weeks[wk.Constellation]; ok {
		return nil
	}

	h.weeks[wk.Constellation] = &weekState{start: wk.Start()}
	h.logger.Info("week set from ephemeris", "constellation", wk.Constellation.String(),
		"satellite", wk.Satellite, "week", wk.Number)
	return nil
}

func (h *Handler) handleStation(f *frame.RawFrame) error {
	p, err := station.GetPosition(f.Payload(), h.logLevel)
	if err != nil {
		return err
	}
	h.station = p
	h.noteStationID(p.StationID)
	h.logger.Debug("station position", "position", p.String())
	return nil
}

func (h *Handler) noteStationID(id uint) {
	if !h.haveStationID {
		h.stationID = id
		h.haveStationID = true
	}
}

func (h *Handler) noteTypes(constellation msm.Constellation, observables []observable.Observable, doppler bool) {
	codes, ok := h.types[constellation]
	if !ok {
		codes = make(map[string]map[byte]bool)
		h.types[constellation] = codes
	}
	for i := range observables {
		kinds, ok := codes[observables[i].Code]
		if !ok {
			kinds = make(map[byte]bool)
			codes[observables[i].Code] = kinds
		}
		kinds['C'] = true
		kinds['L'] = true
		kinds['S'] = true
		if doppler {
			kinds['D'] = true
		}
	}
}

// record notes the times of finished epochs and counts them.
func (h *Handler) record(epochs []*epoch.Epoch) {
	for _, e := range epochs {
		if h.firstEpoch.IsZero() || e.Time.Before(h.firstEpoch) {
			h.firstEpoch = e.Time
		}
		if e.Time.After(h.lastEpoch) {
			h.lastEpoch = e.Time
		}
		if h.stats != nil {
			h.stats.Epoch(e.Constellation, e.Len())
		}
	}
}

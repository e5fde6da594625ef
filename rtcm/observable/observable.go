// The observable package turns the signal cells of a Multiple Signal
// Message into RINEX observables - pseudorange in metres, carrier phase in
// cycles, Doppler in Hz and signal strength in dB-Hz.
//
// The values are combined the same way as RTKLIB's save_msm_obs:
//
//	P = r + pr
//	L = (r + cp) * f / c
//	D = -(rr + rrf) * f / c
//
// where r is the rough range from the satellite cell, rr is the rough
// phase range rate, pr, cp and rrf are the fine values from the signal
// cell, f is the carrier frequency and c is the speed of light.
package observable

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/goblimey/go-rtcm2rinex/rtcm/message"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/signal"
	"github.com/goblimey/go-rtcm2rinex/rtcm/signalcode"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Observable holds the observations of one signal from one satellite.
type Observable struct {
	Constellation msm.Constellation
	Satellite     uint
	// Code is the RINEX observation code without the type letter, eg "1C".
	Code string

	// Pseudorange in metres.
	Pseudorange      float64
	PseudorangeValid bool

	// Phase is the carrier phase in cycles.
	Phase      float64
	PhaseValid bool

	// Doppler in Hz.
	Doppler      float64
	DopplerValid bool

	// SNR is the carrier to noise ratio in dB-Hz.
	SNR      float64
	SNRValid bool

	// LockTime is the lock time indicator from the signal cell.
	// ExtendedLockTime is true if it's the 10-bit MSM6/7 version.
	LockTime         uint
	ExtendedLockTime bool

	// HalfCycle is the half-cycle ambiguity flag.
	HalfCycle bool

	// LLI is the loss of lock indicator written to the RINEX file.  It's
	// set when the observable is added to an epoch.
	LLI int

	// Valid is false if the satellite's rough range was invalid.
	Valid bool
}

// Key identifies an observable within an epoch.
type Key struct {
	Satellite uint
	Code      string
}

// Key returns the observable's key.
func (o *Observable) Key() Key {
	return Key{Satellite: o.Satellite, Code: o.Code}
}

// SatelliteName returns the RINEX satellite name, eg "G04".
func (o *Observable) SatelliteName() string {
	return fmt.Sprintf("%c%02d", o.Constellation.Letter(), o.Satellite)
}

// String returns a readable version of the observable.
func (o *Observable) String() string {
	value := func(v float64, valid bool, format string) string {
		if !valid {
			return "-"
		}
		return fmt.Sprintf(format, v)
	}
	return fmt.Sprintf("%s %s P %s L %s D %s S %s lock %d LLI %d",
		o.SatelliteName(), o.Code,
		value(o.Pseudorange, o.PseudorangeValid, "%.4f"),
		value(o.Phase, o.PhaseValid, "%.4f"),
		value(o.Doppler, o.DopplerValid, "%.4f"),
		value(o.SNR, o.SNRValid, "%.2f"),
		o.LockTime, o.LLI)
}

// Reconstructor converts decoded messages to observables.
type Reconstructor struct {
	tables *signalcode.Tables
}

// NewReconstructor creates a Reconstructor that uses the given signal
// tables.
func NewReconstructor(tables *signalcode.Tables) *Reconstructor {
	return &Reconstructor{tables: tables}
}

// Reconstruct returns the observables for the signals in a message.  If
// the message is from a constellation with no signal table, the result is
// an error wrapping rtcmerr.ErrUnsupportedMessage and no observables.
//
// Otherwise the error, if not nil, is a list of warnings, which can be
// taken apart with multierr.Errors.  A signal with no RINEX code is dropped
// with an rtcmerr.ErrUnsupportedSignal warning.  A signal from a satellite
// whose rough range is invalid is returned with Valid false and an
// rtcmerr.ErrInvalidRoughRange warning.
func (r *Reconstructor) Reconstruct(m *message.Message) ([]Observable, error) {
	constellation := m.Header.Constellation
	table, ok := r.tables.For(constellation)
	if !ok {
		return nil, fmt.Errorf("%w - message type %d (%s)",
			rtcmerr.ErrUnsupportedMessage, m.Header.MessageType, constellation)
	}

	var warnings error
	observables := make([]Observable, 0, len(m.Signals))
	for i := range m.Signals {
		cell := &m.Signals[i]
		sig, err := table.Lookup(cell.SignalID)
		if err != nil {
			warnings = multierr.Append(warnings,
				fmt.Errorf("satellite %c%02d: %w", constellation.Letter(), cell.SatelliteID, err))
			continue
		}

		o := build(constellation, cell, sig)
		if !o.Valid {
			warnings = multierr.Append(warnings,
				fmt.Errorf("%w - satellite %s signal %s", rtcmerr.ErrInvalidRoughRange, o.SatelliteName(), o.Code))
		}
		observables = append(observables, o)
	}

	return observables, warnings
}

// build creates the observable for one signal cell.
func build(constellation msm.Constellation, cell *signal.Cell, sig signalcode.Signal) Observable {
	o := Observable{
		Constellation:    constellation,
		Satellite:        cell.SatelliteID,
		Code:             sig.Code,
		LockTime:         cell.LockTime,
		ExtendedLockTime: cell.ExtendedLockTime(),
		HalfCycle:        cell.HalfCycle,
		Valid:            cell.Satellite.RangeValid(),
	}

	o.Pseudorange, o.PseudorangeValid = cell.PseudorangeMetres()

	if phaseRange, ok := cell.PhaseRangeMetres(); ok {
		o.Phase = phaseRange * sig.Frequency / utils.SpeedOfLightMS
		o.PhaseValid = true
	}

	if rate, ok := cell.PhaseRangeRate(); ok {
		o.Doppler = -rate * sig.Frequency / utils.SpeedOfLightMS
		o.DopplerValid = true
	}

	o.SNR, o.SNRValid = cell.SNR()

	return o
}

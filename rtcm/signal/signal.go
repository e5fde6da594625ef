// The signal package handles the signal cells of a Multiple Signal
// Message.  Each signal cell holds small deltas which are combined with the
// rough values in the satellite cell to give the pseudorange, phase range
// and (MSM5 and MSM7) phase range rate of one signal from one satellite.
// For convenience the satellite cell is copied into the signal cell.
package signal

import (
	"fmt"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/header"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/satellite"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Cell holds the data for one signal from one satellite.
type Cell struct {
	// Field names, sizes, invalid values etc are derived from rtklib rtcm3.c
	// (decode_msm4 and decode_msm7 functions).

	// Variant describes the message that the cell came from.
	Variant msm.Variant

	// Satellite is a copy of the satellite cell.
	Satellite satellite.Cell

	// SatelliteID is the satellite ID, 1-64.
	SatelliteID uint

	// SignalID is the ID of the signal, 1-32.
	SignalID uint

	// SatelliteIndex and SignalIndex give the position of the cell in the
	// header's cell mask.
	SatelliteIndex int
	SignalIndex    int

	// FinePseudorange - int15 (MSM4/5) or int20 (MSM6/7) - a small signed
	// delta added to the rough range.  The most negative value is invalid.
	FinePseudorange  int64
	PseudorangeValid bool

	// FinePhase - int22 (MSM4/5) or int24 (MSM6/7) - the phase range delta.
	// The most negative value is invalid.
	FinePhase  int64
	PhaseValid bool

	// LockTime - uint4 (MSM4/5) or uint10 (MSM6/7) - the lock time
	// indicator.
	LockTime uint

	// HalfCycle is the half-cycle ambiguity flag.
	HalfCycle bool

	// CNR - uint6 (MSM4/5, 1 dB-Hz) or uint10 (MSM6/7, 2^-4 dB-Hz) - carrier
	// to noise ratio.  Zero means not measured.
	CNR uint

	// FineRate - int15, MSM5/7 only - the phase range rate delta in units
	// of 0.0001 m/s.  -16384 is invalid.
	FineRate  int64
	RateValid bool
}

// ExtendedLockTime is true if the lock time is the 10-bit extended
// resolution indicator of MSM6 and MSM7.
func (cell *Cell) ExtendedLockTime() bool {
	return cell.Variant.LockTime == 10
}

// PseudorangeMetres returns the pseudorange in metres.  The second result
// is false if the satellite's rough range or the signal's fine pseudorange
// is invalid.
func (cell *Cell) PseudorangeMetres() (float64, bool) {
	r, ok := cell.Satellite.RoughRangeMetres()
	if !ok || !cell.PseudorangeValid {
		return 0, false
	}
	return r + float64(cell.FinePseudorange)*cell.Variant.PseudorangeScale*utils.OneLightMillisecond, true
}

// PhaseRangeMetres returns the phase range in metres.  Divide by the
// wavelength to get cycles.
func (cell *Cell) PhaseRangeMetres() (float64, bool) {
	r, ok := cell.Satellite.RoughRangeMetres()
	if !ok || !cell.PhaseValid {
		return 0, false
	}
	return r + float64(cell.FinePhase)*cell.Variant.PhaseScale*utils.OneLightMillisecond, true
}

// PhaseRangeRate returns the phase range rate in metres per second.  It's
// only available if both the rough and the fine rate are valid.
func (cell *Cell) PhaseRangeRate() (float64, bool) {
	rough, ok := cell.Satellite.RoughRateMetres()
	if !ok || !cell.RateValid {
		return 0, false
	}
	return rough + float64(cell.FineRate)*msm.FineRateScale, true
}

// SNR returns the carrier to noise ratio in dB-Hz.  The second result is
// false if it was not measured.
func (cell *Cell) SNR() (float64, bool) {
	if cell.CNR == 0 {
		return 0, false
	}
	return float64(cell.CNR) * cell.Variant.CNRScale, true
}

// String returns a readable version of a signal cell.
func (cell *Cell) String() string {
	rangeM := "invalid"
	if r, ok := cell.PseudorangeMetres(); ok {
		rangeM = fmt.Sprintf("%.3f", r)
	}

	phaseRange := "invalid"
	if pr, ok := cell.PhaseRangeMetres(); ok {
		phaseRange = fmt.Sprintf("%.3f", pr)
	}

	snr, _ := cell.SNR()

	line := fmt.Sprintf("%2d %2d {%s %s %d, %v, %.2f",
		cell.SatelliteID, cell.SignalID, rangeM, phaseRange,
		cell.LockTime, cell.HalfCycle, snr)

	if cell.Variant.HasRates() {
		rate := "invalid"
		if prr, ok := cell.PhaseRangeRate(); ok {
			rate = fmt.Sprintf("%.4f", prr)
		}
		line += ", " + rate
	}

	return line + "}"
}

// GetSignalCells gets the data from the signal cells of an MSM.  The
// cursor should be at the start of the signal cells, just after the
// satellite cells.  The result has one entry per set bit in the cell mask,
// in the order given by the header's cell list.  If the message is too
// short to hold that many cells, the result is an error wrapping
// rtcmerr.ErrMalformedCell.
func GetSignalCells(c *bitcursor.Cursor, h *header.Header, satellites []satellite.Cell) ([]Cell, error) {
	// The third part of the message bit stream is the signal data.  Each
	// satellite can send many signals, each on a different frequency.  For
	// example, if we observe one signal from satellite 2, two from satellite
	// 3 and 2 from satellite 15, there will be five sets of signal data.
	// Irritatingly they are not laid out in a convenient way.  First, we get
	// the pseudo range delta values for each of the five signals, followed by
	// all of the phase range delta values, and so on.

	v := h.Variant
	n := h.NumSignalCells

	if len(satellites) != len(h.Satellites) {
		return nil, fmt.Errorf("%w - want %d satellite cells, got %d",
			rtcmerr.ErrMalformedCell, len(h.Satellites), len(satellites))
	}

	minBits := uint(n) * v.SignalCellBits()
	if c.Remaining() < minBits {
		return nil, fmt.Errorf("%w - overrun - want %d %s signal cells - need %d bits, got %d",
			rtcmerr.ErrMalformedCell, n, v.Kind, minBits, c.Remaining())
	}

	cells := make([]Cell, n)
	for i, position := range h.CellList {
		cells[i] = Cell{
			Variant:        v,
			Satellite:      satellites[position.SatelliteIndex],
			SatelliteID:    position.SatelliteID,
			SignalID:       position.SignalID,
			SatelliteIndex: position.SatelliteIndex,
			SignalIndex:    position.SignalIndex,
		}
	}

	// The length has been checked, so none of these reads can fail.

	for i := range cells {
		cells[i].FinePseudorange, _ = c.ReadSigned(v.FinePseudorange)
		cells[i].PseudorangeValid = cells[i].FinePseudorange != v.InvalidPseudorange
	}

	for i := range cells {
		cells[i].FinePhase, _ = c.ReadSigned(v.FinePhase)
		cells[i].PhaseValid = cells[i].FinePhase != v.InvalidPhase
	}

	for i := range cells {
		lock, _ := c.Read(v.LockTime)
		cells[i].LockTime = uint(lock)
	}

	for i := range cells {
		cells[i].HalfCycle, _ = c.ReadBool()
	}

	for i := range cells {
		cnr, _ := c.Read(v.CNR)
		cells[i].CNR = uint(cnr)
	}

	if v.FineRate > 0 {
		for i := range cells {
			cells[i].FineRate, _ = c.ReadSigned(v.FineRate)
			cells[i].RateValid = cells[i].FineRate != msm.InvalidFineRate
		}
	}

	return cells, nil
}

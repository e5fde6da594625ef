// The satellite package handles the satellite cells of a Multiple Signal
// Message.  The satellite cells follow the header in the message.  Each
// cell contains the data about one satellite: the approximate (rough)
// range and, for MSM5 and MSM7, the extended satellite information and the
// rough phase range rate.  The rough range is expressed in light
// milliseconds, ie the approximate transit time of the signals from the
// satellite to the GNSS device in whole milliseconds and fractional
// milliseconds.  The real transit time of each signal can be slightly
// different due to factors such as ionospheric distortion.  Each signal
// cell contains a small delta which is added to the rough value given here
// to give the transit time of that signal.
package satellite

import (
	"fmt"

	"github.com/goblimey/go-rtcm2rinex/rtcm/bitcursor"
	"github.com/goblimey/go-rtcm2rinex/rtcm/header"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Cell holds the data from one satellite cell.
type Cell struct {
	// The field names, types and sizes and invalid values are shown in comments
	// in rtklib rtcm3.c - see the function decode_msm7().

	// ID is the satellite ID, 1-64.
	ID uint

	// RangeMillis - uint8 - the number of integer milliseconds in the
	// GNSS Satellite range (ie the transit time of the signals).  0xff
	// indicates an invalid value.
	RangeMillis uint

	// ExtendedInfo - uint4 - Extended Satellite Information.  MSM5 and
	// MSM7 only.
	ExtendedInfo uint

	// RangeFraction - uint10 - the fractional part of the range in units
	// of 1/1024 milliseconds.
	RangeFraction uint

	// RoughRate - int14 - the approximate phase range rate in metres per
	// second for all signals from this satellite.  MSM5 and MSM7 only.
	// -8192 indicates an invalid value.
	RoughRate int64

	// HasRate is true if the message carries a rough rate.
	HasRate bool
}

// RangeValid is true if the rough range is valid.
func (cell *Cell) RangeValid() bool {
	return cell.RangeMillis != msm.InvalidRangeMillis
}

// RoughRangeMillis returns the rough range (transit time) in milliseconds.
func (cell *Cell) RoughRangeMillis() float64 {
	return float64(cell.RangeMillis) + float64(cell.RangeFraction)*msm.RangeFractionScale
}

// RoughRangeMetres returns the rough range in metres.  The second result
// is false if the range is invalid.
func (cell *Cell) RoughRangeMetres() (float64, bool) {
	if !cell.RangeValid() {
		return 0, false
	}
	r := float64(cell.RangeMillis)*utils.OneLightMillisecond +
		float64(cell.RangeFraction)*msm.RangeFractionScale*utils.OneLightMillisecond
	return r, true
}

// RateValid is true if the cell carries a valid rough phase range rate.
func (cell *Cell) RateValid() bool {
	return cell.HasRate && cell.RoughRate != msm.InvalidRoughRate
}

// RoughRateMetres returns the rough phase range rate in metres per
// second.  The second result is false if the rate is missing or invalid.
func (cell *Cell) RoughRateMetres() (float64, bool) {
	if !cell.RateValid() {
		return 0, false
	}
	return float64(cell.RoughRate), true
}

// String returns a readable version of the cell, for example
// "25 {81.036, 0, 3327}".
func (cell *Cell) String() string {

	approxRange := "invalid"
	if cell.RangeValid() {
		approxRange = fmt.Sprintf("%.3f", cell.RoughRangeMillis())
	}

	if !cell.HasRate {
		return fmt.Sprintf("%2d {%s}", cell.ID, approxRange)
	}

	rate := "invalid"
	if cell.RateValid() {
		rate = fmt.Sprintf("%d", cell.RoughRate)
	}

	return fmt.Sprintf("%2d {%s, %d, %s}", cell.ID, approxRange, cell.ExtendedInfo, rate)
}

// GetSatelliteCells extracts the satellite cells from an MSM.  The cursor
// should be at the end of the header and is left at the start of the
// signal cells.  If there are not enough bits left for all the satellites
// in the header, it returns an error wrapping rtcmerr.ErrMalformedCell.
func GetSatelliteCells(c *bitcursor.Cursor, h *header.Header) ([]Cell, error) {
	// The data are laid out column-wise.  If signals were observed from
	// satellites 2, 3 and 15, the bit stream contains three rough range
	// values, followed by three extended info values (MSM5 and MSM7),
	// followed by three fractional range values and so on.
	//
	// It's more convenient to represent these data as a list of cells, one
	// cell per satellite, so we gather the values into the cells column by
	// column.

	v := h.Variant
	n := len(h.Satellites)

	minBits := uint(n) * v.SatelliteCellBits()
	if c.Remaining() < minBits {
		return nil, fmt.Errorf("%w - overrun - not enough data for %d %s satellite cells - need %d bits, got %d",
			rtcmerr.ErrMalformedCell, n, v.Kind, minBits, c.Remaining())
	}

	cells := make([]Cell, n)
	for i := range cells {
		cells[i].ID = h.Satellites[i]
		cells[i].HasRate = v.HasRates()
	}

	// The length has been checked, so none of these reads can fail.

	for i := range cells {
		cells[i].RangeMillis = read(c, v.RangeMillis)
	}

	if v.ExtendedInfo > 0 {
		for i := range cells {
			cells[i].ExtendedInfo = read(c, v.ExtendedInfo)
		}
	}

	for i := range cells {
		cells[i].RangeFraction = read(c, v.RangeFraction)
	}

	if v.RoughRate > 0 {
		for i := range cells {
			cells[i].RoughRate, _ = c.ReadSigned(v.RoughRate)
		}
	}

	return cells, nil
}

func read(c *bitcursor.Cursor, n uint) uint {
	value, _ := c.Read(n)
	return uint(value)
}

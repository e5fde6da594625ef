// The signalcode package maps the signal IDs in a Multiple Signal Message
// to RINEX observation codes and carrier frequencies.  An MSM signal ID is
// 1-32 and its meaning depends on the constellation.  For example signal 2
// from a GPS satellite is the L1 C/A code, RINEX code "1C", at 1575.42 MHz,
// while signal 2 from a BeiDou satellite is B1I, RINEX code "2I", at
// 1561.098 MHz.
//
// The tables are built once by NewTables and never changed, so they can be
// shared by any number of goroutines.
package signalcode

import (
	"fmt"

	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Signal describes one signal type.
type Signal struct {
	// Code is the two character RINEX observation code, for example "1C".
	Code string
	// Frequency is the carrier frequency in Hz.
	Frequency float64
}

// Wavelength returns the carrier wavelength in metres.
func (s Signal) Wavelength() float64 {
	return utils.SpeedOfLightMS / s.Frequency
}

// Table holds the signals of one constellation, indexed by signal ID.
type Table struct {
	constellation msm.Constellation
	signals       [33]Signal
}

// Constellation returns the constellation that the table describes.
func (t *Table) Constellation() msm.Constellation {
	return t.constellation
}

// Lookup returns the signal with the given ID.  If the ID has no RINEX
// code, the result is an error wrapping rtcmerr.ErrUnsupportedSignal.
func (t *Table) Lookup(signalID uint) (Signal, error) {
	if signalID < 1 || signalID > 32 || t.signals[signalID].Code == "" {
		return Signal{}, fmt.Errorf("%w - %s signal ID %d",
			rtcmerr.ErrUnsupportedSignal, t.constellation, signalID)
	}
	return t.signals[signalID], nil
}

// Tables holds one Table per supported constellation.
type Tables struct {
	tables map[msm.Constellation]*Table
}

// For returns the table for a constellation.  The second result is false
// if the constellation is not supported.
func (t *Tables) For(constellation msm.Constellation) (*Table, bool) {
	table, ok := t.tables[constellation]
	return table, ok
}

// entry is one row of a table definition - a signal ID, a code and a
// frequency.
type entry struct {
	id        uint
	code      string
	frequency float64
}

var gpsSignals = []entry{
	{2, "1C", utils.Freq1}, {3, "1P", utils.Freq1}, {4, "1W", utils.Freq1},
	{8, "2C", utils.Freq2}, {9, "2P", utils.Freq2}, {10, "2W", utils.Freq2},
	{15, "2S", utils.Freq2}, {16, "2L", utils.Freq2}, {17, "2X", utils.Freq2},
	{22, "5I", utils.Freq5}, {23, "5Q", utils.Freq5}, {24, "5X", utils.Freq5},
	{30, "1S", utils.Freq1}, {31, "1L", utils.Freq1}, {32, "1X", utils.Freq1},
}

var galileoSignals = []entry{
	{2, "1C", utils.Freq1}, {3, "1A", utils.Freq1}, {4, "1B", utils.Freq1},
	{5, "1X", utils.Freq1}, {6, "1Z", utils.Freq1},
	{8, "6C", utils.Freq6}, {9, "6A", utils.Freq6}, {10, "6B", utils.Freq6},
	{11, "6X", utils.Freq6}, {12, "6Z", utils.Freq6},
	{14, "7I", utils.Freq7}, {15, "7Q", utils.Freq7}, {16, "7X", utils.Freq7},
	{18, "8I", utils.Freq8}, {19, "8Q", utils.Freq8}, {20, "8X", utils.Freq8},
	{22, "5I", utils.Freq5}, {23, "5Q", utils.Freq5}, {24, "5X", utils.Freq5},
}

var beidouSignals = []entry{
	{2, "2I", utils.FreqB1Beidou}, {3, "2Q", utils.FreqB1Beidou}, {4, "2X", utils.FreqB1Beidou},
	{8, "6I", utils.FreqB3Beidou}, {9, "6Q", utils.FreqB3Beidou}, {10, "6X", utils.FreqB3Beidou},
	{14, "7I", utils.Freq7}, {15, "7Q", utils.Freq7}, {16, "7X", utils.Freq7},
	{22, "5D", utils.Freq5}, {23, "5P", utils.Freq5}, {24, "5X", utils.Freq5},
	{30, "1D", utils.Freq1}, {31, "1P", utils.Freq1}, {32, "1X", utils.Freq1},
}

// NewTables builds the tables for GPS, Galileo and BeiDou.
func NewTables() *Tables {
	return &Tables{
		tables: map[msm.Constellation]*Table{
			msm.GPS:     newTable(msm.GPS, gpsSignals),
			msm.Galileo: newTable(msm.Galileo, galileoSignals),
			msm.BeiDou:  newTable(msm.BeiDou, beidouSignals),
		},
	}
}

func newTable(constellation msm.Constellation, entries []entry) *Table {
	table := Table{constellation: constellation}
	for _, e := range entries {
		table.signals[e.id] = Signal{Code: e.code, Frequency: e.frequency}
	}
	return &table
}

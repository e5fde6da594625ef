// The msm package describes the Multiple Signal Message (MSM) types.  An
// MSM message type is 107x for GPS, 108x for GLONASS, 109x for Galileo,
// 110x for SBAS, 111x for QZSS, 112x for BeiDou and 113x for NavIC, where x
// is the MSM kind (1 to 7).  The kind decides which fields the satellite
// and signal cells contain, how wide they are and how they are scaled.
// Kinds 4 to 7 carry enough information to reconstruct full observables
// and each of those message types has a Variant.
package msm

import (
	"fmt"
	"math"
)

// Kind is the MSM kind - 4, 5, 6 or 7.
type Kind int

const (
	MSM4 Kind = 4
	MSM5 Kind = 5
	MSM6 Kind = 6
	MSM7 Kind = 7
)

// String returns "MSM4", "MSM5" etc.
func (k Kind) String() string {
	return fmt.Sprintf("MSM%d", int(k))
}

// Invalid values and scales common to all kinds.
const (
	// InvalidRangeMillis is the invalid value for the 8-bit whole
	// milliseconds rough range in a satellite cell.
	InvalidRangeMillis = 0xff

	// InvalidRoughRate is the invalid value for the 14-bit signed rough
	// phase range rate in a satellite cell.
	InvalidRoughRate = -8192

	// InvalidFineRate is the invalid value for the 15-bit signed fine
	// phase range rate in a signal cell.
	InvalidFineRate = -16384

	// FineRateScale converts the fine phase range rate to metres/second.
	FineRateScale = 0.0001

	// RangeFractionScale converts the 10-bit fractional rough range to
	// milliseconds.
	RangeFractionScale = 1.0 / 1024.0
)

// Widths gives the number of bits in each field of the satellite and
// signal cells.  A zero width means that the kind doesn't carry the field.
type Widths struct {
	RangeMillis     uint
	ExtendedInfo    uint
	RangeFraction   uint
	RoughRate       uint
	FinePseudorange uint
	FinePhase       uint
	LockTime        uint
	HalfCycle       uint
	CNR             uint
	FineRate        uint
}

// Variant describes one MSM message type.  Variants are immutable.
type Variant struct {
	MessageType   int
	Constellation Constellation
	Kind          Kind
	Widths

	// PseudorangeScale converts the fine pseudorange to milliseconds.
	PseudorangeScale float64
	// PhaseScale converts the fine phase range to milliseconds.
	PhaseScale float64
	// CNRScale converts the carrier to noise ratio to dB-Hz.
	CNRScale float64

	// InvalidPseudorange and InvalidPhase are the most negative values of
	// the fine pseudorange and phase range fields.
	InvalidPseudorange int64
	InvalidPhase       int64
}

// HasRates is true if the satellite and signal cells carry phase range
// rates (and the satellite cells carry extended info), which is the case
// for MSM5 and MSM7.
func (v Variant) HasRates() bool {
	return v.Kind == MSM5 || v.Kind == MSM7
}

// SatelliteCellBits is the total length of the fields for one satellite.
func (v Variant) SatelliteCellBits() uint {
	return v.RangeMillis + v.ExtendedInfo + v.RangeFraction + v.RoughRate
}

// SignalCellBits is the total length of the fields for one signal.
func (v Variant) SignalCellBits() uint {
	return v.FinePseudorange + v.FinePhase + v.LockTime + v.HalfCycle + v.CNR + v.FineRate
}

// String returns a short description, for example "1077 GPS MSM7".
func (v Variant) String() string {
	return fmt.Sprintf("%d %s %s", v.MessageType, v.Constellation, v.Kind)
}

var kindTable = map[Kind]Variant{
	MSM4: {
		Kind: MSM4,
		Widths: Widths{
			RangeMillis: 8, RangeFraction: 10,
			FinePseudorange: 15, FinePhase: 22, LockTime: 4, HalfCycle: 1, CNR: 6,
		},
		PseudorangeScale: math.Pow(2, -24),
		PhaseScale:       math.Pow(2, -29),
		CNRScale:         1,
	},
	MSM5: {
		Kind: MSM5,
		Widths: Widths{
			RangeMillis: 8, ExtendedInfo: 4, RangeFraction: 10, RoughRate: 14,
			FinePseudorange: 15, FinePhase: 22, LockTime: 4, HalfCycle: 1, CNR: 6, FineRate: 15,
		},
		PseudorangeScale: math.Pow(2, -24),
		PhaseScale:       math.Pow(2, -29),
		CNRScale:         1,
	},
	MSM6: {
		Kind: MSM6,
		Widths: Widths{
			RangeMillis: 8, RangeFraction: 10,
			FinePseudorange: 20, FinePhase: 24, LockTime: 10, HalfCycle: 1, CNR: 10,
		},
		PseudorangeScale: math.Pow(2, -29),
		PhaseScale:       math.Pow(2, -31),
		CNRScale:         math.Pow(2, -4),
	},
	MSM7: {
		Kind: MSM7,
		Widths: Widths{
			RangeMillis: 8, ExtendedInfo: 4, RangeFraction: 10, RoughRate: 14,
			FinePseudorange: 20, FinePhase: 24, LockTime: 10, HalfCycle: 1, CNR: 10, FineRate: 15,
		},
		PseudorangeScale: math.Pow(2, -29),
		PhaseScale:       math.Pow(2, -31),
		CNRScale:         math.Pow(2, -4),
	},
}

// variants holds one Variant per MSM4-7 message type.  It's filled in by
// init and never changed afterwards.
var variants = make(map[int]Variant)

func init() {
	for c := GPS; c <= NavIC; c++ {
		for kind, v := range kindTable {
			v.MessageType = 1070 + (int(c)-1)*10 + int(kind)
			v.Constellation = c
			v.InvalidPseudorange = -(1 << (v.FinePseudorange - 1))
			v.InvalidPhase = -(1 << (v.FinePhase - 1))
			variants[v.MessageType] = v
		}
	}
}

// Lookup returns the Variant for an MSM4, MSM5, MSM6 or MSM7 message
// type.  The second result is false for any other message type.
func Lookup(messageType int) (Variant, bool) {
	v, ok := variants[messageType]
	return v, ok
}

// IsMSM is true if the message type is any kind of MSM, 1 to 7.
func IsMSM(messageType int) bool {
	if messageType < 1071 || messageType > 1137 {
		return false
	}
	kind := messageType % 10
	return kind >= 1 && kind <= 7
}

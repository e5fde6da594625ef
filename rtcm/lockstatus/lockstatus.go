// The lockstatus package works out the RINEX loss of lock indicator (LLI)
// for each carrier phase observation from the lock time indicators in
// successive MSM signal cells.
//
// The lock time indicator says how long the receiver has been continuously
// tracking a signal.  If the lock time goes down between two epochs, or
// doesn't go up as much as the time between the epochs, the receiver lost
// lock in between and the phase may have slipped.
//
// There are two methods.  The RTCM method uses the minimum lock time and
// supplementary coefficient that go with each value of the 10-bit extended
// lock time indicator (DF407) of MSM6 and MSM7 messages.  The RTKLIB method
// just compares the indicators: lock is lost if both are zero or the
// current one is less than the previous one.  The 4-bit indicators (DF402)
// of MSM4 and MSM5 messages always use the RTKLIB method.
package lockstatus

import (
	"fmt"
	"time"

	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
)

// LLI bits.
const (
	// LossOfLock means that lock was lost since the previous observation.
	LossOfLock = 1
	// HalfCycle means that there may be a half-cycle ambiguity.
	HalfCycle = 2
)

// Method is the way of detecting loss of lock.
type Method int

const (
	// RTCM uses the DF407 minimum lock times.
	RTCM Method = iota
	// RTKLIB compares successive indicators.
	RTKLIB
)

// String returns the name of the method.
func (m Method) String() string {
	switch m {
	case RTCM:
		return "RTCM"
	case RTKLIB:
		return "RTKLIB"
	default:
		return fmt.Sprintf("method %d", int(m))
	}
}

// Key identifies one signal from one satellite.
type Key struct {
	Constellation msm.Constellation
	Satellite     uint
	Code          string
}

type state struct {
	indicator uint
	epoch     time.Time
}

// Tracker remembers the last lock time indicator for each signal.  A
// Tracker is not safe for concurrent use.
type Tracker struct {
	method   Method
	previous map[Key]state
}

// NewTracker creates a Tracker that uses the given method for the 10-bit
// indicators.
func NewTracker(method Method) *Tracker {
	return &Tracker{method: method, previous: make(map[Key]state)}
}

// Method returns the tracker's method.
func (t *Tracker) Method() Method {
	return t.method
}

// Update records the lock time indicator for a signal observed at the
// given epoch and returns the LLI.  extended is true for a 10-bit DF407
// indicator.
func (t *Tracker) Update(key Key, indicator uint, extended, halfCycle bool, epoch time.Time) int {
	lli := 0
	if halfCycle {
		lli |= HalfCycle
	}

	prev, seen := t.previous[key]

	var lost bool
	if t.method == RTKLIB || !extended {
		lost = rtklibLossOfLock(prev.indicator, indicator)
	} else {
		var dt uint64
		if seen && epoch.After(prev.epoch) {
			dt = uint64(epoch.Sub(prev.epoch) / time.Millisecond)
		}
		lost = rtcmLossOfLock(prev.indicator, indicator, dt)
	}
	if lost {
		lli |= LossOfLock
	}

	t.previous[key] = state{indicator: indicator, epoch: epoch}

	return lli
}

// rtklibLossOfLock is RTKLIB's simplified test.
func rtklibLossOfLock(previous, current uint) bool {
	return (previous == 0 && current == 0) || current < previous
}

// rtcmLossOfLock applies RTCM 10403 section 3.5.12.3.2.  dt is the time
// since the previous observation in milliseconds.
func rtcmLossOfLock(previous, current uint, dt uint64) bool {
	p := MinimumLockTime(previous)
	n := MinimumLockTime(current)
	a := Coefficient(previous)

	switch {
	case p > n:
		return true
	case p == n:
		return dt >= a
	default:
		return dt > n
	}
}

// MinimumLockTime returns the minimum lock time in milliseconds for a
// DF407 indicator.  Indicators above 704 are reserved and give zero.
func MinimumLockTime(indicator uint) uint64 {
	if indicator > 704 {
		return 0
	}
	i := uint64(indicator)
	if i < 64 {
		return i
	}
	// Each band of 32 indicators doubles the step.  Band b is 1 for
	// 64-95, 2 for 96-127 and so on, with step 2^b.
	b := (i - 32) / 32
	k := uint64(1) << b
	return k*i - offset(b)
}

// offset returns the constant subtracted in band b of the DF407 table.
func offset(b uint64) uint64 {
	// offset(b) = 2*offset(b-1) + 32*2^b, offset(0) = 0.
	var o uint64
	for j := uint64(1); j <= b; j++ {
		o = 2*o + 32*(uint64(1)<<j)
	}
	return o
}

// Coefficient returns the supplementary coefficient for a DF407
// indicator.  Indicators above 704 are reserved and give zero.
func Coefficient(indicator uint) uint64 {
	if indicator > 704 {
		return 0
	}
	if indicator < 64 {
		return 1
	}
	return uint64(1) << ((uint64(indicator) - 32) / 32)
}

// The epoch package gathers observables into epochs - all the observations
// of one constellation made by one station at one time.  A receiver may
// split the observations for an epoch across several MSMs, with the
// multiple message flag set in all but the last, and it may send MSM4 and
// MSM7 messages for the same epoch.  The Builder merges these.
package epoch

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goblimey/go-rtcm2rinex/rtcm/lockstatus"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/observable"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// Epoch holds the observations of one constellation at one time.
type Epoch struct {
	// Time is in the GPS time scale.
	Time          time.Time
	Constellation msm.Constellation
	StationID     uint
	Observables   map[observable.Key]observable.Observable
}

// New creates an empty Epoch.
func New(t time.Time, constellation msm.Constellation, stationID uint) *Epoch {
	return &Epoch{
		Time:          t,
		Constellation: constellation,
		StationID:     stationID,
		Observables:   make(map[observable.Key]observable.Observable),
	}
}

// Add adds an observable.  It replaces any observable already held for the
// same satellite and signal.
func (e *Epoch) Add(o observable.Observable) {
	e.Observables[o.Key()] = o
}

// Len returns the number of observables.
func (e *Epoch) Len() int {
	return len(e.Observables)
}

// Keys returns the keys of the observables in satellite order and then
// code order.
func (e *Epoch) Keys() []observable.Key {
	keys := make([]observable.Key, 0, len(e.Observables))
	for k := range e.Observables {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Satellite != keys[j].Satellite {
			return keys[i].Satellite < keys[j].Satellite
		}
		return keys[i].Code < keys[j].Code
	})
	return keys
}

// Satellites returns the satellites observed, in order.
func (e *Epoch) Satellites() []uint {
	satellites := make([]uint, 0)
	for _, k := range e.Keys() {
		if len(satellites) == 0 || satellites[len(satellites)-1] != k.Satellite {
			satellites = append(satellites, k.Satellite)
		}
	}
	return satellites
}

// String returns a readable version of the epoch.
func (e *Epoch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s station %d, %d observables\n",
		e.Time.Format(utils.DateLayout), e.Constellation, e.StationID, e.Len())
	for _, k := range e.Keys() {
		o := e.Observables[k]
		b.WriteString(o.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Builder keeps one epoch under construction per constellation.  A
// Builder is not safe for concurrent use.
type Builder struct {
	tracker *lockstatus.Tracker
	current map[msm.Constellation]*Epoch
	emitted map[msm.Constellation]time.Time
}

// NewBuilder creates a Builder that sets the LLI of each observable
// using the given tracker.
func NewBuilder(tracker *lockstatus.Tracker) *Builder {
	return &Builder{
		tracker: tracker,
		current: make(map[msm.Constellation]*Epoch),
		emitted: make(map[msm.Constellation]time.Time),
	}
}

// Add adds the observables from one message, taken at time t.  If t is the
// time of the epoch under construction for the constellation, the
// observables are merged into it.  If t is later, the epoch under
// construction is finished and returned and a new one started.  An empty
// list of observables still starts an epoch.
//
// If t is earlier than the epoch under construction, or no later than the
// last epoch finished, the result is an error wrapping
// rtcmerr.ErrTemporalRegression.  The epoch under construction is finished
// and returned as it is and the observables are dropped.
func (b *Builder) Add(constellation msm.Constellation, stationID uint, t time.Time, observables []observable.Observable) ([]*Epoch, error) {
	var finished []*Epoch

	current := b.current[constellation]
	if current != nil {
		if t.Before(current.Time) {
			finished = append(finished, b.finish(constellation))
			return finished, fmt.Errorf("%w - %s epoch %s is before %s",
				rtcmerr.ErrTemporalRegression, constellation,
				t.Format(utils.DateLayout), current.Time.Format(utils.DateLayout))
		}
		if t.After(current.Time) {
			finished = append(finished, b.finish(constellation))
			current = nil
		}
	} else if last, ok := b.emitted[constellation]; ok && !t.After(last) {
		return nil, fmt.Errorf("%w - %s epoch %s is not after %s",
			rtcmerr.ErrTemporalRegression, constellation,
			t.Format(utils.DateLayout), last.Format(utils.DateLayout))
	}

	if current == nil {
		current = New(t, constellation, stationID)
		b.current[constellation] = current
	}

	for _, o := range observables {
		current.Add(o)
	}

	return finished, nil
}

// Flush finishes all the epochs under construction and returns them in time
// order.
func (b *Builder) Flush() []*Epoch {
	constellations := make([]msm.Constellation, 0, len(b.current))
	for c := range b.current {
		constellations = append(constellations, c)
	}

	epochs := make([]*Epoch, 0, len(constellations))
	for _, c := range constellations {
		epochs = append(epochs, b.finish(c))
	}

	sort.Slice(epochs, func(i, j int) bool {
		if !epochs[i].Time.Equal(epochs[j].Time) {
			return epochs[i].Time.Before(epochs[j].Time)
		}
		return epochs[i].Constellation < epochs[j].Constellation
	})

	return epochs
}

// finish removes the epoch under construction for a constellation and sets
// the LLI of its observables.
func (b *Builder) finish(constellation msm.Constellation) *Epoch {
	e := b.current[constellation]
	delete(b.current, constellation)
	b.emitted[constellation] = e.Time

	for _, k := range e.Keys() {
		o := e.Observables[k]
		key := lockstatus.Key{Constellation: constellation, Satellite: o.Satellite, Code: o.Code}
		o.LLI = b.tracker.Update(key, o.LockTime, o.ExtendedLockTime, o.HalfCycle, e.Time)
		e.Observables[k] = o
	}

	return e
}

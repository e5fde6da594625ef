package signalcode

import (
	"errors"
	"sync"
	"testing"

	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// TestLookup checks some table entries.
func TestLookup(t *testing.T) {
	tables := NewTables()

	var testData = []struct {
		constellation msm.Constellation
		signalID      uint
		wantCode      string
		wantFrequency float64
	}{
		{msm.GPS, 2, "1C", 1575.42e6},
		{msm.GPS, 16, "2L", 1227.60e6},
		{msm.GPS, 23, "5Q", 1176.45e6},
		{msm.GPS, 32, "1X", 1575.42e6},
		{msm.Galileo, 2, "1C", 1575.42e6},
		{msm.Galileo, 12, "6Z", 1278.75e6},
		{msm.Galileo, 15, "7Q", 1207.14e6},
		{msm.Galileo, 20, "8X", 1191.795e6},
		{msm.Galileo, 22, "5I", 1176.45e6},
		{msm.BeiDou, 2, "2I", 1561.098e6},
		{msm.BeiDou, 8, "6I", 1268.52e6},
		{msm.BeiDou, 14, "7I", 1207.14e6},
		{msm.BeiDou, 23, "5P", 1176.45e6},
		{msm.BeiDou, 30, "1D", 1575.42e6},
	}
	for _, td := range testData {
		table, ok := tables.For(td.constellation)
		if !ok {
			t.Fatalf("no table for %s", td.constellation)
		}
		if table.Constellation() != td.constellation {
			t.Errorf("want %s got %s", td.constellation, table.Constellation())
		}
		got, err := table.Lookup(td.signalID)
		if err != nil {
			t.Errorf("%s %d: %v", td.constellation, td.signalID, err)
			continue
		}
		if got.Code != td.wantCode {
			t.Errorf("%s %d: want %s got %s", td.constellation, td.signalID, td.wantCode, got.Code)
		}
		if !utils.EqualWithin(3, td.wantFrequency, got.Frequency) {
			t.Errorf("%s %d: want %f got %f", td.constellation, td.signalID, td.wantFrequency, got.Frequency)
		}
	}
}

// TestLookupMiss checks that signals without a code are rejected.
func TestLookupMiss(t *testing.T) {
	tables := NewTables()

	var testData = []struct {
		constellation msm.Constellation
		signalID      uint
		wantError     string
	}{
		{msm.GPS, 1, "unsupported signal - GPS signal ID 1"},
		{msm.GPS, 0, "unsupported signal - GPS signal ID 0"},
		{msm.GPS, 33, "unsupported signal - GPS signal ID 33"},
		{msm.Galileo, 7, "unsupported signal - Galileo signal ID 7"},
		{msm.Galileo, 30, "unsupported signal - Galileo signal ID 30"},
		{msm.BeiDou, 5, "unsupported signal - BeiDou signal ID 5"},
	}
	for _, td := range testData {
		table, _ := tables.For(td.constellation)
		_, err := table.Lookup(td.signalID)
		if !errors.Is(err, rtcmerr.ErrUnsupportedSignal) {
			t.Errorf("%s %d: want ErrUnsupportedSignal got %v", td.constellation, td.signalID, err)
			continue
		}
		if err.Error() != td.wantError {
			t.Errorf("want %q got %q", td.wantError, err.Error())
		}
	}
}

// TestFor checks that only GPS, Galileo and BeiDou have tables.
func TestFor(t *testing.T) {
	tables := NewTables()
	for c := msm.GPS; c <= msm.NavIC; c++ {
		_, got := tables.For(c)
		if got != c.Reconstructable() {
			t.Errorf("%s: want %v got %v", c, c.Reconstructable(), got)
		}
	}
}

// TestWavelength checks the wavelength of GPS L1.
func TestWavelength(t *testing.T) {
	s := Signal{Code: "1C", Frequency: utils.Freq1}
	if !utils.EqualWithin(6, 0.190293673, s.Wavelength()) {
		t.Errorf("want 0.190293673 got %f", s.Wavelength())
	}
}

// TestConcurrentLookup reads the tables from several goroutines.  Run
// with -race.
func TestConcurrentLookup(t *testing.T) {
	tables := NewTables()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := uint(1); id <= 32; id++ {
				for _, c := range []msm.Constellation{msm.GPS, msm.Galileo, msm.BeiDou} {
					table, _ := tables.For(c)
					table.Lookup(id)
				}
			}
		}()
	}
	wg.Wait()
}

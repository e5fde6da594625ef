// The stats package counts what the decoder sees: frames by message type,
// checksum failures, non-RTCM bytes, the epochs and observables produced
// and the warnings raised.  The counters are Prometheus counters, so one
// Stats can be shared by handlers running in parallel.
package stats

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/multierr"

	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
)

// Stats holds the counters.
type Stats struct {
	Frames           *prometheus.CounterVec
	ChecksumFailures prometheus.Counter
	NonRTCMBytes     prometheus.Counter
	Epochs           *prometheus.CounterVec
	Observables      *prometheus.CounterVec
	Warnings         *prometheus.CounterVec
}

// warningKinds maps each error to the label used to count it.
var warningKinds = []struct {
	err  error
	kind string
}{
	{rtcmerr.ErrChecksumFailure, "checksum"},
	{rtcmerr.ErrMalformedHeader, "malformed_header"},
	{rtcmerr.ErrMalformedCell, "malformed_cell"},
	{rtcmerr.ErrUnsupportedSignal, "unsupported_signal"},
	{rtcmerr.ErrInvalidRoughRange, "invalid_rough_range"},
	{rtcmerr.ErrTemporalRegression, "temporal_regression"},
	{rtcmerr.ErrUnsupportedMessage, "unsupported_message"},
	{rtcmerr.ErrUnknownWeek, "unknown_week"},
	{rtcmerr.ErrOutOfRange, "overrun"},
}

// New creates the counters and registers them with reg.  It panics if they
// are already registered there.
func New(reg prometheus.Registerer) *Stats {
	factory := promauto.With(reg)
	return &Stats{
		Frames: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rtcm2rinex_frames_total",
			Help: "count of CRC-checked RTCM3 frames by message type",
		}, []string{"message_type"}),
		ChecksumFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "rtcm2rinex_checksum_failures_total",
			Help: "count of frames discarded because the CRC did not match",
		}),
		NonRTCMBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "rtcm2rinex_non_rtcm_bytes_total",
			Help: "count of bytes skipped while looking for the start of a frame",
		}),
		Epochs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rtcm2rinex_epochs_total",
			Help: "count of epochs produced by constellation",
		}, []string{"constellation"}),
		Observables: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rtcm2rinex_observables_total",
			Help: "count of observables produced by constellation",
		}, []string{"constellation"}),
		Warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rtcm2rinex_warnings_total",
			Help: "count of recoverable decode problems by kind",
		}, []string{"kind"}),
	}
}

// Frame counts a frame.
func (s *Stats) Frame(messageType int) {
	s.Frames.WithLabelValues(strconv.Itoa(messageType)).Inc()
}

// Epoch counts an epoch and its observables.
func (s *Stats) Epoch(constellation msm.Constellation, observables int) {
	s.Epochs.WithLabelValues(constellation.String()).Inc()
	s.Observables.WithLabelValues(constellation.String()).Add(float64(observables))
}

// Warning counts each of the errors combined in err.
func (s *Stats) Warning(err error) {
	for _, e := range multierr.Errors(err) {
		s.Warnings.WithLabelValues(Kind(e)).Inc()
	}
}

// Kind returns the label under which an error is counted.
func Kind(err error) string {
	for _, wk := range warningKinds {
		if errors.Is(err, wk.err) {
			return wk.kind
		}
	}
	return "other"
}

// WriteToFile writes the counters gathered by g to a file in the Prometheus
// text format.
func WriteToFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

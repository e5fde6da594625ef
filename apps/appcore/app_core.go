// This is the core of the rtcm2rinex applications.  It reads RTCM3 data
// from a file or any other reader, passes the frames through a handler and
// gathers the epochs into a RINEX observation file.
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/goblimey/go-tools/clock"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/goblimey/go-rtcm2rinex/jsonconfig"
	"github.com/goblimey/go-rtcm2rinex/rinex"
	"github.com/goblimey/go-rtcm2rinex/rtcm/frame"
	"github.com/goblimey/go-rtcm2rinex/rtcm/handler"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmerr"
	"github.com/goblimey/go-rtcm2rinex/rtcm/signalcode"
	"github.com/goblimey/go-rtcm2rinex/rtcm/stats"
)

// ProgramName goes in the RINEX header.
const ProgramName = "rtcm2rinex"

// Output file name suffixes.
const (
	Suffix       = ".rnx"
	RTKLIBSuffix = ".rtklib.rnx"
)

// AppCore converts RTCM3 input to RINEX.  One AppCore can convert several
// files at once - each conversion has its own handler and they share the
// signal tables and the stats.
type AppCore struct {
	Conf   *jsonconfig.Config
	Logger *slog.Logger
	Stats  *stats.Stats
	Clock  clock.Clock

	tables   *signalcode.Tables
	logLevel slog.Level
}

// New creates an AppCore.  The config must already have been validated.
func New(conf *jsonconfig.Config, logger *slog.Logger, st *stats.Stats, c clock.Clock) *AppCore {
	level, _ := conf.Level()
	appCore := AppCore{
		Conf:     conf,
		Logger:   logger,
		Stats:    st,
		Clock:    c,
		tables:   signalcode.NewTables(),
		logLevel: level,
	}
	return &appCore
}

// OutputName returns the name of the RINEX file made from the named input.
func (appCore *AppCore) OutputName(input string) string {
	if appCore.Conf.UseRTKLIBLLI {
		return input + RTKLIBSuffix
	}
	return input + Suffix
}

// ConvertFiles converts the named files, running up to the configured
// number of workers at once.  If output is not empty, there must be just
// one input and the result is written there.  All the files are tried and
// the result combines the errors from the ones that failed.
func (appCore *AppCore) ConvertFiles(ctx context.Context, inputs []string, output string) error {
	if output != "" && len(inputs) != 1 {
		return fmt.Errorf("an output file can only be given for a single input, got %d inputs", len(inputs))
	}

	var mu sync.Mutex
	var failures error

	var g errgroup.Group
	g.SetLimit(max(appCore.Conf.Workers, 1))
	for _, input := range inputs {
		out := output
		if out == "" {
			out = appCore.OutputName(input)
		}
		g.Go(func() error {
			if err := appCore.ConvertFile(ctx, input, out); err != nil {
				appCore.Logger.Error("conversion failed", "input", input, "error", err)
				mu.Lock()
				failures = multierr.Append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	return failures
}

// ConvertFile converts the named input file and writes the named RINEX
// file.
func (appCore *AppCore) ConvertFile(ctx context.Context, input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("cannot open input - %w", err)
	}
	defer in.Close()

	f, err := appCore.Convert(ctx, in, input)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if err := rinex.WriteFile(output, f); err != nil {
		return err
	}

	appCore.Logger.Info("converted", "input", input, "output", output, "epochs", f.Len())
	return nil
}

// Convert reads RTCM3 data from r until end of file and returns the RINEX
// file contents.  Decode problems are logged and counted but don't stop
// the conversion.  A read error does, as does cancelling ctx.  The name
// is used in log messages.
func (appCore *AppCore) Convert(ctx context.Context, r io.Reader, name string) (*rinex.File, error) {
	referenceTime, err := appCore.Conf.ReferenceTime()
	if err != nil {
		return nil, err
	}

	h := handler.New(handler.Options{
		ReferenceTime: referenceTime,
		Tables:        appCore.tables,
		Logger:        appCore.Logger.With("input", name),
		Stats:         appCore.Stats,
		LLIMethod:     appCore.Conf.LLIMethod(),
		Clock:         appCore.Clock,
		LogLevel:      appCore.logLevel,
	})

	reader := frame.NewReader(r)
	f := rinex.NewFile(rinex.Header{})

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rawFrame, err := reader.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			if errors.Is(err, rtcmerr.ErrChecksumFailure) {
				appCore.warn(name, err)
				continue
			}
			return nil, fmt.Errorf("read failed - %w", err)
		}

		epochs, warnings := h.HandleFrame(rawFrame)
		appCore.warn(name, warnings)
		f.Add(epochs...)
	}

	f.Add(h.Flush()...)

	skipped := reader.Extractor().NonRTCMBytes()
	if appCore.Stats != nil {
		appCore.Stats.NonRTCMBytes.Add(float64(skipped))
	}
	if skipped > 0 {
		appCore.Logger.Debug("skipped non-RTCM data", "input", name, "bytes", skipped)
	}

	f.Header = appCore.header(h)
	return f, nil
}

// header creates the RINEX header data from the config and what the
// handler saw.
func (appCore *AppCore) header(h *handler.Handler) rinex.Header {
	header := rinex.Header{
		Program:          ProgramName,
		RunBy:            appCore.Conf.Agency,
		Date:             appCore.Clock.Now(),
		MarkerName:       appCore.Conf.MarkerName,
		Observer:         appCore.Conf.Observer,
		Agency:           appCore.Conf.Agency,
		ObservationTypes: h.ObservationTypes(),
		FirstObs:         h.FirstEpoch(),
		LastObs:          h.LastEpoch(),
	}
	if header.MarkerName == "" {
		if id, ok := h.StationID(); ok {
			header.MarkerName = fmt.Sprintf("STATION %d", id)
		}
	}
	header.SetStation(h.Station())
	return header
}

// warn logs and counts each of the warnings combined in err.
func (appCore *AppCore) warn(name string, err error) {
	if err == nil {
		return
	}
	for _, e := range multierr.Errors(err) {
		kind := stats.Kind(e)
		level := slog.LevelWarn
		if kind == "invalid_rough_range" || kind == "unsupported_signal" {
			level = slog.LevelDebug
		}
		appCore.Logger.Log(context.Background(), level, strings.ReplaceAll(kind, "_", " "),
			"input", name, "error", e)
	}
	if appCore.Stats == nil {
		return
	}
	if errors.Is(err, rtcmerr.ErrChecksumFailure) {
		appCore.Stats.ChecksumFailures.Inc()
	}
	appCore.Stats.Warning(err)
}

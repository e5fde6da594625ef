// The rinex package writes RINEX 3.04 observation files.  A File holds the
// header data and the epochs from the handler.  The handler produces one
// epoch per constellation, so the File merges the epochs with the same time
// into one record, which is written as one epoch line followed by a line
// for each satellite.
//
// The layout follows the RINEX 3.04 standard:
//
//	> 2020 11 13 00 00 23.0000000  0 14
//	G04  20000000.123   105100000.456       -1234.567          45.250
//
// Each observation takes 16 columns - the value as %14.3f, the loss of lock
// indicator and the signal strength indicator.  The LLI is only written for
// carrier phase and the signal strength indicator is always blank.
package rinex

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/goblimey/go-rtcm2rinex/rtcm/epoch"
	"github.com/goblimey/go-rtcm2rinex/rtcm/msm"
	"github.com/goblimey/go-rtcm2rinex/rtcm/observable"
	"github.com/goblimey/go-rtcm2rinex/rtcm/station"
)

// Version is the RINEX version written.
const Version = 3.04

// typesPerLine is the number of observation types in a SYS / # / OBS TYPES
// line.
const typesPerLine = 13

// dateLayout is the layout of the date in the PGM / RUN BY / DATE line.
const dateLayout = "20060102 150405 MST"

// Header holds the data for the RINEX header.
type Header struct {
	Program string
	RunBy   string
	// Date is the file creation time.
	Date time.Time

	MarkerName string
	MarkerType string
	Observer   string
	Agency     string

	ReceiverNumber  string
	ReceiverType    string
	ReceiverVersion string
	AntennaNumber   string
	AntennaType     string

	// Position is the approximate ECEF position of the marker in metres.
	Position [3]float64
	// AntennaDelta is the height of the antenna above the marker and the
	// east and north offsets, in metres.
	AntennaDelta [3]float64

	// ObservationTypes gives the RINEX observation types, eg "C1C", for
	// each constellation.  If it's nil, the types are taken from the
	// observables.
	ObservationTypes map[msm.Constellation][]string

	// FirstObs and LastObs are in GPS time.  If they are zero they are
	// taken from the epochs.
	FirstObs time.Time
	LastObs  time.Time
}

// SetStation sets the position and the antenna height from a station
// position message.
func (h *Header) SetStation(p *station.Position) {
	if p == nil {
		return
	}
	h.Position = [3]float64{p.X(), p.Y(), p.Z()}
	h.AntennaDelta[0] = p.Height()
}

// Constellations returns the constellations that have observation types,
// in RINEX order.
func (h *Header) Constellations() []msm.Constellation {
	list := make([]msm.Constellation, 0, len(h.ObservationTypes))
	for c, types := range h.ObservationTypes {
		if len(types) > 0 {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Record is the data for one epoch line - the epochs of all the
// constellations at one time.
type Record struct {
	Time   time.Time
	Epochs []*epoch.Epoch
}

// File holds the contents of a RINEX observation file.
type File struct {
	Header  Header
	records map[int64]*Record
}

// NewFile creates a File with the given header data.
func NewFile(header Header) *File {
	return &File{Header: header, records: make(map[int64]*Record)}
}

// Add adds epochs to the file.  Epochs with the same time are merged into
// one record.
func (f *File) Add(epochs ...*epoch.Epoch) {
	for _, e := range epochs {
		if e == nil {
			continue
		}
		key := e.Time.UnixNano()
		r, ok := f.records[key]
		if !ok {
			r = &Record{Time: e.Time}
			f.records[key] = r
		}
		r.Epochs = append(r.Epochs, e)
	}
}

// Len returns the number of records.
func (f *File) Len() int {
	return len(f.records)
}

// Records returns the records in time order.  The epochs in each record
// are in constellation order.
func (f *File) Records() []*Record {
	list := make([]*Record, 0, len(f.records))
	for _, r := range f.records {
		sort.SliceStable(r.Epochs, func(i, j int) bool {
			return r.Epochs[i].Constellation < r.Epochs[j].Constellation
		})
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Time.Before(list[j].Time) })
	return list
}

// Write writes the file in RINEX format.
func (f *File) Write(w io.Writer) error {
	records := f.Records()

	header := f.Header
	if header.ObservationTypes == nil {
		header.ObservationTypes = ObservationTypes(records)
	}
	if len(records) > 0 {
		if header.FirstObs.IsZero() {
			header.FirstObs = records[0].Time
		}
		if header.LastObs.IsZero() {
			header.LastObs = records[len(records)-1].Time
		}
	}

	writer := NewWriter(w)
	writer.WriteHeader(&header)
	for _, r := range records {
		writer.WriteRecord(r, header.ObservationTypes)
	}
	return writer.Flush()
}

// WriteFile creates the named file and writes f to it.
func WriteFile(name string, f *File) error {
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create RINEX file - %w", err)
	}

	if err := f.Write(out); err != nil {
		out.Close()
		return fmt.Errorf("cannot write RINEX file %s - %w", name, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("cannot close RINEX file %s - %w", name, err)
	}
	return nil
}

// ObservationTypes returns the observation types found in the records.
// The codes for each constellation are sorted and each code gives a C, L,
// D and S type.  D is only included if some observable for the code has a
// Doppler value.
func ObservationTypes(records []*Record) map[msm.Constellation][]string {
	doppler := make(map[msm.Constellation]map[string]bool)
	for _, r := range records {
		for _, e := range r.Epochs {
			codes, ok := doppler[e.Constellation]
			if !ok {
				codes = make(map[string]bool)
				doppler[e.Constellation] = codes
			}
			for _, o := range e.Observables {
				codes[o.Code] = codes[o.Code] || o.DopplerValid
			}
		}
	}

	types := make(map[msm.Constellation][]string)
	for c, codes := range doppler {
		if len(codes) == 0 {
			continue
		}
		sorted := make([]string, 0, len(codes))
		for code := range codes {
			sorted = append(sorted, code)
		}
		sort.Strings(sorted)
		for _, code := range sorted {
			types[c] = append(types[c], "C"+code, "L"+code)
			if codes[code] {
				types[c] = append(types[c], "D"+code)
			}
			types[c] = append(types[c], "S"+code)
		}
	}
	return types
}

// Writer writes RINEX text.  The first error is kept and later writes do
// nothing.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush writes any buffered data and returns the first error.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// line writes a header line - 60 columns of content and the label.
func (w *Writer) line(content, label string) {
	w.printf("%-60.60s%s\n", content, label)
}

// WriteHeader writes the header.
func (w *Writer) WriteHeader(h *Header) error {
	constellations := h.Constellations()
	system := "M: Mixed"
	if len(constellations) == 1 {
		system = fmt.Sprintf("%c: %s", constellations[0].Letter(), constellations[0])
	}

	w.line(fmt.Sprintf("%9.2f%-11s%-20s%-20s", Version, "", "OBSERVATION DATA", system),
		"RINEX VERSION / TYPE")
	w.line(fmt.Sprintf("%-20.20s%-20.20s%-20.20s", h.Program, h.RunBy, h.Date.UTC().Format(dateLayout)),
		"PGM / RUN BY / DATE")
	w.line(h.MarkerName, "MARKER NAME")
	w.line(h.MarkerType, "MARKER TYPE")
	w.line(fmt.Sprintf("%-20.20s%-40.40s", h.Observer, h.Agency), "OBSERVER / AGENCY")
	w.line(fmt.Sprintf("%-20.20s%-20.20s%-20.20s", h.ReceiverNumber, h.ReceiverType, h.ReceiverVersion),
		"REC # / TYPE / VERS")
	w.line(fmt.Sprintf("%-20.20s%-20.20s", h.AntennaNumber, h.AntennaType), "ANT # / TYPE")
	w.line(fmt.Sprintf("%14.4f%14.4f%14.4f", h.Position[0], h.Position[1], h.Position[2]),
		"APPROX POSITION XYZ")
	w.line(fmt.Sprintf("%14.4f%14.4f%14.4f", h.AntennaDelta[0], h.AntennaDelta[1], h.AntennaDelta[2]),
		"ANTENNA: DELTA H/E/N")

	for _, c := range constellations {
		w.writeTypes(c, h.ObservationTypes[c])
	}

	w.line(timeOfObs(h.FirstObs), "TIME OF FIRST OBS")
	w.line(timeOfObs(h.LastObs), "TIME OF LAST OBS")
	w.line("", "END OF HEADER")

	return w.err
}

// writeTypes writes the SYS / # / OBS TYPES lines for a constellation.
func (w *Writer) writeTypes(c msm.Constellation, types []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%c  %3d", c.Letter(), len(types))
	for i, t := range types {
		if i > 0 && i%typesPerLine == 0 {
			w.line(b.String(), "SYS / # / OBS TYPES")
			b.Reset()
			b.WriteString("      ")
		}
		fmt.Fprintf(&b, " %3s", t)
	}
	w.line(b.String(), "SYS / # / OBS TYPES")
}

// timeOfObs returns the content of a TIME OF FIRST/LAST OBS line.
func timeOfObs(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("  %04d    %02d    %02d    %02d    %02d   %010.7f     %-12s",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), seconds(t), "GPS")
}

// seconds returns the seconds and fractions of a second.
func seconds(t time.Time) float64 {
	return float64(t.Second()) + float64(t.Nanosecond())/1e9
}

// WriteRecord writes an epoch line and the satellite lines that follow.
// A satellite with no valid observables is left out.
func (w *Writer) WriteRecord(r *Record, types map[msm.Constellation][]string) error {
	var lines []string
	for _, e := range r.Epochs {
		for _, satellite := range e.Satellites() {
			if line, ok := satelliteLine(e, satellite, types[e.Constellation]); ok {
				lines = append(lines, line)
			}
		}
	}

	t := r.Time.UTC()
	w.printf("> %04d %02d %02d %02d %02d %010.7f  %d%3d\n",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), seconds(t), 0, len(lines))
	for _, line := range lines {
		w.printf("%s\n", line)
	}
	return w.err
}

// satelliteLine returns the observation line for one satellite, false if
// it has no valid observables.
func satelliteLine(e *epoch.Epoch, satellite uint, types []string) (string, bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "%c%02d", e.Constellation.Letter(), satellite)

	found := false
	for _, t := range types {
		o, ok := e.Observables[observable.Key{Satellite: satellite, Code: t[1:]}]
		if !ok || !o.Valid {
			b.WriteString(blank)
			continue
		}
		found = true
		value, valid, lli := pick(&o, t[0])
		b.WriteString(field(value, valid, lli))
	}

	return strings.TrimRight(b.String(), " "), found
}

// blank is an empty observation field.
const blank = "                "

// pick returns the value of one observation type from an observable.
func pick(o *observable.Observable, kind byte) (value float64, valid bool, lli int) {
	switch kind {
	case 'C':
		return o.Pseudorange, o.PseudorangeValid, 0
	case 'L':
		return o.Phase, o.PhaseValid, o.LLI
	case 'D':
		return o.Doppler, o.DopplerValid, 0
	case 'S':
		return o.SNR, o.SNRValid, 0
	default:
		return 0, false, 0
	}
}

// field formats one observation.  A value too big for the field is left
// blank.
func field(value float64, valid bool, lli int) string {
	if !valid || math.Abs(value) >= 1e10 {
		return blank
	}
	if lli == 0 {
		return fmt.Sprintf("%14.3f  ", value)
	}
	return fmt.Sprintf("%14.3f%1d ", value, lli)
}

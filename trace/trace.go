// Package trace records per-tick mover state as CSV and compares runs for desync.
//
// Raw columns carry the exact Q10 integers and are the only ones Compare looks at.
// The float columns exist so a human can read the file.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/fixphys/sim"
	"github.com/lixenwraith/fixphys/vmath"
)

// Record is one CSV row
type Record struct {
	Tick     int   `csv:"tick"`
	Mover    int   `csv:"mover"`
	PosX     int64 `csv:"pos_x"`
	PosY     int64 `csv:"pos_y"`
	PosZ     int64 `csv:"pos_z"`
	VelX     int64 `csv:"vel_x"`
	VelY     int64 `csv:"vel_y"`
	VelZ     int64 `csv:"vel_z"`
	CorrX    int64 `csv:"corr_x"`
	CorrY    int64 `csv:"corr_y"`
	CorrZ    int64 `csv:"corr_z"`
	Contacts int   `csv:"contacts"`
	Wedged   bool  `csv:"wedged"`

	// Display only
	X     float64 `csv:"x"`
	Z     float64 `csv:"z"`
	Speed float64 `csv:"speed"`
}

// FromSample converts a sim sample into a row
func FromSample(s sim.Sample) Record {
	return Record{
		Tick:     s.Tick,
		Mover:    s.Mover,
		PosX:     s.Position.X.Raw(),
		PosY:     s.Position.Y.Raw(),
		PosZ:     s.Position.Z.Raw(),
		VelX:     s.Velocity.X.Raw(),
		VelY:     s.Velocity.Y.Raw(),
		VelZ:     s.Velocity.Z.Raw(),
		CorrX:    s.Correction.X.Raw(),
		CorrY:    s.Correction.Y.Raw(),
		CorrZ:    s.Correction.Z.Raw(),
		Contacts: len(s.Hits),
		Wedged:   s.Wedged,
		X:        s.Position.X.Float(),
		Z:        s.Position.Z.Float(),
		Speed:    vmath.V3FMag(vmath.V3ToFloat(s.Velocity)),
	}
}

// FromSamples converts a sample stream, preserving order
func FromSamples(samples []sim.Sample) []Record {
	out := make([]Record, len(samples))
	for i, s := range samples {
		out[i] = FromSample(s)
	}
	return out
}

func (r Record) correction() vmath.Vec3F {
	return vmath.V3ToFloat(vmath.V3(vmath.FromRaw(r.CorrX), vmath.FromRaw(r.CorrY), vmath.FromRaw(r.CorrZ)))
}

// Writer appends rows to a CSV stream, emitting the header with the first batch
type Writer struct {
	w             io.Writer
	headerWritten bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (tw *Writer) Write(records []Record) error {
	if len(records) == 0 {
		return nil
	}
	if !tw.headerWritten {
		if err := gocsv.Marshal(records, tw.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, tw.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Finish writes the header if no rows were ever written, so a run without movers still leaves a
// readable trace
func (tw *Writer) Finish() error {
	if tw.headerWritten {
		return nil
	}
	if err := gocsv.Marshal([]Record{}, tw.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	tw.headerWritten = true
	return nil
}

// Read parses a whole trace. Empty input reads as a trace with no rows.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}

// Divergence locates the first mismatch between two traces
type Divergence struct {
	Row   int
	Tick  int
	Mover int
	Field string
	A, B  int64
}

func (d Divergence) String() string {
	return fmt.Sprintf("row %d (tick %d, mover %d): %s %d != %d", d.Row, d.Tick, d.Mover, d.Field, d.A, d.B)
}

// Compare reports the first row whose raw fields differ
// A length mismatch diverges at the first missing row with Field "length"
func Compare(a, b []Record) (Divergence, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if field, va, vb, ok := firstDiff(a[i], b[i]); ok {
			return Divergence{Row: i, Tick: a[i].Tick, Mover: a[i].Mover, Field: field, A: va, B: vb}, true
		}
	}
	if len(a) != len(b) {
		d := Divergence{Row: n, Field: "length", A: int64(len(a)), B: int64(len(b))}
		if n > 0 {
			d.Tick, d.Mover = a[n-1].Tick, a[n-1].Mover
		}
		return d, true
	}
	return Divergence{}, false
}

func firstDiff(a, b Record) (string, int64, int64, bool) {
	fields := []struct {
		name string
		a, b int64
	}{
		{"tick", int64(a.Tick), int64(b.Tick)},
		{"mover", int64(a.Mover), int64(b.Mover)},
		{"pos_x", a.PosX, b.PosX},
		{"pos_y", a.PosY, b.PosY},
		{"pos_z", a.PosZ, b.PosZ},
		{"vel_x", a.VelX, b.VelX},
		{"vel_y", a.VelY, b.VelY},
		{"vel_z", a.VelZ, b.VelZ},
		{"corr_x", a.CorrX, b.CorrX},
		{"corr_y", a.CorrY, b.CorrY},
		{"corr_z", a.CorrZ, b.CorrZ},
		{"contacts", int64(a.Contacts), int64(b.Contacts)},
		{"wedged", boolInt(a.Wedged), boolInt(b.Wedged)},
	}
	for _, f := range fields {
		if f.a != f.b {
			return f.name, f.a, f.b, true
		}
	}
	return "", 0, 0, false
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Summary is display-only run statistics
type Summary struct {
	Rows           int
	MeanSpeed      float64
	StdSpeed       float64
	MeanCorrection float64
	StdCorrection  float64
	ContactRows    int
	WedgedRows     int
}

func Summarize(records []Record) Summary {
	s := Summary{Rows: len(records)}
	if len(records) == 0 {
		return s
	}

	speeds := make([]float64, len(records))
	corrections := make([]float64, len(records))
	for i, r := range records {
		speeds[i] = r.Speed
		corrections[i] = vmath.V3FMag(r.correction())
		if r.Contacts > 0 {
			s.ContactRows++
		}
		if r.Wedged {
			s.WedgedRows++
		}
	}

	if len(records) == 1 {
		s.MeanSpeed, s.MeanCorrection = speeds[0], corrections[0]
		return s
	}
	s.MeanSpeed, s.StdSpeed = stat.MeanStdDev(speeds, nil)
	s.MeanCorrection, s.StdCorrection = stat.MeanStdDev(corrections, nil)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("rows=%d speed=%.3f±%.3f correction=%.4f±%.4f contacts=%d wedged=%d",
		s.Rows, s.MeanSpeed, s.StdSpeed, s.MeanCorrection, s.StdCorrection, s.ContactRows, s.WedgedRows)
}

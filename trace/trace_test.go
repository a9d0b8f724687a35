package trace

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/sim"
	"github.com/lixenwraith/fixphys/vmath"
)

func runWorld(ticks int) []Record {
	wall := physics.NewBox(vmath.V3(vmath.FromInt(2), 0, 0),
		vmath.V3(vmath.One, 0, 0), vmath.V3(0, 0, vmath.One), vmath.One, vmath.FromInt(5))
	w := sim.NewWorld([]*physics.Collider{wall}, physics.NewResolver(vmath.One.Div(vmath.FromInt(30))))
	w.Spawn(vmath.V3(vmath.FromInt(-3), 0, 0), vmath.FromFloat(0.5), vmath.V3(vmath.FromInt(2), 0, vmath.One))
	w.Spawn(vmath.V3(vmath.FromInt(-3), 0, vmath.FromInt(2)), vmath.FromFloat(0.5), vmath.V3(vmath.FromInt(2), 0, 0))
	return FromSamples(w.Run(ticks))
}

func TestFromSample(t *testing.T) {
	s := sim.Sample{
		Tick:       7,
		Mover:      1,
		Position:   vmath.V3(vmath.FromFloat(1.5), 0, vmath.FromInt(-2)),
		Velocity:   vmath.V3(vmath.FromInt(3), 0, vmath.FromInt(4)),
		Correction: vmath.V3(-3, 0, 0),
		Hits:       make([]physics.Contact, 2),
		Wedged:     true,
	}
	r := FromSample(s)
	if r.Tick != 7 || r.Mover != 1 || r.PosX != 1536 || r.PosZ != -2048 || r.CorrX != -3 {
		t.Errorf("Unexpected raw fields: %+v", r)
	}
	if r.Contacts != 2 || !r.Wedged {
		t.Errorf("Expected contacts and wedged carried over, got %+v", r)
	}
	if r.X != 1.5 || r.Z != -2 || r.Speed != 5 {
		t.Errorf("Unexpected display fields: x=%v z=%v speed=%v", r.X, r.Z, r.Speed)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	records := runWorld(40)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(records[:30]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Write(records[30:]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Write(nil); err != nil {
		t.Fatalf("Empty write failed: %v", err)
	}

	if n := strings.Count(buf.String(), "tick,mover"); n != 1 {
		t.Errorf("Expected exactly one header, got %d", n)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("Expected %d rows, got %d", len(records), len(got))
	}
	if d, diverged := Compare(records, got); diverged {
		t.Errorf("Expected identical raw fields, diverged at %v", d)
	}
	for i := range got {
		if !scalar.EqualWithinAbs(got[i].X, records[i].X, 1e-9) || !scalar.EqualWithinAbs(got[i].Speed, records[i].Speed, 1e-9) {
			t.Fatalf("Row %d display fields changed: %+v vs %+v", i, got[i], records[i])
		}
	}
}

func TestEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(nil); err != nil {
		t.Fatalf("Empty write failed: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "tick,mover") {
		t.Errorf("Expected header only, got %q", buf.String())
	}
	got, err := Read(&buf)
	if err != nil || len(got) != 0 {
		t.Errorf("Expected no rows, got %d rows, err %v", len(got), err)
	}

	// A zero-byte file reads the same way
	got, err = Read(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("Expected no rows from empty input, got %d rows, err %v", len(got), err)
	}
}

func TestFinishAfterRowsKeepsOneHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(runWorld(3)); err != nil {
		t.Fatal(err)
	}
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "tick,mover"); n != 1 {
		t.Errorf("Expected exactly one header, got %d", n)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader("tick,mover\nx,1\n")); err == nil {
		t.Error("Expected error for non-numeric tick")
	}
}

func TestCompare(t *testing.T) {
	a := runWorld(20)
	b := runWorld(20)
	if _, diverged := Compare(a, b); diverged {
		t.Fatal("Expected identical runs to match")
	}

	b[13].VelZ++
	d, diverged := Compare(a, b)
	if !diverged {
		t.Fatal("Expected divergence")
	}
	if d.Row != 13 || d.Field != "vel_z" || d.B != d.A+1 {
		t.Errorf("Unexpected divergence: %v", d)
	}
	if d.Tick != a[13].Tick || d.Mover != a[13].Mover {
		t.Errorf("Expected divergence to name tick %d mover %d, got %v", a[13].Tick, a[13].Mover, d)
	}

	// Display columns are ignored
	c := runWorld(20)
	c[5].Speed = 99
	if _, diverged := Compare(a, c); diverged {
		t.Error("Expected display-only difference to be ignored")
	}
}

func TestCompareLength(t *testing.T) {
	a := runWorld(10)
	d, diverged := Compare(a, a[:15])
	if !diverged {
		t.Fatal("Expected length divergence")
	}
	if d.Row != 15 || d.Field != "length" || d.A != 20 || d.B != 15 {
		t.Errorf("Unexpected divergence: %v", d)
	}
}

func TestSummarize(t *testing.T) {
	if s := Summarize(nil); s.Rows != 0 || s.MeanSpeed != 0 {
		t.Errorf("Expected empty summary, got %+v", s)
	}

	records := []Record{
		{Speed: 3, CorrX: 512},
		{Speed: 4, Contacts: 1, Wedged: true},
	}
	s := Summarize(records)
	if s.Rows != 2 || s.ContactRows != 1 || s.WedgedRows != 1 {
		t.Errorf("Unexpected counts: %+v", s)
	}
	if !scalar.EqualWithinAbs(s.MeanSpeed, 3.5, 1e-12) || !scalar.EqualWithinAbs(s.StdSpeed, math.Sqrt(0.5), 1e-12) {
		t.Errorf("Unexpected speed stats: %v ± %v", s.MeanSpeed, s.StdSpeed)
	}
	if !scalar.EqualWithinAbs(s.MeanCorrection, 0.25, 1e-12) {
		t.Errorf("Expected mean correction 0.25, got %v", s.MeanCorrection)
	}

	one := Summarize(records[:1])
	if one.MeanSpeed != 3 || one.StdSpeed != 0 {
		t.Errorf("Expected single-row summary without spread, got %+v", one)
	}
}

package simulation

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"rigmonitor/internal/catalog"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return New(catalog.Default(), opts...)
}

func TestAggregateStaysInRange(t *testing.T) {
	g := newTestGenerator(t)
	specs := catalog.Default().Specs()

	for i := 0; i < 100; i++ {
		values := g.Aggregate()
		if len(values) != len(specs) {
			t.Fatalf("Aggregate returned %d values, want %d", len(values), len(specs))
		}
		for _, spec := range specs {
			v, ok := values[spec.Category]
			if !ok {
				t.Fatalf("Aggregate missing %s", spec.Category)
			}
			if !spec.Range.Contains(v) {
				t.Fatalf("%s value %v outside range [%v, %v]", spec.Category, v, spec.Range.Min, spec.Range.Max)
			}
		}
	}
}

func TestAggregateDrawsFreshValues(t *testing.T) {
	g := newTestGenerator(t)

	first := g.Aggregate()
	second := g.Aggregate()
	if reflect.DeepEqual(first, second) {
		t.Fatalf("successive aggregates returned identical values: %v", first)
	}
}

func TestSnapshotClassifiesEveryCategory(t *testing.T) {
	g := newTestGenerator(t)
	specs := catalog.Default().Specs()

	readings := g.Snapshot()
	if len(readings) != len(specs) {
		t.Fatalf("Snapshot returned %d readings, want %d", len(readings), len(specs))
	}
	for i, r := range readings {
		if r.Category != specs[i].Category {
			t.Errorf("reading %d is %s, want %s", i, r.Category, specs[i].Category)
		}
		if r.Label == "" || r.Unit == "" {
			t.Errorf("%s: missing label or unit", r.Category)
		}
		if !specs[i].Range.Contains(r.Value) {
			t.Errorf("%s value %v outside range", r.Category, r.Value)
		}
		if r.Status != specs[i].Status(r.Value) {
			t.Errorf("%s status %s does not match value %v", r.Category, r.Status, r.Value)
		}
	}
}

func TestSeriesShape(t *testing.T) {
	g := newTestGenerator(t)
	spec, err := catalog.Default().Lookup(catalog.Pressure)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	before := time.Now().UTC()
	readings, err := g.Series(catalog.Pressure)
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}
	after := time.Now().UTC()

	if len(readings) != 24 {
		t.Fatalf("Series returned %d readings, want 24", len(readings))
	}
	for i, r := range readings {
		if !spec.Range.Contains(r.Value) {
			t.Errorf("reading %d value %v outside range", i, r.Value)
		}
		if i > 0 {
			if got := r.Time.Sub(readings[i-1].Time); got != time.Hour {
				t.Errorf("gap between readings %d and %d is %s, want 1h", i-1, i, got)
			}
		}
	}
	last := readings[len(readings)-1].Time
	if last.Before(before) || last.After(after) {
		t.Errorf("newest reading stamped %s, want between %s and %s", last, before, after)
	}
	first := readings[0].Time
	if got := last.Sub(first); got != 23*time.Hour {
		t.Errorf("series covers %s, want 23h between first and last point", got)
	}
}

func TestWindowPointCounts(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		span time.Duration
		step time.Duration
		want int
	}{
		{24 * time.Hour, time.Hour, 24},
		{24 * time.Hour, 10 * time.Minute, 144},
		{6 * time.Hour, 30 * time.Minute, 12},
		{time.Hour, time.Hour, 1},
	}

	for _, tt := range tests {
		readings, err := g.Window(catalog.Temperature, tt.span, tt.step)
		if err != nil {
			t.Fatalf("Window(%s, %s) failed: %v", tt.span, tt.step, err)
		}
		if len(readings) != tt.want {
			t.Errorf("Window(%s, %s) returned %d readings, want %d", tt.span, tt.step, len(readings), tt.want)
		}
	}
}

func TestWindowRejectsBadRequests(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name string
		span time.Duration
		step time.Duration
	}{
		{"zero step", 24 * time.Hour, 0},
		{"negative step", 24 * time.Hour, -time.Minute},
		{"span shorter than step", 30 * time.Minute, time.Hour},
		{"too many points", 2001 * time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Window(catalog.Pressure, tt.span, tt.step)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Fatalf("Window(%s, %s) error = %v, want ErrInvalidWindow", tt.span, tt.step, err)
			}
		})
	}
}

func TestSeriesUnknownCategory(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.Series("seismic")
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("Series(seismic) error = %v, want ErrUnknownCategory", err)
	}
}

func TestFleet(t *testing.T) {
	g := newTestGenerator(t)
	spec, err := catalog.Default().Lookup(catalog.FlowRate)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	samples, err := g.Fleet(catalog.FlowRate)
	if err != nil {
		t.Fatalf("Fleet failed: %v", err)
	}
	if len(samples) != DefaultFleetSize {
		t.Fatalf("Fleet returned %d samples, want %d", len(samples), DefaultFleetSize)
	}
	for i, s := range samples {
		if s.SensorID != i {
			t.Errorf("sample %d has sensor id %d", i, s.SensorID)
		}
		if !spec.Range.Contains(s.Value) {
			t.Errorf("sensor %d value %v outside range", s.SensorID, s.Value)
		}
	}

	small := newTestGenerator(t, WithFleetSize(3))
	samples, err = small.Fleet(catalog.FlowRate)
	if err != nil {
		t.Fatalf("Fleet failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("Fleet returned %d samples, want 3", len(samples))
	}
}

func TestSensorWindowValidatesID(t *testing.T) {
	g := newTestGenerator(t)

	for _, id := range []int{-1, DefaultFleetSize} {
		_, err := g.SensorWindow(catalog.Acoustic, id, SeriesSpan, SeriesStep)
		if !errors.Is(err, ErrUnknownSensor) {
			t.Fatalf("SensorWindow(id=%d) error = %v, want ErrUnknownSensor", id, err)
		}
	}

	readings, err := g.SensorWindow(catalog.Acoustic, 0, SeriesSpan, SeriesStep)
	if err != nil {
		t.Fatalf("SensorWindow failed: %v", err)
	}
	if len(readings) != 24 {
		t.Fatalf("SensorWindow returned %d readings, want 24", len(readings))
	}
}

func TestCorrosionReadingsCarryMechanism(t *testing.T) {
	g := newTestGenerator(t)
	known := map[string]bool{"Uniform": true, "Pitting": true, "Galvanic": true, "Crevice": true}

	readings, err := g.Series(catalog.Corrosion)
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}
	for i, r := range readings {
		if !known[r.Type] {
			t.Errorf("corrosion reading %d has mechanism %q", i, r.Type)
		}
	}

	readings, err = g.Series(catalog.Pressure)
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}
	for i, r := range readings {
		if r.Type != "" {
			t.Errorf("pressure reading %d carries mechanism %q", i, r.Type)
		}
	}
}

func TestSeriesWithCustomCatalog(t *testing.T) {
	custom, err := catalog.New([]catalog.Spec{{
		Category: catalog.Temperature,
		Label:    "Temperature",
		Unit:     "°C",
		Range:    catalog.Range{Min: 20, Max: 100},
		Good:     catalog.Range{Min: 30, Max: 90},
		Concern:  catalog.Range{Min: 25, Max: 95},
	}})
	if err != nil {
		t.Fatalf("New catalog failed: %v", err)
	}

	g := New(custom, WithRand(rand.New(rand.NewSource(7))))
	readings, err := g.Series(catalog.Temperature)
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}
	if len(readings) != 24 {
		t.Fatalf("Series returned %d readings, want 24", len(readings))
	}
	for i, r := range readings {
		if r.Value < 20 || r.Value > 100 {
			t.Errorf("reading %d value %v outside [20, 100]", i, r.Value)
		}
	}
}

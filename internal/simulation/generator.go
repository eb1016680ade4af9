package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"rigmonitor/internal/catalog"
)

const (
	// DefaultFleetSize is how many sensor units each category reports.
	DefaultFleetSize = 10

	// SeriesSpan and SeriesStep shape the default detail series: 24 hourly
	// points ending now.
	SeriesSpan = 24 * time.Hour
	SeriesStep = time.Hour

	maxWindowPoints = 2000
)

var (
	// ErrUnknownSensor is returned when a sensor id falls outside the fleet.
	ErrUnknownSensor = errors.New("unknown sensor id")

	// ErrInvalidWindow is returned when a requested series window cannot be
	// generated as asked.
	ErrInvalidWindow = errors.New("invalid series window")
)

// corrosionMechanisms label corrosion readings with the mechanism being
// simulated. Other categories carry no mechanism.
var corrosionMechanisms = []string{"Uniform", "Pitting", "Galvanic", "Crevice"}

// Reading is one generated sensor value.
type Reading struct {
	Time   time.Time      `json:"time"`
	Value  float64        `json:"value"`
	Status catalog.Status `json:"status"`
	Type   string         `json:"type,omitempty"`
}

// SensorSample is the current value of one sensor unit in a category fleet.
type SensorSample struct {
	SensorID int            `json:"sensorId"`
	Value    float64        `json:"value"`
	Status   catalog.Status `json:"status"`
}

// CategoryReading pairs a category with one fresh classified value.
type CategoryReading struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Unit     string           `json:"unit"`
	Value    float64          `json:"value"`
	Status   catalog.Status   `json:"status"`
}

// Generator produces synthetic readings for every category in a catalog.
// Values are drawn uniformly within each category's range, fresh on every
// call; nothing is cached between requests.
type Generator struct {
	catalog   *catalog.Catalog
	fleetSize int

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customizes Generator creation.
type Option func(*Generator)

// WithFleetSize overrides how many sensor units each category reports.
func WithFleetSize(size int) Option {
	return func(g *Generator) {
		if size > 0 {
			g.fleetSize = size
		}
	}
}

// WithRand replaces the wall-clock seeded source, mainly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New creates a Generator over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog:   cat,
		fleetSize: DefaultFleetSize,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FleetSize returns how many sensor units each category reports.
func (g *Generator) FleetSize() int {
	return g.fleetSize
}

// Aggregate draws one current value per registered category.
func (g *Generator) Aggregate() map[catalog.Category]float64 {
	specs := g.catalog.Specs()
	values := make(map[catalog.Category]float64, len(specs))
	for _, spec := range specs {
		values[spec.Category] = g.draw(spec.Range)
	}
	return values
}

// Snapshot draws one classified reading per category, in catalog order.
func (g *Generator) Snapshot() []CategoryReading {
	specs := g.catalog.Specs()
	readings := make([]CategoryReading, 0, len(specs))
	for _, spec := range specs {
		value := g.draw(spec.Range)
		readings = append(readings, CategoryReading{
			Category: spec.Category,
			Label:    spec.Label,
			Unit:     spec.Unit,
			Value:    value,
			Status:   spec.Status(value),
		})
	}
	return readings
}

// Series draws the default detail series for cat: 24 hourly readings, oldest
// first, the newest stamped now.
func (g *Generator) Series(cat catalog.Category) ([]Reading, error) {
	return g.Window(cat, SeriesSpan, SeriesStep)
}

// Window draws a fresh series of span/step readings for cat ending now.
func (g *Generator) Window(cat catalog.Category, span, step time.Duration) ([]Reading, error) {
	spec, err := g.catalog.Lookup(cat)
	if err != nil {
		return nil, err
	}
	count, err := windowPoints(span, step)
	if err != nil {
		return nil, err
	}
	end := time.Now().UTC()
	readings := make([]Reading, 0, count)
	for i := count - 1; i >= 0; i-- {
		readings = append(readings, g.reading(spec, end.Add(-time.Duration(i)*step)))
	}
	return readings, nil
}

// Fleet draws the current value of every sensor unit in cat.
func (g *Generator) Fleet(cat catalog.Category) ([]SensorSample, error) {
	spec, err := g.catalog.Lookup(cat)
	if err != nil {
		return nil, err
	}
	samples := make([]SensorSample, g.fleetSize)
	for i := range samples {
		value := g.draw(spec.Range)
		samples[i] = SensorSample{SensorID: i, Value: value, Status: spec.Status(value)}
	}
	return samples, nil
}

// SensorWindow draws a window attributed to a single sensor unit.
func (g *Generator) SensorWindow(cat catalog.Category, sensorID int, span, step time.Duration) ([]Reading, error) {
	if sensorID < 0 || sensorID >= g.fleetSize {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrUnknownSensor, sensorID, g.fleetSize)
	}
	return g.Window(cat, span, step)
}

func (g *Generator) reading(spec catalog.Spec, ts time.Time) Reading {
	value := g.draw(spec.Range)
	r := Reading{Time: ts, Value: value, Status: spec.Status(value)}
	if spec.Category == catalog.Corrosion {
		r.Type = g.mechanism()
	}
	return r
}

func (g *Generator) draw(r catalog.Range) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

func (g *Generator) mechanism() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return corrosionMechanisms[g.rng.Intn(len(corrosionMechanisms))]
}

func windowPoints(span, step time.Duration) (int, error) {
	if step <= 0 {
		return 0, fmt.Errorf("%w: step %s is not positive", ErrInvalidWindow, step)
	}
	if span < step {
		return 0, fmt.Errorf("%w: span %s is shorter than step %s", ErrInvalidWindow, span, step)
	}
	count := int(span / step)
	if count > maxWindowPoints {
		return 0, fmt.Errorf("%w: %d points exceeds the %d point limit", ErrInvalidWindow, count, maxWindowPoints)
	}
	return count, nil
}

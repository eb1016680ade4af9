// Package catalog holds the static registry of rig sensor categories and the
// metadata the rest of the service reads: display labels, units, value ranges
// and status bands.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one kind of rig sensor in the API and on the wire.
type Category string

const (
	Corrosion   Category = "corrosion"
	Pressure    Category = "pressure"
	Temperature Category = "temperature"
	Acoustic    Category = "acoustic"
	FlowRate    Category = "flow_rate"
)

// Status labels how a reading sits relative to its category's bands. It is
// display metadata for chart tinting; nothing in the service acts on it.
type Status string

const (
	StatusGood        Status = "Good"
	StatusConcern     Status = "Concern"
	StatusMalfunction Status = "Malfunction"
)

// ErrUnknownCategory is returned when a lookup names a category that was never
// registered.
var ErrUnknownCategory = errors.New("unknown sensor category")

// Range is a closed interval of sensor values.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) within(outer Range) bool {
	return r.Min >= outer.Min && r.Max <= outer.Max
}

func (r Range) validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("min %v is not below max %v", r.Min, r.Max)
	}
	return nil
}

// Spec describes one sensor category: identity, display metadata, the range
// values are generated in, and the nested status bands. Values inside Good
// classify as Good, values inside Concern as Concern, everything else as
// Malfunction.
type Spec struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Unit     string   `json:"unit"`
	Range    Range    `json:"range"`
	Good     Range    `json:"-"`
	Concern  Range    `json:"-"`
}

// Status classifies a value against the spec's bands.
func (s Spec) Status(v float64) Status {
	switch {
	case s.Good.Contains(v):
		return StatusGood
	case s.Concern.Contains(v):
		return StatusConcern
	default:
		return StatusMalfunction
	}
}

func (s Spec) validate() error {
	if strings.TrimSpace(string(s.Category)) == "" {
		return errors.New("category name is required")
	}
	if strings.TrimSpace(s.Label) == "" {
		return errors.New("label is required")
	}
	if strings.TrimSpace(s.Unit) == "" {
		return errors.New("unit is required")
	}
	if err := s.Range.validate(); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if err := s.Good.validate(); err != nil {
		return fmt.Errorf("good band: %w", err)
	}
	if err := s.Concern.validate(); err != nil {
		return fmt.Errorf("concern band: %w", err)
	}
	if !s.Concern.within(s.Range) {
		return fmt.Errorf("concern band [%v, %v] exceeds range [%v, %v]", s.Concern.Min, s.Concern.Max, s.Range.Min, s.Range.Max)
	}
	if !s.Good.within(s.Concern) {
		return fmt.Errorf("good band [%v, %v] exceeds concern band [%v, %v]", s.Good.Min, s.Good.Max, s.Concern.Min, s.Concern.Max)
	}
	return nil
}

// Catalog is an immutable, ordered collection of category specs.
type Catalog struct {
	specs  []Spec
	byName map[Category]Spec
}

// New builds a catalog, validating every spec up front so a malformed
// registry fails at startup instead of per request.
func New(specs []Spec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, errors.New("catalog: at least one spec is required")
	}
	c := &Catalog{
		specs:  make([]Spec, 0, len(specs)),
		byName: make(map[Category]Spec, len(specs)),
	}
	for _, spec := range specs {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("catalog: %q: %w", spec.Category, err)
		}
		if _, dup := c.byName[spec.Category]; dup {
			return nil, fmt.Errorf("catalog: %q registered twice", spec.Category)
		}
		c.specs = append(c.specs, spec)
		c.byName[spec.Category] = spec
	}
	return c, nil
}

// Lookup returns the spec registered for cat, or ErrUnknownCategory.
func (c *Catalog) Lookup(cat Category) (Spec, error) {
	spec, ok := c.byName[cat]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	return spec, nil
}

// Specs returns the registered specs in registration order.
func (c *Catalog) Specs() []Spec {
	specs := make([]Spec, len(c.specs))
	copy(specs, c.specs)
	return specs
}

// Len returns the number of registered categories.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Default returns the rig catalog: the five monitored categories with their
// generation ranges and status bands.
func Default() *Catalog {
	c, err := New([]Spec{
		{
			Category: Pressure,
			Label:    "Pressure",
			Unit:     "psi",
			Range:    Range{Min: 0, Max: 100},
			Good:     Range{Min: 0, Max: 80},
			Concern:  Range{Min: 0, Max: 95},
		},
		{
			Category: Temperature,
			Label:    "Temperature",
			Unit:     "°C",
			Range:    Range{Min: -50, Max: 150},
			Good:     Range{Min: -20, Max: 120},
			Concern:  Range{Min: -40, Max: 140},
		},
		{
			Category: FlowRate,
			Label:    "Flow Rate",
			Unit:     "L/min",
			Range:    Range{Min: 0, Max: 1000},
			Good:     Range{Min: 100, Max: 900},
			Concern:  Range{Min: 50, Max: 950},
		},
		{
			Category: Acoustic,
			Label:    "Acoustic",
			Unit:     "dB",
			Range:    Range{Min: 40, Max: 120},
			Good:     Range{Min: 60, Max: 90},
			Concern:  Range{Min: 50, Max: 100},
		},
		{
			Category: Corrosion,
			Label:    "Corrosion",
			Unit:     "mm/year",
			Range:    Range{Min: 0, Max: 1},
			Good:     Range{Min: 0, Max: 0.1},
			Concern:  Range{Min: 0, Max: 0.4},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("catalog: default registry invalid: %v", err))
	}
	return c
}

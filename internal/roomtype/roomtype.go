package roomtype

import (
	"fmt"
	"strings"
)

const (
	Single = "Single"
	Double = "Double"
	Suite  = "Suite"
)

// Type is one catalog entry. Capacity is informational only.
type Type struct {
	Name        string
	NightlyRate float64
	Capacity    int
}

// Catalog is an immutable lookup table of room types, built once at start-up.
type Catalog struct {
	types map[string]Type
	order []string
}

func Default() *Catalog {
	//nolint:gomnd
	c, err := New(
		Type{Name: Single, NightlyRate: 100, Capacity: 1},
		Type{Name: Double, NightlyRate: 150, Capacity: 2},
		Type{Name: Suite, NightlyRate: 300, Capacity: 4},
	)
	if err != nil {
		panic(err)
	}

	return c
}

func New(types ...Type) (*Catalog, error) {
	if len(types) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		types: make(map[string]Type, len(types)),
		order: make([]string, 0, len(types)),
	}

	for _, t := range types {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("room type without name: %w", ErrInvalidType)
		}

		if t.NightlyRate <= 0 {
			return nil, fmt.Errorf("room type %q has rate %v: %w", t.Name, t.NightlyRate, ErrInvalidType)
		}

		if t.Capacity < 1 {
			return nil, fmt.Errorf("room type %q has capacity %d: %w", t.Name, t.Capacity, ErrInvalidType)
		}

		if _, ok := c.types[t.Name]; ok {
			return nil, fmt.Errorf("room type %q: %w", t.Name, ErrDuplicateType)
		}

		c.types[t.Name] = t
		c.order = append(c.order, t.Name)
	}

	return c, nil
}

func (c *Catalog) Lookup(name string) (Type, bool) {
	t, ok := c.types[name]

	return t, ok
}

// Names returns type names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)

	return names
}

func (c *Catalog) Len() int {
	return len(c.order)
}

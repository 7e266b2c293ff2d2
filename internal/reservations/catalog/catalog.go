package catalog

import (
	"fmt"
	"sort"

	reservationserrors "concierge/internal/reservations/errors"
)

// Catalog is the fixed room inventory of the property. It is built once at
// startup and never mutated, so lookups are safe at any concurrency level.
type Catalog struct {
	capacities map[string]int
}

func New(capacities map[string]int) (*Catalog, error) {
	if len(capacities) == 0 {
		return nil, fmt.Errorf("catalog requires at least one room type")
	}

	copied := make(map[string]int, len(capacities))
	for roomType, capacity := range capacities {
		if roomType == "" {
			return nil, fmt.Errorf("room type cannot be empty")
		}
		if capacity <= 0 {
			return nil, fmt.Errorf("room type %q must have positive capacity, got %d", roomType, capacity)
		}
		copied[roomType] = capacity
	}

	return &Catalog{capacities: copied}, nil
}

// Capacity returns the total unit count for roomType. An unknown room type
// is a distinct condition from zero capacity.
func (c *Catalog) Capacity(roomType string) (int, error) {
	capacity, ok := c.capacities[roomType]
	if !ok {
		return 0, reservationserrors.ErrUnknownRoomType
	}
	return capacity, nil
}

func (c *Catalog) Has(roomType string) bool {
	_, ok := c.capacities[roomType]
	return ok
}

func (c *Catalog) RoomTypes() []string {
	types := make([]string, 0, len(c.capacities))
	for roomType := range c.capacities {
		types = append(types, roomType)
	}
	sort.Strings(types)
	return types
}

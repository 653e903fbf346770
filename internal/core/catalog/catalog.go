package catalog

import (
	"errors"
	"fmt"

	"github.com/niksmo/aqua-plant/internal/core/domain"
)

// A Catalog is an immutable, ordered set of plants.
type Catalog struct {
	plants   []domain.Plant
	index    map[domain.PlantID]int
	currency string
}

// New validates ps and returns a Catalog holding a copy of them in the
// given order.
func New(ps []domain.Plant) (Catalog, error) {
	const op = "catalog.New"

	var errs []error
	index := make(map[domain.PlantID]int, len(ps))
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if p.Price.Currency != ps[0].Price.Currency {
			errs = append(errs, fmt.Errorf("%w: id %d: currency %q differs from %q",
				domain.ErrInvalidPlant, p.ID, p.Price.Currency, ps[0].Price.Currency))
			continue
		}
		if _, ok := index[p.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %d", domain.ErrDuplicatePlant, p.ID))
			continue
		}
		index[p.ID] = i
	}
	if len(errs) != 0 {
		return Catalog{}, fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	plants := make([]domain.Plant, len(ps))
	copy(plants, ps)
	c := Catalog{plants: plants, index: index}
	if len(plants) != 0 {
		c.currency = plants[0].Price.Currency
	}
	return c, nil
}

// Default returns the catalog built from [Seed].
func Default() Catalog {
	c, err := New(Seed())
	if err != nil {
		panic(err) // develop mistake
	}
	return c
}

func (c Catalog) Lookup(id domain.PlantID) (domain.Plant, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Plant{}, false
	}
	return c.plants[i], true
}

// Plants returns a copy of all plants in source order.
func (c Catalog) Plants() []domain.Plant {
	ps := make([]domain.Plant, len(c.plants))
	copy(ps, c.plants)
	return ps
}

func (c Catalog) Len() int {
	return len(c.plants)
}

// Currency is the single currency all prices are quoted in.
func (c Catalog) Currency() string {
	return c.currency
}

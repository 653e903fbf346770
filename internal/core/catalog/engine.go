package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/niksmo/aqua-plant/internal/core/domain"
)

// An Engine holds the cart and filter state of one storefront session over
// an immutable [Catalog]. It is not safe for concurrent use.
//
// Increment and Decrement do not consult the catalog: stock and existence
// checks belong to the caller.
type Engine struct {
	catalog  Catalog
	cart     map[domain.PlantID]int
	criteria domain.FilterCriteria
}

func NewEngine(c Catalog) *Engine {
	return &Engine{
		catalog:  c,
		cart:     make(map[domain.PlantID]int),
		criteria: domain.DefaultFilter(),
	}
}

func (e *Engine) Catalog() Catalog {
	return e.catalog
}

func (e *Engine) Increment(id domain.PlantID) {
	e.cart[id]++
}

// Decrement lowers the quantity of id by one and drops the entry instead of
// keeping it at zero. Absent ids are left alone.
func (e *Engine) Decrement(id domain.PlantID) {
	n, ok := e.cart[id]
	if !ok {
		return
	}
	if n > 1 {
		e.cart[id] = n - 1
		return
	}
	delete(e.cart, id)
}

func (e *Engine) QuantityOf(id domain.PlantID) int {
	return e.cart[id]
}

func (e *Engine) TotalItemCount() (total int) {
	for _, n := range e.cart {
		total += n
	}
	return total
}

// Cart returns the cart lines ordered by plant id.
func (e *Engine) Cart() domain.CartSummary {
	summary := domain.CartSummary{
		Lines:      make([]domain.CartLine, 0, len(e.cart)),
		TotalPrice: domain.PlantPrice{Currency: e.catalog.Currency()},
	}
	for id, n := range e.cart {
		line := domain.CartLine{PlantID: id, Quantity: n}
		if p, ok := e.catalog.Lookup(id); ok {
			line.Plant = p
			line.Subtotal = p.Price.Amount * float64(n)
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalItems += n
		summary.TotalPrice.Amount += line.Subtotal
	}
	slices.SortFunc(summary.Lines, func(a, b domain.CartLine) int {
		return int(a.PlantID) - int(b.PlantID)
	})
	return summary
}

func (e *Engine) Filter() domain.FilterCriteria {
	return e.criteria
}

// SetFilter lays u over the current criteria. On error the criteria are
// unchanged.
func (e *Engine) SetFilter(u domain.FilterUpdate) error {
	const op = "Engine.SetFilter"
	if err := u.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	e.criteria = e.criteria.Apply(u)
	return nil
}

func (e *Engine) ResetFilter() {
	e.criteria = domain.DefaultFilter()
}

// VisibleProducts returns the catalog plants matching the current criteria
// in catalog order.
func (e *Engine) VisibleProducts() []domain.Plant {
	vs := make([]domain.Plant, 0, e.catalog.Len())
	for _, p := range e.catalog.plants {
		if Matches(p, e.criteria) {
			vs = append(vs, p)
		}
	}
	return vs
}

// Matches reports whether p passes every predicate of c.
func Matches(p domain.Plant, c domain.FilterCriteria) bool {
	return matchesSearch(p, c.SearchText) &&
		(c.Size.IsAll() || p.Size == c.Size) &&
		(c.Lighting.IsAll() || p.Lighting == c.Lighting) &&
		(c.Difficulty.IsAll() || p.Difficulty == c.Difficulty)
}

func matchesSearch(p domain.Plant, text string) bool {
	q := strings.ToLower(text)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.LatinName), q)
}

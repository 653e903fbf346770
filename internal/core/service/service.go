package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/aqua-plant/internal/core/catalog"
	"github.com/niksmo/aqua-plant/internal/core/domain"
	"github.com/niksmo/aqua-plant/internal/core/port"
)

var _ port.PlantsLister = (*Storefront)(nil)
var _ port.PlantsFilterer = (*Storefront)(nil)
var _ port.CartKeeper = (*Storefront)(nil)

// A Storefront is the single owner of one [catalog.Engine]. Every call runs
// to completion under its lock, so concurrent callers observe each mutation
// fully applied.
//
// The engine is permissive about unknown and out-of-stock plants; the
// Storefront rejects both before touching the cart.
type Storefront struct {
	mu        sync.Mutex
	engine    *catalog.Engine
	publisher port.CartEventsPublisher
	metrics   port.StorefrontMetrics
}

// New returns a Storefront over e. publisher and metrics may be nil.
func New(
	e *catalog.Engine,
	publisher port.CartEventsPublisher,
	metrics port.StorefrontMetrics,
) *Storefront {
	return &Storefront{
		engine:    e,
		publisher: publisher,
		metrics:   metrics,
	}
}

func (s *Storefront) Plants(
	ctx context.Context,
) ([]domain.Plant, domain.FilterCriteria, error) {
	const op = "Storefront.Plants"

	if err := ctx.Err(); err != nil {
		return nil, domain.FilterCriteria{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.VisibleProducts(), s.engine.Filter(), nil
}

func (s *Storefront) SetFilter(
	ctx context.Context, u domain.FilterUpdate,
) ([]domain.Plant, error) {
	const op = "Storefront.SetFilter"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	err := s.engine.SetFilter(u)
	visible := s.engine.VisibleProducts()
	s.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.filterChanged(len(visible))
	return visible, nil
}

func (s *Storefront) ResetFilter(ctx context.Context) ([]domain.Plant, error) {
	const op = "Storefront.ResetFilter"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.engine.ResetFilter()
	visible := s.engine.VisibleProducts()
	s.mu.Unlock()

	s.filterChanged(len(visible))
	return visible, nil
}

func (s *Storefront) AddToCart(
	ctx context.Context, id domain.PlantID,
) (domain.CartSummary, error) {
	const op = "Storefront.AddToCart"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	p, ok := s.engine.Catalog().Lookup(id)
	if !ok || !p.InStock {
		s.mu.Unlock()
		err := domain.ErrPlantNotFound
		if ok {
			err = domain.ErrOutOfStock
		}
		s.cartRejected(err)
		return domain.CartSummary{}, fmt.Errorf("%s: id %d: %w", op, id, err)
	}
	s.engine.Increment(id)
	evt := domain.NewCartEvent(
		domain.CartEventAdded, id,
		s.engine.QuantityOf(id), s.engine.TotalItemCount(),
	)
	summary := s.engine.Cart()
	s.mu.Unlock()

	s.cartChanged(ctx, evt)
	return summary, nil
}

// RemoveFromCart decrements the quantity of id. Removing a plant that is
// not in the cart is not an error.
func (s *Storefront) RemoveFromCart(
	ctx context.Context, id domain.PlantID,
) (domain.CartSummary, error) {
	const op = "Storefront.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	if _, ok := s.engine.Catalog().Lookup(id); !ok {
		s.mu.Unlock()
		s.cartRejected(domain.ErrPlantNotFound)
		return domain.CartSummary{}, fmt.Errorf(
			"%s: id %d: %w", op, id, domain.ErrPlantNotFound,
		)
	}
	before := s.engine.QuantityOf(id)
	s.engine.Decrement(id)
	evt := domain.NewCartEvent(
		domain.CartEventRemoved, id,
		s.engine.QuantityOf(id), s.engine.TotalItemCount(),
	)
	summary := s.engine.Cart()
	s.mu.Unlock()

	if before != 0 {
		s.cartChanged(ctx, evt)
	}
	return summary, nil
}

func (s *Storefront) Cart(ctx context.Context) (domain.CartSummary, error) {
	const op = "Storefront.Cart"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Cart(), nil
}

func (s *Storefront) cartChanged(ctx context.Context, evt domain.CartEvent) {
	const op = "Storefront.cartChanged"

	if s.metrics != nil {
		s.metrics.CartChanged(evt.Kind, evt.TotalItems)
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCartEvent(ctx, evt); err != nil {
		slog.Warn("failed to publish cart event",
			"op", op, "eventID", evt.EventID, "err", err)
	}
}

func (s *Storefront) cartRejected(reason error) {
	if s.metrics != nil {
		s.metrics.CartRejected(reason)
	}
}

func (s *Storefront) filterChanged(visible int) {
	if s.metrics != nil {
		s.metrics.FilterChanged(visible)
	}
}

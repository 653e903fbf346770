package port

import (
	"context"

	"github.com/niksmo/aqua-plant/internal/core/domain"
)

type PlantsLister interface {
	Plants(context.Context) ([]domain.Plant, domain.FilterCriteria, error)
}

type PlantsFilterer interface {
	SetFilter(context.Context, domain.FilterUpdate) ([]domain.Plant, error)
	ResetFilter(context.Context) ([]domain.Plant, error)
}

type CartKeeper interface {
	AddToCart(context.Context, domain.PlantID) (domain.CartSummary, error)
	RemoveFromCart(context.Context, domain.PlantID) (domain.CartSummary, error)
	Cart(context.Context) (domain.CartSummary, error)
}

type CartEventsPublisher interface {
	PublishCartEvent(context.Context, domain.CartEvent) error
}

type PlantsLoader interface {
	LoadPlants(context.Context) ([]domain.Plant, error)
}

type StorefrontMetrics interface {
	CartChanged(kind domain.CartEventKind, totalItems int)
	CartRejected(reason error)
	FilterChanged(visible int)
}

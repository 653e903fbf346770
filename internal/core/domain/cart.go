package domain

import (
	"time"

	"github.com/google/uuid"
)

type CartLine struct {
	PlantID  PlantID
	Quantity int
	// Plant is zero when the id has no catalog record.
	Plant    Plant
	Subtotal float64
}

type CartSummary struct {
	Lines      []CartLine
	TotalItems int
	TotalPrice PlantPrice
}

type CartEventKind string

const (
	CartEventAdded   CartEventKind = "added"
	CartEventRemoved CartEventKind = "removed"
)

type CartEvent struct {
	EventID    uuid.UUID
	Kind       CartEventKind
	PlantID    PlantID
	Quantity   int
	TotalItems int
	OccurredAt time.Time
}

func NewCartEvent(
	kind CartEventKind, id PlantID, quantity, totalItems int,
) CartEvent {
	return CartEvent{
		EventID:    uuid.New(),
		Kind:       kind,
		PlantID:    id,
		Quantity:   quantity,
		TotalItems: totalItems,
		OccurredAt: time.Now().UTC(),
	}
}

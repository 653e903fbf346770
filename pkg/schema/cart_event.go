package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields" : [
		{"name": "event_id", "type": {"type": "string", "logicalType": "uuid"}},
		{"name": "kind", "type": {
			"type": "enum", "name": "cart_event_kind", "symbols": ["added", "removed"]
		}},
		{"name": "plant_id", "type": "long"},
		{"name": "quantity", "type": "long"},
		{"name": "total_items", "type": "long"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type CartEventV1 struct {
	EventID    string    `avro:"event_id"`
	Kind       string    `avro:"kind"`
	PlantID    int       `avro:"plant_id"`
	Quantity   int       `avro:"quantity"`
	TotalItems int       `avro:"total_items"`
	OccurredAt time.Time `avro:"occurred_at"`
}

// CartEventV1Avro panics if [CartEventSchemaTextV1] does not parse.
func CartEventV1Avro() avro.Schema {
	return avro.MustParse(CartEventSchemaTextV1)
}

package httphandler

import "github.com/niksmo/aqua-plant/internal/core/domain"

type (
	Plant struct {
		ID           int        `json:"id"`
		Name         string     `json:"name"`
		LatinName    string     `json:"latin_name"`
		Price        PlantPrice `json:"price"`
		Image        string     `json:"image"`
		Size         Attribute  `json:"size"`
		Lighting     Attribute  `json:"lighting"`
		Difficulty   Attribute  `json:"difficulty"`
		InStock      bool       `json:"in_stock"`
		CanAddToCart bool       `json:"can_add_to_cart"`
	}

	PlantPrice struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}

	Attribute struct {
		Value string `json:"value"`
		Label string `json:"label"`
		Tone  string `json:"tone,omitempty"`
	}
)

type PlantsResponse struct {
	Filter Filter  `json:"filter"`
	Plants []Plant `json:"plants"`
	Empty  bool    `json:"empty"`
}

type Filter struct {
	SearchText string `json:"search_text"`
	Size       string `json:"size"`
	Lighting   string `json:"lighting"`
	Difficulty string `json:"difficulty"`
}

// FilterPatch is a partial filter update; absent fields keep their value.
type FilterPatch struct {
	SearchText *string `json:"search_text"`
	Size       *string `json:"size"`
	Lighting   *string `json:"lighting"`
	Difficulty *string `json:"difficulty"`
}

type (
	CartResponse struct {
		Lines      []CartLine `json:"lines"`
		TotalItems int        `json:"total_items"`
		TotalPrice PlantPrice `json:"total_price"`
	}

	CartLine struct {
		PlantID  int     `json:"plant_id"`
		Name     string  `json:"name,omitempty"`
		Quantity int     `json:"quantity"`
		Subtotal float64 `json:"subtotal"`
	}
)

func toPlant(p domain.Plant) Plant {
	return Plant{
		ID:        int(p.ID),
		Name:      p.Name,
		LatinName: p.LatinName,
		Price: PlantPrice{
			Amount:   p.Price.Amount,
			Currency: p.Price.Currency,
		},
		Image: p.Image,
		Size: Attribute{
			Value: string(p.Size),
			Label: p.Size.Label(),
		},
		Lighting: Attribute{
			Value: string(p.Lighting),
			Label: p.Lighting.Label(),
			Tone:  string(p.Lighting.Tone()),
		},
		Difficulty: Attribute{
			Value: string(p.Difficulty),
			Label: p.Difficulty.Label(),
			Tone:  string(p.Difficulty.Tone()),
		},
		InStock:      p.InStock,
		CanAddToCart: p.InStock,
	}
}

func toPlants(ps []domain.Plant) []Plant {
	vs := make([]Plant, len(ps))
	for i := range ps {
		vs[i] = toPlant(ps[i])
	}
	return vs
}

func toFilter(c domain.FilterCriteria) Filter {
	return Filter{
		SearchText: c.SearchText,
		Size:       string(c.Size),
		Lighting:   string(c.Lighting),
		Difficulty: string(c.Difficulty),
	}
}

func (p FilterPatch) toDomain() (u domain.FilterUpdate) {
	u.SearchText = p.SearchText
	if p.Size != nil {
		v := domain.Size(*p.Size)
		u.Size = &v
	}
	if p.Lighting != nil {
		v := domain.Lighting(*p.Lighting)
		u.Lighting = &v
	}
	if p.Difficulty != nil {
		v := domain.Difficulty(*p.Difficulty)
		u.Difficulty = &v
	}
	return u
}

func toCart(s domain.CartSummary) CartResponse {
	res := CartResponse{
		Lines:      make([]CartLine, len(s.Lines)),
		TotalItems: s.TotalItems,
		TotalPrice: PlantPrice{
			Amount:   s.TotalPrice.Amount,
			Currency: s.TotalPrice.Currency,
		},
	}
	for i, l := range s.Lines {
		res.Lines[i] = CartLine{
			PlantID:  int(l.PlantID),
			Name:     l.Plant.Name,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal,
		}
	}
	return res
}

package catalog

import "github.com/niksmo/aqua-plant/internal/core/domain"

const currencyRUB = "RUB"

const (
	imageSmallLowLight = "/img/02c179ea-ecd0-445f-b0e6-675a7b12f33f.jpg"
	imageCarpet        = "/img/3b8c32e6-17a3-4755-96f8-2e477c2722f2.jpg"
	imageStem          = "/img/3dfc4cc8-4fd2-44f4-a21b-e02990bb37c9.jpg"
)

// Seed returns the built-in plant list of the shop.
func Seed() []domain.Plant {
	return []domain.Plant{
		{
			ID:         1,
			Name:       "Криптокорина парва",
			LatinName:  "Cryptocoryne parva",
			Price:      domain.PlantPrice{Amount: 150, Currency: currencyRUB},
			Image:      imageSmallLowLight,
			Size:       domain.SizeSmall,
			Lighting:   domain.LightingLow,
			Difficulty: domain.DifficultyEasy,
			InStock:    true,
		},
		{
			ID:         2,
			Name:       "Хемиантус микрантемоидес",
			LatinName:  "Hemianthus micranthemoides",
			Price:      domain.PlantPrice{Amount: 190, Currency: currencyRUB},
			Image:      imageCarpet,
			Size:       domain.SizeSmall,
			Lighting:   domain.LightingMedium,
			Difficulty: domain.DifficultyMedium,
			InStock:    true,
		},
		{
			ID:         3,
			Name:       "Микрантемум Монте Карло",
			LatinName:  "Micranthemum sp. Monte Carlo",
			Price:      domain.PlantPrice{Amount: 200, Currency: currencyRUB},
			Image:      imageCarpet,
			Size:       domain.SizeSmall,
			Lighting:   domain.LightingHigh,
			Difficulty: domain.DifficultyMedium,
			InStock:    true,
		},
		{
			ID:         4,
			Name:       "Людвигия аркуата",
			LatinName:  "Ludwigia arcuata",
			Price:      domain.PlantPrice{Amount: 290, Currency: currencyRUB},
			Image:      imageStem,
			Size:       domain.SizeMedium,
			Lighting:   domain.LightingHigh,
			Difficulty: domain.DifficultyHard,
			InStock:    true,
		},
		{
			ID:         5,
			Name:       "Анубиас нана",
			LatinName:  "Anubias barteri var. nana",
			Price:      domain.PlantPrice{Amount: 320, Currency: currencyRUB},
			Image:      imageSmallLowLight,
			Size:       domain.SizeMedium,
			Lighting:   domain.LightingLow,
			Difficulty: domain.DifficultyEasy,
			InStock:    true,
		},
		{
			ID:         6,
			Name:       "Ротала индика",
			LatinName:  "Rotala indica",
			Price:      domain.PlantPrice{Amount: 180, Currency: currencyRUB},
			Image:      imageStem,
			Size:       domain.SizeLarge,
			Lighting:   domain.LightingMedium,
			Difficulty: domain.DifficultyMedium,
			InStock:    false,
		},
	}
}

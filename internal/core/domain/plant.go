package domain

import "fmt"

// FilterAll is the "match all" sentinel of every categorical filter.
const FilterAll = "all"

type PlantID int

type (
	Size       string
	Lighting   string
	Difficulty string
)

const (
	SizeAll    Size = FilterAll
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

const (
	LightingAll    Lighting = FilterAll
	LightingLow    Lighting = "low"
	LightingMedium Lighting = "medium"
	LightingHigh   Lighting = "high"
)

const (
	DifficultyAll    Difficulty = FilterAll
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type (
	Plant struct {
		ID         PlantID
		Name       string
		LatinName  string
		Price      PlantPrice
		Image      string
		Size       Size
		Lighting   Lighting
		Difficulty Difficulty
		InStock    bool
	}

	PlantPrice struct {
		Amount   float64
		Currency string
	}
)

// Validate reports the first problem that makes p unusable as a catalog
// record.
func (p Plant) Validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("%w: id %d is not positive", ErrInvalidPlant, p.ID)
	case p.Name == "":
		return fmt.Errorf("%w: id %d: empty name", ErrInvalidPlant, p.ID)
	case p.LatinName == "":
		return fmt.Errorf("%w: id %d: empty latin name", ErrInvalidPlant, p.ID)
	case p.Price.Amount <= 0:
		return fmt.Errorf("%w: id %d: price %v is not positive",
			ErrInvalidPlant, p.ID, p.Price.Amount)
	case !p.Size.valid():
		return fmt.Errorf("%w: id %d: size %q", ErrInvalidPlant, p.ID, p.Size)
	case !p.Lighting.valid():
		return fmt.Errorf("%w: id %d: lighting %q",
			ErrInvalidPlant, p.ID, p.Lighting)
	case !p.Difficulty.valid():
		return fmt.Errorf("%w: id %d: difficulty %q",
			ErrInvalidPlant, p.ID, p.Difficulty)
	}
	return nil
}

func (s Size) valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func (l Lighting) valid() bool {
	switch l {
	case LightingLow, LightingMedium, LightingHigh:
		return true
	}
	return false
}

func (d Difficulty) valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// IsAll reports whether s lets every size through. The zero value counts.
func (s Size) IsAll() bool { return s == "" || s == SizeAll }

func (l Lighting) IsAll() bool { return l == "" || l == LightingAll }

func (d Difficulty) IsAll() bool { return d == "" || d == DifficultyAll }

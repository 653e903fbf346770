package domain

import (
	"errors"
	"fmt"
)

type FilterCriteria struct {
	SearchText string
	Size       Size
	Lighting   Lighting
	Difficulty Difficulty
}

// DefaultFilter lets every plant through.
func DefaultFilter() FilterCriteria {
	return FilterCriteria{
		Size:       SizeAll,
		Lighting:   LightingAll,
		Difficulty: DifficultyAll,
	}
}

// A FilterUpdate replaces the non-nil fields of a [FilterCriteria].
type FilterUpdate struct {
	SearchText *string
	Size       *Size
	Lighting   *Lighting
	Difficulty *Difficulty
}

func (u FilterUpdate) Validate() error {
	var errs []error
	if u.Size != nil && !u.Size.IsAll() && !u.Size.valid() {
		errs = append(errs, fmt.Errorf("size %q", *u.Size))
	}
	if u.Lighting != nil && !u.Lighting.IsAll() && !u.Lighting.valid() {
		errs = append(errs, fmt.Errorf("lighting %q", *u.Lighting))
	}
	if u.Difficulty != nil && !u.Difficulty.IsAll() && !u.Difficulty.valid() {
		errs = append(errs, fmt.Errorf("difficulty %q", *u.Difficulty))
	}
	if len(errs) != 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, errors.Join(errs...))
	}
	return nil
}

// Apply returns c with the fields of u laid over it. Empty enum values are
// normalized to the "all" sentinel.
func (c FilterCriteria) Apply(u FilterUpdate) FilterCriteria {
	if u.SearchText != nil {
		c.SearchText = *u.SearchText
	}
	if u.Size != nil {
		c.Size = *u.Size
	}
	if u.Lighting != nil {
		c.Lighting = *u.Lighting
	}
	if u.Difficulty != nil {
		c.Difficulty = *u.Difficulty
	}
	if c.Size.IsAll() {
		c.Size = SizeAll
	}
	if c.Lighting.IsAll() {
		c.Lighting = LightingAll
	}
	if c.Difficulty.IsAll() {
		c.Difficulty = DifficultyAll
	}
	return c
}

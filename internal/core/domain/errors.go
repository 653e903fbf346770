package domain

import "errors"

var (
	ErrPlantNotFound  = errors.New("plant not found")
	ErrOutOfStock     = errors.New("plant is out of stock")
	ErrInvalidFilter  = errors.New("invalid filter")
	ErrInvalidPlant   = errors.New("invalid plant")
	ErrDuplicatePlant = errors.New("duplicate plant id")
)

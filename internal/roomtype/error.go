package roomtype

import "errors"

var (
	ErrEmptyCatalog  = errors.New("room type catalog is empty")
	ErrInvalidType   = errors.New("invalid room type")
	ErrDuplicateType = errors.New("duplicate room type")
)

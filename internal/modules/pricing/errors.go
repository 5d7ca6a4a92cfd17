package pricing

import "errors"

var (
	ErrMaterialNotFound  = errors.New("material not found")
	ErrMaterialExists    = errors.New("material already exists")
	ErrBelowMinimumOrder = errors.New("quantity below minimum order")
	ErrInvalidMaterial   = errors.New("material attributes out of range")
)

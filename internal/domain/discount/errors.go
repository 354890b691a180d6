package discount

import "errors"

var (
	ErrInvalidCategory = errors.New("unknown discount category")
	ErrInvalidAmount   = errors.New("discount amount must be greater than zero")
)

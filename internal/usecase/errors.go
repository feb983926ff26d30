package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrJobNotFound  = errors.New("job not found")
	ErrInternal     = errors.New("internal error")
)

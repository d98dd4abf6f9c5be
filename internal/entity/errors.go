package entity

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrExpired          = errors.New("expired")
	ErrInvalidSecret    = errors.New("invalid PIN")
)

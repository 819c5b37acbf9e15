package model

import "errors"

var (
	ErrUnknownMaterial        = errors.New("unknown material")
	ErrInvalidThickness       = errors.New("invalid thickness")
	ErrIncompleteMaterialData = errors.New("incomplete material data")
	ErrInvalidMaterial        = errors.New("invalid material")
	ErrInvalidAssembly        = errors.New("invalid assembly")
	ErrUnknownAssembly        = errors.New("unknown assembly")
	ErrNoAssemblies           = errors.New("no assemblies selected")
	ErrTooManyAssemblies      = errors.New("too many assemblies selected")
)

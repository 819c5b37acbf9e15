package calculator

import (
	"fmt"

	"uvalue/model"
)

// UnknownMaterialError 层引用的材料不在材料库中
type UnknownMaterialError struct {
	Index int
	Name  string
	Err   error
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("layer %d: unknown material %q", e.Index, e.Name)
}

func (e *UnknownMaterialError) Is(target error) bool {
	return target == model.ErrUnknownMaterial
}

func (e *UnknownMaterialError) Unwrap() error {
	return e.Err
}

type InvalidThicknessError struct {
	Index int
	Value float64
}

func (e *InvalidThicknessError) Error() string {
	return fmt.Sprintf("layer %d: invalid thickness %v", e.Index, e.Value)
}

func (e *InvalidThicknessError) Is(target error) bool {
	return target == model.ErrInvalidThickness
}

// IncompleteMaterialDataError is only returned in strict mode; otherwise the
// same condition is reported as an advisory on the result.
type IncompleteMaterialDataError struct {
	Index int
	Name  string
}

func (e *IncompleteMaterialDataError) Error() string {
	return fmt.Sprintf("layer %d: material %q has neither conductivity nor fixed resistance", e.Index, e.Name)
}

func (e *IncompleteMaterialDataError) Is(target error) bool {
	return target == model.ErrIncompleteMaterialData
}

package timequery

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidTransform     = errors.New("invalid transform")
	ErrInvalidTransformType = fmt.Errorf("%w: unknown type", ErrInvalidTransform)
	ErrInvalidTransformUnit = fmt.Errorf("%w: unknown unit", ErrInvalidTransform)
)

// invalidTypeError returns an error for an unknown transform type,
// which unwraps to ErrInvalidTransformType.
func invalidTypeError(transformType Type) error {
	return fmt.Errorf("%w %q", ErrInvalidTransformType, transformType)
}

// invalidUnitError returns an error for a unit that is not valid for the
// given transform type, which unwraps to ErrInvalidTransformUnit.
func invalidUnitError(transformType Type, unit Unit) error {
	return fmt.Errorf("%w %q for %s", ErrInvalidTransformUnit, unit, transformType)
}

// invalidNameError returns an error for a transform name with no entry in
// either the transform or the alias table, which unwraps to
// ErrInvalidTransform.
func invalidNameError(name string) error {
	return fmt.Errorf("%w: unknown name %q", ErrInvalidTransform, name)
}

package errors

import (
	"math"
	"strings"
)

// ValidateGridRatio checks that a grid ratio can be used for rasterization.
// A non-positive ratio makes the cell size undefined.
func ValidateGridRatio(ratio float64) error {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return New(ErrCodeConfigOutOfRange, "grid ratio must be finite, got %v", ratio)
	}
	if ratio <= 0 {
		return New(ErrCodeConfigOutOfRange, "grid ratio must be positive, got %v", ratio)
	}
	return nil
}

// ValidateNodePadding checks that a node padding is finite and non-negative.
func ValidateNodePadding(padding float64) error {
	if math.IsNaN(padding) || math.IsInf(padding, 0) {
		return New(ErrCodeConfigOutOfRange, "node padding must be finite, got %v", padding)
	}
	if padding < 0 {
		return New(ErrCodeConfigOutOfRange, "node padding must not be negative, got %v", padding)
	}
	return nil
}

// ValidateCoordinate checks that a named coordinate is a finite number.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidateName checks a strategy or renderer name against the known set.
// The comparison is case-insensitive; the error lists the accepted names.
func ValidateName(kind, name string, known []string) error {
	for _, k := range known {
		if strings.EqualFold(k, name) {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "unknown %s %q (must be one of: %s)", kind, name, strings.Join(known, ", "))
}

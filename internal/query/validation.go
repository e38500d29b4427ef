package query

import (
	"errors"
	"fmt"
)

// MaxConditionLength is the maximum allowed condition length (64KB)
const MaxConditionLength = 64 * 1024

var (
	// ErrInvalidConditionFormat is returned when an expression does not match
	// its grammar. The message always carries the offending expression.
	ErrInvalidConditionFormat = errors.New("invalid condition format")

	// ErrConditionTooLong is returned when a condition exceeds MaxConditionLength
	ErrConditionTooLong = errors.New("condition too long")

	// ErrUnknownField is returned when a condition names a field that is not
	// in the table header.
	ErrUnknownField = errors.New("unknown field")

	// ErrNoNumericData is returned when an aggregate finds no numeric cells.
	ErrNoNumericData = errors.New("no numeric data to aggregate")
)

// ValidateCondition checks condition length before scanning.
func ValidateCondition(expr string) error {
	if len(expr) > MaxConditionLength {
		return fmt.Errorf("%w: %w: %d bytes (max %d)", ErrInvalidConditionFormat, ErrConditionTooLong, len(expr), MaxConditionLength)
	}
	return nil
}

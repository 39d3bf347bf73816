package document

import (
	"errors"
	"fmt"
	"strconv"
)

// Both decoders reject numbers a float64 cannot represent, so a literal
// that fails in one encoding fails the same way in the other.

func outOfRangeMessage(literal string) string {
	return fmt.Sprintf("number %s out of range", literal)
}

func nonFiniteMessage(literal string) string {
	return fmt.Sprintf("number %s is not finite", literal)
}

// overflows reports whether a numeric literal is too large for a float64.
// Underflow rounds to zero and is accepted.
func overflows(literal string) bool {
	_, err := strconv.ParseFloat(literal, 64)
	return errors.Is(err, strconv.ErrRange)
}

package input

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NameSeparator splits the car names line
const NameSeparator = ","

var (
	errNotPositive = errors.New("round count must be greater than zero")
	errNotWhole    = errors.New("round count must be a whole number")
)

// ParseCarNames splits line on commas, trims every name and checks its
// length in characters. Empty names are kept as typed.
func ParseCarNames(line string, maxLength int) ([]string, error) {
	parts := strings.Split(line, NameSeparator)
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if utf8.RuneCountInString(name) > maxLength {
			return nil, &NameTooLongError{Name: name, MaxLength: maxLength}
		}
		names = append(names, name)
	}

	return names, nil
}

// ParseRoundCount parses a positive whole number, ignoring surrounding
// whitespace. Numeric forms such as "5.0" or "1e2" are accepted as long as
// their value is whole.
func ParseRoundCount(line string) (int, error) {
	trimmed := strings.TrimSpace(line)

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &InvalidRoundCountError{Input: trimmed, Err: err}
	}
	if math.IsInf(value, 0) || math.IsNaN(value) || math.Trunc(value) != value || value >= math.MaxInt64 {
		return 0, &InvalidRoundCountError{Input: trimmed, Err: errNotWhole}
	}
	if value <= 0 {
		return 0, &InvalidRoundCountError{Input: trimmed, Err: errNotPositive}
	}

	return int(value), nil
}

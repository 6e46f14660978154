package cli

import (
	"errors"
	"strconv"
	"strings"
)

// Parse failures shells can branch on. None of these ever reach the core;
// Approximate only sees validated positive integers.
var (
	ErrFormat      = errors.New("expected two values separated by a space or colon")
	ErrNotInteger  = errors.New("expected valid positive integers")
	ErrNotPositive = errors.New("expected integers greater than 0")
)

// ParseRatio parses user ratio input in either "16 9" or "16:9" form into two
// validated positive integers.
func ParseRatio(input string) (int, int, error) {
	input = strings.TrimSpace(input)

	var parts []string
	if strings.Contains(input, ":") {
		parts = strings.Split(input, ":")
	} else {
		parts = strings.Fields(input)
	}
	if len(parts) != 2 {
		return 0, 0, ErrFormat
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrNotInteger
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrNotInteger
	}
	if a <= 0 || b <= 0 {
		return 0, 0, ErrNotPositive
	}
	return a, b, nil
}

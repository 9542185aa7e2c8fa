package models

import (
	"fmt"
	"strings"
)

// UtilityTypes lists the supported utilities in their fixed reporting order.
var UtilityTypes = []string{"electricity", "water", "gas"}

// Months lists the calendar month names in calendar order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthIndex = func() map[string]int {
	m := make(map[string]int, len(Months))
	for i, name := range Months {
		m[name] = i + 1
	}
	return m
}()

// MonthIndex returns the 1-based calendar position of a canonical month name.
func MonthIndex(name string) (int, bool) {
	i, ok := monthIndex[name]
	return i, ok
}

// CanonicalMonth matches a month name case-insensitively.
func CanonicalMonth(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, m := range Months {
		if strings.EqualFold(m, name) {
			return m, true
		}
	}
	return "", false
}

// InvalidUtilityTypeError is returned when a utility type is outside the
// supported set.
type InvalidUtilityTypeError struct {
	Value string
}

func (e *InvalidUtilityTypeError) Error() string {
	return fmt.Sprintf("invalid utility type %q: must be one of %s", e.Value, strings.Join(UtilityTypes, ", "))
}

// ParseUtilityType lowercases s and checks it against UtilityTypes.
// An empty string is accepted and means "no filter".
func ParseUtilityType(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, u := range UtilityTypes {
		if u == s {
			return s, nil
		}
	}
	return "", &InvalidUtilityTypeError{Value: s}
}

package validator

import (
	"slices"
	"strings"
)

// stateCodes lists the 27 federative unit codes (26 states + DF), sorted.
var stateCodes = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO",
	"MA", "MG", "MS", "MT", "PA", "PB", "PE", "PI", "PR",
	"RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
}

// StateCodes returns the federative unit codes in alphabetical order.
func StateCodes() []string {
	return slices.Clone(stateCodes)
}

// IsStateCode reports whether s is a federative unit code. Case and
// surrounding spaces are ignored.
func IsStateCode(s string) bool {
	_, ok := slices.BinarySearch(stateCodes, strings.ToUpper(strings.TrimSpace(s)))
	return ok
}

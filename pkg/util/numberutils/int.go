package numberutils

import "strconv"

// ToIntWithDefault parses value as an int, returning defaultValue when the
// string is empty or not a valid number.
func ToIntWithDefault(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// ToIntInRange parses value as an int and clamps it into [min, max],
// returning defaultValue when parsing fails.
func ToIntInRange(value string, defaultValue, min, max int) int {
	parsed := ToIntWithDefault(value, defaultValue)
	if parsed < min {
		return min
	}
	if parsed > max {
		return max
	}
	return parsed
}

package util

import (
	"strconv"
	"strings"

	"tour-booking-api/exception"
)

// ParseID converts a path or body identifier to a positive id.
func ParseID(raw string, name string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || value == 0 {
		return 0, exception.BadRequest("invalid " + name)
	}
	return uint(value), nil
}

package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTimePattern matches 24-hour clock strings like "9:00" or
// "17:30". Input is validated against it before it reaches a store.
var ClockTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// NormalizeClockTime converts an HH:MM (or H:MM) clock string to the
// zero-padded HH:MM:SS form used in storage, e.g. "9:00" -> "09:00:00".
func NormalizeClockTime(s string) (string, error) {
	if !ClockTimePattern.MatchString(s) {
		return "", fmt.Errorf("invalid clock time %q", s)
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	return fmt.Sprintf("%02d:%s:00", hour, parts[1]), nil
}

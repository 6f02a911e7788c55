package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClockTime(t *testing.T) {
	cases := map[string]string{
		"9:00":  "09:00:00",
		"09:00": "09:00:00",
		"23:59": "23:59:00",
		"0:05":  "00:05:00",
	}
	for in, want := range cases {
		got, err := NormalizeClockTime(in)
		assert.NoError(t, err, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}

	for _, bad := range []string{"", "24:00", "9:5", "12:60", "0900", "9am", "12:00:61"} {
		_, err := NormalizeClockTime(bad)
		assert.Error(t, err, "%q", bad)
	}
}

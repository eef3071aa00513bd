package helper_util

import (
	"fmt"
	"strconv"
	"time"
)

// EpochMillis renders t the way browser localStorage stored authTimestamp:
// stringified milliseconds since epoch.
func EpochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseEpochMillis parses a stringified epoch-milliseconds timestamp.
func ParseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch-millis timestamp %q: %w", s, err)
	}
	return time.UnixMilli(ms), nil
}

package decorators

import (
	"time"
)

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// normalizeTimestamp rewrites parseable timestamps as RFC3339 in UTC. Values
// that can not be parsed are kept as they are.
func normalizeTimestamp(value string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return value
}

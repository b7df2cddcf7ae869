// internal/fetcher/timestamps.go
package fetcher

import (
	"encoding/json"
	"time"
)

// timestampFields maps a collection to the field of its record value that
// carries the content timestamp. Collections not listed here fall back to
// defaultTimestampField; an explicit table keeps timestamp extraction
// auditable per collection instead of guessing at nested fields.
var timestampFields = map[string]string{
	"app.bsky.feed.post":         "createdAt",
	"app.bsky.feed.like":         "createdAt",
	"app.bsky.feed.repost":       "createdAt",
	"app.bsky.feed.threadgate":   "createdAt",
	"app.bsky.feed.postgate":     "createdAt",
	"app.bsky.graph.follow":      "createdAt",
	"app.bsky.graph.block":       "createdAt",
	"app.bsky.graph.list":        "createdAt",
	"app.bsky.graph.listitem":    "createdAt",
	"app.bsky.graph.starterpack": "createdAt",
	"app.bsky.actor.profile":     "createdAt",
}

const defaultTimestampField = "createdAt"

// RecordTime extracts the content timestamp of a record value for the
// given collection. The second return is false when the field is absent
// or unparsable; such records are included by cutoff-bounded retrieval.
func RecordTime(collection string, value json.RawMessage) (time.Time, bool) {
	field, ok := timestampFields[collection]
	if !ok {
		field = defaultTimestampField
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(value, &fields); err != nil {
		return time.Time{}, false
	}

	raw, ok := fields[field]
	if !ok {
		return time.Time{}, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, false
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Package aggregate drives the retriever across the account's declared
// collections for one time window and rolls the counts up.
package aggregate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/model"
)

// bskyPrefix partitions collections into platform-native vs other-protocol.
const bskyPrefix = "app.bsky."

// Engine retrieves and aggregates one account's collections. Each time
// window is an independent traversal; the 30-day aggregate is not a
// filtered view of the all-time one. The shared request cache keeps the
// repeated pages cheap while preserving per-window fault isolation.
type Engine struct {
	Client *fetcher.Client
	PDS    string
	DID    string
}

// Window produces AggregateStats for the given cutoff and day count,
// retrieving every collection sequentially. A failed page truncates that
// collection's contribution and adds a warning; it never aborts the
// window.
func (e *Engine) Window(ctx context.Context, collections []string, cutoff *time.Time, days float64) (model.AggregateStats, []string) {
	stats := model.AggregateStats{
		ByCollection: make(map[string]model.CollectionStats, len(collections)),
	}
	var warnings []string

	for _, col := range collections {
		records, err := e.Client.ListRecords(ctx, e.PDS, e.DID, col, cutoff)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("list %s: %v (partial results kept)", col, err))
		}

		n := len(records)
		stats.Total += n
		if strings.HasPrefix(col, bskyPrefix) {
			stats.Bsky += n
		} else {
			stats.AtProto += n
		}
		stats.ByCollection[col] = model.CollectionStats{
			Count:  n,
			PerDay: model.Rate(n, days),
		}
	}

	stats.TotalPerDay = model.Rate(stats.Total, days)
	stats.BskyPerDay = model.Rate(stats.Bsky, days)
	stats.AtProtoPerDay = model.Rate(stats.AtProto, days)
	return stats, warnings
}

// IsBsky reports whether a collection belongs to the first-party app.
func IsBsky(collection string) bool {
	return strings.HasPrefix(collection, bskyPrefix)
}

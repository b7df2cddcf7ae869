// internal/fetcher/records.go
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

const pageLimit = 100

// Record is one item from a paginated collection listing. The value
// payload is collection-specific and left opaque here; records are
// read-only inputs and never mutated.
type Record struct {
	URI   string          `json:"uri"`
	CID   string          `json:"cid"`
	Value json.RawMessage `json:"value"`
}

type recordsPage struct {
	Records []Record `json:"records"`
	Cursor  string   `json:"cursor"`
}

// ListRecords fetches records from one of the account's collections,
// following the server-supplied cursor until exhausted.
//
// With a nil cutoff every page is fetched. With a cutoff, items whose
// content timestamp is at or after the cutoff are kept; items with no
// extractable timestamp are included by default. Retrieval stops after
// the first page that yields an older-than-cutoff item or fewer
// qualifying items than it returned. Collections are only approximately
// descending by time, so this early stop is a cost/completeness
// trade-off near the boundary, not a correctness guarantee.
//
// A failed page request ends retrieval and returns what was accumulated
// so far along with the error; callers must treat the sequence as
// potentially incomplete.
func (c *Client) ListRecords(ctx context.Context, pds, did, collection string, cutoff *time.Time) ([]Record, error) {
	base := fmt.Sprintf("%s/xrpc/com.atproto.repo.listRecords?repo=%s&collection=%s&limit=%d",
		pds, url.QueryEscape(did), url.QueryEscape(collection), pageLimit)

	var all []Record
	cursor := ""
	for {
		pageURL := base
		if cursor != "" {
			pageURL += "&cursor=" + url.QueryEscape(cursor)
		}

		var page recordsPage
		if err := c.GetJSON(ctx, pageURL, &page); err != nil {
			return all, err
		}

		if cutoff == nil {
			all = append(all, page.Records...)
		} else {
			kept := 0
			sawOlder := false
			for _, r := range page.Records {
				if ts, ok := RecordTime(collection, r.Value); ok && ts.Before(*cutoff) {
					sawOlder = true
					continue
				}
				all = append(all, r)
				kept++
			}
			if sawOlder || kept < len(page.Records) {
				return all, nil
			}
		}

		if page.Cursor == "" {
			return all, nil
		}
		cursor = page.Cursor
	}
}

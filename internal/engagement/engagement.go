// Package engagement sums engagement counters attributed to the
// account's own feed items.
package engagement

import (
	"context"

	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/model"
)

// Collect walks the account's full activity feed and sums the likes,
// reposts, quotes, and replies recorded against its own items. Feed
// entries that are reposts of another account's post are skipped. A page
// failure returns the totals accumulated so far along with the error.
func Collect(ctx context.Context, c *fetcher.Client, appview, actor string) (model.EngagementTotals, error) {
	items, err := c.AuthorFeed(ctx, appview, actor)

	var totals model.EngagementTotals
	for _, item := range items {
		if item.Reason != nil && item.Reason.Type == fetcher.ReasonRepost {
			continue
		}
		totals.Likes += item.Post.LikeCount
		totals.Reposts += item.Post.RepostCount
		totals.Quotes += item.Post.QuoteCount
		totals.Replies += item.Post.ReplyCount
	}
	return totals, err
}

// internal/fetcher/appview.go
package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dsablic/skylens/internal/model"
)

// ReasonRepost marks a feed item as a repost of another account's post.
const ReasonRepost = "app.bsky.feed.defs#reasonRepost"

// FeedItem is one entry of the account's public activity feed.
type FeedItem struct {
	Post struct {
		URI    string `json:"uri"`
		Author struct {
			DID string `json:"did"`
		} `json:"author"`
		LikeCount   int64 `json:"likeCount"`
		RepostCount int64 `json:"repostCount"`
		QuoteCount  int64 `json:"quoteCount"`
		ReplyCount  int64 `json:"replyCount"`
	} `json:"post"`
	Reason *struct {
		Type string `json:"$type"`
	} `json:"reason"`
}

type feedPage struct {
	Feed   []FeedItem `json:"feed"`
	Cursor string     `json:"cursor"`
}

// AuthorFeed fetches the account's full activity feed, unbounded. Like
// ListRecords, a failed page returns the accumulated items with the error.
func (c *Client) AuthorFeed(ctx context.Context, appview, actor string) ([]FeedItem, error) {
	base := fmt.Sprintf("%s/xrpc/app.bsky.feed.getAuthorFeed?actor=%s&limit=%d",
		appview, url.QueryEscape(actor), pageLimit)

	var all []FeedItem
	cursor := ""
	for {
		pageURL := base
		if cursor != "" {
			pageURL += "&cursor=" + url.QueryEscape(cursor)
		}

		var page feedPage
		if err := c.GetJSON(ctx, pageURL, &page); err != nil {
			return all, err
		}
		all = append(all, page.Feed...)

		if page.Cursor == "" {
			return all, nil
		}
		cursor = page.Cursor
	}
}

// Profile fetches the account's public profile view.
func (c *Client) Profile(ctx context.Context, appview, actor string) (model.Profile, error) {
	var p struct {
		Handle         string `json:"handle"`
		DisplayName    string `json:"displayName"`
		Description    string `json:"description"`
		Banner         string `json:"banner"`
		Avatar         string `json:"avatar"`
		FollowersCount int64  `json:"followersCount"`
		FollowsCount   int64  `json:"followsCount"`
		PostsCount     int64  `json:"postsCount"`
		CreatedAt      string `json:"createdAt"`
	}

	u := fmt.Sprintf("%s/xrpc/app.bsky.actor.getProfile?actor=%s", appview, url.QueryEscape(actor))
	if err := c.GetJSON(ctx, u, &p); err != nil {
		return model.Profile{}, err
	}

	created, _ := time.Parse(time.RFC3339, p.CreatedAt)
	return model.Profile{
		Handle:         p.Handle,
		DisplayName:    p.DisplayName,
		Description:    p.Description,
		Banner:         p.Banner,
		Avatar:         p.Avatar,
		FollowersCount: p.FollowersCount,
		FollowsCount:   p.FollowsCount,
		PostsCount:     p.PostsCount,
		CreatedAt:      created,
	}, nil
}

// Collections fetches the names of the collections the account has
// declared in its repository.
func (c *Client) Collections(ctx context.Context, pds, did string) ([]string, error) {
	var desc struct {
		Collections []string `json:"collections"`
	}

	u := fmt.Sprintf("%s/xrpc/com.atproto.repo.describeRepo?repo=%s", pds, url.QueryEscape(did))
	if err := c.GetJSON(ctx, u, &desc); err != nil {
		return nil, err
	}
	return desc.Collections, nil
}

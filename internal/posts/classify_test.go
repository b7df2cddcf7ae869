// internal/posts/classify_test.go
package posts_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/model"
	"github.com/dsablic/skylens/internal/posts"
)

const selfDID = "did:plc:alice"

func rec(value string) fetcher.Record {
	return fetcher.Record{
		URI:   "at://" + selfDID + "/app.bsky.feed.post/x",
		Value: json.RawMessage(value),
	}
}

func TestAnalyzeCategories(t *testing.T) {
	postRecords := []fetcher.Record{
		// Plain text, nothing else.
		rec(`{"text":"hello","createdAt":"2026-08-01T00:00:00Z"}`),
		// Reply to another account.
		rec(`{"text":"re","reply":{"parent":{"uri":"at://did:plc:bob/app.bsky.feed.post/1"}}}`),
		// Reply to self.
		rec(`{"text":"thread","reply":{"parent":{"uri":"at://did:plc:alice/app.bsky.feed.post/2"}}}`),
		// Quote of another account.
		rec(`{"text":"look","embed":{"$type":"app.bsky.embed.record","record":{"uri":"at://did:plc:bob/app.bsky.feed.post/3"}}}`),
		// Quote of self with media, image with alt text.
		rec(`{"text":"old one","embed":{"$type":"app.bsky.embed.recordWithMedia","record":{"record":{"uri":"at://did:plc:alice/app.bsky.feed.post/4"}},"media":{"$type":"app.bsky.embed.images","images":[{"alt":"a cat"}]}}}`),
		// Image without alt text.
		rec(`{"text":"pic","embed":{"$type":"app.bsky.embed.images","images":[{"alt":"  "}]}}`),
		// Video.
		rec(`{"text":"clip","embed":{"$type":"app.bsky.embed.video"}}`),
		// External link embed.
		rec(`{"text":"read this","embed":{"$type":"app.bsky.embed.external","external":{"uri":"https://example.com"}}}`),
		// Link facet only: has a link, so not text-only.
		rec(`{"text":"https://example.com","facets":[{"features":[{"$type":"app.bsky.richtext.facet#link"}]}]}`),
		// Mention facet: still text-only (mentions don't disqualify).
		rec(`{"text":"hi @bob","facets":[{"features":[{"$type":"app.bsky.richtext.facet#mention"}]}]}`),
		// Malformed: matches no category.
		rec(`"not an object"`),
	}
	repostRecords := []fetcher.Record{
		rec(`{"subject":{"uri":"at://did:plc:bob/app.bsky.feed.post/9"}}`),
		rec(`{"subject":{"uri":"at://did:plc:alice/app.bsky.feed.post/1"}}`),
	}

	s := posts.Analyze(postRecords, repostRecords, selfDID, 10)

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"Posts", s.Posts, 11},
		{"Replies", s.Replies, 2},
		{"RepliesToSelf", s.RepliesToSelf, 1},
		{"RepliesToOthers", s.RepliesToOthers, 1},
		{"Quotes", s.Quotes, 2},
		{"QuotesOfSelf", s.QuotesOfSelf, 1},
		{"QuotesOfOthers", s.QuotesOfOthers, 1},
		{"WithImages", s.WithImages, 2},
		{"ImagePostsWithAlt", s.ImagePostsWithAlt, 1},
		{"WithVideo", s.WithVideo, 1},
		{"WithLinks", s.WithLinks, 2},
		{"WithMentions", s.WithMentions, 1},
		{"TextOnly", s.TextOnly, 2},
		{"TopLevel", s.TopLevel, 9},
		{"Reposts", s.Reposts, 2},
		{"RepostsOfSelf", s.RepostsOfSelf, 1},
		{"RepostsOfOthers", s.RepostsOfOthers, 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}

	if s.AltTextPercentage != 0.5 {
		t.Errorf("expected alt-text coverage 0.5 (of image posts), got %v", s.AltTextPercentage)
	}
	if s.PostsPerDay != 1.1 {
		t.Errorf("expected 1.1 posts/day, got %v", s.PostsPerDay)
	}
}

func TestAnalyzePercentageBounds(t *testing.T) {
	var postRecords []fetcher.Record
	for i := range 20 {
		postRecords = append(postRecords,
			rec(fmt.Sprintf(`{"text":"p%d","reply":{"parent":{"uri":"at://did:plc:bob/app.bsky.feed.post/%d"}}}`, i, i)))
	}

	s := posts.Analyze(postRecords, nil, selfDID, 5)

	percentages := map[string]float64{
		"reply":      s.ReplyPercentage,
		"replySelf":  s.ReplySelfPercentage,
		"replyOther": s.ReplyOtherPercentage,
		"quote":      s.QuotePercentage,
		"repost":     s.RepostOtherPercentage,
		"image":      s.ImagePercentage,
		"altText":    s.AltTextPercentage,
		"video":      s.VideoPercentage,
		"link":       s.LinkPercentage,
		"mention":    s.MentionPercentage,
		"textOnly":   s.TextOnlyPercentage,
	}
	for name, v := range percentages {
		if v < 0 || v > 1 {
			t.Errorf("%s percentage out of [0,1]: %v", name, v)
		}
	}
	if s.ReplyPercentage != 1 {
		t.Errorf("expected all-replies set to have reply percentage 1, got %v", s.ReplyPercentage)
	}
}

func TestAnalyzeRepostHeavyAccount(t *testing.T) {
	// More reposts than posts: the repost share divides by posts plus
	// reposts so it stays within [0,1].
	postRecords := []fetcher.Record{rec(`{"text":"hello"}`)}
	repostRecords := []fetcher.Record{
		rec(`{"subject":{"uri":"at://did:plc:bob/app.bsky.feed.post/1"}}`),
		rec(`{"subject":{"uri":"at://did:plc:bob/app.bsky.feed.post/2"}}`),
		rec(`{"subject":{"uri":"at://did:plc:bob/app.bsky.feed.post/3"}}`),
	}

	s := posts.Analyze(postRecords, repostRecords, selfDID, 10)

	if s.RepostOtherPercentage != 0.75 {
		t.Errorf("expected repost share 0.75 of all activity, got %v", s.RepostOtherPercentage)
	}
	if s.RepostOtherPercentage > 1 {
		t.Errorf("repost share out of bounds: %v", s.RepostOtherPercentage)
	}
}

func TestAnalyzeZeroDenominators(t *testing.T) {
	s := posts.Analyze(nil, nil, selfDID, 0)

	zero := model.PostStats{}
	if s != zero {
		t.Errorf("expected all-zero stats for empty input and zero days, got %+v", s)
	}
}

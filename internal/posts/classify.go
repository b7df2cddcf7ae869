// Package posts classifies post records into mutually-informative
// categories and derives the per-window composition stats.
package posts

import (
	"encoding/json"
	"strings"

	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/model"
)

// Embed and facet type tags used by the decision procedure.
const (
	embedImages          = "app.bsky.embed.images"
	embedVideo           = "app.bsky.embed.video"
	embedExternal        = "app.bsky.embed.external"
	embedRecord          = "app.bsky.embed.record"
	embedRecordWithMedia = "app.bsky.embed.recordWithMedia"

	facetLink    = "app.bsky.richtext.facet#link"
	facetMention = "app.bsky.richtext.facet#mention"
)

type embedValue struct {
	Type   string `json:"$type"`
	Images []struct {
		Alt string `json:"alt"`
	} `json:"images"`
	Record *struct {
		URI    string `json:"uri"`
		Record *struct {
			URI string `json:"uri"`
		} `json:"record"`
	} `json:"record"`
	Media    *embedValue `json:"media"`
	External *struct {
		URI string `json:"uri"`
	} `json:"external"`
}

type postValue struct {
	Text  string `json:"text"`
	Reply *struct {
		Parent struct {
			URI string `json:"uri"`
		} `json:"parent"`
	} `json:"reply"`
	Embed  *embedValue `json:"embed"`
	Facets []struct {
		Features []struct {
			Type string `json:"$type"`
		} `json:"features"`
	} `json:"facets"`
}

type repostValue struct {
	Subject struct {
		URI string `json:"uri"`
	} `json:"subject"`
}

// quotedURI returns the URI of the quoted record for record and
// record-with-media embeds, or "" when the post quotes nothing.
func (e *embedValue) quotedURI() string {
	if e == nil || e.Record == nil {
		return ""
	}
	// recordWithMedia nests the subject one level deeper.
	if e.Type == embedRecordWithMedia && e.Record.Record != nil {
		return e.Record.Record.URI
	}
	return e.Record.URI
}

// mediaEmbed resolves the media-carrying embed: the embed itself, or the
// media half of a record-with-media embed.
func (e *embedValue) mediaEmbed() *embedValue {
	if e == nil {
		return nil
	}
	if e.Type == embedRecordWithMedia && e.Media != nil {
		return e.Media
	}
	return e
}

// Analyze classifies every post and repost record and derives the
// composition stats for one window. did is the account's own identifier,
// used to tell self-directed replies, quotes, and reposts from ones
// aimed at other accounts. A record that fails to decode matches no
// category; it is counted as a post and nothing else.
func Analyze(postRecords, repostRecords []fetcher.Record, did string, days float64) model.PostStats {
	var s model.PostStats
	s.Posts = len(postRecords)

	for _, rec := range postRecords {
		var v postValue
		if err := json.Unmarshal(rec.Value, &v); err != nil {
			continue
		}

		isQuote := v.Embed != nil && (v.Embed.Type == embedRecord || v.Embed.Type == embedRecordWithMedia)

		if v.Reply != nil {
			s.Replies++
			if strings.Contains(v.Reply.Parent.URI, did) {
				s.RepliesToSelf++
			} else {
				s.RepliesToOthers++
			}
		}

		if isQuote {
			s.Quotes++
			if strings.Contains(v.Embed.quotedURI(), did) {
				s.QuotesOfSelf++
			} else {
				s.QuotesOfOthers++
			}
		}

		media := v.Embed.mediaEmbed()
		hasImages := media != nil && media.Type == embedImages && len(media.Images) > 0
		hasVideo := media != nil && media.Type == embedVideo
		hasExternal := media != nil && media.Type == embedExternal

		linkFacet, mentionFacet := false, false
		for _, f := range v.Facets {
			for _, feat := range f.Features {
				switch feat.Type {
				case facetLink:
					linkFacet = true
				case facetMention:
					mentionFacet = true
				}
			}
		}
		if mentionFacet {
			s.WithMentions++
		}

		if hasImages {
			s.WithImages++
			for _, img := range media.Images {
				if strings.TrimSpace(img.Alt) != "" {
					s.ImagePostsWithAlt++
					break
				}
			}
		}
		if hasVideo {
			s.WithVideo++
		}
		if hasExternal || linkFacet {
			s.WithLinks++
		}
		if v.Embed == nil && v.Reply == nil && !linkFacet {
			s.TextOnly++
		}
	}

	s.Reposts = len(repostRecords)
	for _, rec := range repostRecords {
		var v repostValue
		if err := json.Unmarshal(rec.Value, &v); err != nil {
			continue
		}
		if strings.Contains(v.Subject.URI, did) {
			s.RepostsOfSelf++
		} else {
			s.RepostsOfOthers++
		}
	}

	s.TopLevel = s.Posts - s.Replies

	s.PostsPerDay = model.Rate(s.Posts, days)
	s.TopLevelPerDay = model.Rate(s.TopLevel, days)
	s.RepliesPerDay = model.Rate(s.Replies, days)
	s.QuotesPerDay = model.Rate(s.Quotes, days)
	s.RepostsPerDay = model.Rate(s.Reposts, days)
	s.ImagesPerDay = model.Rate(s.WithImages, days)
	s.VideosPerDay = model.Rate(s.WithVideo, days)
	s.LinksPerDay = model.Rate(s.WithLinks, days)
	s.TextOnlyPerDay = model.Rate(s.TextOnly, days)

	s.ReplyPercentage = model.Pct(s.Replies, s.Posts)
	s.ReplySelfPercentage = model.Pct(s.RepliesToSelf, s.Posts)
	s.ReplyOtherPercentage = model.Pct(s.RepliesToOthers, s.Posts)
	s.QuotePercentage = model.Pct(s.Quotes, s.Posts)
	s.QuoteSelfPercentage = model.Pct(s.QuotesOfSelf, s.Posts)
	s.QuoteOtherPercentage = model.Pct(s.QuotesOfOthers, s.Posts)
	s.RepostOtherPercentage = model.Pct(s.RepostsOfOthers, s.Posts+s.Reposts)
	s.ImagePercentage = model.Pct(s.WithImages, s.Posts)
	s.AltTextPercentage = model.Pct(s.ImagePostsWithAlt, s.WithImages)
	s.VideoPercentage = model.Pct(s.WithVideo, s.Posts)
	s.LinkPercentage = model.Pct(s.WithLinks, s.Posts)
	s.MentionPercentage = model.Pct(s.WithMentions, s.Posts)
	s.TextOnlyPercentage = model.Pct(s.TextOnly, s.Posts)

	return s
}

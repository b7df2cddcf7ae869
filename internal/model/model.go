// internal/model/model.go
package model

import (
	"math"
	"time"
)

// DefaultDomain is the suffix of handles issued by the first-party app.
// Aliases and handles containing it are counted as platform-default.
const DefaultDomain = ".bsky.social"

// Identity is a resolved account: the caller-supplied handle plus the
// stable identifier and data-server address derived from it.
type Identity struct {
	Handle          string `json:"handle"`
	DID             string `json:"did"`
	ServiceEndpoint string `json:"service_endpoint"`
}

// Profile holds the public profile fields used for labeling and narration.
type Profile struct {
	Handle         string    `json:"handle"`
	DisplayName    string    `json:"display_name,omitempty"`
	Description    string    `json:"description,omitempty"`
	Banner         string    `json:"banner,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	FollowersCount int64     `json:"followers"`
	FollowsCount   int64     `json:"follows"`
	PostsCount     int64     `json:"posts"`
	CreatedAt      time.Time `json:"created_at"`
}

// CollectionStats is the per-collection slice of an aggregate.
type CollectionStats struct {
	Count  int     `json:"count"`
	PerDay float64 `json:"per_day"`
}

// AggregateStats holds record counts and per-day rates for one time window,
// partitioned into platform-native (bsky) and other-protocol (atproto)
// collections. Total == Bsky + AtProto always holds.
type AggregateStats struct {
	Total         int                        `json:"total"`
	TotalPerDay   float64                    `json:"total_per_day"`
	Bsky          int                        `json:"bsky"`
	BskyPerDay    float64                    `json:"bsky_per_day"`
	AtProto       int                        `json:"atproto"`
	AtProtoPerDay float64                    `json:"atproto_per_day"`
	ByCollection  map[string]CollectionStats `json:"by_collection"`
}

// PostStats describes the post-type composition of one time window.
// Percentage fields divide by Posts (AltTextPercentage divides by
// WithImages, RepostOtherPercentage by Posts+Reposts); per-day fields
// divide by the window's day count. All divisions are zero-guarded.
type PostStats struct {
	Posts       int     `json:"posts"`
	PostsPerDay float64 `json:"posts_per_day"`

	TopLevel       int     `json:"top_level"`
	TopLevelPerDay float64 `json:"top_level_per_day"`

	Replies              int     `json:"replies"`
	RepliesToSelf        int     `json:"replies_to_self"`
	RepliesToOthers      int     `json:"replies_to_others"`
	RepliesPerDay        float64 `json:"replies_per_day"`
	ReplyPercentage      float64 `json:"reply_percentage"`
	ReplySelfPercentage  float64 `json:"reply_self_percentage"`
	ReplyOtherPercentage float64 `json:"reply_other_percentage"`

	Quotes               int     `json:"quotes"`
	QuotesOfSelf         int     `json:"quotes_of_self"`
	QuotesOfOthers       int     `json:"quotes_of_others"`
	QuotesPerDay         float64 `json:"quotes_per_day"`
	QuotePercentage      float64 `json:"quote_percentage"`
	QuoteSelfPercentage  float64 `json:"quote_self_percentage"`
	QuoteOtherPercentage float64 `json:"quote_other_percentage"`

	Reposts               int     `json:"reposts"`
	RepostsOfSelf         int     `json:"reposts_of_self"`
	RepostsOfOthers       int     `json:"reposts_of_others"`
	RepostsPerDay         float64 `json:"reposts_per_day"`
	RepostOtherPercentage float64 `json:"repost_other_percentage"`

	WithImages        int     `json:"with_images"`
	ImagePercentage   float64 `json:"image_percentage"`
	ImagesPerDay      float64 `json:"images_per_day"`
	ImagePostsWithAlt int     `json:"image_posts_with_alt"`
	AltTextPercentage float64 `json:"alt_text_percentage"`

	WithVideo       int     `json:"with_video"`
	VideoPercentage float64 `json:"video_percentage"`
	VideosPerDay    float64 `json:"videos_per_day"`

	WithLinks      int     `json:"with_links"`
	LinkPercentage float64 `json:"link_percentage"`
	LinksPerDay    float64 `json:"links_per_day"`

	WithMentions      int     `json:"with_mentions"`
	MentionPercentage float64 `json:"mention_percentage"`

	TextOnly           int     `json:"text_only"`
	TextOnlyPercentage float64 `json:"text_only_percentage"`
	TextOnlyPerDay     float64 `json:"text_only_per_day"`
}

// EngagementTotals sums engagement recorded against the account's own
// (non-repost) feed items.
type EngagementTotals struct {
	Likes   int64 `json:"likes"`
	Reposts int64 `json:"reposts"`
	Quotes  int64 `json:"quotes"`
	Replies int64 `json:"replies"`
}

// LogSummary is derived from the identity's full operation log: the latest
// operation's rotation/alias snapshot plus the union of aliases ever seen.
type LogSummary struct {
	RotationKeyCount  int      `json:"rotation_key_count"`
	CurrentAliasCount int      `json:"current_alias_count"`
	AllAliases        []string `json:"all_aliases,omitempty"`
	BskyAliasCount    int      `json:"bsky_alias_count"`
	CustomAliasCount  int      `json:"custom_alias_count"`
}

// ActivityLabels holds the rate-based activity classification, computed
// independently for total, platform-native, and other-protocol rates.
type ActivityLabels struct {
	Overall string `json:"overall"`
	Bsky    string `json:"bsky"`
	AtProto string `json:"atproto"`
}

// WindowReport holds everything computed for a single time window.
type WindowReport struct {
	Window       string         `json:"window"`
	Days         float64        `json:"days"`
	Aggregate    AggregateStats `json:"aggregate"`
	Posts        PostStats      `json:"posts"`
	PostingStyle string         `json:"posting_style"`
	Activity     ActivityLabels `json:"activity"`
}

// Report is the top-level output structure: shared account-level fields
// plus one sibling block per time window.
type Report struct {
	GeneratedAt string   `json:"generated_at"`
	Identity    Identity `json:"identity"`
	Profile     Profile  `json:"profile"`

	AgeDays       float64 `json:"age_days"`
	AgePercentage float64 `json:"age_percentage"`

	AllTime WindowReport `json:"all_time"`
	Last90  WindowReport `json:"last_90_days"`
	Last30  WindowReport `json:"last_30_days"`

	Engagement  EngagementTotals `json:"engagement"`
	IdentityLog LogSummary       `json:"identity_log"`

	SocialStatus      string `json:"social_status"`
	ProfileCompletion string `json:"profile_completion"`
	DomainRarity      string `json:"domain_rarity"`
	Era               string `json:"era"`

	Narrative [3]string `json:"narrative"`

	Warnings []string `json:"warnings,omitempty"`
}

// Failure is returned to the caller when resolution fails and no report
// can be produced.
type Failure struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Round applies the uniform rounding rule for derived rates and percentages.
func Round(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// Pct returns count/denom rounded, or 0 when denom is not positive.
func Pct(count, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return Round(float64(count) / float64(denom))
}

// Rate returns count/days rounded, or 0 when days is not positive.
func Rate(count int, days float64) float64 {
	if days <= 0 {
		return 0
	}
	return Round(float64(count) / days)
}

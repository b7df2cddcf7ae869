// Package labels maps aggregated statistics to categorical labels. Each
// classifier is a pure function of its inputs.
package labels

import (
	"strings"
	"time"

	"github.com/dsablic/skylens/internal/model"
)

// epochAnchor is the network's first public beta day; age percentage is
// the account's age relative to time elapsed since this date.
var epochAnchor = time.Date(2022, 11, 17, 0, 0, 0, 0, time.UTC)

// Era boundaries: invite-only beta, the growth phase that followed, and
// the open-registration era.
var (
	eraGrowthStart = time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	eraOpenStart   = time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)
)

// Era labels. EraUnknown is used when no creation date could be
// determined from either the profile or the identity log.
const (
	EraInvite  = "invite era"
	EraGrowth  = "growth era"
	EraOpen    = "open era"
	EraUnknown = "unknown era"
)

// Social status thresholds and labels.
const (
	NewbieMaxAgeDays = 30
	followRatioMax   = 0.5

	popularMinFollowers    = 500
	influencerMinFollowers = 10_000
	celebrityMinFollowers  = 100_000

	StatusNewbie     = "Newbie"
	StatusCommunity  = "Community Member"
	StatusUpComing   = "Up and Comer"
	StatusPopular    = "Popular"
	StatusInfluencer = "Influencer"
	StatusCelebrity  = "Celebrity"
)

// Activity labels and thresholds.
const (
	ActivityInactive = "inactive"
	ActivityBarely   = "barely active"
	ActivityActive   = "active"
	ActivityVery     = "very active"

	activeMinPerDay = 1.0
	veryMinPerDay   = 10.0
)

// Profile completion labels.
const (
	ProfileComplete   = "complete"
	ProfileIncomplete = "incomplete"
	ProfileNotStarted = "not started"
)

// AgePercentage is the account's age as a fraction of the network's
// lifetime, used only to phrase the narrative.
func AgePercentage(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	networkDays := now.Sub(epochAnchor).Hours() / 24
	if networkDays <= 0 {
		return 0
	}
	ageDays := now.Sub(createdAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return model.Round(ageDays / networkDays)
}

// Era buckets the creation date into the network's lifecycle phases.
func Era(createdAt time.Time) string {
	switch {
	case createdAt.IsZero():
		return EraUnknown
	case createdAt.Before(eraGrowthStart):
		return EraInvite
	case createdAt.Before(eraOpenStart):
		return EraGrowth
	default:
		return EraOpen
	}
}

// SocialStatus classifies the account's standing from age and the
// following/follower balance. Accounts that follow far fewer than follow
// them are tiered by follower count.
func SocialStatus(ageDays float64, followers, follows int64) string {
	if ageDays < NewbieMaxAgeDays {
		return StatusNewbie
	}
	if followers > 0 && float64(follows)/float64(followers) < followRatioMax {
		switch {
		case followers >= celebrityMinFollowers:
			return StatusCelebrity
		case followers >= influencerMinFollowers:
			return StatusInfluencer
		case followers >= popularMinFollowers:
			return StatusPopular
		default:
			return StatusUpComing
		}
	}
	return StatusCommunity
}

// Activity buckets a per-day rate: zero is inactive, then barely active
// below 1, active below 10, very active at 10 and up.
func Activity(perDay float64) string {
	switch {
	case perDay <= 0:
		return ActivityInactive
	case perDay < activeMinPerDay:
		return ActivityBarely
	case perDay < veryMinPerDay:
		return ActivityActive
	default:
		return ActivityVery
	}
}

// ProfileCompletion is complete when display name, banner, and
// description are all non-empty after trimming, incomplete when at least
// one is, and not started otherwise.
func ProfileCompletion(displayName, banner, description string) string {
	filled := 0
	for _, field := range []string{displayName, banner, description} {
		if strings.TrimSpace(field) != "" {
			filled++
		}
	}
	switch filled {
	case 3:
		return ProfileComplete
	case 0:
		return ProfileNotStarted
	default:
		return ProfileIncomplete
	}
}

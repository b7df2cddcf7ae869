// Package narrative synthesizes the three report paragraphs from the
// computed statistics and labels. Output is fully deterministic: string
// templates select among fixed phrase fragments per metric, nothing more.
package narrative

import (
	"fmt"
	"strings"
)

// Input carries every statistic and label the templates draw from.
type Input struct {
	Handle      string
	DisplayName string

	AgeDays       float64
	AgePercentage float64
	Era           string
	DomainRarity  string

	PostingStyle string
	SocialStatus string
	Activity     string // overall activity label for the all-time window

	BskyAliasCount   int
	CustomAliasCount int
	RotationKeyCount int

	ServiceEndpoint    string
	AtProtoCollections int
	AtProtoPerDay      float64
}

// firstPartyHost marks endpoints operated by the platform itself.
const firstPartyHost = "bsky.network"

// Paragraphs renders exactly three paragraphs: identity and history,
// posting behavior, and protocol footprint.
func Paragraphs(in Input) [3]string {
	return [3]string{
		identityParagraph(in),
		behaviorParagraph(in),
		protocolParagraph(in),
	}
}

func identityParagraph(in Input) string {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		name = in.Handle
	}

	return fmt.Sprintf(
		"%s joined during the %s and has been on the network for %.0f days — %s. The account %s, and its current handle is a %s one.",
		name, in.Era, in.AgeDays, agePhrase(in.AgePercentage),
		domainHistoryPhrase(in.BskyAliasCount, in.CustomAliasCount), in.DomainRarity,
	)
}

func behaviorParagraph(in Input) string {
	return fmt.Sprintf(
		"On the home app this is %s account, best described as %s. Socially it reads as %s.",
		article(in.Activity), article(in.PostingStyle), article(in.SocialStatus),
	)
}

func protocolParagraph(in Input) string {
	return fmt.Sprintf(
		"Beyond the home app, the account %s and %s. Its identity %s, and its data %s.",
		adoptionPhrase(in.AtProtoCollections), engagementPhrase(in.AtProtoPerDay),
		rotationKeyPhrase(in.RotationKeyCount), hostingPhrase(in.ServiceEndpoint),
	)
}

func agePhrase(pct float64) string {
	switch {
	case pct >= 0.9:
		return "nearly the network's whole lifetime"
	case pct >= 0.6:
		return "most of the network's lifetime"
	case pct >= 0.3:
		return "a solid stretch of the network's lifetime"
	default:
		return "a small slice of the network's lifetime"
	}
}

func domainHistoryPhrase(bsky, custom int) string {
	switch {
	case bsky > 0 && custom > 0:
		return "started on a default handle and later claimed a custom domain"
	case custom > 0:
		return "has used a custom domain from the start"
	case bsky > 0:
		return "has stuck with a default handle throughout"
	default:
		return "has no recorded handle history"
	}
}

func adoptionPhrase(collections int) string {
	switch {
	case collections == 0:
		return "sticks entirely to first-party features"
	case collections <= 2:
		return "has dipped a toe into the wider protocol"
	default:
		return "has spread its records across the wider protocol"
	}
}

func engagementPhrase(perDay float64) string {
	switch {
	case perDay <= 0:
		return "writes no other-protocol records at all"
	case perDay < 1:
		return "writes the occasional other-protocol record"
	default:
		return "writes other-protocol records daily"
	}
}

func rotationKeyPhrase(keys int) string {
	if keys == 0 {
		return "has no rotation keys registered"
	}
	if keys == 1 {
		return "is secured by a single rotation key"
	}
	return fmt.Sprintf("is secured by %d rotation keys", keys)
}

func hostingPhrase(endpoint string) string {
	if strings.Contains(endpoint, firstPartyHost) {
		return "lives on a first-party data server"
	}
	return "lives on an independently operated data server"
}

// article prefixes a label with a/an.
func article(label string) string {
	if label == "" {
		return "an unclassified poster"
	}
	switch label[0] {
	case 'A', 'E', 'I', 'O', 'U', 'a', 'e', 'i', 'o', 'u':
		return "an " + label
	}
	return "a " + label
}

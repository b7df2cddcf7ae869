// internal/posts/style.go
package posts

import "github.com/dsablic/skylens/internal/model"

// Posting style labels.
const (
	StyleLurker    = "Lurker"
	StyleReplyGuy  = "Reply Guy"
	StyleQuoteGuy  = "Quote Guy"
	StyleRepostGuy = "Repost Guy"
	StyleUnknown   = "Unknown"

	badAltTextSuffix = " who's bad at alt text"
)

// Style thresholds. Ordered rules below apply them; first match wins.
const (
	lurkerMaxPostsPerDay   = 0.1
	lurkerMinRecordsPerDay = 0.3
	posterMinPerDay        = 0.8
	engagedMinReplyOther   = 0.3
	guyMinShare            = 0.5
	badAltTextMax          = 0.3
)

// Style classifies a window's posting behavior. bskyPerDay is the
// window's total platform-native records per day, which separates quiet
// accounts that still like and follow (lurkers) from plain inactive ones.
func Style(s model.PostStats, bskyPerDay float64) string {
	if s.PostsPerDay < lurkerMaxPostsPerDay && bskyPerDay > lurkerMinRecordsPerDay {
		return StyleLurker
	}

	if s.TopLevelPerDay > posterMinPerDay {
		if s.ReplyOtherPercentage >= engagedMinReplyOther {
			return typedPoster(s, "Engaged")
		}
		return typedPoster(s, "Unengaged")
	}

	switch {
	case s.ReplyOtherPercentage >= guyMinShare:
		return StyleReplyGuy
	case s.QuoteOtherPercentage >= guyMinShare:
		return StyleQuoteGuy
	case s.RepostOtherPercentage >= guyMinShare:
		return StyleRepostGuy
	}
	return StyleUnknown
}

// typedPoster picks the strictly largest of the text, image, link, and
// video shares. Ties fall back to the plain label. The image-dominant
// case splits further on alt-text coverage.
func typedPoster(s model.PostStats, prefix string) string {
	shares := []struct {
		name  string
		value float64
	}{
		{"Text", s.TextOnlyPercentage},
		{"Image", s.ImagePercentage},
		{"Link", s.LinkPercentage},
		{"Video", s.VideoPercentage},
	}

	max := shares[0]
	ties := 1
	for _, sh := range shares[1:] {
		switch {
		case sh.value > max.value:
			max = sh
			ties = 1
		case sh.value == max.value:
			ties++
		}
	}

	if ties > 1 {
		return prefix + " Poster"
	}

	label := prefix + " " + max.name + " Poster"
	if max.name == "Image" && s.AltTextPercentage <= badAltTextMax {
		label += badAltTextSuffix
	}
	return label
}

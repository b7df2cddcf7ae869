// internal/labels/domain.go
package labels

import (
	"strings"

	"github.com/dsablic/skylens/internal/model"
)

// Rarity labels, from scarcest to most abundant.
const (
	RarityExtremelyRare = "extremely rare"
	RarityVeryRare      = "very rare"
	RarityRare          = "rare"
	RarityUncommon      = "uncommon"
	RarityCommon        = "common"
	RarityVeryCommon    = "very common"
)

// rarityBand holds the upper length bound (inclusive) for each band
// short of the last; handles longer than every bound are very common.
type rarityBand struct {
	maxLen int
	label  string
}

// Band boundaries differ per domain case: the default domain carries a
// long fixed suffix, commercial .com handles are shortest, and other
// custom domains sit between.
var (
	defaultDomainBands = []rarityBand{
		{14, RarityExtremelyRare},
		{15, RarityVeryRare},
		{16, RarityRare},
		{17, RarityUncommon},
		{20, RarityCommon},
	}
	comDomainBands = []rarityBand{
		{6, RarityExtremelyRare},
		{7, RarityVeryRare},
		{8, RarityRare},
		{10, RarityUncommon},
		{12, RarityCommon},
	}
	customDomainBands = []rarityBand{
		{8, RarityExtremelyRare},
		{10, RarityVeryRare},
		{12, RarityRare},
		{15, RarityUncommon},
		{18, RarityCommon},
	}
)

// DomainRarity tiers a handle by its total length, with band boundaries
// chosen per domain case. The cutoffs are exact; boundary lengths map to
// distinct bands.
func DomainRarity(handle string) string {
	bands := customDomainBands
	switch {
	case strings.HasSuffix(handle, model.DefaultDomain):
		bands = defaultDomainBands
	case strings.HasSuffix(handle, ".com"):
		bands = comDomainBands
	}

	n := len(handle)
	for _, b := range bands {
		if n <= b.maxLen {
			return b.label
		}
	}
	return RarityVeryCommon
}

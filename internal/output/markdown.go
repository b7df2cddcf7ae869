// internal/output/markdown.go
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/dsablic/skylens/internal/model"
)

// WriteMarkdown writes the report as GitHub-flavored markdown to w.
func WriteMarkdown(w io.Writer, report *model.Report) error {
	fmt.Fprintf(w, "# Account Analytics Report\n\n")
	fmt.Fprintf(w, "**Handle:** %s\n", report.Identity.Handle)
	fmt.Fprintf(w, "**DID:** %s\n", report.Identity.DID)
	fmt.Fprintf(w, "**Data server:** %s\n", report.Identity.ServiceEndpoint)
	fmt.Fprintf(w, "**Generated:** %s\n\n", report.GeneratedAt)

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Age (days) | %.0f |\n", report.AgeDays)
	fmt.Fprintf(w, "| Era | %s |\n", report.Era)
	fmt.Fprintf(w, "| Social status | %s |\n", report.SocialStatus)
	fmt.Fprintf(w, "| Profile | %s |\n", report.ProfileCompletion)
	fmt.Fprintf(w, "| Domain rarity | %s |\n", report.DomainRarity)
	fmt.Fprintf(w, "| Followers | %d |\n", report.Profile.FollowersCount)
	fmt.Fprintf(w, "| Following | %d |\n", report.Profile.FollowsCount)
	fmt.Fprintf(w, "| Rotation keys | %d |\n", report.IdentityLog.RotationKeyCount)
	fmt.Fprintf(w, "| Handles ever used | %d |\n\n", len(report.IdentityLog.AllAliases))

	fmt.Fprintf(w, "## Windows\n\n")
	fmt.Fprintf(w, "| Window | Records | Bsky | AtProto | Records/day | Posting style | Activity |\n")
	fmt.Fprintf(w, "|--------|--------:|-----:|--------:|------------:|---------------|----------|\n")
	for _, wr := range []model.WindowReport{report.AllTime, report.Last90, report.Last30} {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %.2f | %s | %s |\n",
			wr.Window, wr.Aggregate.Total, wr.Aggregate.Bsky, wr.Aggregate.AtProto,
			wr.Aggregate.TotalPerDay, wr.PostingStyle, wr.Activity.Overall)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Post composition (all time)\n\n")
	p := report.AllTime.Posts
	fmt.Fprintf(w, "| Category | Count | Share |\n")
	fmt.Fprintf(w, "|----------|------:|------:|\n")
	fmt.Fprintf(w, "| Posts | %d | |\n", p.Posts)
	fmt.Fprintf(w, "| Replies | %d | %.1f%% |\n", p.Replies, p.ReplyPercentage*100)
	fmt.Fprintf(w, "| Quotes | %d | %.1f%% |\n", p.Quotes, p.QuotePercentage*100)
	fmt.Fprintf(w, "| Reposts | %d | |\n", p.Reposts)
	fmt.Fprintf(w, "| With images | %d | %.1f%% |\n", p.WithImages, p.ImagePercentage*100)
	fmt.Fprintf(w, "| With video | %d | %.1f%% |\n", p.WithVideo, p.VideoPercentage*100)
	fmt.Fprintf(w, "| With links | %d | %.1f%% |\n", p.WithLinks, p.LinkPercentage*100)
	fmt.Fprintf(w, "| Text only | %d | %.1f%% |\n", p.TextOnly, p.TextOnlyPercentage*100)
	fmt.Fprintf(w, "| Alt-text coverage | %d | %.1f%% |\n\n", p.ImagePostsWithAlt, p.AltTextPercentage*100)

	fmt.Fprintf(w, "## Collections (all time)\n\n")
	fmt.Fprintf(w, "| Collection | Records | Per day |\n")
	fmt.Fprintf(w, "|------------|--------:|--------:|\n")
	names := make([]string, 0, len(report.AllTime.Aggregate.ByCollection))
	for name := range report.AllTime.Aggregate.ByCollection {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cs := report.AllTime.Aggregate.ByCollection[name]
		fmt.Fprintf(w, "| %s | %d | %.2f |\n", name, cs.Count, cs.PerDay)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Engagement\n\n")
	fmt.Fprintf(w, "| Likes | Reposts | Quotes | Replies |\n")
	fmt.Fprintf(w, "|------:|--------:|-------:|--------:|\n")
	fmt.Fprintf(w, "| %d | %d | %d | %d |\n\n",
		report.Engagement.Likes, report.Engagement.Reposts,
		report.Engagement.Quotes, report.Engagement.Replies)

	fmt.Fprintf(w, "## Narrative\n\n")
	for _, para := range report.Narrative {
		fmt.Fprintf(w, "%s\n\n", para)
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "## Warnings\n\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "- %s\n", warning)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dsablic/skylens/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// WriteText writes a styled terminal rendering of the report, wrapping
// narrative paragraphs to the given width.
func WriteText(w io.Writer, report *model.Report, width int) error {
	if width <= 0 {
		width = 80
	}
	para := lipgloss.NewStyle().Width(width)

	fmt.Fprintln(w, headerStyle.Render("@"+report.Identity.Handle))
	fmt.Fprintln(w, labelStyle.Render(report.Identity.DID))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Account"))
	row(w, "Age", fmt.Sprintf("%.0f days (%s)", report.AgeDays, report.Era))
	row(w, "Social status", report.SocialStatus)
	row(w, "Profile", report.ProfileCompletion)
	row(w, "Domain rarity", report.DomainRarity)
	row(w, "Followers", fmt.Sprintf("%d", report.Profile.FollowersCount))
	row(w, "Following", fmt.Sprintf("%d", report.Profile.FollowsCount))
	row(w, "Rotation keys", fmt.Sprintf("%d", report.IdentityLog.RotationKeyCount))
	row(w, "Handles ever used", strings.Join(report.IdentityLog.AllAliases, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Activity"))
	for _, wr := range []model.WindowReport{report.AllTime, report.Last90, report.Last30} {
		row(w, wr.Window, fmt.Sprintf("%d records (%.2f/day), %s, %s",
			wr.Aggregate.Total, wr.Aggregate.TotalPerDay, wr.Activity.Overall, wr.PostingStyle))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Engagement received"))
	row(w, "Likes", fmt.Sprintf("%d", report.Engagement.Likes))
	row(w, "Reposts", fmt.Sprintf("%d", report.Engagement.Reposts))
	row(w, "Quotes", fmt.Sprintf("%d", report.Engagement.Quotes))
	row(w, "Replies", fmt.Sprintf("%d", report.Engagement.Replies))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Narrative"))
	for _, p := range report.Narrative {
		fmt.Fprintln(w, para.Render(p))
		fmt.Fprintln(w)
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("Warnings"))
		for _, warning := range report.Warnings {
			fmt.Fprintln(w, labelStyle.Render("- "+warning))
		}
	}

	return nil
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label+":"), value)
}

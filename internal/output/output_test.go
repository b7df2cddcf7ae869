package output_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dsablic/skylens/internal/model"
	"github.com/dsablic/skylens/internal/output"
)

func sampleReport() *model.Report {
	r := &model.Report{
		GeneratedAt: "2026-08-30T00:00:00Z",
		Identity: model.Identity{
			Handle:          "alice.bsky.social",
			DID:             "did:plc:alice",
			ServiceEndpoint: "https://pds.example",
		},
		AgeDays:           730,
		Era:               "open era",
		SocialStatus:      "Popular",
		ProfileCompletion: "complete",
		DomainRarity:      "uncommon",
		Engagement:        model.EngagementTotals{Likes: 15, Reposts: 3, Quotes: 1, Replies: 5},
		Narrative: [3]string{
			"First paragraph.",
			"Second paragraph.",
			"Third paragraph.",
		},
		Warnings: []string{"fetch profile: boom"},
	}
	r.AllTime = model.WindowReport{
		Window:       "all-time",
		Days:         730,
		PostingStyle: "Reply Guy",
		Aggregate: model.AggregateStats{
			Total: 6, Bsky: 5, AtProto: 1,
			ByCollection: map[string]model.CollectionStats{
				"app.bsky.feed.post": {Count: 2, PerDay: 0.0027},
				"app.bsky.feed.like": {Count: 3, PerDay: 0.0041},
			},
		},
		Activity: model.ActivityLabels{Overall: "barely active"},
	}
	r.Last90 = model.WindowReport{Window: "last-90-days", Days: 90}
	r.Last30 = model.WindowReport{Window: "last-30-days", Days: 30}
	return r
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := output.WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Identity.DID != "did:plc:alice" {
		t.Errorf("lost identity in round trip: %+v", decoded.Identity)
	}
	if decoded.AllTime.Aggregate.Total != 6 {
		t.Errorf("lost aggregate in round trip: %+v", decoded.AllTime.Aggregate)
	}
	if decoded.Narrative[2] != "Third paragraph." {
		t.Errorf("lost narrative in round trip: %v", decoded.Narrative)
	}
}

func TestWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	if err := output.WriteFailure(&buf, "could not resolve handle", errors.New("no DID in response")); err != nil {
		t.Fatalf("WriteFailure: %v", err)
	}

	var f model.Failure
	if err := json.Unmarshal(buf.Bytes(), &f); err != nil {
		t.Fatalf("failure output is not valid JSON: %v", err)
	}
	if f.Message != "could not resolve handle" || f.Error != "no DID in response" {
		t.Errorf("unexpected failure object: %+v", f)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := output.WriteMarkdown(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Account Analytics Report",
		"**Handle:** alice.bsky.social",
		"## Summary",
		"## Windows",
		"| all-time | 6 | 5 | 1 |",
		"## Post composition (all time)",
		"## Collections (all time)",
		"| app.bsky.feed.like | 3 |",
		"## Engagement",
		"| 15 | 3 | 1 | 5 |",
		"## Narrative",
		"First paragraph.",
		"## Warnings",
		"- fetch profile: boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in markdown output", want)
		}
	}

	// Collections render sorted by name.
	if strings.Index(out, "app.bsky.feed.like") > strings.Index(out, "app.bsky.feed.post") {
		t.Error("expected collections sorted by name")
	}
}

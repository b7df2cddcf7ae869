// Package report runs the full analytics pipeline for one account and
// assembles the final report.
package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dsablic/skylens/internal/aggregate"
	"github.com/dsablic/skylens/internal/engagement"
	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/identity"
	"github.com/dsablic/skylens/internal/labels"
	"github.com/dsablic/skylens/internal/model"
	"github.com/dsablic/skylens/internal/narrative"
	"github.com/dsablic/skylens/internal/posts"
	"github.com/dsablic/skylens/internal/progress"
)

// Default service hosts. Both are public, unauthenticated read APIs.
const (
	DefaultAppViewURL = "https://public.api.bsky.app"
	DefaultPLCURL     = "https://plc.directory"
)

const (
	postsCollection   = "app.bsky.feed.post"
	repostsCollection = "app.bsky.feed.repost"
)

// Options configures one pipeline run.
type Options struct {
	AppViewURL string
	PLCURL     string

	// OnProgress receives the smoothed page counter: monotonically
	// non-decreasing, finalized exactly once at the end of the run.
	OnProgress func(pages int)
	// OnStage receives coarse pipeline stage completions for UI display.
	OnStage func(done, total int, stage string)
	// Print receives warning lines as retrieval errors are absorbed.
	Print func(string)

	// Now fixes the reference time; zero means time.Now. Tests use it.
	Now time.Time
	// TickInterval overrides the progress smoothing tick; zero means the
	// default.
	TickInterval time.Duration
}

// Produce resolves the handle and runs the whole pipeline: identity log,
// profile, three independently retrieved time windows, engagement,
// classification, and narrative. Only resolution failures are fatal;
// everything else degrades the affected aggregate and lands in
// Report.Warnings.
func Produce(ctx context.Context, httpClient *http.Client, handle string, opts Options) (*model.Report, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	appview := opts.AppViewURL
	if appview == "" {
		appview = DefaultAppViewURL
	}
	plc := opts.PLCURL
	if plc == "" {
		plc = DefaultPLCURL
	}

	client := fetcher.NewClient(httpClient)
	counter := progress.NewCounter(opts.TickInterval, opts.OnProgress)
	defer counter.Finalize()
	client.OnPage = func() { counter.Add(1) }

	// Stages: resolve, profile, identity log, collections, 3 windows,
	// engagement.
	const totalStages = 8
	stagesDone := 0
	stage := func(name string) {
		stagesDone++
		if opts.OnStage != nil {
			opts.OnStage(stagesDone, totalStages, name)
		}
	}

	var warnings []string
	warn := func(format string, args ...any) {
		w := fmt.Sprintf(format, args...)
		warnings = append(warnings, w)
		if opts.Print != nil {
			opts.Print("warning: " + w)
		}
	}

	resolver := &identity.Resolver{AppViewURL: appview, PLCURL: plc, Client: client}
	ident, err := resolver.Resolve(ctx, handle)
	if err != nil {
		return nil, err
	}
	stage("resolved " + ident.DID)

	profile, err := client.Profile(ctx, appview, ident.DID)
	if err != nil {
		warn("fetch profile: %v", err)
	}
	stage("profile")

	ops, err := resolver.AuditLog(ctx, ident.DID)
	if err != nil {
		warn("fetch identity log: %v", err)
	}
	logSummary := identity.SummarizeLog(ops)
	stage("identity log")

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = identity.CreationTime(ops)
	}
	var ageDays float64
	if !createdAt.IsZero() {
		ageDays = now.Sub(createdAt).Hours() / 24
		if ageDays < 0 {
			ageDays = 0
		}
	}

	collections, err := client.Collections(ctx, ident.ServiceEndpoint, ident.DID)
	if err != nil {
		warn("describe repo: %v", err)
	}
	stage("collections")

	engine := &aggregate.Engine{Client: client, PDS: ident.ServiceEndpoint, DID: ident.DID}

	cut90 := now.AddDate(0, 0, -90)
	cut30 := now.AddDate(0, 0, -30)
	windows := []struct {
		name   string
		days   float64
		cutoff *time.Time
	}{
		{"all-time", ageDays, nil},
		{"last-90-days", min(90, ageDays), &cut90},
		{"last-30-days", min(30, ageDays), &cut30},
	}

	reports := make([]model.WindowReport, len(windows))
	for i, w := range windows {
		agg, ws := engine.Window(ctx, collections, w.cutoff, w.days)
		for _, s := range ws {
			warn("%s", s)
		}

		postRecords, err := client.ListRecords(ctx, ident.ServiceEndpoint, ident.DID, postsCollection, w.cutoff)
		if err != nil {
			warn("list %s (%s): %v (partial results kept)", postsCollection, w.name, err)
		}
		repostRecords, err := client.ListRecords(ctx, ident.ServiceEndpoint, ident.DID, repostsCollection, w.cutoff)
		if err != nil {
			warn("list %s (%s): %v (partial results kept)", repostsCollection, w.name, err)
		}

		stats := posts.Analyze(postRecords, repostRecords, ident.DID, w.days)
		reports[i] = model.WindowReport{
			Window:       w.name,
			Days:         model.Round(w.days),
			Aggregate:    agg,
			Posts:        stats,
			PostingStyle: posts.Style(stats, agg.BskyPerDay),
			Activity: model.ActivityLabels{
				Overall: labels.Activity(agg.TotalPerDay),
				Bsky:    labels.Activity(agg.BskyPerDay),
				AtProto: labels.Activity(agg.AtProtoPerDay),
			},
		}
		stage(w.name + " window")
	}

	totals, err := engagement.Collect(ctx, client, appview, ident.DID)
	if err != nil {
		warn("fetch author feed: %v (partial totals kept)", err)
	}
	stage("engagement")

	atProtoCollections := 0
	for _, col := range collections {
		if !aggregate.IsBsky(col) {
			atProtoCollections++
		}
	}

	allTime := reports[0]
	rep := &model.Report{
		GeneratedAt:       now.Format(time.RFC3339),
		Identity:          ident,
		Profile:           profile,
		AgeDays:           model.Round(ageDays),
		AgePercentage:     labels.AgePercentage(createdAt, now),
		AllTime:           allTime,
		Last90:            reports[1],
		Last30:            reports[2],
		Engagement:        totals,
		IdentityLog:       logSummary,
		SocialStatus:      labels.SocialStatus(ageDays, profile.FollowersCount, profile.FollowsCount),
		ProfileCompletion: labels.ProfileCompletion(profile.DisplayName, profile.Banner, profile.Description),
		DomainRarity:      labels.DomainRarity(ident.Handle),
		Era:               labels.Era(createdAt),
		Warnings:          warnings,
	}

	rep.Narrative = narrative.Paragraphs(narrative.Input{
		Handle:             ident.Handle,
		DisplayName:        profile.DisplayName,
		AgeDays:            rep.AgeDays,
		AgePercentage:      rep.AgePercentage,
		Era:                rep.Era,
		DomainRarity:       rep.DomainRarity,
		PostingStyle:       allTime.PostingStyle,
		SocialStatus:       rep.SocialStatus,
		Activity:           allTime.Activity.Overall,
		BskyAliasCount:     logSummary.BskyAliasCount,
		CustomAliasCount:   logSummary.CustomAliasCount,
		RotationKeyCount:   logSummary.RotationKeyCount,
		ServiceEndpoint:    ident.ServiceEndpoint,
		AtProtoCollections: atProtoCollections,
		AtProtoPerDay:      allTime.Aggregate.AtProtoPerDay,
	})

	counter.Finalize()
	return rep, nil
}

package labels

import (
	"testing"
	"time"
)

func TestSocialStatus(t *testing.T) {
	cases := []struct {
		name      string
		ageDays   float64
		followers int64
		follows   int64
		want      string
	}{
		{"newbie regardless of followers", 10, 200_000, 100, StatusNewbie},
		{"newbie boundary is exclusive", 30, 50, 100, StatusCommunity},
		{"balanced ratio is community", 400, 1000, 900, StatusCommunity},
		{"zero followers is community", 400, 0, 0, StatusCommunity},
		{"skewed but small is up and comer", 400, 400, 100, StatusUpComing},
		{"popular at 500 followers", 400, 500, 100, StatusPopular},
		{"influencer at 10k", 400, 10_000, 100, StatusInfluencer},
		{"celebrity at 100k", 400, 100_000, 100, StatusCelebrity},
		{"ratio exactly half is community", 400, 100_000, 50_000, StatusCommunity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SocialStatus(c.ageDays, c.followers, c.follows); got != c.want {
				t.Errorf("SocialStatus(%v, %d, %d) = %q, want %q", c.ageDays, c.followers, c.follows, got, c.want)
			}
		})
	}
}

func TestActivity(t *testing.T) {
	cases := []struct {
		perDay float64
		want   string
	}{
		{0, ActivityInactive},
		{-1, ActivityInactive},
		{0.5, ActivityBarely},
		{0.99, ActivityBarely},
		{1, ActivityActive},
		{9.99, ActivityActive},
		{10, ActivityVery},
		{250, ActivityVery},
	}
	for _, c := range cases {
		if got := Activity(c.perDay); got != c.want {
			t.Errorf("Activity(%v) = %q, want %q", c.perDay, got, c.want)
		}
	}
}

func TestProfileCompletion(t *testing.T) {
	cases := []struct {
		name, display, banner, desc, want string
	}{
		{"all filled", "Alice", "banner.jpg", "hi", ProfileComplete},
		{"none filled", "", "", "", ProfileNotStarted},
		{"whitespace counts as empty", " ", "\t", "", ProfileNotStarted},
		{"partial", "Alice", "", "", ProfileIncomplete},
		{"two of three", "Alice", "", "hi", ProfileIncomplete},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ProfileCompletion(c.display, c.banner, c.desc); got != c.want {
				t.Errorf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestEra(t *testing.T) {
	cases := []struct {
		created time.Time
		want    string
	}{
		{time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), EraInvite},
		{time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), EraGrowth},
		{time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), EraGrowth},
		{time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), EraOpen},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), EraOpen},
		{time.Time{}, EraUnknown},
	}
	for _, c := range cases {
		if got := Era(c.created); got != c.want {
			t.Errorf("Era(%v) = %q, want %q", c.created, got, c.want)
		}
	}
}

func TestAgePercentage(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	if got := AgePercentage(time.Time{}, now); got != 0 {
		t.Errorf("expected 0 for unknown creation time, got %v", got)
	}
	if got := AgePercentage(epochAnchor, now); got != 1 {
		t.Errorf("expected 1 for an account as old as the network, got %v", got)
	}
	if got := AgePercentage(now, now); got != 0 {
		t.Errorf("expected 0 for a brand-new account, got %v", got)
	}

	half := epochAnchor.Add(now.Sub(epochAnchor) / 2)
	if got := AgePercentage(half, now); got != 0.5 {
		t.Errorf("expected 0.5 for a half-lifetime account, got %v", got)
	}
}

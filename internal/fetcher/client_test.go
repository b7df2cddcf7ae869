// internal/fetcher/client_test.go
package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dsablic/skylens/internal/fetcher"
)

func TestGetJSONCachesPerURL(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"value":"hello"}`))
	}))
	defer server.Close()

	c := fetcher.NewClient(server.Client())
	ctx := context.Background()

	var first, second struct {
		Value string `json:"value"`
	}
	if err := c.GetJSON(ctx, server.URL+"/thing", &first); err != nil {
		t.Fatalf("first GetJSON: %v", err)
	}
	if err := c.GetJSON(ctx, server.URL+"/thing", &second); err != nil {
		t.Fatalf("second GetJSON: %v", err)
	}

	if hits != 1 {
		t.Errorf("expected 1 network hit for repeated URL, got %d", hits)
	}
	if first.Value != "hello" || second.Value != "hello" {
		t.Errorf("expected identical decoded values, got %q and %q", first.Value, second.Value)
	}
}

func TestGetJSONDistinctURLsNotShared(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":"` + r.URL.Path + `"}`))
	}))
	defer server.Close()

	c := fetcher.NewClient(server.Client())
	ctx := context.Background()

	var a, b struct {
		Value string `json:"value"`
	}
	c.GetJSON(ctx, server.URL+"/a", &a)
	c.GetJSON(ctx, server.URL+"/b", &b)

	if a.Value != "/a" || b.Value != "/b" {
		t.Errorf("expected per-URL responses, got %q and %q", a.Value, b.Value)
	}
}

func TestGetJSONOnPageSkipsCacheHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	pages := 0
	c := fetcher.NewClient(server.Client())
	c.OnPage = func() { pages++ }
	ctx := context.Background()

	var out struct{}
	c.GetJSON(ctx, server.URL+"/x", &out)
	c.GetJSON(ctx, server.URL+"/x", &out)
	c.GetJSON(ctx, server.URL+"/y", &out)

	if pages != 2 {
		t.Errorf("expected 2 page completions (cache hit excluded), got %d", pages)
	}
}

func TestGetJSONNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := fetcher.NewClient(server.Client())
	var out struct{}
	if err := c.GetJSON(context.Background(), server.URL+"/bad", &out); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

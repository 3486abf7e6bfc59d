package enrich

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(3, 8)
	results := pool.Run(context.Background())

	var ran int64
	for i := 0; i < 8; i++ {
		pool.Submit(func(ctx context.Context) error {
			atomic.AddInt64(&ran, 1)
			return nil
		})
	}
	pool.Close()

	got := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("task error = %v", res.Err)
		}
		got++
	}
	if got != 8 || atomic.LoadInt64(&ran) != 8 {
		t.Fatalf("ran %d tasks with %d results, want 8/8", ran, got)
	}
}

func TestWorkerPoolReportsTaskErrors(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	results := pool.Run(context.Background())

	wantErr := errors.New("boom")
	pool.Submit(func(ctx context.Context) error { return wantErr })
	pool.Submit(func(ctx context.Context) error { return nil })
	pool.Close()

	failed := 0
	for res := range results {
		if res.Err != nil {
			if !errors.Is(res.Err, wantErr) {
				t.Fatalf("error = %v, want %v", res.Err, wantErr)
			}
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
}

func TestWorkerPoolStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(1, 1)
	results := pool.Run(ctx)

	cancel()

	done := make(chan struct{})
	go func() {
		for range results {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not stop after cancel")
	}
}

func TestSiteScraperExtractsProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>
			<title>Ledgerly - payments for markets</title>
			<meta name="description" content="Ledgerly digitizes market stall payments.">
		</head><body>
			<a href="https://www.linkedin.com/company/ledgerly">LinkedIn</a>
			<a href="https://twitter.com/ledgerly">Twitter</a>
			<a href="/about">About</a>
			<a href="https://example.org/press">Press</a>
		</body></html>`))
	}))
	defer srv.Close()

	profile, err := NewSiteScraper(5*time.Second).Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if profile.Title != "Ledgerly - payments for markets" {
		t.Fatalf("Title = %q", profile.Title)
	}
	if profile.Description != "Ledgerly digitizes market stall payments." {
		t.Fatalf("Description = %q", profile.Description)
	}
	if len(profile.SocialLinks) != 2 {
		t.Fatalf("SocialLinks = %v, want linkedin and twitter", profile.SocialLinks)
	}
	if profile.OutboundLinks != 3 {
		t.Fatalf("OutboundLinks = %d, want 3 (internal link excluded)", profile.OutboundLinks)
	}
	if profile.FetchedVia != "static" {
		t.Fatalf("FetchedVia = %q", profile.FetchedVia)
	}
}

func TestSiteScraperRejectsBadURL(t *testing.T) {
	if _, err := NewSiteScraper(time.Second).Scrape(context.Background(), "not a url"); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessScraper renders client-side sites in headless Chrome and extracts
// the same profile fields the static scraper looks for. Used as a fallback
// when static HTML comes back empty.
type HeadlessScraper struct {
	timeout time.Duration
}

func NewHeadlessScraper(timeout time.Duration) *HeadlessScraper {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &HeadlessScraper{timeout: timeout}
}

func (s *HeadlessScraper) Scrape(ctx context.Context, siteURL string) (SiteProfile, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(scraperUA),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, s.timeout)
	defer reqCancel()

	var title, description string
	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(siteURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.Title(&title),
		chromedp.EvaluateAsDevTools(
			`(document.querySelector('meta[name="description"]') || document.querySelector('meta[property="og:description"]') || {content: ''}).content`,
			&description,
		),
		chromedp.EvaluateAsDevTools(
			`Array.from(document.querySelectorAll('a[href]')).map(a => a.href)`,
			&hrefs,
		),
	)
	if err != nil {
		return SiteProfile{}, err
	}

	profile := SiteProfile{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		FetchedVia:  "headless",
	}

	seenSocial := map[string]bool{}
	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" || strings.Contains(href, siteURL) {
			continue
		}
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			continue
		}
		profile.OutboundLinks++
		lower := strings.ToLower(href)
		for _, social := range socialHosts {
			if strings.Contains(lower, social) && !seenSocial[social] {
				seenSocial[social] = true
				profile.SocialLinks = append(profile.SocialLinks, href)
			}
		}
	}

	if profile.Title == "" && profile.Description == "" {
		return SiteProfile{}, fmt.Errorf("empty render for %s", siteURL)
	}
	return profile, nil
}

package enrich

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const scraperUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

var socialHosts = []string{
	"linkedin.com",
	"twitter.com",
	"x.com",
	"facebook.com",
	"instagram.com",
	"youtube.com",
	"github.com",
}

// SiteProfile is what a startup's public website tells us about it.
type SiteProfile struct {
	Title         string
	Description   string
	OutboundLinks int
	SocialLinks   []string
	FetchedVia    string
}

// SiteScraper pulls a site profile from static HTML.
type SiteScraper struct {
	timeout time.Duration
}

func NewSiteScraper(timeout time.Duration) *SiteScraper {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SiteScraper{timeout: timeout}
}

func (s *SiteScraper) Scrape(ctx context.Context, siteURL string) (SiteProfile, error) {
	parsed, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return SiteProfile{}, fmt.Errorf("invalid site url %q", siteURL)
	}

	c := colly.NewCollector(
		colly.UserAgent(scraperUA),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < s.timeout {
			c.SetRequestTimeout(remaining)
		}
	}

	profile := SiteProfile{FetchedVia: "static"}
	seenSocial := map[string]bool{}

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if profile.Title == "" {
			profile.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		if profile.Description == "" {
			profile.Description = strings.TrimSpace(e.Attr("content"))
		}
	})

	c.OnHTML(`meta[property="og:description"]`, func(e *colly.HTMLElement) {
		if profile.Description == "" {
			profile.Description = strings.TrimSpace(e.Attr("content"))
		}
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Request.AbsoluteURL(e.Attr("href"))
		link, err := url.Parse(href)
		if err != nil || link.Host == "" {
			return
		}
		if link.Host == parsed.Host {
			return
		}
		profile.OutboundLinks++
		host := strings.TrimPrefix(strings.ToLower(link.Host), "www.")
		for _, social := range socialHosts {
			if (host == social || strings.HasSuffix(host, "."+social)) && !seenSocial[host] {
				seenSocial[host] = true
				profile.SocialLinks = append(profile.SocialLinks, href)
			}
		}
	})

	var visitErr error
	c.OnError(func(_ *colly.Response, err error) {
		visitErr = err
	})

	if err := c.Visit(parsed.String()); err != nil {
		return SiteProfile{}, err
	}
	c.Wait()

	if visitErr != nil {
		return SiteProfile{}, visitErr
	}
	return profile, nil
}

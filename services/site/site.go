// Package site builds the public-facing static texts of the marketing
// site: robots.txt, sitemap.xml and the wa.me contact link.
package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"psicocitas/config"
)

var (
	trailingSlashes = regexp.MustCompile(`/+$`)
	nonDigits       = regexp.MustCompile(`\D`)
	hasTextParam    = regexp.MustCompile(`(?:\?|&)text=`)
)

// SiteURL returns the configured public site URL without trailing slashes.
func SiteURL(cfg *config.Config) string {
	return trailingSlashes.ReplaceAllString(cfg.PublicSiteURL, "")
}

// Robots renders robots.txt: crawl everything except the thank-you page,
// and point at the sitemap.
func Robots(cfg *config.Config) string {
	return strings.Join([]string{
		"User-agent: *",
		"Allow: /",
		"Disallow: " + cfg.ThankYouPath,
		"",
		fmt.Sprintf("Sitemap: %s/sitemap.xml", SiteURL(cfg)),
	}, "\n")
}

// Sitemap renders a single-URL sitemap for the site root.
func Sitemap(cfg *config.Config, now time.Time) string {
	siteURL := SiteURL(cfg)
	lastmod := now.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	b.WriteString("  <url>\n")
	fmt.Fprintf(&b, "    <loc>%s/</loc>\n", siteURL)
	fmt.Fprintf(&b, "    <lastmod>%s</lastmod>\n", lastmod)
	b.WriteString("    <changefreq>weekly</changefreq>\n")
	b.WriteString("    <priority>1.0</priority>\n")
	b.WriteString("  </url>\n")
	b.WriteString("</urlset>")
	return b.String()
}

// WhatsAppLink builds the public contact link. An explicitly configured
// link wins; the prefilled message is appended unless the link already
// carries a text parameter. Otherwise the link is built from the number,
// reduced to digits.
func WhatsAppLink(cfg *config.Config) string {
	message := strings.TrimSpace(cfg.PublicWhatsAppMessage)
	if link := strings.TrimSpace(cfg.PublicWhatsAppLink); link != "" {
		if message == "" || hasTextParam.MatchString(link) {
			return link
		}
		separator := "?"
		if strings.Contains(link, "?") {
			separator = "&"
		}
		return link + separator + "text=" + url.QueryEscape(message)
	}

	number := nonDigits.ReplaceAllString(cfg.PublicWhatsAppNumber, "")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

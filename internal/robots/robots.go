// Package robots serves the crawler policy.
package robots

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// disallowed paths for every crawler.
var disallowed = []string{"/api/", "/member/", "/_next/", "/admin/", "/*.json"}

// blockedAgents may not crawl anything.
var blockedAgents = []string{"GPTBot"}

// Policy renders robots.txt for a site.
func Policy(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range disallowed {
		b.WriteString("Disallow: " + p + "\n")
	}
	for _, agent := range blockedAgents {
		b.WriteString("\nUser-agent: " + agent + "\n")
		b.WriteString("Disallow: /\n")
	}
	b.WriteString("\nSitemap: " + strings.TrimRight(siteURL, "/") + "/sitemap.xml\n")
	return b.String()
}

// Handler serves GET /robots.txt.
type Handler struct {
	body string
}

func New(siteURL string) *Handler {
	return &Handler{body: Policy(siteURL)}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/robots.txt", h.HandleRobots)
}

func (h *Handler) HandleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(h.body))
}

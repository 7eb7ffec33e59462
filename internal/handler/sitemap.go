package handler

import (
	"encoding/xml"
	"net/http"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// GetSitemap handles GET /sitemap.xml: home, the compare page, every city
// and the canonical comparison of every hub pair.
func (s *Server) GetSitemap(w http.ResponseWriter, r *http.Request) {
	slugs, err := s.times.SitemapSlugs()
	if err != nil {
		s.writeError(w, r, err, "sitemap unavailable")
		return
	}

	today := s.now().UTC().Format("2006-01-02")
	set := urlset{XMLNS: sitemapNS}
	add := func(path, freq string, prio float64) {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.baseURL + path, LastMod: today, ChangeFreq: freq, Priority: prio})
	}

	add("/", "daily", 1.0)
	add("/compare", "weekly", 0.9)
	for _, c := range slugs.Cities {
		add("/time/"+c, "hourly", 0.8)
	}
	for _, c := range slugs.Comparisons {
		add("/time/"+c, "hourly", 0.6)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		s.log.ErrorContext(r.Context(), "encode sitemap", "error", err)
	}
}

package main

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

// Feed serves an RSS 2.0 feed of published posts. Like the other public
// reads it is fallback-safe.
func (b *Blog) Feed(w http.ResponseWriter, r *http.Request) {
	posts, _ := b.content.renderableList(0)

	base := "http://" + r.Host
	channel := rssChannel{
		Title:       b.cfg.Site.Title,
		Link:        base,
		Description: "Latest posts from " + b.cfg.Site.Title,
	}

	for _, p := range posts {
		description := p.Excerpt
		if description == "" {
			description = p.Content
		}
		channel.Items = append(channel.Items, rssItem{
			Title:       p.Title,
			Link:        base + "/blog/" + p.Slug,
			Description: description,
			Author:      p.Author,
			GUID:        base + "/blog/" + p.Slug,
			PubDate:     p.CreatedAt.UTC().Format(time.RFC1123Z),
		})
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(rssFeed{Version: "2.0", Channel: channel}); err != nil {
		slog.Error("encoding rss feed", "error", err)
	}
}

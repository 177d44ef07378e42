package main

import "time"

type Post struct {
	ID        int64
	Title     string
	Content   string
	Excerpt   string
	Author    string
	Slug      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// postJSON is the wire shape used by the public API. Published is 0/1 to
// match the persisted column.
type postJSON struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Author    string `json:"author"`
	Slug      string `json:"slug"`
	Published int    `json:"published"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toPostJSON(p Post) postJSON {
	published := 0
	if p.Published {
		published = 1
	}
	return postJSON{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Author:    p.Author,
		Slug:      p.Slug,
		Published: published,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPostJSONList(posts []Post) []postJSON {
	out := make([]postJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostJSON(p))
	}
	return out
}

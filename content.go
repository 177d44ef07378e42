package main

import (
	"database/sql"
	"errors"
	"log/slog"
)

var (
	// errNoStore means a mutation was attempted with no database binding.
	errNoStore = errors.New("no database binding")

	// errSlugTaken means another post already owns the requested slug.
	errSlugTaken = errors.New("slug already in use")
)

const relatedPostCount = 3

// content decides what to show for every request. Public reads degrade to
// the fixed fallback posts instead of failing; admin reads and all mutations
// surface their errors.
type content struct {
	db *sql.DB // nil when there is no database binding
}

func newContent(db *sql.DB) *content {
	return &content{db: db}
}

// withFallback is the single place the store-vs-fallback decision is made.
// Every public read goes through it. An empty store counts as uninitialized
// content, not a bare site. The bool reports whether fallback content was
// substituted.
func (c *content) withFallback(op string, query func(*sql.DB) ([]Post, error)) ([]Post, bool) {
	if c.db == nil {
		return fallbackPosts(), true
	}

	posts, err := query(c.db)
	if err != nil {
		slog.Warn("store unavailable, serving fallback content", "op", op, "error", err)
		return fallbackPosts(), true
	}
	if len(posts) == 0 {
		return fallbackPosts(), true
	}

	return posts, false
}

// renderableList returns published posts for the home page and public API,
// newest first. It never fails.
func (c *content) renderableList(limit int) ([]Post, bool) {
	posts, fallback := c.withFallback("list", func(db *sql.DB) ([]Post, error) {
		return getPublishedPosts(db, limit)
	})

	if fallback {
		posts = filterPublished(posts)
		if limit > 0 && len(posts) > limit {
			posts = posts[:limit]
		}
	}

	return posts, fallback
}

// renderableDetail resolves a published post by slug plus up to three related
// posts for the sidebar. A nil post means not found. It never fails.
func (c *content) renderableDetail(slug string) (*Post, []Post, bool) {
	posts, fallback := c.withFallback("detail", func(db *sql.DB) ([]Post, error) {
		return getPublishedPosts(db, 0)
	})
	if fallback {
		posts = filterPublished(posts)
	}

	var post *Post
	var related []Post
	for i := range posts {
		if posts[i].Slug == slug {
			post = &posts[i]
			continue
		}
		if len(related) < relatedPostCount {
			related = append(related, posts[i])
		}
	}

	if post == nil {
		return nil, nil, fallback
	}

	return post, related, fallback
}

// adminList returns every post, drafts included. Admin reads do not degrade.
func (c *content) adminList() ([]Post, error) {
	if c.db == nil {
		return nil, errNoStore
	}
	return getAllPosts(c.db)
}

func (c *content) adminGet(id int64) (*Post, error) {
	if c.db == nil {
		return nil, errNoStore
	}
	return getPostByID(c.db, id)
}

// create inserts a validated post. Slug collisions are rejected before the
// write so the caller gets a clear conflict instead of a driver error.
func (c *content) create(form *postForm) (int64, error) {
	if c.db == nil {
		return 0, errNoStore
	}

	taken, err := slugInUse(c.db, form.Slug, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, errSlugTaken
	}

	return createPost(c.db, form.Title, form.Content, form.Excerpt, form.Author, form.Slug, form.IsPublished())
}

func (c *content) update(id int64, form *postForm) error {
	if c.db == nil {
		return errNoStore
	}

	taken, err := slugInUse(c.db, form.Slug, id)
	if err != nil {
		return err
	}
	if taken {
		return errSlugTaken
	}

	return updatePost(c.db, id, form.Title, form.Content, form.Excerpt, form.Author, form.Slug, form.IsPublished())
}

func (c *content) delete(id int64) error {
	if c.db == nil {
		return errNoStore
	}
	return deletePost(c.db, id)
}

func (c *content) intro() string {
	if c.db == nil {
		return ""
	}
	value, err := getSetting(c.db, "intro")
	if err != nil {
		slog.Warn("store unavailable, skipping intro", "error", err)
		return ""
	}
	return value
}

func (c *content) setIntro(value string) error {
	if c.db == nil {
		return errNoStore
	}
	return setSetting(c.db, "intro", value)
}

func filterPublished(posts []Post) []Post {
	var out []Post
	for _, p := range posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

package main

import "time"

// fallbackPosts returns the fixed example posts served when the database is
// absent or erroring. The same set seeds an empty database, so the site looks
// identical either way. Order is newest first, matching the store queries.
func fallbackPosts() []Post {
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 12, 0, 0, 0, time.UTC)
	}

	return []Post{
		{
			ID:        1,
			Title:     "Welcome to My Blog",
			Content:   "This is the very first post on my new blog. I plan to write about web development, side projects, and things I learn along the way.\n\nThanks for stopping by!",
			Excerpt:   "The first post on my new blog.",
			Author:    "Paul",
			Slug:      "welcome-to-my-blog",
			Published: true,
			CreatedAt: day(4),
			UpdatedAt: day(4),
		},
		{
			ID:        2,
			Title:     "Building a Blog from Scratch",
			Content:   "Rolling your own blog engine is a rite of passage. Server-rendered pages, one small database table, and a cookie for the admin area go a surprisingly long way.\n\nNo frameworks were harmed in the making of this site.",
			Excerpt:   "Why I built this site myself instead of using a platform.",
			Author:    "Paul",
			Slug:      "building-a-blog-from-scratch",
			Published: true,
			CreatedAt: day(3),
			UpdatedAt: day(3),
		},
		{
			ID:        3,
			Title:     "Notes on SQLite",
			Content:   "SQLite is the most deployed database in the world and still underrated for small sites. One file, zero configuration, and it survives redeploys just fine.\n\nFor a personal blog there is nothing better.",
			Excerpt:   "A single file is all the database a blog needs.",
			Author:    "Paul",
			Slug:      "notes-on-sqlite",
			Published: true,
			CreatedAt: day(2),
			UpdatedAt: day(2),
		},
		{
			ID:        4,
			Title:     "Keeping Things Simple",
			Content:   "Every feature you do not build is a feature you never have to maintain. This site has no comments, no tags, no analytics, and I have yet to miss any of them.",
			Excerpt:   "On the luxury of a site with no moving parts.",
			Author:    "Paul",
			Slug:      "keeping-things-simple",
			Published: true,
			CreatedAt: day(1),
			UpdatedAt: day(1),
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type Blog struct {
	cfg       *Config
	content   *content
	auth      *authorizer
	templates map[string]*template.Template
}

func NewBlog(cfg *Config, content *content, auth *authorizer) *Blog {
	return &Blog{
		cfg:       cfg,
		content:   content,
		auth:      auth,
		templates: loadTemplates(),
	}
}

// render executes a page template inside the base layout, merging in the
// keys every page needs.
func (b *Blog) render(w http.ResponseWriter, status int, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = b.cfg.Site.Title
	}
	data["SiteTitle"] = b.cfg.Site.Title
	data["SiteAuthor"] = b.cfg.Site.Author
	data["Year"] = time.Now().Year()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := b.templates[page].ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("rendering template", "page", page, "error", err)
	}
}

// Public pages

func (b *Blog) Home(w http.ResponseWriter, r *http.Request) {
	posts, fallback := b.content.renderableList(0)

	b.render(w, http.StatusOK, "home.html", map[string]any{
		"Title":          "Home",
		"Posts":          posts,
		"Intro":          b.content.intro(),
		"FallbackNotice": fallback,
	})
}

func (b *Blog) About(w http.ResponseWriter, r *http.Request) {
	b.render(w, http.StatusOK, "about.html", map[string]any{
		"Title": "About",
	})
}

func (b *Blog) Detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, related, fallback := b.content.renderableDetail(slug)
	if post == nil {
		b.render(w, http.StatusNotFound, "notfound.html", map[string]any{
			"Title": "Not Found",
		})
		return
	}

	b.render(w, http.StatusOK, "detail.html", map[string]any{
		"Title":          post.Title,
		"Post":           post,
		"Related":        related,
		"FallbackNotice": fallback,
	})
}

// Public API

func (b *Blog) APIHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Hello from the blog API!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"author":    b.cfg.Site.Author,
		"tech":      "Go + chi + SQLite",
	})
}

func (b *Blog) APIBlogs(w http.ResponseWriter, r *http.Request) {
	posts, fallback := b.content.renderableList(0)

	message := "ok"
	if fallback {
		message = "serving fallback content"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    toPostJSONList(posts),
		"message": message,
	})
}

// Session

// LoginForm always renders, even for an already-authorized session; only a
// successful submission redirects.
func (b *Blog) LoginForm(w http.ResponseWriter, r *http.Request) {
	b.render(w, http.StatusOK, "login.html", map[string]any{
		"Title": "Login",
	})
}

func (b *Blog) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if !b.auth.login(username, password) {
		b.render(w, http.StatusOK, "login.html", map[string]any{
			"Title": "Login",
			"Error": "Invalid username or password.",
		})
		return
	}

	b.auth.issueSession(w)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (b *Blog) Logout(w http.ResponseWriter, r *http.Request) {
	b.auth.clearSession(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// Admin pages

func (b *Blog) Dashboard(w http.ResponseWriter, r *http.Request) {
	posts, err := b.content.adminList()
	if err != nil {
		http.Error(w, "Listing posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	published := 0
	for _, p := range posts {
		if p.Published {
			published++
		}
	}

	b.render(w, http.StatusOK, "dashboard.html", map[string]any{
		"Title":          "Dashboard",
		"Posts":          posts,
		"Total":          len(posts),
		"PublishedCount": published,
		"DraftCount":     len(posts) - published,
	})
}

func (b *Blog) NewForm(w http.ResponseWriter, r *http.Request) {
	b.render(w, http.StatusOK, "new.html", map[string]any{
		"Title": "New Post",
		"Form":  &postForm{Author: b.cfg.Site.Author},
	})
}

func (b *Blog) CreateSubmit(w http.ResponseWriter, r *http.Request) {
	form, err := parsePostForm(r, b.cfg.Site.Author)
	if err != nil {
		b.render(w, http.StatusBadRequest, "new.html", map[string]any{
			"Title": "New Post",
			"Form":  formFromRequest(r, b.cfg.Site.Author),
			"Error": err.Error(),
		})
		return
	}

	_, err = b.content.create(form)
	if errors.Is(err, errSlugTaken) {
		b.render(w, http.StatusConflict, "new.html", map[string]any{
			"Title": "New Post",
			"Form":  form,
			"Error": fmt.Sprintf("The slug %q is already in use.", form.Slug),
		})
		return
	}
	if err != nil {
		http.Error(w, "Creating post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (b *Blog) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	post, err := b.content.adminGet(id)
	if err != nil {
		http.Error(w, "Fetching post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	b.render(w, http.StatusOK, "edit.html", map[string]any{
		"Title": fmt.Sprintf("Editing %q", post.Title),
		"Post":  post,
	})
}

func (b *Blog) UpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	form, err := parsePostForm(r, b.cfg.Site.Author)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = b.content.update(id, form)
	if errors.Is(err, errSlugTaken) {
		http.Error(w, fmt.Sprintf("The slug %q is already in use.", form.Slug), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Updating post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (b *Blog) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := b.content.delete(id); err != nil {
		http.Error(w, "Deleting post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (b *Blog) SettingsForm(w http.ResponseWriter, r *http.Request) {
	b.render(w, http.StatusOK, "settings.html", map[string]any{
		"Title": "Settings",
		"Intro": b.content.intro(),
	})
}

func (b *Blog) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := b.content.setIntro(r.FormValue("intro")); err != nil {
		http.Error(w, "Saving settings: "+err.Error(), http.StatusInternalServerError)
		return
	}

	b.render(w, http.StatusOK, "settings.html", map[string]any{
		"Title": "Settings",
		"Intro": b.content.intro(),
		"Saved": true,
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// formFromRequest rebuilds the submitted values so a failed validation can
// re-render the form without losing the admin's input.
func formFromRequest(r *http.Request, defaultAuthor string) *postForm {
	form := &postForm{
		Title:     r.FormValue("title"),
		Content:   r.FormValue("content"),
		Excerpt:   r.FormValue("excerpt"),
		Author:    r.FormValue("author"),
		Slug:      r.FormValue("slug"),
		Published: r.FormValue("published"),
	}
	if form.Author == "" {
		form.Author = defaultAuthor
	}
	return form
}

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	// An empty database path means no binding: serve fallback content only.
	var db *sql.DB
	if cfg.Database.Path != "" {
		db, err = openDB(cfg.Database.Path)
		if err != nil {
			slog.Warn("database unavailable, running on fallback content", "path", cfg.Database.Path, "error", err)
			db = nil
		} else {
			defer db.Close()
			if err := initDB(db); err != nil {
				slog.Error("initializing database", "error", err)
				os.Exit(1)
			}
			if err := seedDB(db); err != nil {
				slog.Error("seeding database", "error", err)
				os.Exit(1)
			}
			if err := seedSettings(db); err != nil {
				slog.Error("seeding settings", "error", err)
				os.Exit(1)
			}
		}
	} else {
		slog.Warn("no database configured, running on fallback content")
	}

	auth, err := newAuthorizer(cfg)
	if err != nil {
		slog.Error("initializing authorizer", "error", err)
		os.Exit(1)
	}

	blog := NewBlog(cfg, newContent(db), auth)

	slog.Info("server starting", "addr", cfg.Server.Addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(cfg.Server.Addr, blog.Routes()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

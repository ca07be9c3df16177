package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	builder "github.com/superme-Sophie/manus-dynamic-section"
	"github.com/superme-Sophie/manus-dynamic-section/page"
)

func main() {
	cfg := builder.Config{
		Title:        builder.EnvOr("PAGE_TITLE", "Dynamic Page"),
		Tagline:      builder.EnvOr("PAGE_TAGLINE", ""),
		URL:          builder.EnvOr("PAGE_URL", "http://localhost:3000"),
		Addr:         builder.EnvOr("PAGE_ADDR", ":3000"),
		DatabasePath: builder.EnvOr("PAGE_DB", "data/page.db"),
		Theme: page.Theme{
			Primary:   builder.EnvOr("PAGE_PRIMARY", ""),
			Secondary: builder.EnvOr("PAGE_SECONDARY", ""),
			Accent:    builder.EnvOr("PAGE_ACCENT", ""),
		},
		BuilderPassword: builder.MustEnv("BUILDER_PASSWORD"),
		SessionSecret:   builder.MustEnv("SESSION_SECRET"),
		CookieSecure:    builder.EnvOr("COOKIE_SECURE", "") == "true",
		PageCacheTTL:    5 * time.Minute,
	}

	app := builder.New(cfg)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		if err := app.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
		os.Exit(0)
	}()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

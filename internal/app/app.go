// Package app wires configuration, vocabularies, the settings store, the
// resolver registry and the search core together and serves them over HTTP.
package app

import (
	"fmt"
	"net/http"
	"time"

	"newskill/internal/cache"
	"newskill/internal/catalog"
	"newskill/internal/config"
	"newskill/internal/logger"
	"newskill/internal/ratelimit"
	"newskill/internal/resolver"
	"newskill/internal/retry"
	"newskill/internal/search"
	"newskill/internal/settings"
	"newskill/internal/vocab"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Debug)

	voc := vocab.Builtin()
	if cfg.VocabPath != "" {
		voc, err = vocab.FromFile(cfg.VocabPath)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}
		logger.Info("vocabulary overrides loaded", "path", cfg.VocabPath)
	}

	store, err := settings.Open(settings.Options{
		FilePath:    cfg.SettingsPath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer store.Close()

	cat := catalog.Default()
	defaults := catalog.LangDefaults()
	if err := catalog.Validate(cat, defaults); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	client := &http.Client{Timeout: cfg.RequestTimeout}
	sources := resolver.NewSources(client, retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		Delay:       cfg.RetryDelay,
		Backoff:     true,
	})

	budget := ratelimit.NewBudget(cfg.FetchBudget, time.Minute)
	registry := resolver.NewRegistry(cache.New(), cfg.ResolverCacheTTL, budget)
	sources.RegisterAll(registry)

	skill := search.New(search.Options{
		Catalog:   cat,
		Defaults:  defaults,
		Vocab:     voc,
		Resolvers: registry,
		Settings:  store,
		Lang:      cfg.Lang,
		SkillIcon: cfg.SkillIcon,
		DefaultBg: cfg.DefaultBg,
	})

	srv := NewServer(skill, store, budget)

	logger.Info("listening", "addr", cfg.ListenAddr, "lang", cfg.Lang)
	return http.ListenAndServe(cfg.ListenAddr, srv.Routes())
}

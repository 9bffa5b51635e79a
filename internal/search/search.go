// Package search is the request core: it reads a free-text news request,
// detects requested languages, cleans the phrase and scores every catalog
// source against it, resolving live streams for the candidates that make
// the cut.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"newskill/internal/catalog"
	"newskill/internal/fuzzy"
	"newskill/internal/media"
	"newskill/internal/metrics"
	"newskill/internal/resolver"
	"newskill/internal/settings"
	"newskill/internal/vocab"
)

// Result is one scored, playable candidate returned to the host. The host
// does the final ranking; results are intentionally unsorted.
type Result struct {
	MatchConfidence float64        `json:"match_confidence"`
	MediaType       media.Type     `json:"media_type"`
	URI             string         `json:"uri"`
	Playback        media.Playback `json:"playback"`
	Image           string         `json:"image"`
	BgImage         string         `json:"bg_image"`
	Title           string         `json:"title"`
	SkillLogo       string         `json:"skill_logo"`
}

// Language vocabularies stripped from the phrase, regional tags before
// their base tags. fr and ru are deliberately absent: their triggers double
// as channel names (France 24, RT) and stay in the phrase for alias
// matching.
var langStripOrder = []string{
	"pt-pt", "en-au", "en-us", "en-ca", "en-gb",
	"es", "it", "fi", "de", "sv", "nl", "en", "ca",
}

// Detection order for language triggers; fr and ru are handled separately
// because of the channel-name collisions.
var langDetectOrder = []string{
	"pt-pt", "en-au", "en-us", "en-gb", "en-ca", "en",
	"es", "ca", "de", "nl", "fi", "sv", "it",
}

type Skill struct {
	catalog   catalog.Catalog
	defaults  map[string]string
	voc       *vocab.Set
	resolvers *resolver.Registry
	settings  settings.Store
	lang      string
	skillIcon string
	defaultBg string
}

type Options struct {
	Catalog   catalog.Catalog
	Defaults  map[string]string // lang tag -> default source name
	Vocab     *vocab.Set
	Resolvers *resolver.Registry
	Settings  settings.Store // may be nil; default_feed lookups are skipped
	Lang      string         // system language, e.g. "en-us"
	SkillIcon string
	DefaultBg string
}

func New(opts Options) *Skill {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Defaults == nil {
		opts.Defaults = catalog.LangDefaults()
	}
	if opts.Vocab == nil {
		opts.Vocab = vocab.Builtin()
	}
	if opts.Lang == "" {
		opts.Lang = "en-us"
	}
	return &Skill{
		catalog:   opts.Catalog,
		defaults:  opts.Defaults,
		voc:       opts.Vocab,
		resolvers: opts.Resolvers,
		settings:  opts.Settings,
		lang:      opts.Lang,
		skillIcon: opts.SkillIcon,
		defaultBg: opts.DefaultBg,
	}
}

// CleanPhrase strips the news trigger and playback filler from the phrase,
// then the language triggers. When the phrase names a channel whose name
// contains a language trigger (France 24, RT), language stripping is
// skipped entirely so alias matching still sees the channel name.
func (s *Skill) CleanPhrase(phrase string) string {
	phrase = s.voc.Remove(phrase, "news")
	phrase = s.voc.Remove(phrase, "filler")

	if !s.voc.Match(phrase, "fr24") && !s.voc.Match(phrase, "rt") {
		for _, lang := range langStripOrder {
			phrase = s.voc.Remove(phrase, lang)
		}
	}

	return strings.TrimSpace(phrase)
}

// MatchLang returns the language tags the raw phrase asks for, in detection
// order, with each regional tag followed later by its base tag. An empty
// result means no explicit language constraint.
func (s *Skill) MatchLang(phrase string) []string {
	var langs []string
	for _, lang := range langDetectOrder {
		if s.voc.Match(phrase, lang) {
			langs = append(langs, lang)
		}
	}

	// "France 24" and "Russia Today" contain the fr/ru triggers; when the
	// channel name matches, the language trigger is ignored and the stream
	// is picked by the regular language bonus instead.
	if s.voc.Match(phrase, "fr") && !s.voc.Match(phrase, "fr24") {
		langs = append(langs, "fr")
	}
	if s.voc.Match(phrase, "ru") && !s.voc.Match(phrase, "rt") {
		langs = append(langs, "ru")
	}

	// range sees only the original elements, so each detected tag gains
	// its base tag exactly once
	for _, l := range langs {
		langs = append(langs, baseTag(l))
	}
	return langs
}

func baseTag(lang string) string {
	if i := strings.IndexByte(lang, '-'); i >= 0 {
		return lang[:i]
	}
	return lang
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}

// Search scores every catalog source against the phrase and returns the
// playable candidates. Score composition, per source:
//
//	base        +50 for an explicit news request, -20 otherwise
//	alias match +aliasScore*60 (token-sort fuzzy match, best alias)
//	language    +20 own bucket / +10 secondary / -20 wrong language
//	default     +30 when the source is the default feed for the request
//	clamped to 100, no lower bound
//
// Candidates below the average confidence threshold are dropped unless the
// request explicitly asked for news, in which case the host ranks the full
// field. A failing stream resolution drops exactly that one candidate.
func (s *Skill) Search(ctx context.Context, phrase string, mediaType media.Type) []Result {
	start := time.Now()
	defer func() {
		metrics.Global.RecordSearchTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()
	metrics.Global.IncrementSearches()

	langs := s.MatchLang(phrase)

	base := -20.0
	if mediaType == media.News {
		base = 50.0
	}

	cleaned := s.CleanPhrase(phrase)

	// Default feeds get a score bonus, but only when the phrase carries no
	// actual query.
	var defaultFeeds []string
	if cleaned == "" {
		for _, lang := range langs {
			if feed, ok := s.defaults[lang]; ok && feed != "" {
				defaultFeeds = append(defaultFeeds, feed)
			}
		}
		if len(langs) == 0 && s.settings != nil {
			feed, ok, err := s.settings.Get("default_feed")
			if err != nil {
				slog.Warn("default_feed lookup failed", "error", err)
			} else if ok && feed != "" {
				defaultFeeds = append(defaultFeeds, feed)
			}
		}
	}

	if len(langs) == 0 {
		langs = []string{s.lang, baseTag(s.lang)}
	}

	var results []Result
	for bucketLang, sources := range s.catalog {
		for name, src := range sources {
			_, aliasScore := fuzzy.MatchOne(cleaned, src.Aliases)
			confidence := base + aliasScore*60

			switch {
			case contains(langs, bucketLang):
				confidence += 20 // lang bonus
			case intersects(langs, src.SecondaryLangs):
				confidence += 10 // smaller lang bonus
			default:
				confidence -= 20 // wrong language penalty
			}

			if contains(defaultFeeds, name) {
				confidence += 30
			}

			if confidence > media.ConfidenceMax {
				confidence = media.ConfidenceMax
			}

			if confidence < media.ConfidenceAverage && mediaType != media.News {
				continue
			}

			uri, err := s.streamURI(ctx, src)
			if err != nil {
				slog.Error("stream extraction failed", "source", name, "error", err)
				metrics.Global.IncrementResolverFailures()
				continue
			}
			if uri == "" {
				continue
			}

			results = append(results, Result{
				MatchConfidence: confidence,
				MediaType:       src.MediaType,
				URI:             uri,
				Playback:        src.Playback,
				Image:           src.Image,
				BgImage:         s.defaultBg,
				Title:           name,
				SkillLogo:       s.skillIcon,
			})
		}
	}

	metrics.Global.AddResultsReturned(len(results))
	return results
}

func (s *Skill) streamURI(ctx context.Context, src *catalog.Source) (string, error) {
	switch v := src.Stream.(type) {
	case catalog.Literal:
		return string(v), nil
	case catalog.Lazy:
		return s.resolvers.Resolve(ctx, string(v))
	default:
		return "", nil
	}
}

package search

import (
	"context"
	"errors"
	"testing"

	"newskill/internal/catalog"
	"newskill/internal/media"
	"newskill/internal/resolver"
)

type fakeStore struct {
	values map[string]string
}

func (f *fakeStore) Get(key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStore) Set(key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStore) Close() error { return nil }

// stubRegistry registers a working stub for every bespoke resolver the
// catalog references, then applies per-test overrides.
func stubRegistry(overrides map[string]resolver.Func) *resolver.Registry {
	reg := resolver.NewRegistry(nil, 0, nil)
	stubs := map[string]string{
		"tsf": "https://stub.example/tsf.mp3",
		"gpb": "https://stub.example/gpb.mp3",
		"abc": "https://stub.example/abc.mp3",
		"npr": "https://stub.example/npr.mp3",
	}
	for name, uri := range stubs {
		uri := uri
		reg.Register(name, func(ctx context.Context) (string, error) { return uri, nil })
	}
	for name, fn := range overrides {
		reg.Register(name, fn)
	}
	return reg
}

func newTestSkill(overrides map[string]resolver.Func, store *fakeStore) *Skill {
	opts := Options{
		Resolvers: stubRegistry(overrides),
		Lang:      "en-us",
		SkillIcon: "ui/news.png",
		DefaultBg: "ui/bg.jpg",
	}
	if store != nil {
		opts.Settings = store
	}
	return New(opts)
}

func findResult(results []Result, title string) (Result, bool) {
	for _, r := range results {
		if r.Title == title {
			return r, true
		}
	}
	return Result{}, false
}

func TestCleanPhrase(t *testing.T) {
	s := newTestSkill(nil, nil)

	tests := []struct {
		phrase string
		want   string
	}{
		{"play the news", ""},
		{"play german news", ""},
		{"play bbc news", "bbc"},
		// channel names that contain language triggers survive cleaning
		{"play RT news", "RT"},
		{"play france 24", "france 24"},
	}
	for _, tt := range tests {
		if got := s.CleanPhrase(tt.phrase); got != tt.want {
			t.Errorf("CleanPhrase(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestMatchLang(t *testing.T) {
	s := newTestSkill(nil, nil)

	langs := s.MatchLang("play german news")
	if !contains(langs, "de") {
		t.Errorf("expected de in %v", langs)
	}

	if langs := s.MatchLang("play france 24"); len(langs) != 0 {
		t.Errorf("france 24 must not read as a French request, got %v", langs)
	}

	if langs := s.MatchLang("play russia today news"); contains(langs, "ru") {
		t.Errorf("russia today must not read as a Russian request, got %v", langs)
	}

	if langs := s.MatchLang("play russian news"); !contains(langs, "ru") {
		t.Errorf("expected ru in %v", langs)
	}
}

func TestMatchLangAddsBaseTag(t *testing.T) {
	s := newTestSkill(nil, nil)

	langs := s.MatchLang("play australian news")
	if !contains(langs, "en-au") || !contains(langs, "en") {
		t.Errorf("expected en-au and base en, got %v", langs)
	}
}

func TestNewsRequestBypassesConfidenceThreshold(t *testing.T) {
	s := newTestSkill(nil, nil)

	results := s.Search(context.Background(), "play finnish news", media.News)

	yle, ok := findResult(results, "YLE")
	if !ok {
		t.Fatalf("YLE missing from results")
	}
	if yle.MatchConfidence != 70 {
		t.Errorf("YLE confidence = %v, want 70", yle.MatchConfidence)
	}

	// wrong-language source scores 50+0-20 = 30, below threshold, but news
	// requests keep the full field for host-side ranking
	bbc, ok := findResult(results, "BBC")
	if !ok {
		t.Fatalf("BBC should still be returned for a news request")
	}
	if bbc.MatchConfidence != 30 {
		t.Errorf("BBC confidence = %v, want 30 (no floor clamp)", bbc.MatchConfidence)
	}
}

func TestVagueRequestsApplyThreshold(t *testing.T) {
	s := newTestSkill(nil, nil)

	results := s.Search(context.Background(), "play finnish news", media.Generic)
	if len(results) != 0 {
		t.Errorf("generic request with no alias match should yield nothing, got %d results", len(results))
	}
}

func TestDefaultFeedSettingBonus(t *testing.T) {
	store := &fakeStore{values: map[string]string{"default_feed": "NPR"}}
	s := newTestSkill(nil, store)

	results := s.Search(context.Background(), "play the news", media.News)

	npr, ok := findResult(results, "NPR")
	if !ok {
		t.Fatalf("NPR missing from results")
	}
	fox, ok := findResult(results, "FOX")
	if !ok {
		t.Fatalf("FOX missing from results")
	}

	// NPR: 50 base + 20 lang + 30 default feed = 100; FOX: 50 + 20 = 70
	if npr.MatchConfidence != 100 {
		t.Errorf("NPR confidence = %v, want 100", npr.MatchConfidence)
	}
	if fox.MatchConfidence != 70 {
		t.Errorf("FOX confidence = %v, want 70", fox.MatchConfidence)
	}
	if npr.MatchConfidence-fox.MatchConfidence != 30 {
		t.Errorf("default feed bonus = %v, want exactly 30", npr.MatchConfidence-fox.MatchConfidence)
	}
}

func TestLangDefaultBonus(t *testing.T) {
	s := newTestSkill(nil, nil)

	results := s.Search(context.Background(), "play german news", media.News)

	dw, ok := findResult(results, "Deutsche Welle")
	if !ok {
		t.Fatalf("Deutsche Welle missing from results")
	}
	oe3, ok := findResult(results, "OE3")
	if !ok {
		t.Fatalf("OE3 missing from results")
	}

	if dw.MatchConfidence != 100 {
		t.Errorf("Deutsche Welle confidence = %v, want 100 (lang default bonus)", dw.MatchConfidence)
	}
	if oe3.MatchConfidence != 70 {
		t.Errorf("OE3 confidence = %v, want 70", oe3.MatchConfidence)
	}
}

func TestNoDefaultBonusWithExplicitQuery(t *testing.T) {
	store := &fakeStore{values: map[string]string{"default_feed": "NPR"}}
	s := newTestSkill(nil, store)

	results := s.Search(context.Background(), "play fox news", media.News)

	fox, ok := findResult(results, "FOX")
	if !ok {
		t.Fatalf("FOX missing from results")
	}
	npr, ok := findResult(results, "NPR")
	if !ok {
		t.Fatalf("NPR missing from results")
	}

	// exact alias match: 50 + 60 + 20 = 130, clamped at 100
	if fox.MatchConfidence != 100 {
		t.Errorf("FOX confidence = %v, want 100 (clamped)", fox.MatchConfidence)
	}
	if npr.MatchConfidence >= fox.MatchConfidence {
		t.Errorf("default feed must not outrank an explicit query: npr=%v fox=%v",
			npr.MatchConfidence, fox.MatchConfidence)
	}
}

func TestResolverFailureDropsOnlyThatCandidate(t *testing.T) {
	s := newTestSkill(map[string]resolver.Func{
		"gpb": func(ctx context.Context) (string, error) {
			return "", errors.New("scrape blew up")
		},
	}, nil)

	results := s.Search(context.Background(), "play the news", media.News)

	if _, ok := findResult(results, "GPB"); ok {
		t.Errorf("GPB should be dropped when its resolver fails")
	}
	for _, title := range []string{"AP", "FOX", "NPR", "PBS"} {
		if _, ok := findResult(results, title); !ok {
			t.Errorf("%s missing: one resolver failure must not affect other candidates", title)
		}
	}
}

func TestEmptyResolverResultDropsCandidate(t *testing.T) {
	s := newTestSkill(map[string]resolver.Func{
		"npr": func(ctx context.Context) (string, error) {
			return "", nil
		},
	}, nil)

	results := s.Search(context.Background(), "play the news", media.News)

	if _, ok := findResult(results, "NPR"); ok {
		t.Errorf("a resolver returning no stream must drop the candidate")
	}
	if _, ok := findResult(results, "FOX"); !ok {
		t.Errorf("other candidates must survive")
	}
}

func TestLiteralURIRoundTrip(t *testing.T) {
	s := newTestSkill(nil, nil)

	results := s.Search(context.Background(), "play sky news", media.News)

	sky, ok := findResult(results, "SkyStream")
	if !ok {
		t.Fatalf("SkyStream missing from results")
	}
	want := "https://skynews2-plutolive-vo.akamaized.net/cdhlsskynewsamericas/1013/latest.m3u8?serverSideAds=true"
	if sky.URI != want {
		t.Errorf("literal URI transformed: got %q", sky.URI)
	}
	if sky.Playback != media.VideoPlayback {
		t.Errorf("SkyStream playback = %v, want video", sky.Playback)
	}
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	s := newTestSkill(nil, nil)

	before := s.catalog["en-us"]["NPR"].Stream
	_ = s.Search(context.Background(), "play the news", media.News)
	after := s.catalog["en-us"]["NPR"].Stream

	if before != after {
		t.Errorf("catalog stream mutated during search: %v -> %v", before, after)
	}
	if _, ok := after.(catalog.Lazy); !ok {
		t.Errorf("catalog entry should still reference its resolver, got %T", after)
	}
}

func TestResultDisplayDefaults(t *testing.T) {
	s := newTestSkill(nil, nil)

	results := s.Search(context.Background(), "play bbc news", media.News)

	bbc, ok := findResult(results, "BBC")
	if !ok {
		t.Fatalf("BBC missing from results")
	}
	if bbc.Title != "BBC" {
		t.Errorf("title should default to the source name, got %q", bbc.Title)
	}
	if bbc.BgImage != "ui/bg.jpg" {
		t.Errorf("bg image should default to the skill background, got %q", bbc.BgImage)
	}
	if bbc.SkillLogo != "ui/news.png" {
		t.Errorf("skill logo not attached, got %q", bbc.SkillLogo)
	}
	if bbc.Image != "ui/images/BBC.png" {
		t.Errorf("source image not carried over, got %q", bbc.Image)
	}
}

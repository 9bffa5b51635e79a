// Package vocab holds the trigger vocabularies used to read a request
// phrase: the word "news" itself, playback filler words, per-language
// trigger phrases and the two channel names that collide with language
// triggers (France 24 / RT).
package vocab

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a compiled collection of vocabularies keyed by voc id.
type Set struct {
	phrases  map[string][]string
	patterns map[string][]*regexp.Regexp
}

// Builtin returns the default vocabularies shipped with the skill.
func Builtin() *Set {
	return build(map[string][]string{
		"news":   {"news", "the news", "latest news", "headlines", "news briefing", "briefing"},
		"filler": {"play", "put on", "start", "give me", "tell me", "the", "some", "me", "a"},

		"pt-pt": {"portuguese", "portugal"},
		"en-au": {"australian", "australia"},
		"en-us": {"american", "united states", "usa", "us"},
		"en-gb": {"british", "uk", "england", "united kingdom"},
		"en-ca": {"canadian", "canada"},
		"en":    {"english"},
		"es":    {"spanish", "spain"},
		"ca":    {"catalan", "catalonia"},
		"de":    {"german", "germany", "deutsch"},
		"nl":    {"dutch", "netherlands", "holland", "flemish", "belgian", "belgium"},
		"fi":    {"finnish", "finland"},
		"sv":    {"swedish", "sweden"},
		"it":    {"italian", "italy"},
		"fr":    {"french", "france"},
		"ru":    {"russian", "russia"},

		// channel names that contain language triggers
		"fr24": {"france 24", "france24", "fr 24", "fr24"},
		"rt":   {"rt", "russia today"},
	})
}

type fileFormat struct {
	Vocabularies map[string][]string `yaml:"vocabularies"`
}

// FromFile starts from the builtin set and overrides any voc id present in
// the YAML file.
func FromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg fileFormat
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode vocabulary file %s: %w", path, err)
	}

	s := Builtin()
	for id, phrases := range cfg.Vocabularies {
		if len(phrases) == 0 {
			continue
		}
		s.phrases[id] = phrases
		s.patterns[id] = compile(phrases)
	}
	return s, nil
}

func build(phrases map[string][]string) *Set {
	s := &Set{
		phrases:  phrases,
		patterns: make(map[string][]*regexp.Regexp, len(phrases)),
	}
	for id, list := range phrases {
		s.patterns[id] = compile(list)
	}
	return s
}

// compile orders phrases longest-first so that removing "the news" wins over
// removing "news" and leaving "the" behind.
func compile(phrases []string) []*regexp.Regexp {
	ordered := make([]string, len(phrases))
	copy(ordered, phrases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	patterns := make([]*regexp.Regexp, 0, len(ordered))
	for _, p := range ordered {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(p)+`\b`))
	}
	return patterns
}

// Match reports whether any phrase of the vocabulary occurs in the phrase,
// on word boundaries (so "rt" does not match inside "start").
func (s *Set) Match(phrase, vocID string) bool {
	for _, re := range s.patterns[vocID] {
		if re.MatchString(phrase) {
			return true
		}
	}
	return false
}

// Remove strips every occurrence of the vocabulary from the phrase and
// collapses the leftover whitespace.
func (s *Set) Remove(phrase, vocID string) string {
	for _, re := range s.patterns[vocID] {
		phrase = re.ReplaceAllString(phrase, " ")
	}
	return strings.Join(strings.Fields(phrase), " ")
}

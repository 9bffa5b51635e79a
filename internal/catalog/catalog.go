// Package catalog is the static registry of named news sources, grouped by
// language. The data never changes at runtime; scoring builds per-request
// copies and never writes back into it.
package catalog

import (
	"fmt"

	"newskill/internal/media"
)

// Stream is either a literal stream URI or a reference to a named resolver
// that fetches the live URI at request time.
type Stream interface {
	isStream()
}

// Literal is a playable URI used as-is.
type Literal string

func (Literal) isStream() {}

// Lazy names a resolver in the resolver registry.
type Lazy string

func (Lazy) isStream() {}

// Source is one named news feed/channel entry.
type Source struct {
	Name           string
	Aliases        []string
	Stream         Stream
	MediaType      media.Type
	MatchTypes     []media.Type
	Playback       media.Playback
	SecondaryLangs []string
	Image          string
}

// Catalog maps language tag -> source name -> descriptor.
type Catalog map[string]map[string]*Source

// Validate checks the structural invariants: every source carries at least
// one alias and a stream, and every language default names a source that
// exists in its bucket.
func Validate(c Catalog, defaults map[string]string) error {
	for lang, bucket := range c {
		for name, src := range bucket {
			if len(src.Aliases) == 0 {
				return fmt.Errorf("source %s/%s has no aliases", lang, name)
			}
			if src.Stream == nil {
				return fmt.Errorf("source %s/%s has no stream", lang, name)
			}
		}
	}
	for lang, name := range defaults {
		bucket, ok := c[lang]
		if !ok {
			return fmt.Errorf("default feed for %s: no such language bucket", lang)
		}
		if _, ok := bucket[name]; !ok {
			return fmt.Errorf("default feed for %s: source %q not in bucket", lang, name)
		}
	}
	return nil
}

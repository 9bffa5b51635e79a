package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

var audioExtensions = []string{".mp3", ".m4a", ".aac", ".ogg", ".wav", ".m3u8"}

func hasAudioExt(url string) bool {
	trimmed := url
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}
	lower := strings.ToLower(trimmed)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FirstFeedStream returns the first playable stream URL in an RSS/Atom
// feed: the first audio enclosure, or a bare item link that already points
// at an audio file.
func (s *Sources) FirstFeedStream(ctx context.Context, feedURL string) (string, error) {
	parser := gofeed.NewParser()
	parser.Client = s.client

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	for _, item := range feed.Items {
		for _, enc := range item.Enclosures {
			if enc == nil || enc.URL == "" {
				continue
			}
			if strings.HasPrefix(enc.Type, "audio") || hasAudioExt(enc.URL) {
				return enc.URL, nil
			}
		}
		if hasAudioExt(item.Link) {
			return item.Link, nil
		}
	}
	return "", ErrNoStream
}

// NPR resolves the NPR News Now podcast: first stream in the feed with any
// tracking query string stripped.
func (s *Sources) NPR(ctx context.Context) (string, error) {
	uri, err := s.FirstFeedStream(ctx, s.nprFeed)
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	return uri, nil
}

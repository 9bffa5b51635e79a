// Package media holds the request and playback classifications shared by
// the catalog and the scorer.
package media

import "strings"

// Type classifies what kind of media a request asks for or a source
// provides.
type Type string

const (
	Generic Type = "generic"
	News    Type = "news"
	Video   Type = "video"
	TV      Type = "tv"
	Radio   Type = "radio"
)

// Playback tells the host how to play a stream.
type Playback string

const (
	Audio         Playback = "audio"
	VideoPlayback Playback = "video"
)

// Confidence bounds for match scoring. Average is the inclusion threshold
// for requests that did not explicitly ask for news; Max caps every score.
const (
	ConfidenceAverage = 50.0
	ConfidenceMax     = 100.0
)

// ParseType reads a request's media type. Unknown or empty values fall
// back to Generic, which applies the strict confidence threshold.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "news":
		return News
	case "video":
		return Video
	case "tv":
		return TV
	case "radio":
		return Radio
	default:
		return Generic
	}
}

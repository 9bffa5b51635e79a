package resolver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// TSF resolves the hourly TSF news bulletin. The station publishes one MP3
// per hour at a predictable path; the current hour's file may not exist yet,
// so the probe walks back one hour at a time, up to six attempts.
func (s *Sources) TSF(ctx context.Context) (string, error) {
	date := s.now().In(s.tsfLoc)
	for i := 0; i < 6; i++ {
		uri := fmt.Sprintf("%s/stream/audio/%d/%02d/noticias/%02d/not%02d.mp3",
			s.tsfBase, date.Year(), int(date.Month()), date.Day(), date.Hour())
		status, err := s.probe(ctx, uri)
		if err != nil {
			return "", fmt.Errorf("probe tsf bulletin: %w", err)
		}
		if status == http.StatusOK {
			return uri, nil
		}
		date = date.Add(-time.Hour)
	}
	return "", ErrNoStream
}

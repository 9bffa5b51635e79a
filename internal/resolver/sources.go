package resolver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newskill/internal/retry"
)

// Sources bundles the bespoke per-source resolvers around one shared HTTP
// client. The endpoint fields exist so tests can point a resolver at a
// local server.
type Sources struct {
	client   *http.Client
	retryCfg retry.Config
	now      func() time.Time

	tsfBase string
	tsfLoc  *time.Location
	gpbFeed string
	abcBase string
	nprFeed string
}

func NewSources(client *http.Client, retryCfg retry.Config) *Sources {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	loc, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		loc = time.UTC
	}
	return &Sources{
		client:   client,
		retryCfg: retryCfg,
		now:      time.Now,
		tsfBase:  "https://www.tsf.pt",
		tsfLoc:   loc,
		gpbFeed:  "http://feeds.feedburner.com/gpbnews/GeorgiaRSS?format=xml",
		abcBase:  "https://www.abc.net.au",
		nprFeed:  "https://www.npr.org/rss/podcast.php?id=500005",
	}
}

// RegisterAll wires every bespoke resolver into the registry under the
// names the catalog refers to.
func (s *Sources) RegisterAll(reg *Registry) {
	reg.Register("tsf", s.TSF)
	reg.Register("gpb", s.GPB)
	reg.Register("abc", s.ABC)
	reg.Register("npr", s.NPR)
}

// get fetches a page, retrying transport errors and 5xx responses.
func (s *Sources) get(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response
	err := retry.Do(ctx, s.retryCfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		r, err := s.client.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= 500 {
			r.Body.Close()
			return fmt.Errorf("server status %d", r.StatusCode)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}
	return resp, nil
}

// probe issues a single GET just to learn the status code. No retry: the
// caller interprets misses itself.
func (s *Sources) probe(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

package resolver

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ABC resolves the ABC News Australia briefing by scraping the briefings
// listing for the newest episode and pulling the download link off the
// episode page. Any missing page element fails the whole resolution; the
// scorer treats that as "drop this candidate".
func (s *Sources) ABC(ctx context.Context) (string, error) {
	resp, err := s.get(ctx, s.abcBase+"/radio/newsradio/news-briefings/")
	if err != nil {
		return "", fmt.Errorf("fetch abc briefings page: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse abc briefings page: %w", err)
	}

	episodeLink, ok := doc.Find("#collection-grid3 a").First().Attr("href")
	if !ok {
		return "", fmt.Errorf("no episode link on abc briefings page")
	}

	episodeResp, err := s.get(ctx, s.abcBase+episodeLink)
	if err != nil {
		return "", fmt.Errorf("fetch abc episode page: %w", err)
	}
	defer episodeResp.Body.Close()

	episodeDoc, err := goquery.NewDocumentFromReader(episodeResp.Body)
	if err != nil {
		return "", fmt.Errorf("parse abc episode page: %w", err)
	}

	mp3, ok := episodeDoc.Find(`[data-component="DownloadButton"]`).First().Attr("href")
	if !ok {
		return "", fmt.Errorf("no download button on abc episode page")
	}
	return mp3, nil
}

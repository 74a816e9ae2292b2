// Package youtube fetches video caption transcripts. The language
// preference is Portuguese, then English, then auto-generated Portuguese,
// matching the audience of the frontend.
package youtube

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	yt "github.com/kkdai/youtube/v2"
)

// ErrNoCaptions is returned when a video has no usable caption track.
var ErrNoCaptions = errors.New("no captions available for this video")

// Service resolves caption tracks and downloads transcripts.
type Service struct {
	client yt.Client
	http   *http.Client
}

// NewService builds a caption fetcher.
func NewService() *Service {
	return &Service{http: http.DefaultClient}
}

// Transcript returns the joined caption text of a video.
func (s *Service) Transcript(ctx context.Context, videoURL string) (string, error) {
	video, err := s.client.GetVideoContext(ctx, videoURL)
	if err != nil {
		return "", fmt.Errorf("failed to load video: %w", err)
	}

	track := pickTrack(video.CaptionTracks)
	if track == nil {
		return "", ErrNoCaptions
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("caption download returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseTranscript(body)
}

// pickTrack applies the language preference order: pt, en, then
// auto-generated pt (vss id "a.pt").
func pickTrack(tracks []yt.CaptionTrack) *yt.CaptionTrack {
	for _, lang := range []string{"pt", "en"} {
		for i := range tracks {
			if tracks[i].LanguageCode == lang && tracks[i].Kind != "asr" {
				return &tracks[i]
			}
		}
	}
	for i := range tracks {
		if tracks[i].VssID == "a.pt" || (tracks[i].LanguageCode == "pt" && tracks[i].Kind == "asr") {
			return &tracks[i]
		}
	}
	return nil
}

// transcriptXML mirrors the timedtext document YouTube serves:
// <transcript><text start=".." dur="..">...</text>...</transcript>
type transcriptXML struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

func parseTranscript(data []byte) (string, error) {
	var doc transcriptXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse caption XML: %w", err)
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		if trimmed := strings.TrimSpace(t.Value); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoCaptions
	}
	return strings.Join(parts, " "), nil
}

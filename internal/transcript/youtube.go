package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultWatchURL = "https://www.youtube.com/watch"

	playerResponseMarker = "ytInitialPlayerResponse = "
	userAgent            = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxWatchPage         = 6 * 1024 * 1024
	maxTimedText         = 2 * 1024 * 1024
)

var (
	ErrNotOK            = errors.New("unexpected non 200 status code")
	ErrTooManyRequests  = errors.New("too many requests")
	ErrNoCaptions       = errors.New("no caption track in requested language")
	ErrVideoUnavailable = errors.New("video unavailable")
)

var reMarkup = regexp.MustCompile(`<[^>]*>`)

type youTube struct {
	client   *http.Client
	watchURL string
}

// NewYouTube creates a Provider that scrapes the watch page for caption tracks.
// An empty watchURL uses DefaultWatchURL.
func NewYouTube(client *http.Client, watchURL string) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	if watchURL == "" {
		watchURL = DefaultWatchURL
	}
	return &youTube{client: client, watchURL: watchURL}
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Entries []struct {
		Text  string  `xml:",chardata"`
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
	} `xml:"text"`
}

func (y *youTube) Segments(ctx context.Context, videoID, language string) ([]Segment, error) {
	watchURL := y.watchURL + "?v=" + url.QueryEscape(videoID)

	page, err := y.get(ctx, watchURL, language, maxWatchPage)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	if bytes.Contains(page, []byte(`action="https://consent.youtube.com/s"`)) {
		return nil, fmt.Errorf("video %q: got consent form instead of watch page", videoID)
	}

	raw, err := findPlayerResponse(page)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		if bytes.Contains(page, []byte(`class="g-recaptcha"`)) {
			return nil, fmt.Errorf("video %q got captcha: %w", videoID, ErrTooManyRequests)
		}
		return nil, fmt.Errorf("video %q: no player response in watch page: %w", videoID, ErrVideoUnavailable)
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	if ps := player.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		return nil, fmt.Errorf("video %q is %s (%s): %w", videoID, ps.Status, ps.Reason, ErrVideoUnavailable)
	}
	if player.Captions == nil {
		return nil, fmt.Errorf("video %q has captions disabled: %w", videoID, ErrNoCaptions)
	}

	track, ok := pickTrack(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, language)
	if !ok {
		return nil, fmt.Errorf("video %q, language %q: %w", videoID, language, ErrNoCaptions)
	}

	body, err := y.get(ctx, strings.Replace(track.BaseURL, "&fmt=srv3", "", 1), language, maxTimedText)
	if err != nil {
		return nil, fmt.Errorf("captions: %w", err)
	}

	return parseTimedText(body)
}

func (y *youTube) get(ctx context.Context, target, language string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", language)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("got code %d: %w", res.StatusCode, ErrNotOK)
	}

	return body, nil
}

// findPlayerResponse returns the JSON object assigned to ytInitialPlayerResponse, or nil.
func findPlayerResponse(page []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	var raw []byte
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		idx := strings.Index(text, playerResponseMarker)
		if idx < 0 {
			return true
		}
		raw = extractJSON([]byte(text[idx+len(playerResponseMarker):]))
		return raw == nil
	})

	return raw, nil
}

// extractJSON returns the leading balanced JSON object of data, or nil.
func extractJSON(data []byte) []byte {
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}

	return nil
}

// pickTrack prefers a manually created track over an auto-generated one.
func pickTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == language && t.Kind != "asr" {
			return t, true
		}
	}

	for _, t := range tracks {
		if t.LanguageCode == language {
			return t, true
		}
	}

	return captionTrack{}, false
}

func parseTimedText(body []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse transcript xml: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Entries))
	for _, e := range tt.Entries {
		if e.Text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     reMarkup.ReplaceAllString(html.UnescapeString(e.Text), ""),
			Start:    e.Start,
			Duration: e.Dur,
		})
	}

	return segments, nil
}

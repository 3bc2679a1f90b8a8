// Package musicbrainz fetches artist tags and identifiers from the
// MusicBrainz web service.
package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"spawnredj/limiter"
	"spawnredj/readthrough"
)

const apiURL = "https://musicbrainz.org/ws/2"

// userAgent identifies us per the MusicBrainz usage policy.
const userAgent = "SpawnreDJ/0.1 (spawn.id.0000@gmail.com)"

const maxTags = 5

func New(cache *readthrough.ReadThrough) *Client {
	// MusicBrainz allows one request per second for anonymous clients.
	lim := limiter.New("musicbrainz-next-req", time.Second)
	if err := lim.Load(); err != nil {
		log.Printf("ignoring saved musicbrainz request time: %v", err)
	}
	return &Client{
		cache: cache,
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", userAgent),
		lim: lim,
	}
}

type Client struct {
	cache *readthrough.ReadThrough
	http  *resty.Client
	lim   *limiter.Limiter
}

// An ArtistInfo is the useful slice of one artist search hit.
type ArtistInfo struct {
	ID   string
	Name string
	Tags []string
}

// SearchArtist looks up an artist by name and returns its MBID and crowd
// tags, lowercased and capped at five. Failures and no-hits return a zero
// value and no error; there is no signal worth distinguishing.
func (c *Client) SearchArtist(ctx context.Context, name string) ArtistInfo {
	body, err := c.fetch(ctx, "/artist", map[string]string{
		"query": fmt.Sprintf("artist:%q", name),
		"limit": "1",
	})
	if err != nil {
		return ArtistInfo{}
	}

	var result struct {
		Artists []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Tags []struct {
				Name string `json:"name"`
			} `json:"tags"`
		} `json:"artists"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return ArtistInfo{}
	}
	if len(result.Artists) == 0 {
		return ArtistInfo{}
	}

	hit := result.Artists[0]
	info := ArtistInfo{ID: hit.ID, Name: hit.Name}
	for _, tag := range hit.Tags {
		if len(info.Tags) >= maxTags {
			break
		}
		if t := strings.ToLower(strings.TrimSpace(tag.Name)); t != "" {
			info.Tags = append(info.Tags, t)
		}
	}
	return info
}

// A RecordingInfo carries the identifiers a recording search can backfill.
type RecordingInfo struct {
	ID             string
	ReleaseGroupID string
}

// SearchRecording looks up a recording by artist and title to backfill
// missing MusicBrainz IDs.
func (c *Client) SearchRecording(ctx context.Context, artist, title string) RecordingInfo {
	body, err := c.fetch(ctx, "/recording", map[string]string{
		"query": fmt.Sprintf("artist:%q AND recording:%q", artist, title),
		"limit": "1",
	})
	if err != nil {
		return RecordingInfo{}
	}

	var result struct {
		Recordings []struct {
			ID       string `json:"id"`
			Releases []struct {
				ReleaseGroup struct {
					ID string `json:"id"`
				} `json:"release-group"`
			} `json:"releases"`
		} `json:"recordings"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return RecordingInfo{}
	}
	if len(result.Recordings) == 0 {
		return RecordingInfo{}
	}

	hit := result.Recordings[0]
	info := RecordingInfo{ID: hit.ID}
	if len(hit.Releases) > 0 {
		info.ReleaseGroupID = hit.Releases[0].ReleaseGroup.ID
	}
	return info
}

func (c *Client) fetch(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	key := fmt.Sprintf("musicbrainz:%s:%s", path, params["query"])
	if c.cache != nil {
		if bs, err := c.cache.Get(key); err == nil {
			return bs, nil
		}
	}

	if err := c.lim.Wait(ctx); err != nil {
		return nil, err
	}

	params["fmt"] = "json"
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(apiURL + path)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz request: %w", err)
	}
	c.lim.Delay()

	if resp.StatusCode() == 429 || resp.StatusCode() == 503 {
		if err := c.lim.SetNextAt(resp.Header().Get("Retry-After")); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("musicbrainz rate limited")
	}
	if resp.IsError() {
		return nil, fmt.Errorf("musicbrainz status %d", resp.StatusCode())
	}

	body := resp.Body()
	if c.cache != nil {
		if err := c.cache.Set(key, body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// Package lastfm fetches crowd-sourced top tags from the Last.fm API.
package lastfm

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

const apiURL = "https://ws.audioscrobbler.com/2.0/"

// maxTags caps how many tags one lookup contributes downstream.
const maxTags = 5

func New(apiKey string, cache *readthrough.ReadThrough) *Client {
	lim := limiter.New("lastfm-next-req", time.Second/4)
	if err := lim.Load(); err != nil {
		log.Printf("ignoring saved lastfm request time: %v", err)
	}
	return &Client{
		apiKey: apiKey,
		cache:  cache,
		http:   resty.New().SetTimeout(10 * time.Second),
		lim:    lim,
	}
}

type Client struct {
	apiKey string
	cache  *readthrough.ReadThrough
	http   *resty.Client
	lim    *limiter.Limiter
}

// TrackTags returns the top tags for one track, lowercased and capped at
// five. Lookup failures and unknown tracks both come back as an empty list;
// the reconciler treats that as "no signal from this source".
func (c *Client) TrackTags(ctx context.Context, artist, track string) []string {
	body, err := c.fetch(ctx, map[string]string{
		"method": "track.getInfo",
		"artist": artist,
		"track":  track,
	})
	if err != nil {
		return nil
	}

	var result struct {
		Track struct {
			TopTags struct {
				Tag []struct {
					Name string `json:"name"`
				} `json:"tag"`
			} `json:"toptags"`
		} `json:"track"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil
	}
	return tagNames(len(result.Track.TopTags.Tag), func(i int) string {
		return result.Track.TopTags.Tag[i].Name
	})
}

// ArtistTags returns the artist's top tags, used when a track has none.
func (c *Client) ArtistTags(ctx context.Context, artist string) []string {
	body, err := c.fetch(ctx, map[string]string{
		"method": "artist.getTopTags",
		"artist": artist,
	})
	if err != nil {
		return nil
	}

	var result struct {
		TopTags struct {
			Tag []struct {
				Name string `json:"name"`
			} `json:"tag"`
		} `json:"toptags"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil
	}
	return tagNames(len(result.TopTags.Tag), func(i int) string {
		return result.TopTags.Tag[i].Name
	})
}

func (c *Client) fetch(ctx context.Context, params map[string]string) ([]byte, error) {
	key := fmt.Sprintf("lastfm:%s:%s:%s", params["method"], params["artist"], params["track"])
	if c.cache != nil {
		if bs, err := c.cache.Get(key); err == nil {
			return bs, nil
		}
	}

	if err := c.lim.Wait(ctx); err != nil {
		return nil, err
	}

	params["api_key"] = c.apiKey
	params["format"] = "json"
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("lastfm request: %w", err)
	}
	c.lim.Delay()

	if resp.StatusCode() == 429 {
		if err := c.lim.SetNextAt(resp.Header().Get("Retry-After")); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("lastfm rate limited")
	}
	if resp.IsError() {
		return nil, fmt.Errorf("lastfm status %d", resp.StatusCode())
	}

	body := resp.Body()
	if c.cache != nil {
		if err := c.cache.Set(key, body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func tagNames(n int, name func(int) string) []string {
	if n > maxTags {
		n = maxTags
	}
	var tags []string
	for i := 0; i < n; i++ {
		if t := strings.ToLower(strings.TrimSpace(name(i))); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

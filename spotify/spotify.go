// Package spotify is a minimal Spotify Web API client covering the three
// lookups the analysis pipeline needs: artist search (for catalog genres),
// track search (for IDs and durations), and batch audio features.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"spawnredj/data"
	"spawnredj/request"
)

const nextReqFilename = "next-req"

// FeatureBatchSize is the API's cap on one audio-features request.
const FeatureBatchSize = 50

// New creates a new Spotify client, with the given clientID and clientSecret.
func New(clientID, clientSecret string) *Client {
	var nextReqAt time.Time
	if _, err := os.Stat(nextReqFilename); !errors.Is(err, os.ErrNotExist) {
		bs, err := os.ReadFile(nextReqFilename)
		if err != nil {
			panic(err)
		}
		nextReqAt, err = time.Parse(time.UnixDate, string(bs))
		if err != nil {
			panic(err)
		}
	}

	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		nextReqAtPtr: atomic.Pointer[time.Time]{},
		delay:        time.Second / 10,
	}
	client.setNextReqAt(nextReqAt)
	return client
}

type Client struct {
	mu sync.Mutex

	clientID     string
	clientSecret string

	nextReqAtPtr atomic.Pointer[time.Time]
	delay        time.Duration

	accessToken string
	expiresAt   time.Time
}

// An Artist is the slice of a Spotify artist record the pipeline cares
// about.
type Artist struct {
	ID     string
	Name   string
	Genres []string
}

// SearchArtist finds the best artist match for a name and returns its ID and
// catalog genres. A search with no hits returns a zero Artist and no error.
func (spo *Client) SearchArtist(ctx context.Context, name string) (Artist, error) {
	query := url.Values{}
	query.Add("q", name)
	query.Add("type", "artist")
	query.Add("limit", "1")

	resp, err := spo.get(ctx, "https://api.spotify.com/v1/search", query)
	if err != nil {
		return Artist{}, err
	}

	defer resp.Close()
	var results artistSearchResults
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return Artist{}, fmt.Errorf("artist search decode error: %w", err)
	}

	if len(results.Artists.Items) == 0 {
		return Artist{}, nil
	}
	item := results.Artists.Items[0]
	return Artist{ID: item.ID, Name: item.Name, Genres: item.Genres}, nil
}

type artistSearchResults struct {
	Artists struct {
		Items []struct {
			ID     string
			Name   string
			Genres []string
		}
	}
}

// A TrackMatch is one track search hit.
type TrackMatch struct {
	ID         string
	ArtistID   string
	DurationMS int64
}

// SearchTrack finds a track by artist and title. No hits returns a zero
// match and no error.
func (spo *Client) SearchTrack(ctx context.Context, artist, title string) (TrackMatch, error) {
	query := url.Values{}
	query.Add("q", fmt.Sprintf("artist:%s track:%s", artist, title))
	query.Add("type", "track")
	query.Add("limit", "1")

	resp, err := spo.get(ctx, "https://api.spotify.com/v1/search", query)
	if err != nil {
		return TrackMatch{}, err
	}

	defer resp.Close()
	var results trackSearchResults
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return TrackMatch{}, fmt.Errorf("track search decode error: %w", err)
	}

	if len(results.Tracks.Items) == 0 {
		return TrackMatch{}, nil
	}
	item := results.Tracks.Items[0]
	match := TrackMatch{ID: item.ID, DurationMS: item.DurationMS}
	if len(item.Artists) > 0 {
		match.ArtistID = item.Artists[0].ID
	}
	return match, nil
}

type trackSearchResults struct {
	Tracks struct {
		Items []struct {
			ID         string
			DurationMS int64 `json:"duration_ms"`
			Artists    []struct {
				ID   string
				Name string
			}
		}
	}
}

// AudioFeatures is one track's feature record: the distance vector plus the
// discrete musical attributes that ride along in the output.
type AudioFeatures struct {
	Vector        data.Vector
	Key           int64
	Mode          int64
	TimeSignature int64
}

// FetchAudioFeatures fetches features for up to FeatureBatchSize track IDs
// in one request and returns them keyed by track ID. Tracks Spotify has no
// analysis for are absent from the result.
func (spo *Client) FetchAudioFeatures(ctx context.Context, ids []string) (map[string]AudioFeatures, error) {
	if len(ids) > FeatureBatchSize {
		return nil, fmt.Errorf("at most %d ids per request, got %d", FeatureBatchSize, len(ids))
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	resp, err := spo.get(ctx, "https://api.spotify.com/v1/audio-features", query)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results audioFeaturesResults
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("audio features decode error: %w", err)
	}

	features := make(map[string]AudioFeatures, len(results.AudioFeatures))
	for _, f := range results.AudioFeatures {
		if f.ID == "" {
			continue
		}
		features[f.ID] = AudioFeatures{
			Vector: data.Vector{
				"danceability":     f.Danceability,
				"energy":           f.Energy,
				"loudness":         f.Loudness,
				"speechiness":      f.Speechiness,
				"acousticness":     f.Acousticness,
				"instrumentalness": f.Instrumentalness,
				"liveness":         f.Liveness,
				"valence":          f.Valence,
				"tempo":            f.Tempo,
			},
			Key:           f.Key,
			Mode:          f.Mode,
			TimeSignature: f.TimeSignature,
		}
	}
	return features, nil
}

type audioFeaturesResults struct {
	AudioFeatures []struct {
		ID string

		Key           int64
		Mode          int64
		Tempo         float64
		TimeSignature int64 `json:"time_signature"`

		Acousticness     float64
		Danceability     float64
		Energy           float64
		Instrumentalness float64
		Liveness         float64
		Loudness         float64
		Speechiness      float64
		Valence          float64
	} `json:"audio_features"`
}

func (spo *Client) nextReqAt() time.Time {
	return *spo.nextReqAtPtr.Load()
}

func (spo *Client) setNextReqAt(to time.Time) {
	spo.nextReqAtPtr.Store(&to)
}

// get serializes requests, pacing them out and honoring Spotify's
// documented rate-limit semantics: on a 429 it reads the Retry-After
// header, persists the resume time so restarts stay polite, and retries.
func (spo *Client) get(ctx context.Context, baseURL string, query url.Values) (io.ReadCloser, error) {
	spo.mu.Lock()
	defer spo.mu.Unlock()

retry:
	nextReqAt := spo.nextReqAt()
	if !nextReqAt.IsZero() {
		now := time.Now()
		if nextReqAt.Sub(now) > time.Second {
			log.Printf("next request in %s at %s", nextReqAt.Sub(now).Truncate(time.Second), nextReqAt.Format(time.StampMilli))
		}
	wait:
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Until(nextReqAt)):
			break wait
		}
		if err := os.Remove(nextReqFilename); err != nil && !errors.Is(err, os.ErrNotExist) {
			panic(err)
		}
	}

	url, _ := url.Parse(baseURL)
	url.RawQuery = query.Encode()
	req, err := http.NewRequest("GET", url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}

	token, err := spo.token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	if resp.StatusCode == 429 {
		spo.delay = 2 * spo.delay
		var nextReqAt time.Time
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter == "" {
			log.Printf("no retry-after header on 429; retrying in 1 minute")
			nextReqAt = time.Now().Add(time.Minute)
		} else {
			seconds, err := strconv.ParseInt(retryAfter, 10, 64)
			if err != nil {
				return nil, err
			}
			waitTime := time.Duration(seconds)*time.Second + time.Second
			log.Printf("429; retrying in %s", waitTime)
			nextReqAt = time.Now().Add(waitTime)
		}
		spo.setNextReqAt(nextReqAt)
		if err := os.WriteFile(nextReqFilename, []byte(nextReqAt.Format(time.UnixDate)), 0666); err != nil {
			return nil, err
		}
		goto retry
	}
	if err := request.Error(resp); err != nil {
		return nil, fmt.Errorf("fetch error: %w", err)
	}

	spo.setNextReqAt(time.Now().Add(spo.delay))

	return resp.Body, nil
}

type tokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (spo *Client) token() (string, error) {
	if spo.accessToken == "" || spo.expiresAt.Before(time.Now().Add(time.Second)) {
		if err := spo.fetchToken(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Bearer %s", spo.accessToken), nil
}

func (spo *Client) fetchToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	url := "https://accounts.spotify.com/api/token"
	req, err := http.NewRequest("POST", url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	up := fmt.Sprintf("%s:%s", spo.clientID, spo.clientSecret)
	credential := base64.StdEncoding.EncodeToString([]byte(up))
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", credential))
	req.Header.Set("Content-type", "application/x-www-form-urlencoded")

	requestAt := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	defer resp.Body.Close()
	if err := request.Error(resp); err != nil {
		return fmt.Errorf("token fetch error: %w", err)
	}

	var result tokenResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return fmt.Errorf("token decode error: %w", err)
	}

	spo.accessToken = result.AccessToken
	spo.expiresAt = requestAt.Add(time.Duration(result.ExpiresIn) * time.Second)

	return nil
}

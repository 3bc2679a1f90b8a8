package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"spawnredj/config"
	"spawnredj/csvio"
	"spawnredj/data"
	"spawnredj/db"
	"spawnredj/enricher"
	"spawnredj/lastfm"
	"spawnredj/m3u"
	"spawnredj/musicbrainz"
	"spawnredj/readthrough"
	"spawnredj/spotify"
	"spawnredj/subcmd"
	"spawnredj/tags"
)

func analyze(ctx context.Context, settings config.Settings, args []string) error {
	sc := subcmd.New("analyze", "analyze an M3U playlist into a genre-tagged CSV record")
	sc.SetArg("playlist", "path", "M3U playlist of local tracks (required)")
	var (
		out      = sc.String("out", "", "output CSV path (default: playlist name + .csv)")
		post     = sc.Bool("post", false, "reprocess an existing CSV without fetching")
		stats    = sc.Bool("stats", false, "also write a genre statistics CSV")
		features = sc.Bool("features", settings.FetchFeatures, "fetch audio features for curation")
		persist  = sc.Bool("store", false, "keep results in the analysis database and reuse them on repeat runs")

		lovedTracks  = sc.String("loved-tracks", "", "M3U of loved tracks")
		lovedAlbums  = sc.String("loved-albums", "", "M3U of loved albums")
		lovedArtists = sc.String("loved-artists", "", "M3U of loved artists")
	)
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if sc.NArg() != 1 {
		sc.Usage()
		return fmt.Errorf("expected one playlist argument")
	}
	playlistPath := sc.Arg(0)

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(playlistPath, filepath.Ext(playlistPath)) + ".csv"
	}

	if *post {
		tracks, err := csvio.ReadFile(outPath)
		if err != nil {
			return err
		}
		enricher.Reprocess(tracks)
		return writeResults(outPath, tracks, *stats)
	}

	root := settings.MusicRoot
	if root == "" {
		root = filepath.Dir(playlistPath)
	}

	paths, err := m3u.Read(playlistPath, root)
	if err != nil {
		return err
	}
	log.Printf("analyzing %d tracks from %s", len(paths), playlistPath)

	var store *db.DB
	stored := map[string]*data.Track{}
	if *persist {
		if store, err = db.Open(settings.DBFile); err != nil {
			return err
		}
		known, err := store.Tracks()
		if err != nil {
			return err
		}
		for _, t := range known {
			stored[t.FilePath] = t
		}
	}

	tracks := make([]*data.Track, 0, len(paths))
	var cold []*data.Track
	for _, p := range paths {
		if t, ok := stored[p]; ok {
			tracks = append(tracks, t)
			continue
		}
		t := &data.Track{FilePath: p}
		meta, err := tags.ReadFile(p)
		if err != nil {
			log.Printf("skipping embedded tags for '%s': %v", p, err)
		} else {
			t.Title = meta.Title
			t.Artist = meta.Artist
			t.Album = meta.Album
			t.Year = meta.Year
			t.EmbeddedGenre = meta.Genre
			t.MusicBrainzArtistID = meta.MusicBrainzArtistID
			t.MusicBrainzReleaseGroupID = meta.MusicBrainzReleaseGroupID
			t.MusicBrainzTrackID = meta.MusicBrainzTrackID
		}
		if t.Title == "" {
			t.Title = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		tracks = append(tracks, t)
		cold = append(cold, t)
	}
	if warm := len(tracks) - len(cold); warm > 0 {
		log.Printf("%d tracks already in %s; enriching %d", warm, settings.DBFile, len(cold))
	}

	loved, err := lovedSets(*lovedTracks, *lovedAlbums, *lovedArtists, root)
	if err != nil {
		return err
	}

	if len(cold) > 0 {
		e, err := newEnricher(settings, *features)
		if err != nil {
			return err
		}
		if err := e.Run(ctx, cold, loved); err != nil {
			return err
		}
	}

	// Loved flags and artist tags cover the whole batch, stored tracks
	// included, so a warm rerun still reflects today's playlists.
	artistTags := enricher.ArtistTags(tracks)
	for _, t := range tracks {
		loved.Flag(t)
		t.ArtistTag = artistTags[strings.ToLower(t.Artist)]
	}

	if store != nil {
		for _, t := range tracks {
			if err := store.UpsertTrack(t); err != nil {
				return err
			}
		}
		for artist, tag := range artistTags {
			if err := store.SetArtistTag(artist, tag); err != nil {
				return err
			}
		}
	}

	return writeResults(outPath, tracks, *stats)
}

func newEnricher(settings config.Settings, features bool) (*enricher.Enricher, error) {
	creds, err := config.LoadCredentials(config.DefaultCredentialsFile)
	if err != nil {
		return nil, err
	}

	cache := readthrough.New(settings.CacheDir, "")

	e := &enricher.Enricher{
		Concurrency:   settings.Concurrency,
		FetchFeatures: features,
	}
	if creds.HasSpotify() {
		e.Catalog = spotify.New(creds.SpotifyClientID, creds.SpotifyClientSecret)
	} else {
		log.Printf("no spotify credentials in %s; skipping catalog lookups", config.DefaultCredentialsFile)
	}
	if creds.HasLastFM() {
		e.Scrobble = lastfm.New(creds.LastFMAPIKey, cache)
	} else {
		log.Printf("no last.fm key in %s; skipping scrobble lookups", config.DefaultCredentialsFile)
	}
	e.Crowd = musicbrainz.New(cache)
	return e, nil
}

func lovedSets(tracksPath, albumsPath, artistsPath, root string) (enricher.LovedSets, error) {
	sets := enricher.LovedSets{}
	var err error
	if tracksPath != "" {
		if sets.Tracks, err = m3u.ReadLoved(tracksPath, root); err != nil {
			return sets, err
		}
	}
	if albumsPath != "" {
		if sets.Albums, err = m3u.ReadLovedDirs(albumsPath, root, 1); err != nil {
			return sets, err
		}
	}
	if artistsPath != "" {
		if sets.Artists, err = m3u.ReadLovedDirs(artistsPath, root, 2); err != nil {
			return sets, err
		}
	}
	return sets, nil
}

func writeResults(outPath string, tracks []*data.Track, withStats bool) error {
	if err := csvio.WriteFile(outPath, tracks); err != nil {
		return err
	}
	log.Printf("wrote %d tracks to %s", len(tracks), outPath)

	if withStats {
		statsPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + "_stats.csv"
		if err := csvio.WriteStatsFile(statsPath, csvio.CollectStats(tracks)); err != nil {
			return err
		}
		log.Printf("wrote stats to %s", statsPath)
	}
	return nil
}

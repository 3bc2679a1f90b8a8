package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"spawnredj/cluster"
	"spawnredj/config"
	"spawnredj/csvio"
	"spawnredj/data"
	"spawnredj/genreorder"
	"spawnredj/m3u"
	"spawnredj/setflag"
	"spawnredj/subcmd"
)

func playlist(ctx context.Context, settings config.Settings, args []string) error {
	sc := subcmd.New("playlist", "write a genre-clustered M3U playlist from an analysis CSV")
	sc.SetArg("csv", "path", "analysis CSV written by 'analyze' (required)")
	loved := setflag.New("tracks", "albums", "artists")
	var (
		out       = sc.String("out", "", "output M3U path (default: csv name + _curated.m3u)")
		curate    = sc.Bool("curate", false, "order tracks within each cluster by audio-feature similarity")
		shuffle   = sc.Bool("shuffle", false, "shuffle tracks within each cluster")
		orderStr  = sc.String("order", "", "comma-separated preferred genre order")
		orderFile = sc.String("order-file", "", "JSON file with a preferred genre order")
	)
	sc.Var(loved, "loved", "restrict to loved items: any of 'tracks', 'albums', 'artists' (comma separated)")
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if sc.NArg() != 1 {
		sc.Usage()
		return fmt.Errorf("expected one csv argument")
	}
	csvPath := sc.Arg(0)

	tracks, err := csvio.ReadFile(csvPath)
	if err != nil {
		return err
	}

	filter := data.LovedFilter{}
	for _, want := range loved.List() {
		switch want {
		case "tracks":
			filter.WantTracks = true
		case "albums":
			filter.WantAlbums = true
		case "artists":
			filter.WantArtists = true
		}
	}

	clusters := cluster.Build(tracks, filter)
	if len(clusters) == 0 {
		return fmt.Errorf("no tracks matched the filter")
	}
	ordered := cluster.Order(clusters, nil)

	explicit, err := explicitOrder(*orderStr, *orderFile)
	if err != nil {
		return err
	}
	if len(explicit) > 0 {
		ordered = applyExplicitOrder(ordered, explicit)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range ordered {
		switch {
		case *curate:
			ordered[i].Tracks = cluster.Tour(ordered[i].Tracks)
		case *shuffle:
			cluster.Shuffle(rng, ordered[i].Tracks)
		}
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + "_curated.m3u"
	}

	root := settings.MusicRoot
	if root == "" {
		root = filepath.Dir(csvPath)
	}
	sections := make([]m3u.Section, len(ordered))
	for i, c := range ordered {
		sections[i] = m3u.Section{Genre: c.Key}
		for _, t := range c.Tracks {
			sections[i].Paths = append(sections[i].Paths, t.FilePath)
		}
	}
	if err := m3u.WriteFile(outPath, sections, root, settings.PathPrefix); err != nil {
		return err
	}

	for _, c := range ordered {
		log.Printf("%s: %d tracks", c.Key, len(c.Tracks))
	}
	log.Printf("wrote %d clusters to %s", len(ordered), outPath)
	return nil
}

func explicitOrder(orderStr, orderFile string) ([]string, error) {
	if orderStr != "" {
		return genreorder.Parse(orderStr), nil
	}
	if orderFile != "" {
		return genreorder.Load(orderFile)
	}
	return nil, nil
}

// applyExplicitOrder reorders clusters by the user's preference, keeping the
// default order for anything unmentioned and reporting unknown names.
func applyExplicitOrder(ordered []cluster.Cluster, explicit []string) []cluster.Cluster {
	defaults := make([]string, len(ordered))
	byKey := make(map[string]cluster.Cluster, len(ordered))
	for i, c := range ordered {
		defaults[i] = c.Key
		byKey[c.Key] = c
	}

	final, unknown := cluster.MergeOrder(explicit, defaults)
	for _, name := range unknown {
		log.Printf("ignoring unknown genre '%s' in preferred order", name)
	}

	result := make([]cluster.Cluster, len(final))
	for i, key := range final {
		result[i] = byKey[key]
	}
	return result
}

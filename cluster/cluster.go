// Package cluster groups analyzed tracks by genre and sequences both the
// clusters and the tracks inside them for playlist output.
package cluster

import "spawnredj/data"

// A Cluster is one genre's worth of playlist, in the order its tracks will
// be written.
type Cluster struct {
	Key    string
	Tracks []*data.Track
}

// Key picks the genre a track clusters under: the artist-level tag when one
// was resolved, otherwise the embedded genre, otherwise "unknown".
func Key(t *data.Track) string {
	if t.ArtistTag != "" {
		return t.ArtistTag
	}
	if t.EmbeddedGenre != "" {
		return t.EmbeddedGenre
	}
	return "unknown"
}

// Build groups tracks into clusters keyed by Key, preserving first-encounter
// order of both clusters and tracks. The loved filter is applied before
// grouping, so excluded tracks never appear in any cluster.
func Build(tracks []*data.Track, filter data.LovedFilter) []Cluster {
	index := map[string]int{}
	var clusters []Cluster
	for _, t := range tracks {
		if !filter.Match(t.Loved) {
			continue
		}
		key := Key(t)
		i, ok := index[key]
		if !ok {
			i = len(clusters)
			index[key] = i
			clusters = append(clusters, Cluster{Key: key})
		}
		clusters[i].Tracks = append(clusters[i].Tracks, t)
	}
	return clusters
}

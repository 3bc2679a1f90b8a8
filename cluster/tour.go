package cluster

import (
	"math"
	"math/rand"

	"spawnredj/data"
)

// Tour sequences a cluster's tracks as a greedy nearest-neighbor walk over
// their audio-feature vectors: starting from the first track in input order,
// each step appends the closest not-yet-placed track. When the current tail
// has no features the walk skips forward in input order instead of measuring
// distances, and when no remaining track has features the rest keep input
// order. O(n²), fine at playlist scale.
func Tour(tracks []*data.Track) []*data.Track {
	if len(tracks) < 2 {
		return tracks
	}

	remaining := append([]*data.Track(nil), tracks[1:]...)
	ordered := []*data.Track{tracks[0]}

	for len(remaining) > 0 {
		tail := ordered[len(ordered)-1]
		next := -1

		if tail.HasFeatures() {
			best := math.Inf(1)
			for i, t := range remaining {
				if !t.HasFeatures() {
					continue
				}
				if d := tail.Features.Distance(t.Features); d < best {
					best = d
					next = i
				}
			}
		}
		if next < 0 {
			// No usable distances from here; take the next track
			// in original order.
			next = 0
		}

		ordered = append(ordered, remaining[next])
		remaining = append(remaining[:next], remaining[next+1:]...)
	}
	return ordered
}

// Shuffle permutes a cluster's tracks uniformly at random, the default when
// no audio features are available or curation wasn't requested.
func Shuffle(rng *rand.Rand, tracks []*data.Track) {
	rng.Shuffle(len(tracks), func(i, j int) {
		tracks[i], tracks[j] = tracks[j], tracks[i]
	})
}

package cluster

import (
	"spawnredj/taxonomy"
)

// transitions is a hand-tuned map of genre-to-genre flows that listen well
// back to back. It supplements the catalog's declared affinities, which are
// sparse at the family level.
var transitions = map[string][]string{
	"rock":       {"blues", "folk", "funk"},
	"folk":       {"folk rock", "country", "rock"},
	"pop":        {"rock", "r&b"},
	"jazz":       {"blues", "r&b"},
	"reggae":     {"r&b", "funk"},
	"r&b":        {"hip-hop", "jazz"},
	"country":    {"folk", "blues"},
	"blues":      {"rock", "jazz"},
	"hip-hop":    {"r&b", "electronic"},
	"electronic": {"hip-hop", "pop"},
	"classical":  {"jazz", "acoustic rock"},
}

// Related lists the genres worth transitioning into from the given one:
// the tuned transitions first, then any catalog-declared affinities not
// already listed.
func Related(genre string) []string {
	related := append([]string(nil), transitions[genre]...)
	for _, name := range taxonomy.RelatedOf(genre) {
		has := false
		for _, r := range related {
			if r == name {
				has = true
				break
			}
		}
		if !has {
			related = append(related, name)
		}
	}
	return related
}

// Order arranges clusters for smooth listening: the largest cluster leads,
// then whichever unused cluster the current one relates to, then the next
// largest when no related cluster remains. Size ties keep input order. The
// related function defaults to Related when nil.
func Order(clusters []Cluster, related func(string) []string) []Cluster {
	if related == nil {
		related = Related
	}
	if len(clusters) == 0 {
		return nil
	}

	used := make([]bool, len(clusters))
	index := map[string]int{}
	for i, c := range clusters {
		index[c.Key] = i
	}

	largestUnused := func() int {
		best := -1
		for i, c := range clusters {
			if used[i] {
				continue
			}
			if best < 0 || len(c.Tracks) > len(clusters[best].Tracks) {
				best = i
			}
		}
		return best
	}

	ordered := make([]Cluster, 0, len(clusters))
	current := largestUnused()
	for current >= 0 {
		used[current] = true
		ordered = append(ordered, clusters[current])

		next := -1
		for _, name := range related(clusters[current].Key) {
			if i, ok := index[name]; ok && !used[i] {
				next = i
				break
			}
		}
		if next < 0 {
			next = largestUnused()
		}
		current = next
	}
	return ordered
}

// MergeOrder reconciles a user-supplied genre ordering with the default one.
// The result is the explicit entries that name real clusters, in the given
// order, followed by the remaining defaults. Explicit entries that name no
// cluster are returned separately for reporting. Comparison is exact on
// cluster keys; callers normalize case before calling.
func MergeOrder(explicit, defaults []string) (final, unknown []string) {
	known := map[string]bool{}
	for _, key := range defaults {
		known[key] = true
	}

	taken := map[string]bool{}
	for _, key := range explicit {
		if taken[key] {
			continue
		}
		if !known[key] {
			unknown = append(unknown, key)
			continue
		}
		taken[key] = true
		final = append(final, key)
	}
	for _, key := range defaults {
		if !taken[key] {
			final = append(final, key)
		}
	}
	return final, unknown
}

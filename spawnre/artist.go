package spawnre

// ArtistTag picks the dominant genre across one artist's resolved tags. Each
// genre list is flattened into a tally; the winner is the first genre to
// reach the maximum count, so encounter order breaks ties. An artist with no
// resolved genres gets the empty string.
func ArtistTag(resolved [][]string) string {
	counts := map[string]int{}
	var seen []string
	for _, genres := range resolved {
		for _, name := range genres {
			if counts[name] == 0 {
				seen = append(seen, name)
			}
			counts[name]++
		}
	}

	var best string
	var bestCount int
	for _, name := range seen {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

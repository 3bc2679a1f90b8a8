package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"spawnredj/data"
	"spawnredj/taxonomy"
)

// Stats summarizes one analysis run for the companion stats CSV.
type Stats struct {
	TotalTracks      int
	TracksWithGenres int

	// genre name -> occurrences across all resolved tags
	GenreCounts map[string]int
}

// CollectStats tallies resolved genres across tracks.
func CollectStats(tracks []*data.Track) Stats {
	stats := Stats{GenreCounts: map[string]int{}}
	for _, t := range tracks {
		stats.TotalTracks++
		if len(t.Spawnre.Genres) == 0 {
			continue
		}
		stats.TracksWithGenres++
		for _, g := range t.Spawnre.Genres {
			stats.GenreCounts[g]++
		}
	}
	return stats
}

// WriteStats writes the summary block followed by per-genre occurrence
// counts, most frequent first.
func WriteStats(w io.Writer, stats Stats) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"Statistic", "Count"},
		{"Total Tracks", strconv.Itoa(stats.TotalTracks)},
		{"Tracks with Genres", strconv.Itoa(stats.TracksWithGenres)},
		{},
		{"Genre", "Hex Value", "Occurrences"},
	}

	type genreCount struct {
		name  string
		count int
	}
	counts := make([]genreCount, 0, len(stats.GenreCounts))
	for name, count := range stats.GenreCounts {
		counts = append(counts, genreCount{name, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	for _, gc := range counts {
		hex := ""
		if entry, ok := taxonomy.LookupByName(gc.name); ok {
			hex = fmt.Sprintf("0x%02X", entry.Hex)
		}
		rows = append(rows, []string{gc.name, hex, strconv.Itoa(gc.count)})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write stats row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatsFile writes the stats CSV to path.
func WriteStatsFile(path string, stats Stats) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stats csv: %w", err)
	}
	if err := WriteStats(file, stats); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

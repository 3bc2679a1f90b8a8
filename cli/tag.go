package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"spawnredj/config"
	"spawnredj/csvio"
	"spawnredj/subcmd"
	"spawnredj/tagwriter"
)

func tag(ctx context.Context, settings config.Settings, args []string) error {
	sc := subcmd.New("tag", "write resolved genres back into the files' ID3 tags")
	sc.SetArg("csv", "path", "analysis CSV written by 'analyze' (required)")
	var (
		dryRun = sc.Bool("dry-run", false, "print what would be written without touching files")
	)
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if sc.NArg() != 1 {
		sc.Usage()
		return fmt.Errorf("expected one csv argument")
	}

	tracks, err := csvio.ReadFile(sc.Arg(0))
	if err != nil {
		return err
	}

	var written, skipped int
	for _, t := range tracks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(t.Spawnre.Genres) == 0 {
			skipped++
			continue
		}
		if !strings.HasSuffix(strings.ToLower(t.FilePath), ".mp3") {
			skipped++
			continue
		}
		genre := t.Spawnre.Genres[0]
		if *dryRun {
			fmt.Printf("%s -> %s\n", t.FilePath, genre)
			written++
			continue
		}
		if err := tagwriter.WriteGenre(t.FilePath, genre); err != nil {
			log.Printf("tagging '%s': %v", t.FilePath, err)
			skipped++
			continue
		}
		written++
	}

	log.Printf("tagged %d tracks, skipped %d", written, skipped)
	return nil
}

// this program analyzes an M3U playlist of local music files: it gathers
// genre opinions from the files themselves and from Spotify, Last.fm, and
// MusicBrainz, reconciles them into compact spawnre tags, and writes
// genre-clustered playlists.
//
// see db/schema.sql for info about the optional analysis database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"spawnredj/config"
	"spawnredj/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: spawnredj $cmd
valid $cmd are 'analyze', 'playlist', 'order', 'tag', 'folder'
for help: spawnredj $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	settings, err := config.LoadSettings("spawnredj.toml")
	if err != nil {
		return err
	}

	switch cmd {
	case "analyze":
		return analyze(ctx, settings, args)

	case "playlist":
		return playlist(ctx, settings, args)

	case "order":
		return order(ctx, settings, args)

	case "tag":
		return tag(ctx, settings, args)

	case "folder":
		return folder(ctx, settings, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

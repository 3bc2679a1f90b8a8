package main

import (
	"context"
	"fmt"

	"spawnredj/config"
	"spawnredj/genreorder"
	"spawnredj/subcmd"
)

const defaultOrderFile = "genre_order.json"

func order(ctx context.Context, settings config.Settings, args []string) error {
	sc := subcmd.New("order", "show or save the preferred genre ordering")
	var (
		file = sc.String("file", defaultOrderFile, "genre order file")
		set  = sc.String("set", "", "comma-separated genre order to save")
	)
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if *set != "" {
		order := genreorder.Parse(*set)
		if err := genreorder.Save(*file, order); err != nil {
			return err
		}
		fmt.Printf("saved %d genres to %s\n", len(order), *file)
		return nil
	}

	order, err := genreorder.Load(*file)
	if err != nil {
		return err
	}
	for i, name := range order {
		fmt.Printf("%2d. %s\n", i+1, name)
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/prize-wheel/internal/audio"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/entries"
	"github.com/iburimskiy/prize-wheel/internal/game"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

func main() {
	opts, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	list, err := loadEntries(opts)
	if err != nil {
		log.Error("load entries", "err", err)
		os.Exit(1)
	}

	ticker := audio.Silent()
	if !opts.Mute {
		if ticker, err = audio.NewTicker(); err != nil {
			log.Warn("sound disabled", "err", err)
		}
	}

	g, err := game.New(opts, list, ticker, log)
	if err != nil {
		panic(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Prize Wheel - click the hub to spin, O: open entries, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}

// loadEntries merges the query entries with the entries file, query first.
func loadEntries(opts config.Options) ([]wheel.Entry, error) {
	list, err := entries.FromQuery(opts.Query)
	if err != nil {
		return nil, err
	}
	if opts.File != "" {
		more, err := entries.Load(opts.File)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", opts.File, err)
		}
		list = append(list, more...)
	}
	return list, nil
}

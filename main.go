package main

import (
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isoplayer/logger"
	"github.com/milk9111/isoplayer/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and development logging")
	edit := flag.Bool("edit", false, "start in edit mode (frame ticks only, billboards auto-provisioned)")
	logLevel := flag.String("log-level", "", "override the log level from game.yaml")
	watch := flag.Bool("watch", false, "reload prefabs from prefabs/ when they change")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}

	cfg := spec.Log
	if *logLevel != "" {
		cfg.Level = *logLevel
	}
	if *debug {
		cfg.Development = true
	}
	l, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()
	l = l.With(zap.String("run", uuid.NewString()))

	game, err := NewGame(Options{
		Spec:  spec,
		Log:   l,
		Debug: *debug,
		Edit:  *edit,
		Watch: *watch,
	})
	if err != nil {
		l.Fatal("failed to build game", zap.Error(err))
	}
	defer game.Close()

	title := spec.Title
	if title == "" {
		title = "isoplayer"
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(title)
	// The scheduler does its own fixed stepping from wall time.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		l.Error("game exited", zap.Error(err))
	}
}

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

type playOptions struct {
	*rootOptions
	record     string
	recordAuto bool
	watch      bool
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlay(opts)
		},
	}
	cmd.Flags().StringVar(&opts.record, "record", "", "record input to file (e.g., --record replay.json)")
	cmd.Flags().BoolVar(&opts.recordAuto, "record-auto", false, "record input to a timestamped file")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload level files from --config when they change")
	return cmd
}

func runPlay(opts *playOptions) error {
	if opts.watch && opts.configDir == "" {
		return errors.New("--watch needs --config: embedded levels cannot change")
	}

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}
	logger := slog.Default()

	w, err := world.New(cfg, world.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	sceneOpts := []playing.Option{playing.WithLogger(logger)}
	if opts.record != "" || opts.recordAuto {
		sceneOpts = append(sceneOpts, playing.WithRecording(opts.record))
	}
	if opts.watch {
		watcher, err := config.NewWatcher(opts.configDir, logger)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()
		sceneOpts = append(sceneOpts, playing.WithReloads(watcher.Reloads()))
		logger.Info("watching levels", "dir", opts.configDir)
	}

	display := cfg.Physics.Display
	g := game.New(playing.New(w, cfg, sceneOpts...), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetTPS(display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting game", "levels", w.LevelCount())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

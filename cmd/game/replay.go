package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func newReplayCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Run a recorded game headless and print where it ended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configDir)
			if err != nil {
				return err
			}
			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}

			snap, err := runReplay(cfg, data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "frames:  %d\n", len(data.Frames))
			fmt.Fprintf(out, "state:   %s\n", snap.State)
			fmt.Fprintf(out, "level:   %d (%s)\n", snap.Level+1, snap.LevelName)
			fmt.Fprintf(out, "score:   %d\n", snap.Score)
			fmt.Fprintf(out, "lives:   %d\n", snap.Lives)
			fmt.Fprintf(out, "coins:   %d\n", snap.CoinsCollected)
			fmt.Fprintf(out, "enemies: %d\n", snap.EnemiesDefeated)
			return nil
		},
	}
}

// runReplay plays data on a fresh world built from cfg.
func runReplay(cfg *config.GameConfig, data *replay.ReplayData) (world.Snapshot, error) {
	w, err := world.New(cfg, world.WithLogger(slog.Default()))
	if err != nil {
		return world.Snapshot{}, fmt.Errorf("failed to create world: %w", err)
	}
	if first := w.Level().ID; data.Level != "" && data.Level != first {
		slog.Warn("replay was recorded on a different first level", "recorded", data.Level, "current", first)
	}
	return replay.Run(w, replay.NewReplayer(*data)), nil
}

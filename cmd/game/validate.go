package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/system"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [dir]",
		Short: "Load and build every level, reporting the first error",
		Long: `Validate loads physics.json, entities.json and every level listed in
physics.json, then builds each level the way the game does. The directory
defaults to --config, or the configs built into the binary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := root.configDir
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, lvl := range cfg.Levels {
				built, err := system.LoadLevel(lvl, cfg.Physics, cfg.Entities)
				if err != nil {
					return err
				}
				reg := built.Registry
				fmt.Fprintf(out, "ok  %-8s %-16q platforms=%d coins=%d enemies=%d\n",
					built.ID, built.Name, reg.Platforms.Len(), reg.CountCoins(), reg.CountEnemies())
			}
			return nil
		},
	}
}

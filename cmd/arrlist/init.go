package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrlist/internal/config"
)

func newInitCmd(c *cli) *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example config file for arrlistd",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				if errors.Is(err, config.ErrExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(c.out, "Wrote %s\n", path)
			fmt.Fprintln(c.out, "Set RADARR_API_KEY and/or SONARR_API_KEY, then run 'arrlistd'.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Config path (default $XDG_CONFIG_HOME/arrlist/config.toml)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

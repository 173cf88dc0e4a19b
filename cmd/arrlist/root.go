package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// cli holds the global flags shared by every subcommand.
type cli struct {
	serverURL  string
	apiKey     string
	jsonOutput bool
	out        io.Writer
}

func (c *cli) client() *Client {
	return NewClient(c.serverURL, c.apiKey)
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "arrlist",
		Short: "CLI client for arrlist watch-list sync",
		Long: `arrlist - CLI client for arrlist watch-list sync

Keep named lists of IMDB/TMDB ids and sync them into Radarr (movies)
or Sonarr (series). Adds are idempotent: titles already in the library
are reported as "exists".

Run 'arrlistd' to start the server daemon.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.out = cmd.OutOrStdout()
		},
	}

	root.PersistentFlags().StringVar(&c.serverURL, "server", envOr("ARRLIST_SERVER", "http://localhost:8484"), "Server URL (env ARRLIST_SERVER)")
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", os.Getenv("ARRLIST_API_KEY"), "API key (env ARRLIST_API_KEY)")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output as JSON")

	root.Version = version
	root.SetVersionTemplate("arrlist {{.Version}}\n")

	root.AddCommand(
		newStatusCmd(c),
		newListsCmd(c),
		newListCmd(c),
		newSyncCmd(c),
		newSearchCmd(c),
		newAddCmd(c),
		newInitCmd(c),
		newNotifyTestCmd(c),
	)
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errNotAdded makes the exit status reflect a rejected add.
var errNotAdded = errors.New("not added")

func newAddCmd(c *cli) *cobra.Command {
	req := AddRequest{}
	cmd := &cobra.Command{
		Use:   "add <imdb|tmdb> <id>",
		Short: "Add a single title to Radarr or Sonarr",
		Example: `  arrlist add imdb tt0133093
  arrlist add tmdb 1399 --target series --root-folder /tv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Source, req.ID = args[0], args[1]
			out, err := c.client().Add(req)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				if err := printJSON(c.out, out); err != nil {
					return err
				}
			} else {
				printOutcome(c, out)
			}
			if !out.OK && out.Reason != "exists" {
				return fmt.Errorf("%s:%s %w: %s", req.Source, req.ID, errNotAdded, out.Reason)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Target, "target", "t", "movie", "Target service: movie or series")
	cmd.Flags().StringVar(&req.RootFolder, "root-folder", "", "Root folder path (default from server config)")
	cmd.Flags().IntVar(&req.QualityProfileID, "quality-profile", 0, "Quality profile ID (default from server config)")
	return cmd
}

func printOutcome(c *cli, o *Outcome) {
	name := o.Item.Source + ":" + o.Item.ID
	if o.Record != nil {
		name = o.Record.Title
		if o.Record.Year > 0 {
			name = fmt.Sprintf("%s (%d)", name, o.Record.Year)
		}
	}
	switch {
	case o.OK:
		fmt.Fprintf(c.out, "Added %s\n", name)
	case o.Reason == "exists":
		fmt.Fprintf(c.out, "%s is already in the library\n", name)
	default:
		fmt.Fprintf(c.out, "Could not add %s: %s\n", name, o.Reason)
		if o.Detail != "" {
			fmt.Fprintf(c.out, "  %s\n", o.Detail)
		}
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newSyncCmd(c *cli) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "sync <list>",
		Short: "Add every item of a list to Radarr or Sonarr",
		Long: `Sync resolves each list item against the target service and adds
the ones missing from its library. Items already present are reported
as "exists"; a failure on one item never stops the others.`,
		Example: `  arrlist sync favourites --target movie
  arrlist sync shows --target series --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.client().Sync(args[0], target)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, res)
			}
			printSyncResult(c.out, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "movie", "Target service: movie or series")
	return cmd
}

func printSyncResult(w io.Writer, res *SyncResponse) {
	if len(res.Outcomes) > 0 {
		rows := make([][]string, len(res.Outcomes))
		for i, o := range res.Outcomes {
			title := ""
			if o.Record != nil {
				title = o.Record.Title
				if o.Record.Year > 0 {
					title = fmt.Sprintf("%s (%d)", title, o.Record.Year)
				}
			}
			if title == "" {
				title = o.Detail
			}
			rows[i] = []string{o.Item.Source + ":" + o.Item.ID, o.State(), title}
		}
		fmt.Fprintln(w, renderTable(w, []string{"Item", "Result", "Title"}, rows, nil))
		fmt.Fprintln(w)
	}

	s := res.Summary
	fmt.Fprintf(w, "Synced %q to %s: %d added, %d exists, %d not found, %d unsupported, %d failed\n",
		res.List, res.Target, s.Added, s.Exists, s.NotFound, s.Unsupported, s.Failed)
}

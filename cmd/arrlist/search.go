package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(c *cli) *cobra.Command {
	var (
		target string
		limit  int
	)
	cmd := &cobra.Command{
		Use:     "search <term>",
		Short:   "Search the target catalog by title",
		Example: `  arrlist search "the matrix 1999"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client().Search(strings.Join(args, " "), target)
			if err != nil {
				return err
			}
			if limit > 0 && len(resp.Results) > limit {
				resp.Results = resp.Results[:limit]
			}
			if c.jsonOutput {
				return printJSON(c.out, resp)
			}
			if len(resp.Results) == 0 {
				fmt.Fprintf(c.out, "No results for %q.\n", resp.Term)
				return nil
			}

			rows := make([][]string, len(resp.Results))
			for i, r := range resp.Results {
				year := ""
				if r.Year > 0 {
					year = strconv.Itoa(r.Year)
				}
				id := r.ExternalIDs.IMDB
				if id == "" && r.ExternalIDs.TMDB != 0 {
					id = "tmdb:" + strconv.FormatInt(r.ExternalIDs.TMDB, 10)
				}
				if id == "" && r.ExternalIDs.TVDB != 0 {
					id = "tvdb:" + strconv.FormatInt(r.ExternalIDs.TVDB, 10)
				}
				lib := ""
				if r.InLibrary {
					lib = "yes"
				}
				rows[i] = []string{r.Title, year, id, r.Confidence, lib}
			}
			fmt.Fprintln(c.out, renderTable(c.out, []string{"Title", "Year", "ID", "Match", "In Library"}, rows,
				[]columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "movie", "Target service: movie or series")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum results to show (0 for all)")
	return cmd
}

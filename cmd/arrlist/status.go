package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.client().Status()
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, s)
			}

			targets := "none"
			if len(s.Targets) > 0 {
				targets = strings.Join(s.Targets, ", ")
			}
			notify := "off"
			if s.Notifications {
				notify = "on"
			}
			fmt.Fprintf(c.out, "Server:        %s (%s)\n", c.serverURL, s.Status)
			fmt.Fprintf(c.out, "Version:       %s\n", s.Version)
			fmt.Fprintf(c.out, "Targets:       %s\n", targets)
			fmt.Fprintf(c.out, "Lists:         %d\n", s.Lists)
			fmt.Fprintf(c.out, "Notifications: %s\n", notify)
			return nil
		},
	}
}

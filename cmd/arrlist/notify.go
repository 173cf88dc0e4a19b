package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotifyTestCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "notify-test",
		Short: "Send a test notification through the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.client().NotifyTest(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Test notification sent")
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show all watch lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := c.client().Lists()
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, all)
			}
			if len(all) == 0 {
				fmt.Fprintln(c.out, "No lists. Create one with 'arrlist list create <name>'.")
				return nil
			}
			rows := make([][]string, len(all))
			for i, l := range all {
				rows[i] = []string{l.Name, strconv.Itoa(l.Items)}
			}
			fmt.Fprintln(c.out, renderTable(c.out, []string{"Name", "Items"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newListCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage a single watch list",
	}
	cmd.AddCommand(
		newListCreateCmd(c),
		newListShowCmd(c),
		newListDeleteCmd(c),
		newListAddCmd(c),
		newListRemoveCmd(c),
	)
	return cmd
}

func newListCreateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.client().CreateList(args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, l)
			}
			fmt.Fprintf(c.out, "Created list %q\n", l.Name)
			return nil
		},
	}
}

func newListShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the items of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.client().List(args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, l)
			}
			if len(l.Items) == 0 {
				fmt.Fprintf(c.out, "List %q is empty.\n", l.Name)
				return nil
			}
			rows := make([][]string, len(l.Items))
			for i, it := range l.Items {
				rows[i] = []string{strconv.Itoa(it.Index), it.Source, it.ID, it.AddedAt.Local().Format("2006-01-02 15:04")}
			}
			fmt.Fprintln(c.out, renderTable(c.out, []string{"#", "Source", "ID", "Added"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}
}

func newListDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a list and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client().DeleteList(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Deleted list %q\n", args[0])
			return nil
		},
	}
}

func newListAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <imdb|tmdb> <id>",
		Short: "Append an item to a list",
		Example: `  arrlist list add favourites imdb tt0133093
  arrlist list add favourites tmdb 603`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := c.client().AddItem(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, it)
			}
			fmt.Fprintf(c.out, "Added %s:%s to %q at #%d\n", it.Source, it.ID, args[0], it.Index)
			return nil
		},
	}
}

func newListRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name> <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the item at an index",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			it, err := c.client().RemoveItem(args[0], index)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(c.out, it)
			}
			fmt.Fprintf(c.out, "Removed %s:%s from %q\n", it.Source, it.ID, args[0])
			return nil
		},
	}
}

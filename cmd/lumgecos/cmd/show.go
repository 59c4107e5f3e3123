package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hnrobert/lumgecos/gecos"
)

func newShowCmd(o *options) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "show USER",
		Short: "Show the GECOS field of one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			m, err := o.manager()
			if err != nil {
				return err
			}
			r, err := m.Gecos(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printRecord(c.OutOrStdout(), r, asJSON)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return c
}

func newListCmd(o *options) *cobra.Command {
	var all bool
	c := &cobra.Command{
		Use:   "list",
		Short: "List the GECOS fields of all users",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := o.manager()
			if err != nil {
				return err
			}
			users, err := m.Users()
			if err != nil {
				return err
			}
			data := pterm.TableData{{"USER", "UID", "FULL NAME", "ROOM", "WORK PHONE", "HOME PHONE", "OTHER"}}
			for _, u := range users {
				if !all && u.UID < o.cfg.MinUID {
					continue
				}
				row := []string{u.Name, fmt.Sprint(u.UID)}
				for p := gecos.Position(0); p < gecos.NumPositions; p++ {
					f, _ := u.Gecos.Get(p)
					row = append(row, f.String())
				}
				other := make([]string, 0, len(u.Gecos.Other))
				for _, f := range u.Gecos.Other {
					other = append(other, f.String())
				}
				row = append(row, fmt.Sprint(other))
				data = append(data, row)
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(c.OutOrStdout()).WithData(data).Render()
		},
	}
	c.Flags().BoolVarP(&all, "all", "a", false, "include system accounts below min_uid")
	return c
}

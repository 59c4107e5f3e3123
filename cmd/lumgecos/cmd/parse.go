package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hnrobert/lumgecos/gecos"
)

func newParseCmd() *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "parse RAW",
		Short: "Split a raw GECOS string into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			r, err := gecos.Parse(args[0])
			if err != nil {
				return err
			}
			return printRecord(c.OutOrStdout(), r, asJSON)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return c
}

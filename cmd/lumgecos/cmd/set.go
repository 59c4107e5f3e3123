package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hnrobert/lumgecos/gecos"
	"github.com/hnrobert/lumgecos/internal/auth"
)

func newSetCmd(o *options) *cobra.Command {
	var (
		values        [gecos.NumPositions]string
		other         []string
		clearOther    bool
		passwordStdin bool
	)
	c := &cobra.Command{
		Use:   "set USER",
		Short: "Change the GECOS field of a user, like chfn",
		Long: `Change the GECOS field of a user, like chfn.

Only the fields given on the command line change. An empty value clears a
field. --other replaces the whole list of extra entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			username := args[0]
			if c.Flags().Changed("other") && clearOther {
				return errors.New("--other and --clear-other are mutually exclusive")
			}
			m, err := o.manager()
			if err != nil {
				return err
			}
			if passwordStdin {
				pw, err := bufio.NewReader(c.InOrStdin()).ReadString('\n')
				if err != nil && pw == "" {
					return fmt.Errorf("read password: %w", err)
				}
				pw = strings.TrimRight(pw, "\r\n")
				if err := auth.VerifyPassword(c.Context(), m.ShadowPath, username, pw); err != nil {
					return errors.New(auth.HumanAuthError(err))
				}
			}
			err = m.UpdateGecos(username, func(r *gecos.Record) error {
				for p := gecos.Position(0); p < gecos.NumPositions; p++ {
					if !c.Flags().Changed(p.String()) {
						continue
					}
					if err := r.Set(p, values[p]); err != nil {
						return err
					}
				}
				switch {
				case clearOther:
					return r.SetOther()
				case c.Flags().Changed("other"):
					return r.SetOther(other...)
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("%s: %w", username, err)
			}
			r, err := m.Gecos(username)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), r.String())
			return err
		},
	}
	for p := gecos.Position(0); p < gecos.NumPositions; p++ {
		c.Flags().StringVar(&values[p], p.String(), "", "new "+strings.ReplaceAll(p.String(), "-", " "))
	}
	c.Flags().StringArrayVar(&other, "other", nil, "extra entry, repeat for several")
	c.Flags().BoolVar(&clearOther, "clear-other", false, "remove all extra entries")
	c.Flags().BoolVar(&passwordStdin, "password-stdin", false, "verify the user's password read from stdin first")
	c.Flags().SortFlags = false
	return c
}

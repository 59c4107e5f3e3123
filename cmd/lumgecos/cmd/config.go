package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hnrobert/lumgecos/internal/config"
	"github.com/hnrobert/lumgecos/internal/logger"
)

func newConfigCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show or change the lumgecos config file",
	}
	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.NewStore(o.configPath).Get()
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(b)
			return err
		},
	})
	c.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Long:  "Change one setting. Keys: " + strings.Join(config.Keys, ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			store := config.NewStore(o.configPath)
			cfg, err := store.Get()
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(cfg); err != nil {
				return fmt.Errorf("save %s: %w", o.configPath, err)
			}
			logger.Info("config %s set to %q in %s", args[0], args[1], o.configPath)
			return nil
		},
	})
	return c
}

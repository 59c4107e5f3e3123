package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hnrobert/lumgecos/internal/config"
	"github.com/hnrobert/lumgecos/internal/hostfs"
	"github.com/hnrobert/lumgecos/internal/logger"
	"github.com/hnrobert/lumgecos/internal/usermgr"
)

// options holds what the persistent flags and the config file resolve to.
type options struct {
	configPath string
	root       string
	logDir     string
	verbose    bool
	noColor    bool

	cfg config.Config
}

func (o *options) manager() (*usermgr.Manager, error) {
	m, err := usermgr.NewDefault()
	if err != nil {
		return nil, err
	}
	m.StrictChfn = o.cfg.StrictChfn
	return m, nil
}

func (o *options) load(c *cobra.Command) error {
	cfg, err := config.NewStore(o.configPath).Get()
	if err != nil {
		return fmt.Errorf("load config %s: %w", o.configPath, err)
	}
	cfg = cfg.WithEnv()
	if c.Flags().Changed("root") {
		cfg.HostRoot = o.root
	}
	if c.Flags().Changed("log-dir") {
		cfg.LogDir = o.logDir
	}
	o.cfg = cfg

	if o.verbose {
		logger.SetLevel(logger.LevelDebug)
	}
	logger.SetColor(!o.noColor && term.IsTerminal(int(os.Stderr.Fd())))
	if o.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}
	if err := logger.Init(cfg.LogDir); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if err := hostfs.SetRoot(cfg.HostRoot); err != nil {
		return fmt.Errorf("host root %q: %w", cfg.HostRoot, err)
	}
	logger.Debug("host root %s, strict chfn %v", cfg.HostRoot, cfg.StrictChfn)
	return nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "lumgecos",
		Short:         "Inspect and edit the GECOS field of passwd entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return o.load(c)
		},
	}
	root.PersistentFlags().StringVar(&o.configPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().StringVar(&o.root, "root", hostfs.DefaultRoot, "host root containing etc/passwd")
	root.PersistentFlags().StringVar(&o.logDir, "log-dir", "", "write daily log files under this directory")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "disable coloured output")
	root.PersistentFlags().SortFlags = false

	root.AddCommand(newParseCmd(), newShowCmd(o), newListCmd(o), newSetCmd(o), newConfigCmd(o))
	return root
}

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

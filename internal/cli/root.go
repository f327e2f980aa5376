// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the dock command, which edits a persisted
// dock layout file from the command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"cogentcore.org/dock/base/logx"
	"cogentcore.org/dock/dock"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// CLI holds the state shared by the dock commands.
type CLI struct {
	Config *Config

	out        io.Writer
	errOut     io.Writer
	configFile string
	layoutFile string
	verbose    int
	quiet      bool
	noColor    bool
}

// New returns a new CLI writing output to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// Execute runs the dock command with the given arguments.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	root := New(out, errOut).RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCommand returns the root command with all subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dock",
		Short: "Edit dockable pane layouts",
		Long: `dock edits a dock layout file: a tree of splits and tab stacks
holding panes. The file is JSON, TOML, or YAML depending on its extension.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default "+DefaultConfigFile+")")
	pf.StringVarP(&c.layoutFile, "file", "f", "", "layout file (default from config)")
	pf.CountVarP(&c.verbose, "verbose", "v", "verbose logging; -vv for debug logging")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "only log errors")
	pf.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		c.newCommand(),
		c.showCommand(),
		c.insertCommand(),
		c.removeCommand(),
		c.moveCommand(),
		c.activateCommand(),
		c.resizeCommand(),
		c.validateCommand(),
		c.watchCommand(),
	)
	return root
}

// setup sets the log level and loads the config.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(c.verbose > 1, c.verbose == 1, c.quiet)
	slog.SetDefault(slog.New(logx.NewHandler(c.errOut, c.colorOption())))

	cfg, err := LoadConfig(c.configFile)
	if err != nil {
		return err
	}
	if c.layoutFile != "" {
		cfg.LayoutFile = c.layoutFile
	}
	if c.noColor {
		cfg.Color = false
	}
	c.Config = cfg
	slog.Debug("config loaded", "layout", cfg.LayoutFile, "format", cfg.Format)
	return nil
}

// colorOption returns the termenv option for the color setting.
func (c *CLI) colorOption() termenv.OutputOption {
	if c.noColor || (c.Config != nil && !c.Config.Color) {
		return termenv.WithProfile(termenv.Ascii)
	}
	return termenv.WithColorCache(true)
}

// open opens the layout file.
func (c *CLI) open() (*dock.Controller, error) {
	l, err := dock.Open(c.Config.LayoutFile)
	if err != nil {
		return nil, err
	}
	return dock.NewController(l), nil
}

// update applies the given function to the controller of the
// layout file and saves the result if the layout changed.
func (c *CLI) update(fun func(ctl *dock.Controller) error) error {
	ctl, err := c.open()
	if err != nil {
		return err
	}
	if err := fun(ctl); err != nil {
		return err
	}
	if ctl.Version() == 0 {
		slog.Info("layout unchanged", "file", c.Config.LayoutFile)
		return nil
	}
	slog.Info("saving layout", "file", c.Config.LayoutFile, "changes", ctl.Version())
	return dock.Save(ctl.Layout(), c.Config.LayoutFile)
}

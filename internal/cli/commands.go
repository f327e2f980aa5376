// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"cogentcore.org/dock/base/errors"
	"cogentcore.org/dock/base/iox"
	"cogentcore.org/dock/dock"
	"github.com/spf13/cobra"
)

func (c *CLI) newCommand() *cobra.Command {
	var (
		title, component string
		closable, force  bool
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a layout file with a single pane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := c.Config.LayoutFile
			if exists(fn) && !force {
				return errors.Errorf("%s already exists; use --force to overwrite", fn)
			}
			ctl := dock.NewController(nil)
			_, id := ctl.InsertPane("", dock.Center, title, closable, component)
			fmt.Fprintln(c.out, id)
			return dock.Save(ctl.Layout(), fn)
		},
	}
	cmd.Flags().StringVar(&title, "title", "Main", "title of the pane")
	cmd.Flags().StringVar(&component, "component", "main", "component id of the pane")
	cmd.Flags().BoolVar(&closable, "closable", false, "whether the pane can be closed")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) showCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the layout",
		Long:  "Print the layout as a tree, or encoded as json, toml, or yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := dock.Open(c.Config.LayoutFile)
			if err != nil {
				return err
			}
			if format == "" {
				format = c.Config.Format
			}
			return c.print(l, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: tree, json, toml, or yaml (default from config)")
	return cmd
}

func (c *CLI) print(l dock.Layout, format string) error {
	if format == "tree" {
		PrintTree(c.out, l, c.colorOption())
		return nil
	}
	f, err := iox.ParseFormat(format)
	if err != nil {
		return err
	}
	b, err := dock.Encode(l, f)
	if err != nil {
		return err
	}
	_, err = c.out.Write(b)
	return err
}

func (c *CLI) insertCommand() *cobra.Command {
	var closable bool
	cmd := &cobra.Command{
		Use:   "insert <anchor> <location> <title> <component>",
		Short: "Insert a new pane relative to an anchor pane",
		Long: `Insert a new pane relative to the anchor pane. The location is one of
insert, center, left, right, top, or bottom. An empty anchor inserts
into the root stack. The id of the new pane is printed.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := dock.ParseLocation(args[1])
			if err != nil {
				return err
			}
			return c.update(func(ctl *dock.Controller) error {
				_, id := ctl.InsertPane(args[0], loc, args[2], closable, args[3])
				if id == "" {
					return errors.Errorf("%w: %q", dock.ErrAnchorNotFound, args[0])
				}
				fmt.Fprintln(c.out, id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&closable, "closable", true, "whether the pane can be closed")
	return cmd
}

func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pane>",
		Short: "Remove a pane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.update(func(ctl *dock.Controller) error {
				if dock.PanePath(ctl.Layout(), args[0]) == nil {
					return errors.Errorf("%w: %q", dock.ErrPaneNotFound, args[0])
				}
				ctl.RemovePane(args[0])
				return nil
			})
		},
	}
}

func (c *CLI) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <pane> <anchor> <location>",
		Short: "Move a pane relative to an anchor pane",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := dock.ParseLocation(args[2])
			if err != nil {
				return err
			}
			return c.update(func(ctl *dock.Controller) error {
				_, err := ctl.MovePane(args[0], args[1], loc)
				return err
			})
		},
	}
}

func (c *CLI) activateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <pane>",
		Short: "Make a pane the active pane of its stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.update(func(ctl *dock.Controller) error {
				if dock.PanePath(ctl.Layout(), args[0]) == nil {
					return errors.Errorf("%w: %q", dock.ErrPaneNotFound, args[0])
				}
				ctl.ActivatePane(args[0])
				return nil
			})
		},
	}
}

func (c *CLI) resizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <split> <index> <first> <second>",
		Short: "Set the sizes of two adjacent sections of a split",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			first, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			second, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return err
			}
			return c.update(func(ctl *dock.Controller) error {
				if dock.FindSplit(ctl.Layout(), args[0]) == nil {
					return errors.Errorf("dock: split not found: %q", args[0])
				}
				ctl.Resize(args[0], index, first, second)
				return nil
			})
		},
	}
}

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the structure of the layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := dock.Open(c.Config.LayoutFile); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "ok")
			return nil
		},
	}
}

func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the layout every time the file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := c.open()
			if err != nil {
				return err
			}
			ctl.OnChange(func(l dock.Layout) {
				fmt.Fprintf(c.out, "--- version %d\n", ctl.Version())
				errors.Log(c.print(l, c.Config.Format))
			})
			errors.Log(c.print(ctl.Layout(), c.Config.Format))

			// the controller is only used on this goroutine
			layouts := make(chan dock.Layout)
			ctx := cmd.Context()
			w, err := dock.Watch(ctx, c.Config.LayoutFile, func(l dock.Layout) {
				select {
				case layouts <- l:
				case <-ctx.Done():
				}
			})
			if err != nil {
				return err
			}
			defer w.Close()
			for {
				select {
				case <-ctx.Done():
					return nil
				case l := <-layouts:
					ctl.SetLayout(l)
				}
			}
		},
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/dock/dock"
	"github.com/muesli/termenv"
)

// PrintTree prints the layout as an indented tree, with the active
// pane of every stack marked and highlighted.
func PrintTree(w io.Writer, l dock.Layout, opts ...termenv.OutputOption) {
	out := termenv.NewOutput(w, opts...)
	dock.Walk(l, func(n dock.Layout, depth int) bool {
		indent := strings.Repeat("  ", depth)
		switch n := n.(type) {
		case *dock.Split:
			fmt.Fprintf(out, "%s%s %s %s\n", indent, out.String("split").Foreground(termenv.ANSIBlue).Bold(), n.Direction, faint(out, n.ID, n.Size))
		case *dock.Stack:
			fmt.Fprintf(out, "%s%s %s\n", indent, out.String("stack").Foreground(termenv.ANSIGreen).Bold(), faint(out, n.ID, n.Size))
			for _, p := range n.Panes {
				mark := " "
				title := out.String(p.Title)
				if p.ID == n.ActivePaneID {
					mark = "*"
					title = title.Bold().Underline()
				}
				fmt.Fprintf(out, "%s  %s %s %s %s\n", indent, mark, title, p.ComponentID, out.String("["+p.ID+"]").Faint())
			}
		}
		return true
	})
}

func faint(out *termenv.Output, id string, size float64) termenv.Style {
	return out.String(fmt.Sprintf("[%s] %.3g", id, size)).Faint()
}

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"hullview/internal/geom"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var canonical bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the points of a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := geom.Load(args[0])
			if err != nil {
				return err
			}
			newLogger(cmd.ErrOrStderr(), root.debug).Debug("parsed", "path", args[0], "points", s.Len())
			out := cmd.OutOrStdout()
			if canonical {
				text, err := geom.FormatCoordList(s.Xs, s.Ys)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, text)
				return err
			}
			t := table.New().Headers("#", "x", "y")
			for i := range s.Xs {
				t.Row(strconv.Itoa(i),
					strconv.FormatFloat(s.Xs[i], 'g', -1, 64),
					strconv.FormatFloat(s.Ys[i], 'g', -1, 64))
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
	cmd.Flags().BoolVar(&canonical, "canonical", false, "print as a bracketed coordinate list instead of a table")
	return cmd
}

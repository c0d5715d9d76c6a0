package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/specseq/instrument"
)

func newTelescopesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "telescopes",
		Short:       "Print the instrument table",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			all := instrument.All()
			rows := make([][]string, 0, len(all))
			for _, tel := range all {
				meta := instrument.Info(tel)
				width, err := instrument.SmoothingWidth(tel)
				if err != nil {
					return err
				}
				date := meta.Marker
				if meta.HasPlaceholder() {
					date = "fixed " + meta.Placeholder.Format("2006-01-02")
				}
				rows = append(rows, []string{
					meta.Name,
					strconv.FormatFloat(meta.Resolution, 'g', -1, 64),
					strconv.FormatFloat(width, 'g', -1, 64),
					date,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Telescope", "Resolution (Å)", "Smoothing (Å)", "Date source"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}

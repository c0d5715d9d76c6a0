package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/specseq/epoch"
	"github.com/cwbudde/specseq/pipeline"
	"github.com/cwbudde/specseq/spectrum"
	"github.com/cwbudde/specseq/stats/continuum"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show discovered spectra in epoch order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			pc, err := cfg.Pipeline()
			if err != nil {
				return err
			}

			files, err := epoch.Discover(pc.DataDir, pc.Pattern)
			if err != nil {
				return err
			}
			obs, err := epoch.Collect(files, epoch.Options{T0: pc.T0, Policy: pc.Policy, Logger: ctx.logger})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(obs) == 0 {
				fmt.Fprintf(out, "No spectra matching %q in %s\n", pc.Pattern, pc.DataDir)
				return nil
			}

			rows := make([][]string, 0, len(obs))
			for i, o := range obs {
				offset := ""
				selected := i >= pc.Start && i < pc.End
				if selected && i-pc.Start < len(pc.Offsets) {
					offset = strconv.FormatFloat(pc.Offsets[i-pc.Start], 'g', -1, 64)
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					filepath.Base(o.Path),
					o.Telescope.String(),
					o.ObservedAt.Format("2006-01-02 15:04:05"),
					strconv.FormatFloat(o.MJD, 'f', 5, 64),
					fmt.Sprintf("%+.2f", o.Epoch),
					continuumSNR(o.Path, pc),
					offset,
					yesNo(selected),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "File", "Telescope", "Observed (UTC)", "MJD", "Epoch (d)", "SNR", "Offset", "Selected"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}

// continuumSNR reports mean over scatter in the rest-frame continuum
// window, or "-" when the file cannot be measured.
func continuumSNR(path string, pc pipeline.Config) string {
	f, err := spectrum.ReadFile(path)
	if err != nil {
		return "-"
	}
	wl := spectrum.RestFrame(f.Spectrum.Wavelength, pc.Redshift)
	snr, err := continuum.SNR(wl, f.Spectrum.Flux, pc.Continuum.Lo, pc.Continuum.Hi)
	if err != nil {
		return "-"
	}
	return strconv.FormatFloat(snr, 'f', 1, 64)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

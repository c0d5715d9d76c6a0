package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/specseq/figure"
	"github.com/cwbudde/specseq/internal/config"
	"github.com/cwbudde/specseq/pipeline"
)

type renderFlags struct {
	output string
	start  int
	end    int
	method string
	kernel string
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the spectral sequence figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			local := *cfg
			if err := flags.apply(cmd, &local); err != nil {
				return err
			}

			pc, err := local.Pipeline()
			if err != nil {
				return err
			}
			proc, err := pipeline.NewProcessor(pc, ctx.logger)
			if err != nil {
				return err
			}
			fig, err := proc.Build()
			if err != nil {
				return err
			}

			st := local.Style()
			p, err := figure.Render(fig, st)
			if err != nil {
				return err
			}
			if err := figure.Save(p, local.Paths.Output, st); err != nil {
				return err
			}

			ctx.logger.Info("figure written", "path", local.Paths.Output, "spectra", len(fig.Curves), "references", len(fig.References))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d spectra, %d references)\n", local.Paths.Output, len(fig.Curves), len(fig.References))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output image path; the extension selects the format")
	cmd.Flags().IntVar(&flags.start, "start", 0, "First sorted spectrum to include")
	cmd.Flags().IntVar(&flags.end, "end", 0, "One past the last sorted spectrum to include")
	cmd.Flags().StringVar(&flags.method, "method", "", "Smoothing evaluation: auto, direct or fft")
	cmd.Flags().StringVar(&flags.kernel, "kernel", "", "Smoothing kernel: gaussian or boxcar")
	return cmd
}

func (f renderFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("output") {
		out, err := config.ExpandPath(strings.TrimSpace(f.output))
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		cfg.Paths.Output = out
	}
	if changed("start") {
		cfg.Source.Start = f.start
	}
	if changed("end") {
		cfg.Source.End = f.end
	}
	if changed("method") {
		cfg.Render.Method = strings.ToLower(strings.TrimSpace(f.method))
	}
	if changed("kernel") {
		cfg.Render.Kernel = strings.ToLower(strings.TrimSpace(f.kernel))
	}
	return cfg.Validate()
}

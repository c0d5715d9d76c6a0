package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/specseq/archive"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "fetch [source]",
		Short: "Download spectra for a source from the archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Archive.BaseURL == "" {
				return errors.New("archive.base_url is not configured")
			}

			source := cfg.Source.Name
			if len(args) == 1 {
				source = strings.TrimSpace(args[0])
			}
			if source == "" {
				return errors.New("no source given; pass one or set source.name")
			}

			target := cfg.Paths.DownloadDir
			if cmd.Flags().Changed("dir") {
				target = dir
			}

			creds, err := archive.CredentialsFromEnv(cfg.Archive.EnvFile)
			if err != nil {
				return err
			}
			client, err := archive.NewHTTPClient(cfg.Archive.BaseURL,
				archive.WithCredentials(creds),
				archive.WithTimeout(time.Duration(cfg.Archive.TimeoutSeconds)*time.Second),
			)
			if err != nil {
				return err
			}

			paths, err := archive.FetchAll(cmd.Context(), client, source, target, ctx.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %d spectra for %s into %s\n", len(paths), source, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Destination directory (defaults to paths.download_dir)")
	return cmd
}

package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cwbudde/specseq/internal/config"
	"github.com/cwbudde/specseq/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	once   sync.Once
	config *config.Config
	logger *slog.Logger
	err    error
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool

	ctx := &commandContext{configFlag: &configFlag, verbose: &verbose}

	rootCmd := &cobra.Command{
		Use:           "specseq",
		Short:         "Render the spectral sequence of a transient",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newFetchCommand(ctx))
	rootCmd.AddCommand(newTelescopesCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.once.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(*c.configFlag))
		if err != nil {
			c.err = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, *c.verbose)
		if err != nil {
			c.err = err
			return
		}
		logger.Debug("configuration loaded", "path", path, "exists", exists)
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

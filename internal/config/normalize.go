package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSource()
	c.Reference.Pattern = strings.TrimSpace(c.Reference.Pattern)
	c.normalizeRender()
	c.normalizeLogging()
	c.normalizeArchive()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReferenceDir) == "" {
		c.Paths.ReferenceDir = c.Paths.DataDir
	}
	if c.Paths.ReferenceDir, err = expandPath(c.Paths.ReferenceDir); err != nil {
		return fmt.Errorf("paths.reference_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DownloadDir) == "" {
		c.Paths.DownloadDir = c.Paths.DataDir
	}
	if c.Paths.DownloadDir, err = expandPath(c.Paths.DownloadDir); err != nil {
		return fmt.Errorf("paths.download_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = defaultOutput
	}
	if c.Paths.Output, err = expandPath(c.Paths.Output); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	c.Paths.Pattern = strings.TrimSpace(c.Paths.Pattern)
	if c.Paths.Pattern == "" {
		c.Paths.Pattern = defaultPattern
	}
	return nil
}

func (c *Config) normalizeSource() {
	c.Source.Name = strings.TrimSpace(c.Source.Name)
	c.Source.Policy = strings.ToLower(strings.TrimSpace(c.Source.Policy))
	if c.Source.Policy == "" {
		c.Source.Policy = defaultPolicy
	}
}

func (c *Config) normalizeRender() {
	c.Render.Kernel = strings.ToLower(strings.TrimSpace(c.Render.Kernel))
	if c.Render.Kernel == "" {
		c.Render.Kernel = defaultKernel
	}
	c.Render.Method = strings.ToLower(strings.TrimSpace(c.Render.Method))
	if c.Render.Method == "" {
		c.Render.Method = defaultMethod
	}
	if strings.TrimSpace(c.Render.FontVariant) == "" {
		c.Render.FontVariant = defaultFontVariant
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "auto":
		c.Logging.Format = "auto"
	case "console", "text":
		c.Logging.Format = "console"
	default:
		c.Logging.Format = format
	}
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	if level == "warning" {
		level = "warn"
	}
	c.Logging.Level = level
}

func (c *Config) normalizeArchive() {
	c.Archive.BaseURL = strings.TrimRight(strings.TrimSpace(c.Archive.BaseURL), "/")
	if c.Archive.TimeoutSeconds <= 0 {
		c.Archive.TimeoutSeconds = defaultArchiveTimeout
	}
	c.Archive.EnvFile = strings.TrimSpace(c.Archive.EnvFile)
}

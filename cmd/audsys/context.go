// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audsys"
	"github.com/ik5/audsys/internal/config"
	"github.com/ik5/audsys/internal/logging"
	"github.com/ik5/audsys/spi"
)

type commandContext struct {
	configFlag string
	logLevel   string
	logFormat  string

	config *config.Config
	logger *slog.Logger
	system *audsys.System
}

// setup loads the configuration, applies the logging flags and builds the
// facade the subcommands use.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, path, exists, err := config.Load(strings.TrimSpace(c.configFlag))
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}

	c.config = cfg
	c.logger = logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	c.logger.Debug("configuration loaded", "path", path, "exists", exists)

	domains := make([]spi.Domain, 0, len(cfg.Providers.ExcludeDomains))
	for _, d := range cfg.Providers.ExcludeDomains {
		domains = append(domains, spi.Domain(d))
	}
	c.system = audsys.New(
		audsys.WithLogger(c.logger),
		audsys.WithExcludedDomains(domains...),
	)
	return nil
}

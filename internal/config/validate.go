// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/audsys/spi"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}
	if err := c.validateWrite(); err != nil {
		return err
	}
	if err := c.validateConvert(); err != nil {
		return err
	}
	return c.validateProviders()
}

func (c *Config) validateLog() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

func (c *Config) validateWrite() error {
	q := float64(c.Write.Quality)
	if math.IsNaN(q) || q < 0 || q > 1 {
		return errors.New("write.quality must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateConvert() error {
	if c.Convert.SampleRate < 0 {
		return errors.New("convert.sample_rate must be positive, or 0 to keep the input rate")
	}
	return nil
}

func (c *Config) validateProviders() error {
	for _, d := range c.Providers.ExcludeDomains {
		switch spi.Domain(d) {
		case spi.DomainCodec, spi.DomainFacade:
		default:
			return fmt.Errorf("providers.exclude_domains: unknown domain %q", d)
		}
	}
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package config

import "strings"

func (c *Config) normalize() {
	c.normalizeLog()
	c.normalizeWrite()
	c.normalizeProviders()
}

func (c *Config) normalizeLog() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Level == "warning" {
		c.Log.Level = "warn"
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
}

func (c *Config) normalizeWrite() {
	c.Write.Type = strings.TrimSpace(c.Write.Type)
	if c.Write.Type == "" {
		c.Write.Type = defaultWriteType
	}
}

func (c *Config) normalizeProviders() {
	domains := c.Providers.ExcludeDomains[:0]
	for _, d := range c.Providers.ExcludeDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains = append(domains, d)
		}
	}
	c.Providers.ExcludeDomains = domains
}

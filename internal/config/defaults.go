// SPDX-License-Identifier: EPL-2.0

package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultWriteType = "WAVE"
	defaultQuality   = 1.0

	defaultConfigPath = "~/.config/audsys/config.toml"
	projectConfigFile = "audsys.toml"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Write: Write{
			Type:    defaultWriteType,
			Quality: defaultQuality,
		},
		Providers: Providers{
			ExcludeDomains: []string{},
		},
	}
}

// Package config loads solanavanity's runtime configuration from flags,
// environment variables, and an optional YAML file, following the
// viper-backed convention used elsewhere in the pack.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the tunables for a search run. Field names mirror the CLI
// flag names via mapstructure tags.
type Config struct {
	BeginsWith    string `mapstructure:"begins_with"`
	EndsWith      string `mapstructure:"ends_with"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
	FindKeys      int64  `mapstructure:"find_keys"`
	Workers       int    `mapstructure:"workers"`
	CheckEvery    int    `mapstructure:"check_every"`
	SigVerify     bool   `mapstructure:"sig_verify"`
	KeyPath       string `mapstructure:"key_path"`
	LogLevel      string `mapstructure:"log_level"`
	ConfigFile    string `mapstructure:"config_file"`
}

// Default returns the base configuration before flags, env, or a config
// file are layered on top.
func Default() Config {
	return Config{
		CaseSensitive: true,
		FindKeys:      1,
		Workers:       0, // 0 means "use runtime.NumCPU()"
		CheckEvery:    262_144,
		KeyPath:       "./keys",
		LogLevel:      "info",
	}
}

// Load builds a Config by layering, in increasing priority: defaults, an
// optional YAML file, environment variables prefixed SOLANAVANITY_, then
// command-line flags.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("begins_with", def.BeginsWith)
	v.SetDefault("ends_with", def.EndsWith)
	v.SetDefault("case_sensitive", def.CaseSensitive)
	v.SetDefault("find_keys", def.FindKeys)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("check_every", def.CheckEvery)
	v.SetDefault("sig_verify", def.SigVerify)
	v.SetDefault("key_path", def.KeyPath)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("SOLANAVANITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		// Bind each flag to its own mapstructure key explicitly: flag names
		// use hyphens (CLI convention) while Config's keys use underscores
		// (viper/env convention), so a blanket BindPFlags would silently
		// miss every hyphenated one of them.
		bindings := map[string]string{
			"begins-with":    "begins_with",
			"ends-with":      "ends_with",
			"case-sensitive": "case_sensitive",
			"find-keys":      "find_keys",
			"workers":        "workers",
			"check-every":    "check_every",
			"sig-verify":     "sig_verify",
			"key-path":       "key_path",
			"log-level":      "log_level",
		}
		for flagName, key := range bindings {
			if flag := flags.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, err
				}
			}
		}
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, err
			}
			v.Set("config_file", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

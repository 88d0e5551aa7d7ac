package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for ppvcat settings.
const envPrefix = "PPVCAT"

// Flag names double as viper keys.
const (
	flagConfig     = "config"
	flagStructures = "structures"
	flagMetadata   = "metadata"
	flagFields     = "fields"
	flagRequire    = "require"
	flagWorkers    = "workers"
	flagFormat     = "format"
	flagLogLevel   = "log-level"
)

// Defaults.
const (
	defaultFormat   = formatTable
	defaultLogLevel = "warning"
	defaultWorkers  = 1
)

// ErrMissingInput is returned when a required input path is not configured.
var ErrMissingInput = errors.New("ppvcat: missing input file")

// buildConfig is the resolved configuration of the build command.
type buildConfig struct {
	Structures string
	Metadata   string
	Fields     []string
	Require    []string
	Workers    int
	Format     string
	LogLevel   string
}

// loadBuildConfig merges flags, PPVCAT_* environment variables and an
// optional config file, in that order of precedence.
func loadBuildConfig(flags *pflag.FlagSet) (*buildConfig, error) {
	v := viper.New()
	v.SetDefault(flagFormat, defaultFormat)
	v.SetDefault(flagLogLevel, defaultLogLevel)
	v.SetDefault(flagWorkers, defaultWorkers)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &buildConfig{
		Structures: v.GetString(flagStructures),
		Metadata:   v.GetString(flagMetadata),
		Fields:     splitList(v.GetStringSlice(flagFields)),
		Require:    splitList(v.GetStringSlice(flagRequire)),
		Workers:    v.GetInt(flagWorkers),
		Format:     v.GetString(flagFormat),
		LogLevel:   v.GetString(flagLogLevel),
	}
	if cfg.Structures == "" {
		return nil, fmt.Errorf("--%s: %w", flagStructures, ErrMissingInput)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// splitList flattens comma separated entries; environment variables arrive
// as a single "a,b" element.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

package config

// Package config provides a reusable loader for kudu configuration files
// and environment variables. It is versioned so that applications can depend
// on a stable API contract.
//
// Version: v0.1.0

import (
	"fmt"

	"github.com/spf13/viper"

	"kudu/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config is the ambient configuration surrounding the codec: the core
// ABI/scalar packages never read it directly, only cmd/kuduabi does.
type Config struct {
	Codec struct {
		DefaultABIPath     string `mapstructure:"default_abi_path" json:"default_abi_path"`
		MaxArrayPrealloc   int    `mapstructure:"max_array_prealloc" json:"max_array_prealloc"`
		MaxRecursionDepth  int    `mapstructure:"max_recursion_depth" json:"max_recursion_depth"`
		StrictSymbolDecode bool   `mapstructure:"strict_symbol_decode" json:"strict_symbol_decode"`
	} `mapstructure:"codec" json:"codec"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// defaults seeds viper before any config file is read, so a repo with no
// config file at all still gets a fully populated Config (lenient symbol
// decode, info logging). The 1024 and 64 seeded for max_array_prealloc and
// max_recursion_depth equal core's fixed limits; core does not read them.
func defaults() {
	viper.SetDefault("codec.default_abi_path", "")
	viper.SetDefault("codec.max_array_prealloc", 1024)
	viper.SetDefault("codec.max_recursion_depth", 64)
	viper.SetDefault("codec.strict_symbol_decode", false)
	viper.SetDefault("logging.level", "info")
}

// Load reads configuration files and merges any environment specific
// overrides. The resulting configuration is stored in AppConfig and returned.
//
// The function uses the provided environment name to merge additional config
// files. If env is empty, only the default configuration is loaded. A
// missing config file is not an error: defaults() already seeded every
// field viper would otherwise fill in.
func Load(env string) (*Config, error) {
	defaults()

	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, utils.Wrap(err, "load config")
		}
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.SetEnvPrefix("KUDU")
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the KUDU_ENV environment variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("KUDU_ENV", ""))
}

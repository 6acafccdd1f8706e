// Package config reads articulex settings from defaults, an optional TOML
// file, ARTICULEX_* environment variables and command line flags, in rising
// order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/articulex/constants"
	"github.com/jsphweid/articulex/profile"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Profile  ProfileConfig  `mapstructure:"profile"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Server   ServerConfig   `mapstructure:"server"`
	Render   RenderConfig   `mapstructure:"render"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// ProfileConfig picks the articulation profile. A table takes precedence
// over a file, and with neither the built-in profile is used.
type ProfileConfig struct {
	Name  string `mapstructure:"name"`
	Path  string `mapstructure:"path"`
	Table string `mapstructure:"table"`
}

type DynamoDBConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Region   string `mapstructure:"region"`
}

type ServerConfig struct {
	Port    string   `mapstructure:"port"`
	Origins []string `mapstructure:"origins"`
}

type RenderConfig struct {
	Workers     int      `mapstructure:"workers"`
	MutedStaves []int    `mapstructure:"muted_staves"`
	MutedParts  []string `mapstructure:"muted_parts"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("profile.name", profile.DefaultName)
	v.SetDefault("profile.path", "")
	v.SetDefault("profile.table", "")

	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.region", "us-east-1")

	v.SetDefault("server.port", constants.DefaultPort)
	v.SetDefault("server.origins", []string{"http://localhost:3000"})

	v.SetDefault("render.workers", 0)
	v.SetDefault("render.muted_staves", []int{})
	v.SetDefault("render.muted_parts", []string{})

	v.SetDefault("watch.debounce", 300*time.Millisecond)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// ReadFile merges the TOML file at path into v. With an empty path the
// working directory is searched for articulex.toml, and a missing file there
// is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(constants.ConfigName)
		v.AddConfigPath(".")
	}
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// FlagKeys maps command line flags to the keys they set.
var FlagKeys = map[string]string{
	"log-level":         "log.level",
	"log-json":          "log.json",
	"profile":           "profile.path",
	"profile-name":      "profile.name",
	"profile-table":     "profile.table",
	"dynamodb-endpoint": "dynamodb.endpoint",
	"dynamodb-region":   "dynamodb.region",
	"port":              "server.port",
	"origins":           "server.origins",
	"workers":           "render.workers",
	"mute-staff":        "render.muted_staves",
	"mute-part":         "render.muted_parts",
	"debounce":          "watch.debounce",
}

// BindFlags lets explicitly set flags override every other source. Flags
// missing from flags are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag --%s", name)
		}
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if c.Render.Workers < 0 {
		return nil, errors.Newf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	return &c, nil
}

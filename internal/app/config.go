package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Kriegslustig/lamport/internal/crypto"
	"github.com/Kriegslustig/lamport/internal/log"
)

// Viper keys.
const (
	KeyHome         = "home"
	KeyHash         = "hash"
	KeyParallelism  = "parallelism"
	KeyConstantTime = "constant-time"
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"
)

// EnvPrefix prefixes environment overrides, e.g. LAMPORT_HASH.
const EnvPrefix = "LAMPORT"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string // config and key directory, e.g. $HOME/.lamport
	Hash         string // digest algorithm name, e.g. SHA-256
	Parallelism  int    // concurrent hash calls; 0 means GOMAXPROCS
	ConstantTime bool   // verify every word instead of stopping at the first mismatch
	LogLevel     string // debug, info, warn or error
	LogFormat    string // text or json
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Hash:      crypto.SHA256,
		LogLevel:  "info",
		LogFormat: log.FormatText,
	}
}

// NewViper returns a viper instance with defaults and environment
// overrides registered.
func NewViper() *viper.Viper {
	d := DefaultConfig()
	v := viper.New()
	v.SetDefault(KeyHash, d.Hash)
	v.SetDefault(KeyParallelism, d.Parallelism)
	v.SetDefault(KeyConstantTime, d.ConstantTime)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig resolves the home directory, reads <home>/config.yaml (or any
// other extension viper understands) if present, and returns the merged
// configuration.
func LoadConfig(v *viper.Viper) (Config, error) {
	home := v.GetString(KeyHome)
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".lamport")
	}

	v.AddConfigPath(home)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Home:         home,
		Hash:         v.GetString(KeyHash),
		Parallelism:  v.GetInt(KeyParallelism),
		ConstantTime: v.GetBool(KeyConstantTime),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if _, err := crypto.NewHash(c.Hash); err != nil {
		return fmt.Errorf("hash: %w (supported: %s)", err, strings.Join(crypto.Algorithms(), ", "))
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != log.FormatText && c.LogFormat != log.FormatJSON {
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDataFile  = "todos.json"
	DefaultTheme     = "classic"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	appName           = "todo"
	userConfigName    = "config.toml"
	projectConfigName = ".todo.toml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Config is the resolved CLI configuration.
type Config struct {
	DataFile  string `toml:"data_file"`
	Theme     string `toml:"theme"`
	Group     bool   `toml:"group"`
	Owner     string `toml:"owner"` // used for fresh lists only
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	WorkDir string   `toml:"-"`
	Files   []string `toml:"-"` // config files that were read, in order
}

func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Load resolves configuration and parses root flags from args into fs.
// Positional arguments are left in fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg := &Config{WorkDir: wd}
	setDefaults(cfg)

	if p := userConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}
	if p := projectConfigFile(wd); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}

	loadFromEnv(cfg)

	registerFlags(cfg, fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Positional returns the arguments left after the root flags without
// reading any config source. It is used when Load itself failed.
func Positional(args []string) []string {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := &Config{}
	setDefaults(cfg)
	registerFlags(cfg, fs)
	if err := fs.Parse(args); err != nil {
		return nil
	}
	return fs.Args()
}

// registerFlags binds root flags; their defaults are the values resolved so far.
func registerFlags(cfg *Config, fs *flag.FlagSet) {
	fs.StringVar(&cfg.DataFile, "file", cfg.DataFile, "path to the backup file")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "output theme: classic, neon or mono")
	fs.BoolVar(&cfg.Group, "group", cfg.Group, "group list output by pending/done")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// finalizeConfig validates values and makes DataFile absolute.
func finalizeConfig(cfg *Config) error {
	if !slices.Contains(Themes, cfg.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %v)", cfg.Theme, Themes)
	}
	if cfg.DataFile == "" {
		return errors.New("data file path is empty")
	}
	cfg.DataFile = expandPath(cfg.DataFile)
	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(cfg.WorkDir, cfg.DataFile)
	}
	return nil
}

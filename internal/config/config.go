// Package config layers defaults, an optional YAML file, FEXPLORER_*
// environment variables and command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood in the config file and environment.
const (
	KeyStartDir      = "start_dir"
	KeyFavoritesFile = "favorites_file"
	KeyLogFile       = "log_file"
	KeyLogLevel      = "log_level"
	KeyShowHidden    = "show_hidden"
	KeyFilters       = "filters"
)

const (
	appName    = "fexplorer"
	envPrefix  = "FEXPLORER"
	configName = ".fexplorer"
)

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"start-dir":   KeyStartDir,
	"favorites":   KeyFavoritesFile,
	"log-file":    KeyLogFile,
	"log-level":   KeyLogLevel,
	"show-hidden": KeyShowHidden,
}

// Config is the resolved runtime configuration.
type Config struct {
	StartDir      string
	FavoritesFile string
	LogFile       string
	LogLevel      string
	ShowHidden    bool
	// Filters maps preset names to ".ext;.ext" patterns.
	Filters map[string]string
	// Source is the config file that was read, if any.
	Source string
}

// Loader reads Config through a private viper instance.
type Loader struct {
	v        *viper.Viper
	fs       afero.Fs
	homeDir  func() (string, error)
	cacheDir func() (string, error)
	confDir  func() (string, error)
}

// Option customizes a Loader.
type Option func(*Loader)

// WithFs reads config files from fs instead of the host filesystem.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) { l.fs = fs }
}

// WithHomeDir overrides the home directory used for the default config file
// location and "~" expansion.
func WithHomeDir(fn func() (string, error)) Option {
	return func(l *Loader) { l.homeDir = fn }
}

// WithUserDirs overrides the per-user config and cache directories that hold
// the default favorites document and log file.
func WithUserDirs(configDir, cacheDir func() (string, error)) Option {
	return func(l *Loader) {
		l.confDir = configDir
		l.cacheDir = cacheDir
	}
}

// NewLoader prepares defaults and environment bindings.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		v:        viper.New(),
		homeDir:  os.UserHomeDir,
		confDir:  os.UserConfigDir,
		cacheDir: os.UserCacheDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fs != nil {
		l.v.SetFs(l.fs)
	}

	l.v.SetDefault(KeyStartDir, "")
	l.v.SetDefault(KeyFavoritesFile, l.userPath(l.confDir, "favorites.json"))
	l.v.SetDefault(KeyLogFile, l.userPath(l.cacheDir, appName+".log"))
	l.v.SetDefault(KeyLogLevel, "info")
	l.v.SetDefault(KeyShowHidden, true)
	l.v.SetDefault(KeyFilters, map[string]string{})

	l.v.SetEnvPrefix(envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()
	return l
}

// RegisterFlags declares the flags BindFlags understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("start-dir", "", "directory to open at startup (default $HOME)")
	flags.String("favorites", "", "favorites document path")
	flags.String("log-file", "", `log file path ("-" disables logging)`)
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("show-hidden", true, "list hidden entries")
}

// BindFlags lets explicitly set flags override every other source.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Set overrides key for this loader only, above every other source.
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}

// Load reads configFile, or $HOME/.fexplorer.yaml when configFile is empty.
// A missing default file is not an error; a missing explicit file is.
func (l *Loader) Load(configFile string) (Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(l.expand(configFile))
	} else {
		if home, err := l.homeDir(); err == nil {
			l.v.AddConfigPath(home)
		}
		l.v.AddConfigPath(".")
		l.v.SetConfigType("yaml")
		l.v.SetConfigName(configName)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		StartDir:      l.v.GetString(KeyStartDir),
		FavoritesFile: l.expand(l.v.GetString(KeyFavoritesFile)),
		LogFile:       l.expand(l.v.GetString(KeyLogFile)),
		LogLevel:      strings.ToLower(strings.TrimSpace(l.v.GetString(KeyLogLevel))),
		ShowHidden:    l.v.GetBool(KeyShowHidden),
		Filters:       l.v.GetStringMapString(KeyFilters),
		Source:        l.v.ConfigFileUsed(),
	}
	if cfg.FavoritesFile == "" {
		return Config{}, fmt.Errorf("config: %s must not be empty", KeyFavoritesFile)
	}
	return cfg, nil
}

func (l *Loader) userPath(dir func() (string, error), name string) string {
	base, err := dir()
	if err != nil || base == "" {
		home, herr := l.homeDir()
		if herr != nil {
			return filepath.Join("."+appName, name)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName, name)
}

// expand replaces a leading "~" with the home directory.
func (l *Loader) expand(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := l.homeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

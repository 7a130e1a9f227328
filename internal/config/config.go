// Package config loads CLI settings with the precedence
// defaults < project config file < environment variables < flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyContent       = "content"
	KeyExtensions    = "extensions"
	KeyOutput        = "output"
	KeyTheme         = "theme"
	KeyLogLevel      = "log.level"
	KeyWatchDebounce = "watch.debounce"
)

const (
	envPrefix = "SLIDETHEME"

	// DefaultDebounce is how long watch mode waits for a burst of file
	// events to settle before regenerating.
	DefaultDebounce = 300 * time.Millisecond
)

// ProjectConfigNames are the file names searched in the working directory.
var ProjectConfigNames = []string{"slidetheme.yaml", "slidetheme.yml", "slidetheme.toml", "slidetheme.json"}

// Settings is the resolved CLI configuration.
type Settings struct {
	Content    []string
	Extensions []string
	Output     string
	Theme      string
	LogLevel   string
	Debounce   time.Duration

	// ConfigFile is the project config that was read, if any.
	ConfigFile string
}

type loadSettings struct {
	workingDir string
	configFile string
	flags      *pflag.FlagSet
}

// Option configures Load. Useful for tests to override paths.
type Option func(*loadSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) {
		s.workingDir = dir
	}
}

// WithConfigFile explicitly sets the project config path instead of discovery.
func WithConfigFile(path string) Option {
	return func(s *loadSettings) {
		s.configFile = path
	}
}

// WithFlags binds command-line flags. Only flags the user changed override
// lower layers.
func WithFlags(flags *pflag.FlagSet) Option {
	return func(s *loadSettings) {
		s.flags = flags
	}
}

// Load resolves Settings.
func Load(opts ...Option) (Settings, error) {
	ls := loadSettings{}
	for _, opt := range opts {
		opt(&ls)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path, err := projectConfig(ls)
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if ls.flags != nil {
		for _, key := range []string{KeyContent, KeyExtensions, KeyOutput, KeyTheme} {
			if f := ls.flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
		if f := ls.flags.Lookup("log-level"); f != nil {
			if err := v.BindPFlag(KeyLogLevel, f); err != nil {
				return Settings{}, fmt.Errorf("bind flag log-level: %w", err)
			}
		}
	}

	s := Settings{
		Content:    splitList(v.GetStringSlice(KeyContent)),
		Extensions: splitList(v.GetStringSlice(KeyExtensions)),
		Output:     v.GetString(KeyOutput),
		Theme:      v.GetString(KeyTheme),
		LogLevel:   v.GetString(KeyLogLevel),
		Debounce:   v.GetDuration(KeyWatchDebounce),
		ConfigFile: path,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports settings that cannot work.
func (s Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Output) == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if s.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must be positive, got %s", s.Debounce))
	}
	for _, ext := range s.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot", ext))
		}
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyContent, []string{"slides.md", "components", "layouts", "pages"})
	v.SetDefault(KeyExtensions, []string{".md", ".vue", ".html", ".ts", ".js"})
	v.SetDefault(KeyOutput, filepath.Join("dist", "slidetheme.css"))
	v.SetDefault(KeyTheme, "theme.toml")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyWatchDebounce, DefaultDebounce)
}

func projectConfig(ls loadSettings) (string, error) {
	if ls.configFile != "" {
		if _, err := os.Stat(ls.configFile); err != nil {
			return "", fmt.Errorf("stat %s: %w", ls.configFile, err)
		}
		return ls.configFile, nil
	}

	dir := ls.workingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		dir = wd
	}
	for _, name := range ProjectConfigNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("config path %s is a directory", candidate)
		}
		return candidate, nil
	}
	return "", nil
}

// splitList accepts both list values and comma-separated strings, which is
// how environment variables arrive.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

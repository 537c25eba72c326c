// Package cfg allows for reading the user's configuration.
package cfg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tesselslate/hazel/internal/engine"
	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/log"
	"github.com/tesselslate/hazel/internal/res"
)

// Window backends
const (
	BackendX11    = "x11"
	BackendTerm   = "term"
	BackendScript = "script"
)

// Window contains the settings of the window.
type Window struct {
	Backend string `toml:"backend"`
	Title   string `toml:"title"`
	Width   uint32 `toml:"width"`
	Height  uint32 `toml:"height"`
	VSync   bool   `toml:"vsync"`
	Script  string `toml:"script"` // Script to replay, for the script backend
}

// Log contains the logging settings.
type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"` // Optional log file
}

// Metrics contains the metrics endpoint settings.
type Metrics struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

// Keys contains the user's keybindings.
type Keys struct {
	Quit   event.Bind `toml:"quit"`
	Reload event.Bind `toml:"reload"`
}

// Profile contains an entire configuration profile.
type Profile struct {
	Window  Window        `toml:"window"`
	Loop    engine.Config `toml:"loop"`
	Log     Log           `toml:"log"`
	Metrics Metrics       `toml:"metrics"`
	Keys    Keys          `toml:"keys"`
}

// defaultProfile returns the settings used for anything a profile leaves
// out.
func defaultProfile() Profile {
	return Profile{
		Window: Window{
			Backend: BackendX11,
			Title:   "hazel",
			Width:   1280,
			Height:  720,
		},
		Loop: engine.DefaultConfig(),
		Log: Log{
			Level: "info",
		},
		Metrics: Metrics{
			Address: "localhost:9100",
		},
		Keys: Keys{
			Quit:   event.Bind{Key: event.KeyQ, Mods: event.ModControl},
			Reload: event.Bind{Key: event.KeyR, Mods: event.ModControl},
		},
	}
}

// GetDirectory returns the path to the user's configuration directory.
func GetDirectory() (string, error) {
	// UserConfigDir automatically checks for $XDG_CONFIG_HOME and falls back
	// to $HOME/.config, so we don't need to do any special checks ourselves.
	xdgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return xdgDir + "/hazel/", nil
}

// GetPath returns the path of the profile with the given name.
func GetPath(name string) (string, error) {
	dir, err := GetDirectory()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	return dir + name + ".toml", nil
}

// GetProfile returns a parsed configuration profile.
func GetProfile(name string) (Profile, error) {
	path, err := GetPath(name)
	if err != nil {
		return Profile{}, err
	}
	return LoadProfile(path)
}

// LoadProfile reads and parses the profile at the given path.
func LoadProfile(path string) (Profile, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseProfile(file)
}

// ParseProfile parses a profile. Settings missing from the profile keep their
// default values.
func ParseProfile(data []byte) (Profile, error) {
	profile := defaultProfile()
	meta, err := toml.Decode(string(data), &profile)
	if err != nil {
		return Profile{}, fmt.Errorf("parse config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		log.Warn("Unknown config options: %s", strings.Join(keys, ", "))
	}
	if err = validateProfile(&profile); err != nil {
		return Profile{}, fmt.Errorf("validate config: %w", err)
	}
	return profile, nil
}

// MakeProfile makes a new configuration profile with the given name and the
// default settings.
func MakeProfile(name string) error {
	dir, err := GetDirectory()
	if err != nil {
		return fmt.Errorf("get config directory: %w", err)
	}
	stat, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			err := os.MkdirAll(dir, 0755)
			if err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
		}
	} else {
		if !stat.IsDir() {
			return fmt.Errorf("config directory (%s) is not a directory", dir)
		}
	}
	return os.WriteFile(
		dir+name+".toml",
		res.DefaultConfig,
		0644,
	)
}

// validateProfile ensures that the user's configuration profile does not have
// any illegal or invalid settings.
func validateProfile(conf *Profile) error {
	// Check window settings.
	switch conf.Window.Backend {
	case BackendX11:
		if conf.Window.Width == 0 || conf.Window.Height == 0 {
			return errors.New("invalid window size")
		}
		if conf.Window.Width > 0xFFFF || conf.Window.Height > 0xFFFF {
			return fmt.Errorf("window size %dx%d too large", conf.Window.Width, conf.Window.Height)
		}
	case BackendTerm:
		break
	case BackendScript:
		if conf.Window.Script == "" {
			return errors.New("script backend needs a script")
		}
	default:
		return fmt.Errorf("invalid window backend %q", conf.Window.Backend)
	}

	// Check loop settings.
	if conf.Loop.TickRate <= 0 {
		return errors.New("invalid tick rate")
	}
	if conf.Loop.TickRate < 10 {
		log.Warn("Very low tick rate in config. Consider increasing.")
	}
	if conf.Loop.Mode == engine.ModeCooperative && conf.Loop.QueueCapacity >= 0 {
		log.Info("Cooperative loop always uses an unbounded queue, ignoring queue_capacity")
	}

	// Check log settings.
	if _, err := log.ParseLevel(conf.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	// Check metrics settings.
	if conf.Metrics.Enabled && conf.Metrics.Address == "" {
		return errors.New("metrics enabled without an address")
	}

	// Check keybinds.
	if conf.Keys.Quit == conf.Keys.Reload {
		return fmt.Errorf("quit and reload share a keybind (%s)", conf.Keys.Quit)
	}
	return nil
}

package manager

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	v    *viper.Viper
)

type ConfigManager struct{}

var Config = &ConfigManager{}

// Settings addresses the logind session object that owns the backlight.
type Settings struct {
	Destination string
	Path        string
	Interface   string
	Method      string
	Subsystem   string
	Device      string
	Timeout     time.Duration
	LogLevel    string
}

// Load returns the process-wide settings registry. Only defaults are
// registered; no config file or environment is consulted.
func (c *ConfigManager) Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()

		v.SetDefault("login1.destination", "org.freedesktop.login1")
		v.SetDefault("login1.path", "/org/freedesktop/login1/session/self")
		v.SetDefault("login1.interface", "org.freedesktop.login1.Session")
		v.SetDefault("login1.method", "SetBrightness")
		v.SetDefault("login1.timeout", 5000*time.Millisecond)

		v.SetDefault("backlight.subsystem", "backlight")
		v.SetDefault("backlight.device", "intel_backlight")

		v.SetDefault("log.level", "warn")
	})

	return v
}

func (c *ConfigManager) Settings() Settings {
	v := c.Load()
	return Settings{
		Destination: v.GetString("login1.destination"),
		Path:        v.GetString("login1.path"),
		Interface:   v.GetString("login1.interface"),
		Method:      v.GetString("login1.method"),
		Subsystem:   v.GetString("backlight.subsystem"),
		Device:      v.GetString("backlight.device"),
		Timeout:     v.GetDuration("login1.timeout"),
		LogLevel:    v.GetString("log.level"),
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Address      string `mapstructure:"address"`
	Mode         string `mapstructure:"mode"`
	CookieSecret string `mapstructure:"cookie_secret"`
}

type StubConfig struct {
	Address        string `mapstructure:"address"`
	JWTSecret      string `mapstructure:"jwt_secret"`
	JWTExpireHours int    `mapstructure:"jwt_expire_hours"`
	Fixture        string `mapstructure:"fixture"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"`
}

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Server ServerConfig `mapstructure:"server"`
	Stub   StubConfig   `mapstructure:"stub"`
	Log    LogConfig    `mapstructure:"log"`
}

const envPrefix = "YOGA"

// Load reads the optional YAML file at path, then applies YOGA_* environment
// overrides (e.g. YOGA_API_BASE_URL) on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("server.address", "127.0.0.1:4200")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cookie_secret", "")
	v.SetDefault("stub.address", "127.0.0.1:8080")
	v.SetDefault("stub.jwt_secret", "yoga-studio-stub-secret")
	v.SetDefault("stub.jwt_expire_hours", 24)
	v.SetDefault("stub.fixture", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "production")
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Stub.JWTExpireHours <= 0 {
		return fmt.Errorf("stub.jwt_expire_hours must be positive, got %d", c.Stub.JWTExpireHours)
	}
	return nil
}
